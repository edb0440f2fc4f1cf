package usecases

// TextSanitizer removes markup from user-supplied text.
type TextSanitizer interface {
	StripTags(text string) string
}
