package valueobjects

import "fmt"

// Tag is the ticket kind. Model output calls it "type".
type Tag string

const (
	TagBug     Tag = "bug"
	TagTweak   Tag = "tweak"
	TagFeature Tag = "feature"
)

func (t Tag) String() string {
	return string(t)
}

func (t Tag) IsValid() bool {
	switch t {
	case TagBug, TagTweak, TagFeature:
		return true
	}
	return false
}

func NewTag(s string) (Tag, error) {
	t := Tag(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tag: %s", s)
	}
	return t, nil
}

func AllTags() []Tag {
	return []Tag{TagBug, TagTweak, TagFeature}
}
