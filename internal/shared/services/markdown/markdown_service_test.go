package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTMLSanitized("## Themes\n\n- **Login** bugs\n- dark mode")
	require.NoError(t, err)
	assert.Contains(t, out, "<h2>Themes</h2>")
	assert.Contains(t, out, "<strong>Login</strong>")
	assert.Contains(t, out, "<li>dark mode</li>")
}

func TestToHTMLSanitized_DropsScripts(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTMLSanitized("hi <script>alert(1)</script> [x](javascript:alert(1))")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "javascript:")
}

func TestToHTMLSanitized_Empty(t *testing.T) {
	out, err := NewRenderer().ToHTMLSanitized("  \n")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestStripTags(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, "Crash on save & exit", r.StripTags("  <b>Crash</b> on save &amp; exit<script>x()</script> "))
	assert.Equal(t, "a < b", r.StripTags("a < b"))
}
