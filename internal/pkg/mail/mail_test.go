package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContactReply(t *testing.T) {
	html, err := RenderContactReply(ContactReplyData{
		Name:    "Jane",
		Subject: "Hiring inquiry",
		Reply:   "Thanks, let's talk next week.",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Hi Jane,")
	assert.Contains(t, html, "Hiring inquiry")
	assert.Contains(t, html, "let&#39;s talk next week")
}

func TestRenderContactReplyEscapesHTML(t *testing.T) {
	html, err := RenderContactReply(ContactReplyData{
		Name:    "<script>alert(1)</script>",
		Subject: "s",
		Reply:   "r",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestSenderDisabledByDefault(t *testing.T) {
	s := New(Config{})
	assert.False(t, s.Enabled())
	assert.NoError(t, s.Send(Message{To: []string{"a@b.c"}, Subject: "x", HTML: "y"}),
		"disabled sender must be a no-op, not an error")
}
