package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLBody_EscapesMarkup(t *testing.T) {
	got := htmlBody("use <b>20g</b> & stir")

	assert.Equal(t, "<pre>use &lt;b&gt;20g&lt;/b&gt; &amp; stir</pre>", got)
}

func TestHTMLBody_PlainTextPassesThrough(t *testing.T) {
	got := htmlBody("thanks for your order")

	assert.Equal(t, "<pre>thanks for your order</pre>", got)
}

func TestSendGridSender_RejectsMissingConfig(t *testing.T) {
	ctx := context.Background()

	err := NewSendGridSender("", "Shop", "noreply@example.com").Send(ctx, "a@b.com", "hi", "body")
	require.Error(t, err)

	err = NewSendGridSender("key", "Shop", "noreply@example.com").Send(ctx, "", "hi", "body")
	require.Error(t, err)
}
