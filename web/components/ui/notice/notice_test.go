package notice

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeRendersVariant(t *testing.T) {
	var buf bytes.Buffer
	err := Notice(Props{Message: "Deleted <1>", Variant: VariantSuccess}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `role="status"`)
	assert.Contains(t, html, "Deleted &lt;1&gt;")
	assert.Contains(t, html, "bg-green-50")
}

func TestClassesOverride(t *testing.T) {
	assert.Contains(t, Classes(VariantError, "my-8"), "my-8")
	assert.NotContains(t, Classes(VariantError, "my-8"), "my-4")
}
