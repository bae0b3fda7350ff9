package button

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassesLaterUtilitiesWin(t *testing.T) {
	classes := Classes(VariantPrimary, "bg-green-600 px-6")

	assert.Contains(t, classes, "bg-green-600")
	assert.NotContains(t, classes, "bg-blue-600")
	assert.Contains(t, classes, "px-6")
	assert.NotContains(t, strings.Fields(classes), "px-3")
}

func TestButtonRendersLink(t *testing.T) {
	var buf bytes.Buffer
	ctx := templ.WithChildren(context.Background(), templ.Raw("Download"))
	err := Button(Props{Href: "?dl=1"}).Render(ctx, &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.True(t, strings.HasPrefix(html, "<a"))
	assert.Contains(t, html, `href="?dl=1"`)
	assert.Contains(t, html, ">Download</a>")
}

func TestButtonRendersSubmit(t *testing.T) {
	var buf bytes.Buffer
	ctx := templ.WithChildren(context.Background(), templ.Raw("Go"))
	err := Button(Props{Submit: true, Name: "cg_submit", Value: "1"}).Render(ctx, &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.True(t, strings.HasPrefix(html, "<button"))
	assert.Contains(t, html, `type="submit"`)
	assert.Contains(t, html, `name="cg_submit"`)
}
