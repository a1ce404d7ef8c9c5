package dom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-htmldom/dom"
)

func TestOuterHTML_RoundTripsEscaping(t *testing.T) {
	doc := mustParse(t, `<div title="a &amp; b">x &lt; y</div>`)
	div, err := doc.Find("div")
	require.NoError(t, err)

	out := doc.OuterHTML(div)
	require.Contains(t, out, `title="a &amp; b"`)
	require.Contains(t, out, "x &lt; y")
}

func TestOuterHTML_VoidElement(t *testing.T) {
	doc := mustParse(t, `<div><img src="a.png"></div>`)
	div, _ := doc.Find("div")
	out := doc.OuterHTML(div)
	require.Contains(t, out, `<img src="a.png" />`)
}

func TestInnerHTML(t *testing.T) {
	doc := mustParse(t, `<ul><li>a</li><li>b</li></ul>`)
	ul, _ := doc.Find("ul")
	require.Equal(t, "<li>a</li><li>b</li>", doc.InnerHTML(ul))
}

func TestToHTML_FullDocument(t *testing.T) {
	doc := mustParse(t, `<html><body><p>hi</p></body></html>`)
	out := doc.ToHTML()
	require.Contains(t, out, "<p>hi</p>")
}

func TestDumpJSON(t *testing.T) {
	doc := mustParse(t, `<div id="x" class="a b">text</div>`)
	div, _ := doc.Find("div")
	out, err := doc.DumpJSON(div)
	require.NoError(t, err)
	require.Contains(t, out, `"tag": "div"`)
	require.Contains(t, out, `"id": "x"`)
}
