package dom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-htmldom/dom"
)

func TestParse_BasicDocument(t *testing.T) {
	doc, err := dom.Parse(`<!DOCTYPE html><html><head><title>Hi</title></head><body><p id="a" class="x y">Hello</p></body></html>`)
	require.NoError(t, err)
	require.Equal(t, "Hi", doc.Title())

	p, err := doc.Find("#a")
	require.NoError(t, err)
	require.NotEqual(t, dom.NoNode, p)
	require.Equal(t, "p", doc.TagName(p))
	require.Equal(t, "Hello", doc.Text(p))
	require.ElementsMatch(t, []string{"x", "y"}, doc.ClassList(p))
}

func TestParse_DuplicateIDWarns(t *testing.T) {
	doc, err := dom.Parse(`<div id="x">a</div><div id="x">b</div>`)
	require.NoError(t, err)
	require.NotEmpty(t, doc.Warnings())

	id, err := doc.Find("#x")
	require.NoError(t, err)
	require.Equal(t, "a", doc.Text(id))
}

func TestParse_DuplicateIDStrictErrors(t *testing.T) {
	_, err := dom.Parse(`<div id="x"></div><div id="x"></div>`, dom.WithStrict(true))
	require.Error(t, err)
	var domErr *dom.Error
	require.ErrorAs(t, err, &domErr)
	require.Equal(t, dom.KindStrictParseError, domErr.Kind)
}

func TestParse_MaxDepthExceeded(t *testing.T) {
	input := ""
	for i := 0; i < 5; i++ {
		input += "<div>"
	}
	_, err := dom.Parse(input, dom.WithMaxDepth(3))
	require.Error(t, err)
	require.True(t, err.(*dom.Error).Kind == dom.KindDepthExceeded)
}

func TestParse_MaxDepthBoundary(t *testing.T) {
	// Exactly max_depth nested elements succeeds.
	input := ""
	for i := 0; i < 3; i++ {
		input += "<div>"
	}
	for i := 0; i < 3; i++ {
		input += "</div>"
	}
	_, err := dom.Parse(input, dom.WithMaxDepth(3))
	require.NoError(t, err)
}

func TestParse_VoidElements(t *testing.T) {
	doc, err := dom.Parse(`<div><img src="a.png"><br></div>`)
	require.NoError(t, err)
	div, err := doc.Find("div")
	require.NoError(t, err)
	children := doc.Children(div)
	require.Len(t, children, 2)
	require.Equal(t, "img", doc.TagName(children[0]))
	require.Equal(t, "br", doc.TagName(children[1]))
}

func TestParse_CommentsExcludedByDefault(t *testing.T) {
	doc, err := dom.Parse(`<div><!-- hello --></div>`)
	require.NoError(t, err)
	div, _ := doc.Find("div")
	require.Empty(t, doc.ChildNodes(div))
}

func TestParse_CommentsIncluded(t *testing.T) {
	doc, err := dom.Parse(`<div><!-- hello --></div>`, dom.WithIncludeComments(true))
	require.NoError(t, err)
	div, _ := doc.Find("div")
	kids := doc.ChildNodes(div)
	require.Len(t, kids, 1)
	require.Equal(t, dom.KindComment, doc.Kind(kids[0]))
	require.Equal(t, " hello ", doc.CommentData(kids[0]))
}

func TestParseFragment_TableRow(t *testing.T) {
	doc, err := dom.ParseFragment(`<tr><td>1</td><td>2</td></tr>`, "tbody")
	require.NoError(t, err)
	nodes := doc.FragmentNodes()
	require.NotEmpty(t, nodes)

	cells, err := doc.FindAll("td")
	require.NoError(t, err)
	require.Len(t, cells, 2)
	require.Equal(t, "1", doc.Text(cells[0]))
}

func TestParse_InvalidUTF8(t *testing.T) {
	_, err := dom.Parse(string([]byte{0xff, 0xfe, 0xfd}))
	require.Error(t, err)
	require.Equal(t, dom.KindInvalidInput, err.(*dom.Error).Kind)
}
