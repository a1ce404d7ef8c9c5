package dom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-htmldom/dom"
)

const listHTML = `
<html><body>
<ul class="menu">
  <li class="item first">One</li>
  <li class="item">Two</li>
  <li class="item last">Three</li>
</ul>
<div id="footer"><span>footer text</span></div>
</body></html>`

func mustParse(t *testing.T, input string) *dom.Document {
	t.Helper()
	doc, err := dom.Parse(input)
	require.NoError(t, err)
	return doc
}

func TestFindAll_ClassOnly_DocumentOrder(t *testing.T) {
	doc := mustParse(t, listHTML)
	items, err := doc.FindAll(".item")
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "One", doc.Text(items[0]))
	require.Equal(t, "Two", doc.Text(items[1]))
	require.Equal(t, "Three", doc.Text(items[2]))
}

func TestFind_IDOnly(t *testing.T) {
	doc := mustParse(t, listHTML)
	id, err := doc.Find("#footer")
	require.NoError(t, err)
	require.NotEqual(t, dom.NoNode, id)
	require.Equal(t, "div", doc.TagName(id))
}

func TestFindAll_TagOnly(t *testing.T) {
	doc := mustParse(t, listHTML)
	lis, err := doc.FindAll("li")
	require.NoError(t, err)
	require.Len(t, lis, 3)
}

func TestFindAll_DescendantCombinator(t *testing.T) {
	doc := mustParse(t, listHTML)
	spans, err := doc.FindAll("div span")
	require.NoError(t, err)
	require.Len(t, spans, 1)
	require.Equal(t, "footer text", doc.Text(spans[0]))
}

func TestFindAll_ChildCombinator(t *testing.T) {
	doc := mustParse(t, listHTML)
	direct, err := doc.FindAll("ul > li")
	require.NoError(t, err)
	require.Len(t, direct, 3)

	none, err := doc.FindAll("body > li")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestFindAll_AdjacentAndGeneralSibling(t *testing.T) {
	doc := mustParse(t, `<ul><li id="a">a</li><li id="b">b</li><li id="c">c</li></ul>`)
	adj, err := doc.FindAll("#a + li")
	require.NoError(t, err)
	require.Len(t, adj, 1)
	require.Equal(t, "b", doc.Text(adj[0]))

	gen, err := doc.FindAll("#a ~ li")
	require.NoError(t, err)
	require.Len(t, gen, 2)
}

func TestFindAll_PseudoClasses(t *testing.T) {
	doc := mustParse(t, `<ul><li>a</li><li>b</li><li>c</li></ul>`)
	first, err := doc.FindAll("li:first-child")
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, "a", doc.Text(first[0]))

	last, err := doc.FindAll("li:last-child")
	require.NoError(t, err)
	require.Equal(t, "c", doc.Text(last[0]))

	odd, err := doc.FindAll("li:nth-child(odd)")
	require.NoError(t, err)
	require.Len(t, odd, 2)
	require.Equal(t, "a", doc.Text(odd[0]))
	require.Equal(t, "c", doc.Text(odd[1]))
}

func TestFindAll_Empty(t *testing.T) {
	doc := mustParse(t, `<div><p></p><p>x</p></div>`)
	empties, err := doc.FindAll("p:empty")
	require.NoError(t, err)
	require.Len(t, empties, 1)
}

func TestFindAll_EmptyIgnoresWhitespaceAndComments(t *testing.T) {
	doc, err := dom.Parse(`<p>   </p>`, dom.WithPreserveWhitespace(true), dom.WithIncludeComments(true))
	require.NoError(t, err)
	matches, err := doc.FindAll("p:empty")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	doc2, err := dom.Parse(`<p><!-- c --></p>`, dom.WithIncludeComments(true))
	require.NoError(t, err)
	matches2, err := doc2.FindAll("p:empty")
	require.NoError(t, err)
	require.Len(t, matches2, 1)
}

func TestFindAll_LastChildSkipsTrailingText(t *testing.T) {
	doc := mustParse(t, `<div><p>x</p>trailing text</div>`)
	p, err := doc.FindAll("p:last-child")
	require.NoError(t, err)
	require.Len(t, p, 1)
}

func TestText_NormalizesWhitespaceByDefault(t *testing.T) {
	doc := mustParse(t, `<p>  a   b  </p>`)
	p, _ := doc.Find("p")
	require.Equal(t, "a b", doc.Text(p))
}

func TestText_PreserveWhitespaceKeepsRawText(t *testing.T) {
	doc, err := dom.Parse(`<p>  a   b  </p>`, dom.WithPreserveWhitespace(true))
	require.NoError(t, err)
	p, _ := doc.Find("p")
	require.Equal(t, "  a   b  ", doc.Text(p))
}

func TestFindAll_CustomTagName(t *testing.T) {
	doc := mustParse(t, `<div><my-widget id="w">hi</my-widget></div>`)
	matches, err := doc.FindAll("my-widget")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "my-widget", doc.TagName(matches[0]))

	byID, err := doc.Find("#w")
	require.NoError(t, err)
	require.Equal(t, matches[0], byID)
}

func TestFindAll_Not(t *testing.T) {
	doc := mustParse(t, `<ul><li class="a">1</li><li class="b">2</li></ul>`)
	res, err := doc.FindAll("li:not(.a)")
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, "2", doc.Text(res[0]))
}

func TestFindAll_AttributePredicates(t *testing.T) {
	doc := mustParse(t, `<a href="https://example.com/a.pdf">x</a><a href="/local">y</a>`)
	withHref, err := doc.FindAll("a[href]")
	require.NoError(t, err)
	require.Len(t, withHref, 2)

	pdfs, err := doc.FindAll(`a[href$=.pdf]`)
	require.NoError(t, err)
	require.Len(t, pdfs, 1)

	httpsOnes, err := doc.FindAll("a[href^=https]")
	require.NoError(t, err)
	require.Len(t, httpsOnes, 1)
}

func TestClosest(t *testing.T) {
	doc := mustParse(t, `<div class="outer"><div class="inner"><span id="s">x</span></div></div>`)
	s, _ := doc.Find("#s")
	outer, err := doc.Closest(s, ".outer")
	require.NoError(t, err)
	require.NotEqual(t, dom.NoNode, outer)
	require.True(t, doc.HasClass(outer, "outer"))
}

func TestInvalidSelectorSurfacesFromFind(t *testing.T) {
	doc := mustParse(t, `<div></div>`)
	_, err := doc.Find("div:nope")
	require.Error(t, err)
	// The document itself must remain usable after a query error.
	_, err2 := doc.Find("div")
	require.NoError(t, err2)
}
