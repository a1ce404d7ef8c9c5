package dom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-htmldom/dom"
)

func TestNavigation_ParentChildrenSiblings(t *testing.T) {
	doc := mustParse(t, `<ul><li>a</li><li>b</li><li>c</li></ul>`)
	ul, _ := doc.Find("ul")
	kids := doc.Children(ul)
	require.Len(t, kids, 3)

	mid := kids[1]
	require.Equal(t, ul, doc.Parent(mid))
	require.Equal(t, kids[0], doc.PrevElementSibling(mid))
	require.Equal(t, kids[2], doc.NextElementSibling(mid))
	require.Equal(t, dom.NoNode, doc.PrevElementSibling(kids[0]))
	require.Equal(t, dom.NoNode, doc.NextElementSibling(kids[2]))
}

func TestNavigation_Ancestors(t *testing.T) {
	doc := mustParse(t, `<div><section><p id="t">x</p></section></div>`)
	p, _ := doc.Find("#t")
	ancestors := doc.Ancestors(p)
	var names []string
	for _, a := range ancestors {
		if doc.Kind(a) == dom.KindElement {
			names = append(names, doc.TagName(a))
		}
	}
	require.Equal(t, []string{"section", "div"}, names)
}

func TestNavigation_TextNodesVerbatim(t *testing.T) {
	doc := mustParse(t, `<p>  hello  <b>x</b>  world  </p>`)
	p, _ := doc.Find("p")
	nodes := doc.TextNodes(p)
	require.Len(t, nodes, 2)
	require.Equal(t, "  hello  ", nodes[0])
	require.Equal(t, "  world  ", nodes[1])
}

func TestNavigation_SiblingIterators(t *testing.T) {
	doc := mustParse(t, `<ul><li id="a">a</li><li id="b">b</li><li id="c">c</li></ul>`)
	b, _ := doc.Find("#b")
	require.Len(t, doc.NextElementSiblings(b), 1)
	require.Len(t, doc.PrevElementSiblings(b), 1)
	require.Len(t, doc.SiblingsElements(b), 2)
}

func TestNavigation_Descendants(t *testing.T) {
	doc := mustParse(t, `<div><p>a</p><p>b</p></div>`)
	div, _ := doc.Find("div")
	desc := doc.Descendants(div)
	require.GreaterOrEqual(t, len(desc), 4) // 2 <p> + 2 text nodes
}
