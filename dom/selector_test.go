package dom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-htmldom/dom"
)

func TestCompileSelector_Valid(t *testing.T) {
	cases := []string{
		"div", "*", "#main", ".item", "div.item", "div#main.item",
		"ul > li", "h1 + p", "h1 ~ p", "a[href]", `a[href="x"]`,
		"a[class~=active]", "a[href^=https]", "a[href$=.pdf]", "a[href*=foo]",
		"li:first-child", "li:last-child", "li:nth-child(2n+1)", "li:nth-child(odd)",
		"div:empty", "div:not(.hidden)",
	}
	for _, sel := range cases {
		t.Run(sel, func(t *testing.T) {
			_, err := dom.CompileSelector(sel)
			require.NoError(t, err)
		})
	}
}

func TestCompileSelector_Invalid(t *testing.T) {
	cases := []string{
		"", "div:bogus-pseudo", "a[", "a[href=", "li:nth-child(",
	}
	for _, sel := range cases {
		t.Run(sel, func(t *testing.T) {
			_, err := dom.CompileSelector(sel)
			require.Error(t, err)
			var domErr *dom.Error
			require.ErrorAs(t, err, &domErr)
			require.Equal(t, dom.KindInvalidSelector, domErr.Kind)
		})
	}
}
