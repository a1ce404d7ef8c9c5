package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// insertionMode is a reduced version of the HTML5 tree-construction
// insertion modes: the tokenizer (golang.org/x/net/html's Tokenizer, not
// its tree builder) already performs WHATWG tokenization-level error
// recovery, so the adapter's own state machine only needs to track enough
// modes to place nodes correctly and drive table foster parenting and
// head/body placement.
type insertionMode uint8

const (
	modeInitial insertionMode = iota
	modeBeforeHTML
	modeBeforeHead
	modeInHead
	modeAfterHead
	modeInBody
	modeText
	modeInTable
	modeAfterBody
	modeAfterAfterBody
)

// builder drives Document construction from an x/net/html Tokenizer
// stream, the way justgohtml's TreeBuilder drives construction from its
// own tokenizer's token stream: an explicit open-elements stack plus a
// mode-dispatch switch, rather than recursive-descent parsing.
type builder struct {
	doc  *Document
	tok  *html.Tokenizer
	cfg  Config

	mode         insertionMode
	originalMode insertionMode
	openElements []NodeId
	headElement  NodeId
	bodyElement  NodeId

	fragment     bool
	fragmentRoot NodeId
}

// Parse builds a queryable Document from a complete HTML document.
func Parse(input string, opts ...Option) (*Document, error) {
	return parseWith(input, NewConfig(opts...))
}

func parseWith(input string, cfg Config) (*Document, error) {
	if !isValidUTF8(input) {
		return nil, newError(KindInvalidInput, 0, "input is not valid UTF-8")
	}
	doc := newDocument(input, cfg)
	b := &builder{
		doc:  doc,
		tok:  html.NewTokenizer(strings.NewReader(input)),
		cfg:  cfg,
		mode: modeInitial,
	}
	if err := b.run(); err != nil {
		return nil, err
	}
	doc.seal()
	return doc, nil
}

// ParseFragment parses input as a fragment of HTML that would appear as a
// child of contextTag (e.g. "tbody", "tr", "select", "body"), priming the
// tokenizer's insertion mode the way a context element primes fragment
// parsing per the HTML5 spec.
func ParseFragment(input, contextTag string, opts ...Option) (*Document, error) {
	if !isValidUTF8(input) {
		return nil, newError(KindInvalidInput, 0, "input is not valid UTF-8")
	}
	cfg := NewConfig(opts...)
	doc := newDocument(input, cfg)
	b := &builder{
		doc:      doc,
		tok:      html.NewTokenizer(strings.NewReader(input)),
		cfg:      cfg,
		fragment: true,
	}
	b.primeFragment(contextTag)
	if err := b.run(); err != nil {
		return nil, err
	}
	doc.seal()
	return doc, nil
}

func isValidUTF8(s string) bool {
	return strings.ToValidUTF8(s, "") == s
}

func (b *builder) primeFragment(contextTag string) {
	htmlTag, _ := lookupTag("html")
	htmlID := b.doc.arena.allocElement(htmlTag, 0)
	b.doc.arena.appendChild(b.doc.root, htmlID)
	b.openElements = append(b.openElements, htmlID)
	b.fragmentRoot = htmlID

	switch contextTag {
	case "tbody", "thead", "tfoot", "tr", "td", "th", "caption", "colgroup", "table":
		b.mode = modeInTable
	case "select":
		b.mode = modeInBody
	default:
		b.mode = modeInBody
	}
	b.originalMode = b.mode
}

// FragmentNodes returns the top-level NodeIds produced by a fragment
// parse (elements and any text or comment nodes), i.e. the children of
// the synthetic <html> wrapper.
func (doc *Document) FragmentNodes() []NodeId {
	var out []NodeId
	n := doc.node(doc.root)
	wrapper := n.firstChild
	if wrapper == NoNode {
		return nil
	}
	w := doc.node(wrapper)
	for c := w.firstChild; c != NoNode; c = doc.node(c).nextSibling {
		out = append(out, c)
	}
	return out
}

func (b *builder) run() error {
	for {
		tt := b.tok.Next()
		switch tt {
		case html.ErrorToken:
			if err := b.tok.Err(); err != nil && err != io.EOF {
				return wrapError(KindInvalidInput, 0, err, "tokenizer error: %v", err)
			}
			return nil
		case html.DoctypeToken:
			b.handleDoctype()
		case html.StartTagToken, html.SelfClosingTagToken:
			if err := b.handleStartTag(tt == html.SelfClosingTagToken); err != nil {
				return err
			}
		case html.EndTagToken:
			b.handleEndTag()
		case html.TextToken:
			b.handleText()
		case html.CommentToken:
			b.handleComment()
		}
	}
}

func (b *builder) handleDoctype() {
	name := strings.ToLower(string(b.tok.Text()))
	if name != "html" {
		b.doc.quirks = Quirks
	}
}

func (b *builder) current() NodeId {
	if len(b.openElements) == 0 {
		return b.doc.root
	}
	return b.openElements[len(b.openElements)-1]
}

func (b *builder) push(id NodeId) { b.openElements = append(b.openElements, id) }

func (b *builder) pop() NodeId {
	n := len(b.openElements)
	if n == 0 {
		return NoNode
	}
	id := b.openElements[n-1]
	b.openElements = b.openElements[:n-1]
	return id
}

func (b *builder) insertionParent() NodeId {
	// Foster parenting: text/elements that would otherwise be inserted
	// directly inside <table> (before any <tbody>/<tr>/<td> exists) are
	// instead inserted as a preceding sibling of the table, matching the
	// foster-parenting rule used by justgohtml's treebuilder for raw
	// table text.
	if b.mode == modeInTable {
		for i := len(b.openElements) - 1; i >= 0; i-- {
			n := b.doc.node(b.openElements[i])
			if n.tag == TagTable {
				if i == 0 {
					return b.doc.root
				}
				return b.openElements[i-1]
			}
		}
	}
	return b.current()
}

func (b *builder) handleStartTag(selfClosing bool) error {
	name, hasAttr := b.tok.TagName()
	tagStr := string(name)

	if len(b.openElements)+1 > b.cfg.MaxDepth {
		return newError(KindDepthExceeded, 0, "element nesting exceeds max depth %d", b.cfg.MaxDepth)
	}

	tagID, known := lookupTag(tagStr)
	var tagName NameHandle
	if !known {
		tagID = TagOther
		tagName = b.doc.interner.intern(tagStr)
	}
	elID := b.doc.arena.allocElement(tagID, tagName)
	el := b.doc.node(elID)

	for hasAttr {
		var key, val []byte
		key, val, hasAttr = b.tok.TagAttr()
		keyStr := string(key)
		h := b.doc.interner.intern(keyStr)
		if attributesOf(b.doc, el).Has(keyStr) {
			continue // repeated attribute name: first occurrence wins
		}
		ref := b.doc.internSide(string(val))
		b.doc.appendAttr(el, h, ref)
		if keyStr == "id" {
			idVal := b.doc.sliceStr(ref)
			if idVal != "" {
				el.hasElemID = true
				el.elemID = ref
				if _, exists := b.doc.idIndex[idVal]; exists {
					if b.cfg.Strict {
						return newError(KindStrictParseError, 0, "duplicate id %q", idVal)
					}
					b.doc.warn("duplicate id %q (first writer wins)", idVal)
				} else {
					b.doc.idIndex[idVal] = elID
				}
			}
		} else if keyStr == "class" {
			classStr := b.doc.sliceStr(ref)
			for _, tok := range strings.Fields(classStr) {
				ch := b.doc.interner.intern(tok)
				if ids := b.doc.classIndex[tok]; len(ids) > 0 && ids[len(ids)-1] == elID {
					continue // repeated token in one class attribute
				}
				el.classes = append(el.classes, ch)
				b.doc.classIndex[tok] = append(b.doc.classIndex[tok], elID)
			}
		}
	}

	parent := b.insertionParent()
	b.doc.arena.appendChild(parent, elID)

	if tagStr == "html" {
		b.mode = modeBeforeHead
	}
	if tagStr == "head" {
		b.headElement = elID
		b.mode = modeInHead
	}
	if tagStr == "body" {
		b.bodyElement = elID
		b.mode = modeInBody
	}
	if tagStr == "table" {
		b.mode = modeInTable
	}

	isVoid := voidElements[tagStr] || selfClosing
	if !isVoid {
		b.push(elID)
		if rawTextElements[tagStr] {
			b.originalMode = b.mode
			b.mode = modeText
		}
	}
	return nil
}

func (b *builder) handleEndTag() {
	name, _ := b.tok.TagName()
	tagStr := string(name)

	if b.mode == modeText {
		b.pop()
		b.mode = b.originalMode
		return
	}

	for i := len(b.openElements) - 1; i >= 0; i-- {
		n := b.doc.node(b.openElements[i])
		if matchesTagName(b.doc, n, tagStr) {
			b.openElements = b.openElements[:i]
			if tagStr == "head" {
				b.mode = modeAfterHead
			} else if tagStr == "body" {
				b.mode = modeAfterBody
			} else if tagStr == "html" {
				b.mode = modeAfterAfterBody
			} else if tagStr == "table" {
				b.mode = modeInBody
			}
			return
		}
	}
	// Stray end tag with no matching open element: the underlying
	// tokenizer has already recovered at the token level, so this is
	// silently ignored in strict and non-strict mode alike, with no
	// warning recorded.
}

func matchesTagName(doc *Document, n *Node, name string) bool {
	if n.Kind != KindElement {
		return false
	}
	if n.tag != TagOther {
		return tagName(n.tag) == name
	}
	return doc.interner.resolve(n.tagName) == name
}

func (b *builder) handleText() {
	raw := b.tok.Text()
	if len(raw) == 0 {
		return
	}
	text := string(raw)
	if !b.cfg.PreserveWhitespace && strings.TrimSpace(text) == "" && b.mode != modeText {
		// Collapse pure-whitespace inter-element text to nothing, unless
		// we are inside a raw-text element where whitespace is content.
		return
	}
	ref := b.doc.internSide(text)
	id := b.doc.arena.allocText(ref)
	b.doc.arena.appendChild(b.insertionParent(), id)
}

func (b *builder) handleComment() {
	if !b.cfg.IncludeComments {
		return
	}
	text := string(b.tok.Text())
	ref := b.doc.internSide(text)
	id := b.doc.arena.allocComment(ref)
	b.doc.arena.appendChild(b.insertionParent(), id)
}
