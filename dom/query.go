package dom

import "strings"

// Find compiles sel and returns the first matching element in document
// order, or NoNode if none matches.
func (d *Document) Find(sel string) (NodeId, error) {
	cs, err := CompileSelector(sel)
	if err != nil {
		return NoNode, err
	}
	return d.FindCompiled(cs), nil
}

// FindAll compiles sel and returns every matching element in document
// order.
func (d *Document) FindAll(sel string) ([]NodeId, error) {
	cs, err := CompileSelector(sel)
	if err != nil {
		return nil, err
	}
	return d.FindAllCompiled(cs), nil
}

// Select is an alias for FindAll, matching the "select" name used
// alongside find/find_all/find_compiled in this package's external
// interface list.
func (d *Document) Select(sel string) ([]NodeId, error) {
	return d.FindAll(sel)
}

// FindCompiled runs a previously compiled selector, returning the first
// match. Compiling once and calling FindCompiled/FindAllCompiled
// repeatedly avoids re-parsing the same selector string on every query,
// which matters for the batch driver running one selector over many
// documents.
func (d *Document) FindCompiled(cs *CompiledSelector) NodeId {
	result := NoNode
	d.dispatch(cs, true, func(id NodeId) bool {
		result = id
		return false // stop at first match
	})
	return result
}

// FindAllCompiled runs a previously compiled selector, returning every
// match in document order.
func (d *Document) FindAllCompiled(cs *CompiledSelector) []NodeId {
	var out []NodeId
	d.dispatch(cs, false, func(id NodeId) bool {
		out = append(out, id)
		return true
	})
	return out
}

// dispatch routes a compiled selector to the fast-path strategy its
// classification selected, falling back to a general pre-order walk.
// visit returns false to stop early (used by FindCompiled's first-match
// short circuit).
func (d *Document) dispatch(cs *CompiledSelector, firstOnly bool, visit func(NodeId) bool) {
	switch cs.fast {
	case fastIDOnly:
		id := cs.steps[0].id
		if n, ok := d.idIndex[id]; ok && d.matchesCompound(n, &cs.steps[0]) {
			visit(n)
		}
		return
	case fastClassOnly:
		d.dispatchClassOnly(cs, visit)
		return
	case fastTagOnly:
		d.walkPreOrder(d.root, func(id NodeId) bool {
			n := d.node(id)
			if n.Kind != KindElement {
				return true
			}
			if matchesTag(d, n, &cs.steps[0]) {
				return visit(id)
			}
			return true
		})
		return
	case fastIDAnchored:
		last := cs.steps[len(cs.steps)-1]
		if n, ok := d.idIndex[last.id]; ok {
			if d.matchesSelector(n, cs) {
				visit(n)
			}
		}
		return
	case fastClassAnchored:
		candidates := d.classIndex[cs.steps[len(cs.steps)-1].classes[0]]
		for _, id := range candidates {
			if d.matchesSelector(id, cs) {
				if !visit(id) {
					return
				}
			}
		}
		return
	default:
		d.walkPreOrder(d.root, func(id NodeId) bool {
			n := d.node(id)
			if n.Kind != KindElement {
				return true
			}
			if d.matchesSelector(id, cs) {
				return visit(id)
			}
			return true
		})
	}
}

func matchesTag(d *Document, n *Node, step *compoundStep) bool {
	if step.tagKnown {
		return n.tag == step.tagID
	}
	return matchesTagName(d, n, step.tag)
}

// dispatchClassOnly walks the class-index's NodeId list for the single
// class token, which is already in document order, so no extra sort is
// needed.
func (d *Document) dispatchClassOnly(cs *CompiledSelector, visit func(NodeId) bool) {
	class := cs.steps[0].classes[0]
	for _, id := range d.classIndex[class] {
		if !visit(id) {
			return
		}
	}
}

// walkPreOrder performs a depth-first pre-order traversal from start
// (inclusive), calling visit for every node. visit returning false stops
// the entire traversal early.
func (d *Document) walkPreOrder(start NodeId, visit func(NodeId) bool) bool {
	if !visit(start) {
		return false
	}
	n := d.node(start)
	for c := n.firstChild; c != NoNode; c = d.node(c).nextSibling {
		if !d.walkPreOrder(c, visit) {
			return false
		}
	}
	return true
}

// Title returns the text content of the document's first <title>
// element, cached after the first call since the tree is immutable once
// Queryable.
func (d *Document) Title() string {
	if d.titleCached {
		return d.titleCache
	}
	var title string
	d.walkPreOrder(d.root, func(id NodeId) bool {
		n := d.node(id)
		if n.Kind == KindElement && n.tag == TagTitle {
			title = d.Text(id)
			return false
		}
		return true
	})
	d.titleCache = title
	d.titleCached = true
	return title
}

// Text returns the concatenated text content of id and its descendants,
// in document order, the way Node.textContent works in a browser DOM. By
// default runs of ASCII whitespace are collapsed to a single space and the
// result is trimmed; Config.PreserveWhitespace returns the raw
// concatenation instead.
func (d *Document) Text(id NodeId) string {
	var sb strings.Builder
	d.collectText(id, &sb)
	text := sb.String()
	if d.cfg.PreserveWhitespace {
		return text
	}
	return strings.Join(strings.Fields(text), " ")
}

func (d *Document) collectText(id NodeId, sb *strings.Builder) {
	n := d.node(id)
	switch n.Kind {
	case KindText:
		sb.WriteString(d.sliceStr(n.data))
	case KindElement, KindDocument:
		for c := n.firstChild; c != NoNode; c = d.node(c).nextSibling {
			d.collectText(c, sb)
		}
	}
}

// Closest walks up from id's ancestors (excluding id itself) looking for
// the nearest one matching sel.
func (d *Document) Closest(id NodeId, sel string) (NodeId, error) {
	cs, err := CompileSelector(sel)
	if err != nil {
		return NoNode, err
	}
	for cur := d.node(id).parent; cur != NoNode; cur = d.node(cur).parent {
		if d.node(cur).Kind == KindElement && d.matchesSelector(cur, cs) {
			return cur, nil
		}
	}
	return NoNode, nil
}
