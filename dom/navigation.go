package dom

// Parent returns id's parent, or NoNode for the root.
func (d *Document) Parent(id NodeId) NodeId { return d.node(id).parent }

// Children returns id's immediate element children in document order.
func (d *Document) Children(id NodeId) []NodeId {
	var out []NodeId
	n := d.node(id)
	for c := n.firstChild; c != NoNode; c = d.node(c).nextSibling {
		if d.node(c).Kind == KindElement {
			out = append(out, c)
		}
	}
	return out
}

// ChildNodes returns every immediate child (element, text, and comment)
// in document order, mirroring a browser DOM's childNodes rather than
// children.
func (d *Document) ChildNodes(id NodeId) []NodeId {
	var out []NodeId
	n := d.node(id)
	for c := n.firstChild; c != NoNode; c = d.node(c).nextSibling {
		out = append(out, c)
	}
	return out
}

// NextSibling / PrevSibling return the immediate sibling, element or not.
func (d *Document) NextSibling(id NodeId) NodeId { return d.node(id).nextSibling }
func (d *Document) PrevSibling(id NodeId) NodeId { return d.node(id).prevSibling }

// NextElementSibling / PrevElementSibling skip over text/comment nodes.
func (d *Document) NextElementSibling(id NodeId) NodeId {
	for s := d.node(id).nextSibling; s != NoNode; s = d.node(s).nextSibling {
		if d.node(s).Kind == KindElement {
			return s
		}
	}
	return NoNode
}

func (d *Document) PrevElementSibling(id NodeId) NodeId {
	return d.prevElementSibling(id)
}

// Ancestors returns id's ancestor chain starting with its immediate
// parent and ending at (but not including) the document root.
func (d *Document) Ancestors(id NodeId) []NodeId {
	var out []NodeId
	for p := d.node(id).parent; p != NoNode; p = d.node(p).parent {
		out = append(out, p)
	}
	return out
}

// Descendants returns every descendant of id in document (pre-order)
// order, elements, text, and comments alike.
func (d *Document) Descendants(id NodeId) []NodeId {
	var out []NodeId
	n := d.node(id)
	for c := n.firstChild; c != NoNode; c = d.node(c).nextSibling {
		out = append(out, c)
		out = append(out, d.Descendants(c)...)
	}
	return out
}

// DescendantsElements returns id's element descendants in pre-order,
// skipping text and comment nodes.
func (d *Document) DescendantsElements(id NodeId) []NodeId {
	all := d.Descendants(id)
	out := all[:0]
	for _, n := range all {
		if d.node(n).Kind == KindElement {
			out = append(out, n)
		}
	}
	return out
}

// NextElementSiblings returns id's following element siblings in document
// order.
func (d *Document) NextElementSiblings(id NodeId) []NodeId {
	var out []NodeId
	for s := d.NextElementSibling(id); s != NoNode; s = d.NextElementSibling(s) {
		out = append(out, s)
	}
	return out
}

// PrevElementSiblings returns id's preceding element siblings, nearest
// first (reverse document order).
func (d *Document) PrevElementSiblings(id NodeId) []NodeId {
	var out []NodeId
	for s := d.PrevElementSibling(id); s != NoNode; s = d.PrevElementSibling(s) {
		out = append(out, s)
	}
	return out
}

// SiblingsElements returns every element sibling of id (excluding id
// itself) in document order.
func (d *Document) SiblingsElements(id NodeId) []NodeId {
	if id == d.root {
		return nil
	}
	parent := d.node(id).parent
	var out []NodeId
	for _, c := range d.Children(parent) {
		if c != id {
			out = append(out, c)
		}
	}
	return out
}

// TextNodes returns id's direct-child text runs in document order,
// verbatim (no whitespace normalization), as opposed to Text's normalized
// concatenation of all descendant text.
func (d *Document) TextNodes(id NodeId) []string {
	var out []string
	n := d.node(id)
	for c := n.firstChild; c != NoNode; c = d.node(c).nextSibling {
		if d.node(c).Kind == KindText {
			out = append(out, d.sliceStr(d.node(c).data))
		}
	}
	return out
}

// Kind reports the NodeKind of id.
func (d *Document) Kind(id NodeId) NodeKind { return d.node(id).Kind }

// TagName returns the lowercase tag name of an element node, or "" for
// non-element nodes.
func (d *Document) TagName(id NodeId) string {
	n := d.node(id)
	if n.Kind != KindElement {
		return ""
	}
	if n.tag != TagOther {
		return tagName(n.tag)
	}
	return d.interner.resolve(n.tagName)
}

// Name is an alias for TagName, matching the element-handle accessor
// naming used elsewhere in this package's public surface.
func (d *Document) Name(id NodeId) string { return d.TagName(id) }

// TagID returns the element's static TagId (TagOther for tags outside
// the closed known-tag set).
func (d *Document) TagID(id NodeId) TagId {
	n := d.node(id)
	if n.Kind != KindElement {
		return TagId(0)
	}
	return n.tag
}

// ID returns the element's id attribute value and whether it has one.
func (d *Document) ID(id NodeId) (string, bool) {
	n := d.node(id)
	if n.Kind != KindElement || !n.hasElemID {
		return "", false
	}
	return d.sliceStr(n.elemID), true
}

// ClassList returns the element's class tokens in document order.
func (d *Document) ClassList(id NodeId) []string {
	n := d.node(id)
	if n.Kind != KindElement {
		return nil
	}
	out := make([]string, len(n.classes))
	for i, h := range n.classes {
		out[i] = d.interner.resolve(h)
	}
	return out
}

// HasClass reports whether the element carries the given class token.
func (d *Document) HasClass(id NodeId, class string) bool {
	n := d.node(id)
	if n.Kind != KindElement {
		return false
	}
	return d.elementHasClass(n, class)
}

// Attr returns the named attribute's value on an element node.
func (d *Document) Attr(id NodeId, name string) (string, bool) {
	n := d.node(id)
	if n.Kind != KindElement {
		return "", false
	}
	return attributesOf(d, n).Get(name)
}

// Attrs returns the ordered attribute view for an element node.
func (d *Document) Attrs(id NodeId) Attributes {
	return attributesOf(d, d.node(id))
}

// CommentData / TextData return the raw character data of comment and
// text nodes respectively; "" for any other Kind.
func (d *Document) CommentData(id NodeId) string {
	n := d.node(id)
	if n.Kind != KindComment {
		return ""
	}
	return d.sliceStr(n.data)
}

func (d *Document) TextData(id NodeId) string {
	n := d.node(id)
	if n.Kind != KindText {
		return ""
	}
	return d.sliceStr(n.data)
}
