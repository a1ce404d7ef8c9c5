package dom

// Attributes is an ordered view over one element's attribute list,
// preserving source order the way the teacher's OrderedMap preserves
// insertion order (map.go: keys []string + values map[string]any). Here
// the backing storage is the element's inline attrSlot array plus, for
// elements with more than inlineAttrs attributes, the Document's overflow
// slice — Attributes just presents both as one ordered sequence.
type Attributes struct {
	doc   *Document
	inline []attrSlot
	extra  []attrSlot
}

// attributesOf builds the ordered view for an element node.
func attributesOf(doc *Document, n *Node) Attributes {
	inline := n.attrs[:n.numAttrs]
	var extra []attrSlot
	if n.overflow >= 0 {
		extra = doc.overflowAttrs[n.overflow]
	}
	return Attributes{doc: doc, inline: inline, extra: extra}
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a.inline) + len(a.extra)
}

// slot returns the i-th attrSlot in document order.
func (a Attributes) slot(i int) attrSlot {
	if i < len(a.inline) {
		return a.inline[i]
	}
	return a.extra[i-len(a.inline)]
}

// Get returns the value of the named attribute and whether it was present.
// Lookup is linear, matching typical per-element attribute counts (O(1)-4
// in practice); a hash map per element would cost more than it saves.
func (a Attributes) Get(name string) (string, bool) {
	h, ok := a.doc.interner.lookup(name)
	if !ok {
		return "", false
	}
	for i := 0; i < a.Len(); i++ {
		s := a.slot(i)
		if s.name == h {
			return a.doc.sliceStr(s.value), true
		}
	}
	return "", false
}

// Has reports whether the named attribute is present.
func (a Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Keys returns attribute names in document order.
func (a Attributes) Keys() []string {
	out := make([]string, a.Len())
	for i := 0; i < a.Len(); i++ {
		out[i] = a.doc.interner.resolve(a.slot(i).name)
	}
	return out
}

// Each calls fn for every attribute in document order.
func (a Attributes) Each(fn func(name, value string)) {
	for i := 0; i < a.Len(); i++ {
		s := a.slot(i)
		fn(a.doc.interner.resolve(s.name), a.doc.sliceStr(s.value))
	}
}

// appendAttr adds one attribute to an element node during tree
// construction, spilling to the Document's overflow storage once the
// inline capacity is exhausted. Duplicate attribute names are dropped
// (first occurrence wins), matching HTML5 tree-construction semantics.
func (d *Document) appendAttr(n *Node, name NameHandle, value StrRef) {
	for i := 0; i < int(n.numAttrs); i++ {
		if n.attrs[i].name == name {
			return
		}
	}
	if n.overflow >= 0 {
		for _, s := range d.overflowAttrs[n.overflow] {
			if s.name == name {
				return
			}
		}
	}
	slot := attrSlot{name: name, value: value}
	if int(n.numAttrs) < inlineAttrs {
		n.attrs[n.numAttrs] = slot
		n.numAttrs++
		return
	}
	if n.overflow < 0 {
		n.overflow = int32(len(d.overflowAttrs))
		d.overflowAttrs = append(d.overflowAttrs, nil)
	}
	d.overflowAttrs[n.overflow] = append(d.overflowAttrs[n.overflow], slot)
}
