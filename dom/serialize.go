package dom

import "strings"

// escapeText escapes the characters unsafe in HTML text content. Mirrors
// the escaping shape of the teacher's c14n.go escapeText, adapted to
// HTML5's smaller required escape set (no \r rewriting; HTML text nodes
// don't need it the way XML canonicalization does).
func escapeText(s string) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// escapeAttr escapes an attribute value for serialization inside double
// quotes, the way the teacher's escapeAttr builds on escapeText.
func escapeAttr(s string) string {
	if !strings.ContainsAny(s, "&<>\"") {
		return s
	}
	s = escapeText(s)
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

// OuterHTML serializes id and its subtree back to an HTML string.
func (d *Document) OuterHTML(id NodeId) string {
	var sb strings.Builder
	d.serializeNode(&sb, id)
	return sb.String()
}

// InnerHTML serializes id's children, without id itself.
func (d *Document) InnerHTML(id NodeId) string {
	var sb strings.Builder
	n := d.node(id)
	for c := n.firstChild; c != NoNode; c = d.node(c).nextSibling {
		d.serializeNode(&sb, c)
	}
	return sb.String()
}

// ToHTML serializes the entire document from its root.
func (d *Document) ToHTML() string {
	var sb strings.Builder
	n := d.node(d.root)
	for c := n.firstChild; c != NoNode; c = d.node(c).nextSibling {
		d.serializeNode(&sb, c)
	}
	return sb.String()
}

func (d *Document) serializeNode(sb *strings.Builder, id NodeId) {
	n := d.node(id)
	switch n.Kind {
	case KindText:
		sb.WriteString(escapeText(d.sliceStr(n.data)))
	case KindComment:
		sb.WriteString("<!--")
		sb.WriteString(d.sliceStr(n.data))
		sb.WriteString("-->")
	case KindElement:
		name := d.TagName(id)
		sb.WriteByte('<')
		sb.WriteString(name)
		attributesOf(d, n).Each(func(attrName, value string) {
			sb.WriteByte(' ')
			sb.WriteString(attrName)
			sb.WriteString(`="`)
			sb.WriteString(escapeAttr(value))
			sb.WriteByte('"')
		})
		if voidElements[name] {
			sb.WriteString(" />")
			return
		}
		sb.WriteByte('>')
		for c := n.firstChild; c != NoNode; c = d.node(c).nextSibling {
			d.serializeNode(sb, c)
		}
		sb.WriteString("</")
		sb.WriteString(name)
		sb.WriteByte('>')
	}
}
