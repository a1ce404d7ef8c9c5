package dom

import "encoding/json"

// jsonNode is the debug/export tree shape produced by DumpJSON; it is
// intentionally a plain value type, not the Node arena representation,
// the way the teacher's export.go converts an OrderedMap to JSON via its
// own MarshalJSON rather than exposing xml.Decoder internals.
type jsonNode struct {
	Kind     string            `json:"kind"`
	Tag      string            `json:"tag,omitempty"`
	ID       string            `json:"id,omitempty"`
	Classes  []string          `json:"classes,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []jsonNode        `json:"children,omitempty"`
}

// DumpJSON renders id's subtree (or the whole document when id ==
// doc.Root()) as an indented JSON debug dump, for CLI output and test
// fixtures. It is not meant as a round-trippable serialization format;
// OuterHTML/ToHTML are the faithful HTML serializers.
func (d *Document) DumpJSON(id NodeId) (string, error) {
	tree := d.toJSONNode(id)
	b, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (d *Document) toJSONNode(id NodeId) jsonNode {
	n := d.node(id)
	switch n.Kind {
	case KindText:
		return jsonNode{Kind: "text", Text: d.sliceStr(n.data)}
	case KindComment:
		return jsonNode{Kind: "comment", Text: d.sliceStr(n.data)}
	case KindElement:
		jn := jsonNode{Kind: "element", Tag: d.TagName(id)}
		if eid, ok := d.ID(id); ok {
			jn.ID = eid
		}
		jn.Classes = d.ClassList(id)
		attrs := attributesOf(d, n)
		if attrs.Len() > 0 {
			jn.Attrs = make(map[string]string, attrs.Len())
			attrs.Each(func(name, value string) { jn.Attrs[name] = value })
		}
		for c := n.firstChild; c != NoNode; c = d.node(c).nextSibling {
			jn.Children = append(jn.Children, d.toJSONNode(c))
		}
		return jn
	default:
		var jn jsonNode
		jn.Kind = "document"
		for c := n.firstChild; c != NoNode; c = d.node(c).nextSibling {
			jn.Children = append(jn.Children, d.toJSONNode(c))
		}
		return jn
	}
}
