package dom

// knownTags is the closed set of HTML5 tag names given a static TagId, so
// tag comparisons on common markup reduce to integer equality instead of
// string comparison or a hash lookup. Order defines the TagId values;
// TagOther is reserved for anything outside this set (and any such name is
// additionally interned via NameHandle, see Interner).
//
// The list covers metadata, sectioning, grouping, text-level, edit, embedded,
// table, form, and interactive content elements from the HTML5 spec (roughly
// 113 entries, matching spec.md's "approximately 113" tag budget).
var knownTags = [...]string{
	"a", "abbr", "address", "area", "article", "aside", "audio",
	"b", "base", "bdi", "bdo", "blockquote", "body", "br", "button",
	"canvas", "caption", "cite", "code", "col", "colgroup",
	"data", "datalist", "dd", "del", "details", "dfn", "dialog", "div", "dl", "dt",
	"em", "embed",
	"fieldset", "figcaption", "figure", "footer", "form",
	"h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "hgroup", "hr", "html",
	"i", "iframe", "img", "input", "ins",
	"kbd",
	"label", "legend", "li", "link",
	"main", "map", "mark", "menu", "meta", "meter",
	"nav", "noscript",
	"object", "ol", "optgroup", "option", "output",
	"p", "param", "picture", "pre", "progress",
	"q",
	"rp", "rt", "ruby",
	"s", "samp", "script", "search", "section", "select", "slot", "small",
	"source", "span", "strong", "style", "sub", "summary", "sup",
	"table", "tbody", "td", "template", "textarea", "tfoot", "th", "thead",
	"time", "title", "tr", "track",
	"u", "ul",
	"var", "video",
	"wbr",
	"svg", "math",
}

// Reserved TagIds for tags that need special-cased tree-construction or
// matcher behavior. Kept as named constants for readability even though
// their numeric values are derived from knownTags' order.
var (
	tagIndex   = make(map[string]TagId, len(knownTags))
	tagNameOf  = make([]string, len(knownTags)+1)
	TagOther   TagId // assigned below, one past the last known tag
	TagHTML    TagId
	TagHead    TagId
	TagBody    TagId
	TagTable   TagId
	TagTr      TagId
	TagTd      TagId
	TagTh      TagId
	TagTbody   TagId
	TagThead   TagId
	TagTfoot   TagId
	TagSelect  TagId
	TagScript  TagId
	TagStyle   TagId
	TagTitle   TagId
	TagTemplate TagId
)

func init() {
	for i, name := range knownTags {
		id := TagId(i + 1) // 0 is reserved as "no tag / unknown"
		tagIndex[name] = id
		tagNameOf[id] = name
	}
	TagOther = TagId(len(knownTags) + 1)
	TagHTML = tagIndex["html"]
	TagHead = tagIndex["head"]
	TagBody = tagIndex["body"]
	TagTable = tagIndex["table"]
	TagTr = tagIndex["tr"]
	TagTd = tagIndex["td"]
	TagTh = tagIndex["th"]
	TagTbody = tagIndex["tbody"]
	TagThead = tagIndex["thead"]
	TagTfoot = tagIndex["tfoot"]
	TagSelect = tagIndex["select"]
	TagScript = tagIndex["script"]
	TagStyle = tagIndex["style"]
	TagTitle = tagIndex["title"]
	TagTemplate = tagIndex["template"]
}

// lookupTag returns the static TagId for a known tag name, or (0, false)
// for anything outside the closed set; callers reassign the TagId to
// TagOther and intern the name on a false result.
func lookupTag(name string) (TagId, bool) {
	id, ok := tagIndex[name]
	return id, ok
}

// tagName resolves a TagId back to its string name. Only valid for TagIds
// returned by lookupTag; TagOther carries its name via NameHandle instead
// and must be resolved through the Document's interner.
func tagName(id TagId) string {
	if int(id) < len(tagNameOf) {
		return tagNameOf[id]
	}
	return ""
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// rawTextElements never receive child elements from the tokenizer's point
// of view; their text content is tokenized verbatim by the x/net/html
// tokenizer itself, so the adapter just appends whatever text tokens arrive.
var rawTextElements = map[string]bool{
	"script": true, "style": true, "textarea": true, "title": true,
}
