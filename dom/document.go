package dom

import "fmt"

// DocumentState tracks where a Document sits in its build/query lifecycle.
// Transitions only move forward: Building -> Queryable -> Sealed. Parse
// and ParseFragment return Queryable Documents; Seal moves one to Sealed,
// and calling Seal again is a no-op. No method checks the state, and
// Queryable and Sealed Documents behave identically.
type DocumentState uint8

const (
	StateBuilding DocumentState = iota
	StateQueryable
	StateSealed
)

// Document owns a complete parsed tree: its Arena, Interner, source
// buffer, and the secondary indices (id-index, class-index) that make
// ID/class selector queries O(1)/O(k) instead of a full tree walk.
type Document struct {
	arena    *Arena
	interner *Interner
	input    string // original source; StrRef with source==srcInput slices this
	sideBuf  []byte // arena-owned string storage; StrRef with source==srcArena slices this

	overflowAttrs [][]attrSlot // indexed by Node.overflow for elements with > inlineAttrs attributes

	root  NodeId
	state DocumentState

	quirks QuirksMode

	idIndex    map[string]NodeId   // first-writer-wins, per spec
	classIndex map[string][]NodeId // document-order NodeId lists per class token

	titleCache  string
	titleCached bool

	warnings []string

	cfg Config
}

// QuirksMode mirrors the three HTML5 document compliance modes. The tree
// builder sets Quirks when the doctype name is not "html"; a document
// without a doctype stays NoQuirks, and LimitedQuirks is never assigned.
// The mode is held on the Document; no exported method returns it.
type QuirksMode uint8

const (
	NoQuirks QuirksMode = iota
	Quirks
	LimitedQuirks
)

func newDocument(input string, cfg Config) *Document {
	doc := &Document{
		arena:      newArena(len(input)),
		interner:   newInterner(),
		input:      input,
		sideBuf:    make([]byte, 0, len(input)/8),
		root:       rootNodeId,
		state:      StateBuilding,
		idIndex:    make(map[string]NodeId),
		classIndex: make(map[string][]NodeId),
		cfg:        cfg,
	}
	return doc
}

// Root returns the NodeId of the document root. The root itself has
// Kind == KindDocument and is never matched by any selector; it exists
// purely as the anchor for the top-level <html> element (and, for
// fragment parses, the fragment's top-level nodes).
func (d *Document) Root() NodeId {
	return d.root
}

// State reports the Document's current lifecycle state.
func (d *Document) State() DocumentState {
	return d.state
}

// Warnings returns the recoverable parse issues collected while building
// this Document. The only issue recorded is a duplicate id in non-strict
// mode; other recovered markup adds no warning.
func (d *Document) Warnings() []string {
	return d.warnings
}

func (d *Document) warn(format string, args ...any) {
	d.warnings = append(d.warnings, fmt.Sprintf(format, args...))
}

// node resolves a NodeId to its backing *Node. Panics when id is outside
// this Document's arena. NodeId is only unique within the Document that
// allocated it, so an in-range id from a different Document resolves to
// an unrelated node instead of panicking.
func (d *Document) node(id NodeId) *Node {
	return d.arena.get(id)
}

// sliceStr resolves a StrRef against the Document's input/side buffers.
func (d *Document) sliceStr(r StrRef) string {
	switch r.source {
	case srcArena:
		return string(d.sideBuf[r.start:r.end])
	default:
		return d.input[r.start:r.end]
	}
}

// internSide copies s into the side buffer and returns a StrRef pointing
// at the copy. Used for synthesized or normalized text (e.g. decoded
// entities) that can't simply slice the original input.
func (d *Document) internSide(s string) StrRef {
	start := uint32(len(d.sideBuf))
	d.sideBuf = append(d.sideBuf, s...)
	end := uint32(len(d.sideBuf))
	return StrRef{start: start, end: end, source: srcArena}
}

// borrowInput returns a StrRef slicing the original input buffer directly,
// with no copy.
func (d *Document) borrowInput(start, end int) StrRef {
	return StrRef{start: uint32(start), end: uint32(end), source: srcInput}
}

// seal finalizes the Document: Building -> Queryable. The tree builder
// invokes this once tokenization completes; the exported Seal performs
// the further Queryable -> Sealed step.
func (d *Document) seal() {
	if d.state == StateBuilding {
		d.state = StateQueryable
	}
}

// Seal moves a Queryable Document to Sealed. Idempotent.
func (d *Document) Seal() {
	if d.state == StateQueryable {
		d.state = StateSealed
	}
}
