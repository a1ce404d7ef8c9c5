package dom

// NodeId is a 32-bit index into a Document's Arena. Zero is reserved for the
// document root and is never allocated to any other node.
type NodeId uint32

// NoNode is the sentinel value for "no such node" in optional links
// (next/prev sibling, first/last child, parent of the root).
const NoNode NodeId = 0

// rootNodeId is the NodeId always assigned to the document root.
const rootNodeId NodeId = 0

// TagId is a small integer handle for one of the closed set of known HTML5
// tag names. Unknown/foreign tag names fall back to TagOther and carry a
// NameHandle instead.
type TagId uint16

// NameHandle is an interned handle for an attribute name or an unrecognized
// tag name.
type NameHandle uint32

// strRefSource tags whether a StrRef borrows from the original input buffer
// or from the arena's owned string side-buffer.
type strRefSource uint8

const (
	srcInput strRefSource = iota
	srcArena
)

// StrRef is either a borrowed (offset, length) slice of the original input
// buffer, or an (offset, length) slice of the arena's string side-buffer.
// It never owns memory itself.
type StrRef struct {
	start, end uint32
	source     strRefSource
}

func (r StrRef) Len() int { return int(r.end - r.start) }

// emptyStrRef is the zero-length reference used for absent text.
var emptyStrRef = StrRef{}
