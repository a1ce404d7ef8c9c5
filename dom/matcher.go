package dom

import "strings"

// matchesCompound reports whether node satisfies step's own constraints
// (tag/id/classes/attrs/pseudo), ignoring combinators and ancestry — the
// right-to-left walk in matchesSelector is what applies the combinator.
func (d *Document) matchesCompound(id NodeId, step *compoundStep) bool {
	n := d.node(id)
	if n.Kind != KindElement {
		return false
	}
	if step.tag != "" {
		if step.tagKnown {
			if n.tag != step.tagID {
				return false
			}
		} else if !matchesTagName(d, n, step.tag) {
			return false
		}
	}
	if step.id != "" {
		if !n.hasElemID || d.sliceStr(n.elemID) != step.id {
			return false
		}
	}
	for _, want := range step.classes {
		if !d.elementHasClass(n, want) {
			return false
		}
	}
	for _, pred := range step.attrs {
		if !d.matchesAttr(n, pred) {
			return false
		}
	}
	if step.pseudo != pseudoNone {
		if !d.matchesPseudo(id, n, step) {
			return false
		}
	}
	return true
}

func (d *Document) elementHasClass(n *Node, class string) bool {
	h, ok := d.interner.lookup(class)
	if !ok {
		return false
	}
	for _, c := range n.classes {
		if c == h {
			return true
		}
	}
	return false
}

func (d *Document) matchesAttr(n *Node, pred attrPredicate) bool {
	attrs := attributesOf(d, n)
	val, ok := attrs.Get(pred.name)
	if !ok {
		return false
	}
	switch pred.op {
	case attrOpPresent:
		return true
	case attrOpEquals:
		return val == pred.val
	case attrOpIncludes:
		for _, tok := range strings.Fields(val) {
			if tok == pred.val {
				return true
			}
		}
		return false
	case attrOpPrefix:
		return strings.HasPrefix(val, pred.val)
	case attrOpSuffix:
		return strings.HasSuffix(val, pred.val)
	case attrOpSubstr:
		return strings.Contains(val, pred.val)
	}
	return false
}

func (d *Document) matchesPseudo(id NodeId, n *Node, step *compoundStep) bool {
	switch step.pseudo {
	case pseudoFirstChild:
		return d.elementIndexAmongSiblings(id) == 0
	case pseudoLastChild:
		return d.NextElementSibling(id) == NoNode
	case pseudoEmpty:
		return d.isEmptyElement(n)
	case pseudoNthChild:
		idx := d.elementIndexAmongSiblings(id) + 1 // 1-based per CSS
		return nthMatches(step.nthA, step.nthB, idx)
	case pseudoNot:
		return !d.matchesSelector(id, step.notInner)
	}
	return true
}

// isEmptyElement reports whether n has no element children and no
// non-whitespace text children; comments and whitespace-only text never
// count against :empty.
func (d *Document) isEmptyElement(n *Node) bool {
	for c := n.firstChild; c != NoNode; c = d.node(c).nextSibling {
		child := d.node(c)
		switch child.Kind {
		case KindElement:
			return false
		case KindText:
			if strings.TrimSpace(d.sliceStr(child.data)) != "" {
				return false
			}
		}
	}
	return true
}

// elementIndexAmongSiblings returns id's zero-based position among its
// parent's element children (text/comment siblings do not count).
func (d *Document) elementIndexAmongSiblings(id NodeId) int {
	n := d.node(id)
	if id == d.root {
		return 0
	}
	idx := 0
	parent := d.node(n.parent)
	for c := parent.firstChild; c != NoNode; c = d.node(c).nextSibling {
		if c == id {
			return idx
		}
		if d.node(c).Kind == KindElement {
			idx++
		}
	}
	return idx
}

func nthMatches(a, b, idx int) bool {
	if a == 0 {
		return idx == b
	}
	diff := idx - b
	if a > 0 {
		return diff >= 0 && diff%a == 0
	}
	return diff <= 0 && diff%a == 0
}

// matchesSelector walks a CompiledSelector's steps right-to-left from a
// candidate node, per spec.md's matching algorithm: the rightmost
// compound step is checked against the candidate itself, then each
// combinator to its left restricts the search to ancestors/preceding
// siblings as appropriate.
func (d *Document) matchesSelector(id NodeId, cs *CompiledSelector) bool {
	steps := cs.steps
	i := len(steps) - 1
	if i < 0 {
		return false
	}
	if !d.matchesCompound(id, &steps[i]) {
		return false
	}
	return d.matchesAncestors(id, steps, i)
}

// matchesAncestors checks that steps[0..i] (all but the rightmost, which
// was already checked by the caller) are satisfied by some chain of
// ancestors/siblings of candidate, walking left.
func (d *Document) matchesAncestors(candidate NodeId, steps []compoundStep, i int) bool {
	if i == 0 {
		return true
	}
	comb := steps[i].comb
	prevStepIdx := i - 1
	switch comb {
	case combChild:
		parent := d.node(candidate).parent
		if parent == NoNode || d.node(parent).Kind != KindElement {
			return false
		}
		if !d.matchesCompound(parent, &steps[prevStepIdx]) {
			return false
		}
		return d.matchesAncestors(parent, steps, prevStepIdx)
	case combDescendant:
		for anc := d.node(candidate).parent; anc != NoNode; anc = d.node(anc).parent {
			if d.node(anc).Kind != KindElement {
				continue
			}
			if d.matchesCompound(anc, &steps[prevStepIdx]) && d.matchesAncestors(anc, steps, prevStepIdx) {
				return true
			}
		}
		return false
	case combAdjacent:
		sib := d.prevElementSibling(candidate)
		if sib == NoNode {
			return false
		}
		if !d.matchesCompound(sib, &steps[prevStepIdx]) {
			return false
		}
		return d.matchesAncestors(sib, steps, prevStepIdx)
	case combGeneralSib:
		for sib := d.prevElementSibling(candidate); sib != NoNode; sib = d.prevElementSibling(sib) {
			if d.matchesCompound(sib, &steps[prevStepIdx]) && d.matchesAncestors(sib, steps, prevStepIdx) {
				return true
			}
		}
		return false
	}
	return false
}

func (d *Document) prevElementSibling(id NodeId) NodeId {
	for sib := d.node(id).prevSibling; sib != NoNode; sib = d.node(sib).prevSibling {
		if d.node(sib).Kind == KindElement {
			return sib
		}
	}
	return NoNode
}
