package pcg

import "github.com/go-gl/mathgl/mgl64"

// Connection is a signal/slot link from a node to a target path.
type Connection struct {
	Signal string
	Target string
	Slot   string
}

// Channel binds a property to an expression evaluated by the host.
type Channel struct {
	Name string
	Expr string
}

// Generator gives a Node its evaluation behavior and serializable
// properties. A node without a generator is a plain group.
type Generator interface {
	// Class is the registry name used for persistence.
	Class() string
	// Play appends geometry for n to data. Implementations may call
	// n.PlayChildren to evaluate final children as well.
	Play(n *Node, data *Data)
	// Properties lists the generator's persisted parameters.
	Properties() []Property
}

// GroupClass is the class name of nodes without a generator.
const GroupClass = "PGNode"

// Node is an element of a procedural geometry graph. Children are kept in
// evaluation order; among siblings at most one is final, and only final
// children are evaluated by Play.
type Node struct {
	Name string
	// Position is the node's location in the graph editor.
	Position mgl64.Vec2

	Connections []Connection
	Channels    []Channel

	parent   *Node
	children []*Node
	gen      Generator

	final    bool
	selected bool
	link     bool
	dirty    bool
	freed    bool
}

// NewNode creates a plain group node.
func NewNode(name string) *Node {
	return &Node{Name: name, dirty: true}
}

// newGeneratorNode creates a node driven by gen.
func newGeneratorNode(name string, gen Generator) *Node {
	n := NewNode(name)
	n.gen = gen
	return n
}

// Class returns the node's registry class name.
func (n *Node) Class() string {
	if n.gen == nil {
		return GroupClass
	}
	return n.gen.Class()
}

// Generator returns the node's generator, or nil for a group node.
func (n *Node) Generator() Generator {
	return n.gen
}

// --- Tree manipulation ---

// AddChild appends child to this node's children. If child already has a
// parent, it is detached from it first. A final child stays final and
// clears the flag on its new siblings. Panics if child is nil or an
// ancestor of this node.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("pcg: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("pcg: adding child would create a cycle")
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	if child.final {
		for _, sib := range n.children {
			if sib != child {
				sib.final = false
			}
		}
	}
	n.MarkDirty()
}

// RemoveChild detaches child from this node. No-op if child is not a
// child of n.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			child.parent = nil
			n.MarkDirty()
			return
		}
	}
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child list in evaluation order. The returned slice
// MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at index, or nil if index is out of range.
func (n *Node) ChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// Path returns the slash-separated names from the root to n.
func (n *Node) Path() string {
	if n.parent == nil {
		return "/" + n.Name
	}
	return n.parent.Path() + "/" + n.Name
}

// Free detaches n from its parent and releases it and its whole subtree,
// children first. A freed node must not be used again.
func (n *Node) Free() {
	if n.freed {
		return
	}
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
	n.free()
}

func (n *Node) free() {
	for _, c := range n.children {
		c.parent = nil
		c.free()
	}
	n.children = nil
	n.gen = nil
	n.Connections = nil
	n.Channels = nil
	n.freed = true
}

// IsFreed reports whether Free has been called on n or an ancestor.
func (n *Node) IsFreed() bool {
	return n.freed
}

// --- Flags ---

// SetFinal marks n as the active child of its parent. Setting it clears
// the flag on every sibling. Marks n dirty.
func (n *Node) SetFinal(final bool) {
	if final && n.parent != nil {
		for _, sib := range n.parent.children {
			if sib != n {
				sib.final = false
			}
		}
	}
	n.final = final
	n.MarkDirty()
}

// IsFinal reports whether n is on the evaluation path of its parent.
func (n *Node) IsFinal() bool {
	return n.final
}

// FinalChild returns the final child, or nil.
func (n *Node) FinalChild() *Node {
	for _, c := range n.children {
		if c.final {
			return c
		}
	}
	return nil
}

// SetSelected sets the editor selection flag.
func (n *Node) SetSelected(selected bool) {
	n.selected = selected
}

// IsSelected reports the editor selection flag.
func (n *Node) IsSelected() bool {
	return n.selected
}

// SetLink marks n as a reference to external content. Children of link
// nodes are not written by Save.
func (n *Node) SetLink(link bool) {
	n.link = link
}

// IsLink reports whether n references external content.
func (n *Node) IsLink() bool {
	return n.link
}

// MarkDirty flags n and its ancestors as needing a new Play.
func (n *Node) MarkDirty() {
	for p := n; p != nil; p = p.parent {
		p.dirty = true
	}
}

// IsDirty reports whether n changed since its last Play.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// --- Evaluation ---

// Play evaluates n into data and clears its dirty flag. Group nodes
// evaluate their final children in order; generator nodes delegate to
// their generator.
func (n *Node) Play(data *Data) {
	if n.gen != nil {
		n.gen.Play(n, data)
	} else {
		n.PlayChildren(data)
	}
	n.dirty = false
}

// PlayChildren evaluates every final child in insertion order.
func (n *Node) PlayChildren(data *Data) {
	for _, c := range n.children {
		if c.final {
			c.Play(data)
		}
	}
}

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}
