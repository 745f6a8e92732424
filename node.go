package sapling

import "github.com/go-gl/mathgl/mgl64"

// nodeIDCounter is a plain counter; sapling is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a scene graph element with a local transform. A single flat
// struct is used for all node types; Type selects per-frame behavior.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Enabled nodes (and their subtrees) take part in Scene.Update.
	Enabled bool

	// Zoom is written into the 2D camera by NodeTypeCamera2D nodes.
	Zoom float64

	// Metadata
	UserData any

	local          Transform
	world          Transform
	transformDirty bool

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Enabled = true
	n.Zoom = 1
	n.local = IdentityTransform
	n.world = IdentityTransform
	n.transformDirty = true
}

// NewContainer creates a group node with no behavior of its own.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewCamera2D creates a node that drives the scene's 2D camera while the
// scene runs in game mode.
func NewCamera2D(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeCamera2D}
	nodeDefaults(n)
	return n
}

// NewCamera3D creates a node that drives the scene's 3D camera while the
// scene runs in game mode.
func NewCamera3D(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeCamera3D}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("sapling: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("sapling: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("sapling: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("sapling: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(n.children) {
		panic("sapling: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("sapling: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index, or nil if out of range.
func (n *Node) ChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// FindChild returns the first direct child with the given name, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Transform ---

// Transform returns the local transform.
func (n *Node) Transform() Transform {
	return n.local
}

// SetTransform replaces the local transform and marks the node dirty.
func (n *Node) SetTransform(t Transform) {
	n.local = t
	n.local.SetRotation(t.Rot)
	n.transformDirty = true
}

// SetPosition sets the local position and marks the node dirty.
func (n *Node) SetPosition(pos mgl64.Vec3) {
	n.local.Pos = pos
	n.transformDirty = true
}

// SetScale sets the local scale and marks the node dirty.
func (n *Node) SetScale(scale mgl64.Vec3) {
	n.local.Scale = scale
	n.transformDirty = true
}

// SetRotation sets the local rotation and marks the node dirty.
func (n *Node) SetRotation(q mgl64.Quat) {
	n.local.SetRotation(q)
	n.transformDirty = true
}

// Translate moves the node by a parent-space offset.
func (n *Node) Translate(offset mgl64.Vec3) {
	n.SetPosition(n.local.Pos.Add(offset))
}

// MarkDirty forces recomputation of the world transform on the next update.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// WorldTransform returns the world transform computed by the last
// UpdateWorldTransform pass.
func (n *Node) WorldTransform() Transform {
	return n.world
}

// WorldPosition returns the world-space position.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.world.Pos
}

// WorldOrientation returns the world-space rotation.
func (n *Node) WorldOrientation() mgl64.Quat {
	return n.world.Rot
}

// UpdateWorldTransform refreshes world transforms for n's subtree, taking
// the parent's current world transform as the base.
func (n *Node) UpdateWorldTransform() {
	parent := IdentityTransform
	if n.Parent != nil {
		parent = n.Parent.world
	}
	updateWorldTransform(n, parent, true)
}

// updateWorldTransform recomputes world transforms where dirty.
// parentRecomputed forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parent Transform, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.world = parent.Mul(n.local)
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.world, recompute)
	}
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
