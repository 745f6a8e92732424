// Package pcg builds geometry from a tree of procedural generator nodes.
//
// A graph is a tree of [Node] values. Each node either groups its children
// or carries a [Generator] (box, grid, sphere, connect). Among siblings at
// most one child is final; [Node.Play] evaluates the final path into a
// caller-owned [Data] buffer:
//
//	root := pcg.NewNode("root")
//	box, n := pcg.NewBox("box")
//	box.SetSize(mgl64.Vec3{2, 1, 1})
//	root.AddChild(n)
//	n.SetFinal(true)
//
//	var data pcg.Data
//	if root.IsDirty() {
//		data.Reset()
//		root.Play(&data)
//	}
//
// Graphs persist as XML ([Save], [Load]) and can be reloaded when a
// [Watcher] reports a change.
package pcg
