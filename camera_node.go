package sapling

// syncCamera3D copies the node's world pose into the shared 3D camera.
// The node is the source of truth; the camera is overwritten every frame.
func syncCamera3D(n *Node, cam *CameraMain) {
	rot := n.WorldOrientation()
	cam.SetPosition(n.WorldPosition())
	cam.SetDirection(rot.Rotate(Forward))
	cam.SetUp(rot.Rotate(AxisY))
}

// syncCamera2D copies the node's world pose into the shared 2D camera,
// keeping the camera's depth: 2D cameras do not control Z.
func syncCamera2D(n *Node, cam *CameraMain) {
	rot := n.WorldOrientation()
	pos := n.WorldPosition()
	pos[2] = cam.BasePosition()[2]
	cam.SetPosition(pos)
	cam.SetDirection(rot.Rotate(Forward))
	cam.SetUp(rot.Rotate(AxisY))
	cam.SetZoom(n.Zoom)
}
