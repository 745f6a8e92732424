package pcg

import "sort"

// Factory creates an unnamed node of one class.
type Factory func() *Node

var registry = map[string]Factory{}

func init() {
	Register(GroupClass, func() *Node { return NewNode("") })
	Register(BoxClass, func() *Node { _, n := NewBox(""); return n })
	Register(GridClass, func() *Node { _, n := NewGrid(""); return n })
	Register(SphereClass, func() *Node { _, n := NewSphere(""); return n })
	Register(ConnectClass, func() *Node { _, n := NewConnect(""); return n })
}

// Register makes class available to Create and Load. Registering an
// existing class replaces its factory.
func Register(class string, f Factory) {
	if f == nil {
		panic("pcg: nil factory for " + class)
	}
	registry[class] = f
}

// Create instantiates a node of the given class, or returns nil if the
// class is not registered.
func Create(class string) *Node {
	f, ok := registry[class]
	if !ok {
		return nil
	}
	return f()
}

// Classes returns the registered class names in sorted order.
func Classes() []string {
	out := make([]string, 0, len(registry))
	for c := range registry {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
