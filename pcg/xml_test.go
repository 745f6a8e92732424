package pcg

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func buildGraph() *Node {
	root := NewNode("root")
	root.Position = mgl64.Vec2{10, 20}

	box, bn := NewBox("box")
	box.SetSize(mgl64.Vec3{2, 3, 4})
	bn.Connections = []Connection{{Signal: "changed", Target: "/root/sphere", Slot: "refresh"}}
	bn.Channels = []Channel{{Name: "size", Expr: "time * 2"}}

	sphere, sn := NewSphere("sphere")
	sphere.SetRadius(0.5)
	sphere.SetTessellation(6, 12)

	root.AddChild(bn)
	root.AddChild(sn)
	sn.SetFinal(true)
	sn.SetSelected(true)
	return root
}

func TestSaveLoadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Save(&buf, buildGraph()); err != nil {
		t.Fatal(err)
	}

	root, err := Load(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if root.Name != "root" || root.Position != (mgl64.Vec2{10, 20}) {
		t.Errorf("root = %q %v", root.Name, root.Position)
	}
	if root.NumChildren() != 2 {
		t.Fatalf("children = %d, want 2", root.NumChildren())
	}

	bn := root.ChildAt(0)
	box, ok := bn.Generator().(*Box)
	if !ok {
		t.Fatalf("child 0 class = %s, want %s", bn.Class(), BoxClass)
	}
	if box.Size != (mgl64.Vec3{2, 3, 4}) {
		t.Errorf("box size = %v", box.Size)
	}
	if len(bn.Connections) != 1 || bn.Connections[0].Slot != "refresh" {
		t.Errorf("connections = %v", bn.Connections)
	}
	if len(bn.Channels) != 1 || bn.Channels[0].Expr != "time * 2" {
		t.Errorf("channels = %v", bn.Channels)
	}
	if bn.IsFinal() {
		t.Error("box should not be final")
	}

	sn := root.ChildAt(1)
	sphere, ok := sn.Generator().(*Sphere)
	if !ok {
		t.Fatalf("child 1 class = %s, want %s", sn.Class(), SphereClass)
	}
	if sphere.Radius != 0.5 || sphere.Stacks != 6 || sphere.Sectors != 12 {
		t.Errorf("sphere = %+v", sphere)
	}
	if !sn.IsFinal() || !sn.IsSelected() {
		t.Error("sphere flags not restored")
	}
	if !root.IsDirty() {
		t.Error("loaded graph should need a Play")
	}
}

func TestSaveWritesTreePath(t *testing.T) {
	var buf bytes.Buffer
	if err := Save(&buf, buildGraph()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `path="/root/sphere"`) {
		t.Errorf("document missing tree path:\n%s", buf.String())
	}
}

func TestSaveLinkOmitsChildren(t *testing.T) {
	root := NewNode("root")
	link := NewNode("link")
	link.SetLink(true)
	link.AddChild(NewNode("hidden"))
	root.AddChild(link)

	e := MarshalNode(root)
	if len(e.Children) != 1 {
		t.Fatalf("root children = %d, want 1", len(e.Children))
	}
	if len(e.Children[0].Children) != 0 {
		t.Error("link node children should not be written")
	}
	if v, _ := e.Children[0].Attr(attrLink); v != "true" {
		t.Errorf("link attr = %q, want true", v)
	}
}

func TestLoadWithoutPathUsesDefaults(t *testing.T) {
	doc := `<pgraph version="1">
  <node class="PGNode" name="root">
    <node class="PGBox" name="box" size="5 5 5" final="true">
      <connect signal="a" target="b" slot="c"/>
    </node>
  </node>
</pgraph>`
	root, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	bn := root.ChildAt(0)
	if bn == nil || bn.Name != "box" {
		t.Fatal("box child missing")
	}
	if box := bn.Generator().(*Box); box.Size != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("size = %v, want default", box.Size)
	}
	if bn.IsFinal() {
		t.Error("flags should not apply without path")
	}
	if len(bn.Connections) != 0 {
		t.Error("connections should not apply without path")
	}
}

func TestLoadSkipsUnknownClass(t *testing.T) {
	doc := `<pgraph version="1">
  <node class="PGNode" name="root" path="/root">
    <node class="PGTorus" name="torus" path="/root/torus">
      <node class="PGBox" name="inner" path="/root/torus/inner"/>
    </node>
    <node class="PGGrid" name="grid" path="/root/grid" final="true"/>
  </node>
</pgraph>`
	root, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if root.NumChildren() != 1 {
		t.Fatalf("children = %d, want 1", root.NumChildren())
	}
	if root.ChildAt(0).Class() != GridClass {
		t.Errorf("child class = %s, want %s", root.ChildAt(0).Class(), GridClass)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", `<pgraph><node`},
		{"no root", `<pgraph version="1"></pgraph>`},
		{"unknown root", `<pgraph version="1"><node class="PGNope" name="x" path="/x"/></pgraph>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadEnforcesSingleFinal(t *testing.T) {
	doc := `<pgraph version="1">
  <node class="PGNode" name="root" path="/root">
    <node class="PGBox" name="a" path="/root/a" final="true"/>
    <node class="PGGrid" name="b" path="/root/b" final="true"/>
  </node>
</pgraph>`
	root, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if root.ChildAt(0).IsFinal() {
		t.Error("earlier final sibling should be cleared")
	}
	if root.FinalChild() != root.ChildAt(1) {
		t.Error("last final sibling should win")
	}
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.xml")
	if err := SaveFile(path, buildGraph()); err != nil {
		t.Fatal(err)
	}
	root, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var d Data
	root.Play(&d)
	// Final path is the 6x12 sphere.
	if len(d.Points) != 7*13 {
		t.Errorf("points = %d, want %d", len(d.Points), 7*13)
	}
}
