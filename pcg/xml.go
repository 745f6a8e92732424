package pcg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// DocumentVersion is written to the root element of saved graphs.
const DocumentVersion = 1

// Reserved node attributes. Generator properties use their own names.
const (
	attrClass    = "class"
	attrName     = "name"
	attrPath     = "path"
	attrX        = "x"
	attrY        = "y"
	attrFinal    = "final"
	attrSelected = "selected"
	attrLink     = "link"
)

// ErrNoRoot is returned by Load when the document contains no node.
var ErrNoRoot = errors.New("pcg: document has no root node")

type document struct {
	XMLName xml.Name `xml:"pgraph"`
	Version int      `xml:"version,attr"`
	Root    *Element `xml:"node"`
}

// Element is the persisted form of one node: its class, name, flags and
// properties as attributes, followed by connections, channels and child
// elements.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr       `xml:",any,attr"`
	Connects []connectElement `xml:"connect"`
	Channels []channelElement `xml:"channel"`
	Children []*Element       `xml:"node"`
}

type connectElement struct {
	Signal string `xml:"signal,attr"`
	Target string `xml:"target,attr"`
	Slot   string `xml:"slot,attr"`
}

type channelElement struct {
	Name string `xml:"name,attr"`
	Expr string `xml:"expr,attr"`
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Element) setAttr(name, value string) {
	e.Attrs = append(e.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// MarshalNode converts n and its subtree to elements. Children of link
// nodes are omitted; the link target owns them.
func MarshalNode(n *Node) *Element {
	e := &Element{XMLName: xml.Name{Local: "node"}}
	e.setAttr(attrClass, n.Class())
	e.setAttr(attrName, n.Name)
	e.setAttr(attrPath, n.Path())
	e.setAttr(attrX, formatFloat(n.Position[0]))
	e.setAttr(attrY, formatFloat(n.Position[1]))
	e.setAttr(attrFinal, strconv.FormatBool(n.final))
	e.setAttr(attrSelected, strconv.FormatBool(n.selected))
	e.setAttr(attrLink, strconv.FormatBool(n.link))
	if n.gen != nil {
		for _, p := range n.gen.Properties() {
			e.setAttr(p.Name, p.Get())
		}
	}
	for _, c := range n.Connections {
		e.Connects = append(e.Connects, connectElement(c))
	}
	for _, ch := range n.Channels {
		e.Channels = append(e.Channels, channelElement(ch))
	}
	if n.link {
		return e
	}
	for _, c := range n.children {
		e.Children = append(e.Children, MarshalNode(c))
	}
	return e
}

// InstanceNodeTree builds a node tree from e. It returns nil when the
// element's class is not registered; that element's subtree is skipped.
// Flags, properties, connections and channels are applied only when the
// element carries a path attribute.
func InstanceNodeTree(e *Element) *Node {
	class, _ := e.Attr(attrClass)
	n := Create(class)
	if n == nil {
		logf("skipping unknown class %q", class)
		return nil
	}
	n.Name, _ = e.Attr(attrName)

	if _, ok := e.Attr(attrPath); ok {
		applyAttributes(n, e)
		for _, c := range e.Connects {
			n.Connections = append(n.Connections, Connection(c))
		}
		for _, ch := range e.Channels {
			n.Channels = append(n.Channels, Channel(ch))
		}
	}

	for _, ce := range e.Children {
		c := InstanceNodeTree(ce)
		if c == nil {
			continue
		}
		n.AddChild(c)
		if c.final {
			c.SetFinal(true)
		}
	}
	return n
}

func applyAttributes(n *Node, e *Element) {
	var props []Property
	if n.gen != nil {
		props = n.gen.Properties()
	}
	for _, a := range e.Attrs {
		v := a.Value
		switch a.Name.Local {
		case attrClass, attrName, attrPath:
		case attrX:
			n.Position[0] = parseFloatAttr(a.Name.Local, v)
		case attrY:
			n.Position[1] = parseFloatAttr(a.Name.Local, v)
		case attrFinal:
			n.final = parseBoolAttr(a.Name.Local, v)
		case attrSelected:
			n.selected = parseBoolAttr(a.Name.Local, v)
		case attrLink:
			n.link = parseBoolAttr(a.Name.Local, v)
		default:
			p, ok := FindProperty(props, a.Name.Local)
			if !ok {
				logf("%s: unknown property %q", n.Class(), a.Name.Local)
				continue
			}
			if err := p.Set(v); err != nil {
				logf("%v", err)
			}
		}
	}
}

func parseFloatAttr(name, v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logf("attribute %s: %v", name, err)
	}
	return f
}

func parseBoolAttr(name, v string) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		logf("attribute %s: %v", name, err)
	}
	return b
}

// Save writes the graph rooted at root as an XML document.
func Save(w io.Writer, root *Node) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("pcg: save: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	doc := document{Version: DocumentVersion, Root: MarshalNode(root)}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("pcg: save: %w", err)
	}
	return enc.Close()
}

// Load reads a graph document and instantiates its node tree.
func Load(r io.Reader) (*Node, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("pcg: load: %w", err)
	}
	if doc.Root == nil {
		return nil, ErrNoRoot
	}
	n := InstanceNodeTree(doc.Root)
	if n == nil {
		class, _ := doc.Root.Attr(attrClass)
		return nil, fmt.Errorf("pcg: load: unknown root class %q", class)
	}
	return n, nil
}

// SaveFile writes the graph to path.
func SaveFile(path string, root *Node) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pcg: save: %w", err)
	}
	if err := Save(f, root); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads a graph document from path.
func LoadFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pcg: load: %w", err)
	}
	defer f.Close()
	return Load(f)
}
