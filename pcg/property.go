package pcg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Property is a named, string-encoded generator parameter. Set returns an
// error when the value does not parse; the previous value is kept.
type Property struct {
	Name string
	Get  func() string
	Set  func(string) error
}

// FindProperty returns the property named name from props.
func FindProperty(props []Property, name string) (Property, bool) {
	for _, p := range props {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

func floatProperty(name string, v *float64, changed func()) Property {
	return Property{
		Name: name,
		Get:  func() string { return formatFloat(*v) },
		Set: func(s string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return fmt.Errorf("pcg: property %s: %w", name, err)
			}
			*v = f
			changed()
			return nil
		},
	}
}

func intProperty(name string, v *int, changed func()) Property {
	return Property{
		Name: name,
		Get:  func() string { return strconv.Itoa(*v) },
		Set: func(s string) error {
			i, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("pcg: property %s: %w", name, err)
			}
			*v = i
			changed()
			return nil
		},
	}
}

func vec3Property(name string, v *mgl64.Vec3, changed func()) Property {
	return Property{
		Name: name,
		Get:  func() string { return FormatVec3(*v) },
		Set: func(s string) error {
			p, err := ParseVec3(s)
			if err != nil {
				return fmt.Errorf("pcg: property %s: %w", name, err)
			}
			*v = p
			changed()
			return nil
		},
	}
}

// FormatVec3 encodes v as "x y z".
func FormatVec3(v mgl64.Vec3) string {
	return formatFloat(v[0]) + " " + formatFloat(v[1]) + " " + formatFloat(v[2])
}

// ParseVec3 decodes a "x y z" string.
func ParseVec3(s string) (mgl64.Vec3, error) {
	var v mgl64.Vec3
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return v, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return v, err
		}
		v[i] = x
	}
	return v, nil
}

// formatVec3List encodes points as "x y z, x y z, ...".
func formatVec3List(pts []mgl64.Vec3) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = FormatVec3(p)
	}
	return strings.Join(parts, ", ")
}

func parseVec3List(s string) ([]mgl64.Vec3, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]mgl64.Vec3, 0, len(parts))
	for _, part := range parts {
		v, err := ParseVec3(part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
