package arch

import (
	"sort"

	"github.com/chazu/boxy/pkg/box"
	"github.com/chazu/boxy/pkg/geom"
)

// Part is one solid piece of generated geometry: an oriented box with
// optional oriented-box cutouts removed from it.
type Part struct {
	Name    string       `json:"name" yaml:"name"`
	Bounds  box.Bounds   `json:"bounds" yaml:"bounds"`
	Cutouts []box.Bounds `json:"cutouts,omitempty" yaml:"cutouts,omitempty"`
}

// Attributes are the values written back onto created geometry so it can
// be re-edited later. Pivot uses the stored numeric index.
type Attributes struct {
	CustomType Kind               `json:"custom_type" yaml:"custom_type"`
	Size       geom.Point3        `json:"size" yaml:"size"`
	Pivot      int                `json:"pivot" yaml:"pivot"`
	Rotation   geom.Point3        `json:"rotation" yaml:"rotation"`
	Params     map[string]float64 `json:"params,omitempty" yaml:"params,omitempty"`
	Labels     map[string]string  `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// ParamNames returns the numeric parameter names in sorted order.
func (a Attributes) ParamNames() []string {
	names := make([]string, 0, len(a.Params))
	for k := range a.Params {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Assembly is the output of a creator: the finished representation, its
// parts in world space, named reference points, and its attributes.
type Assembly struct {
	Representation Representation         `json:"-" yaml:"-"`
	Parts          []Part                 `json:"parts" yaml:"parts"`
	Markers        map[string]geom.Point3 `json:"markers,omitempty" yaml:"markers,omitempty"`
	Attributes     Attributes             `json:"attributes" yaml:"attributes"`
}

// Kind is the kind of the finished representation.
func (a *Assembly) Kind() Kind {
	return a.Representation.Kind()
}

// Box returns the finished representation's box.
func (a *Assembly) Box() box.BoxData {
	bd, _ := a.Representation.BoxData()
	return bd
}

// Part returns the named part, or nil.
func (a *Assembly) Part(name string) *Part {
	for i := range a.Parts {
		if a.Parts[i].Name == name {
			return &a.Parts[i]
		}
	}
	return nil
}

// Creator turns a placeholder box into finished geometry.
type Creator interface {
	Kind() Kind
	Create(bd box.BoxData) (*Assembly, error)
}

// baseAttributes fills the attributes every creator writes.
func baseAttributes(kind Kind, bd box.BoxData) (Attributes, error) {
	idx, err := bd.PivotAnchor.Index()
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{
		CustomType: kind,
		Size:       bd.Size,
		Pivot:      idx,
		Rotation:   bd.Rotation,
		Params:     map[string]float64{},
		Labels:     map[string]string{},
	}, nil
}

// span is shorthand for a local min/max pair.
func span(x0, y0, z0, x1, y1, z1 float64) [2]geom.Point3 {
	return [2]geom.Point3{geom.P3(x0, y0, z0), geom.P3(x1, y1, z1)}
}

func localPart(b box.Bounds, name string, s [2]geom.Point3, cutouts ...[2]geom.Point3) Part {
	p := Part{Name: name, Bounds: b.LocalSpan(s[0], s[1])}
	for _, c := range cutouts {
		p.Cutouts = append(p.Cutouts, b.LocalSpan(c[0], c[1]))
	}
	return p
}
