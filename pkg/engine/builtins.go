package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/boxy/pkg/arch"
	"github.com/chazu/boxy/pkg/box"
	"github.com/chazu/boxy/pkg/config"
	"github.com/chazu/boxy/pkg/geom"
	"github.com/chazu/boxy/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/pkg/errors"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec3 wraps a point or vector.
type sexpVec3 struct {
	vec geom.Point3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpBox wraps a placeholder box that has not been turned into an item.
type sexpBox struct {
	bd box.BoxData
}

func (b *sexpBox) SexpString(ps *zygo.PrintState) string {
	s := b.bd.Size
	return fmt.Sprintf("(boxy %gx%gx%g :pivot :%s)", s.X, s.Y, s.Z, b.bd.PivotAnchor)
}
func (b *sexpBox) Type() *zygo.RegisteredType { return nil }

// sexpItem refers to a scene item by name.
type sexpItem struct {
	id   scene.NodeID
	name string
}

func (n *sexpItem) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(item %q)", n.name)
}
func (n *sexpItem) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// A keyword consumes the argument after it as its value.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// float reads an optional numeric keyword into dst.
func (a kwArgs) float(name string, dst *float64) error {
	v, ok := a.kw[name]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return errors.Wrap(err, name)
	}
	*dst = f
	return nil
}

// vec reads an optional vector keyword into dst.
func (a kwArgs) vec(name string, dst *geom.Point3) error {
	v, ok := a.kw[name]
	if !ok {
		return nil
	}
	p, err := toVec3(v)
	if err != nil {
		return errors.Wrap(err, name)
	}
	*dst = p
	return nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, errors.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", errors.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_z) and plain strings ("z").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", errors.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	return strings.TrimPrefix(str.S, kwPrefix), nil
}

// toBool accepts true/false and treats nil as false.
func toBool(s zygo.Sexp) (bool, error) {
	switch v := s.(type) {
	case *zygo.SexpBool:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return false, nil
		}
	}
	return false, errors.Errorf("expected true or false, got %T (%s)", s, s.SexpString(nil))
}

func toAxis(s zygo.Sexp) (geom.Axis, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, err
	}
	return geom.ParseAxis(name)
}

func toSide(s zygo.Sexp) (box.Side, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, err
	}
	return box.ParseSide(name)
}

// toAnchor accepts an anchor or side name (:e4, :top) or a stored pivot
// index, which is checked against the advanced-pivot setting.
func toAnchor(s zygo.Sexp, advanced bool) (box.Anchor, error) {
	if i, ok := s.(*zygo.SexpInt); ok {
		return box.PivotFromAttribute(int(i.Val), advanced)
	}
	name, err := toKeywordString(s)
	if err != nil {
		return 0, err
	}
	return box.ParseAnchor(name)
}

// toVec3 accepts a vec3 value or a list/array of three numbers.
func toVec3(s zygo.Sexp) (geom.Point3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	items, err := sexpListToSlice(s)
	if err != nil || len(items) != 3 {
		return geom.Point3{}, errors.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
	}
	var xyz [3]float64
	for i, item := range items {
		if xyz[i], err = toFloat64(item); err != nil {
			return geom.Point3{}, err
		}
	}
	return geom.P3(xyz[0], xyz[1], xyz[2]), nil
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, errors.Errorf("expected list or array, got %T", s)
}

func vecSexp(p geom.Point3) zygo.Sexp {
	return &sexpVec3{vec: p}
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// builtins holds the per-evaluation state shared by every builtin.
type builtins struct {
	scene *scene.Scene
	cfg   *config.Config
}

// toBox accepts a placeholder box or an existing item, whose finished box
// is used.
func (b *builtins) toBox(s zygo.Sexp) (box.BoxData, error) {
	switch v := s.(type) {
	case *sexpBox:
		return v.bd, nil
	case *sexpItem:
		n, err := b.node(v)
		if err != nil {
			return box.BoxData{}, err
		}
		return n.Representation.BoxData()
	}
	return box.BoxData{}, errors.Errorf("expected box or item, got %T (%s)", s, s.SexpString(nil))
}

// points expands one boxy-around argument: a point, a box or item (its
// eight corners), or a list of any of those.
func (b *builtins) points(s zygo.Sexp) ([]geom.Point3, error) {
	switch v := s.(type) {
	case *sexpVec3:
		return []geom.Point3{v.vec}, nil
	case *sexpBox, *sexpItem:
		bd, err := b.toBox(s)
		if err != nil {
			return nil, err
		}
		c := bd.Bounds().Corners()
		return c[:], nil
	}
	if p, err := toVec3(s); err == nil {
		return []geom.Point3{p}, nil
	}
	items, err := sexpListToSlice(s)
	if err != nil {
		return nil, errors.Errorf("expected point, box or item, got %T", s)
	}
	var out []geom.Point3
	for _, item := range items {
		pts, err := b.points(item)
		if err != nil {
			return nil, err
		}
		out = append(out, pts...)
	}
	return out, nil
}

func (b *builtins) toItem(s zygo.Sexp) (*scene.Node, error) {
	switch v := s.(type) {
	case *sexpItem:
		return b.node(v)
	case *zygo.SexpStr:
		return b.lookup(v.S)
	}
	return nil, errors.Errorf("expected item, got %T (%s)", s, s.SexpString(nil))
}

func (b *builtins) node(ref *sexpItem) (*scene.Node, error) {
	n := b.scene.Get(ref.id)
	if n == nil {
		return nil, errors.Errorf("item %q no longer exists", ref.name)
	}
	return n, nil
}

func (b *builtins) lookup(name string) (*scene.Node, error) {
	n := b.scene.Lookup(name)
	if n == nil {
		return nil, errors.Errorf("no item named %q", name)
	}
	return n, nil
}

// place turns a positional (name, box) pair into a scene item built by c.
func (b *builtins) place(fn string, c arch.Creator, pa kwArgs) (zygo.Sexp, error) {
	if len(pa.positional) < 2 {
		return zygo.SexpNull, errors.Errorf("%s requires a name and a box", fn)
	}
	itemName, err := toString(pa.positional[0])
	if err != nil {
		return zygo.SexpNull, errors.Wrapf(err, "%s: name", fn)
	}
	if b.scene.Lookup(itemName) != nil {
		return zygo.SexpNull, errors.Errorf("%s: item %q already defined", fn, itemName)
	}
	bd, err := b.toBox(pa.positional[1])
	if err != nil {
		return zygo.SexpNull, errors.Wrapf(err, "%s: box", fn)
	}
	asm, err := c.Create(bd)
	if err != nil {
		return zygo.SexpNull, errors.Wrapf(err, "%s %q", fn, itemName)
	}

	id := scene.NewNodeID(c.Kind().String() + "/" + itemName)
	b.scene.AddNode(&scene.Node{
		ID:             id,
		Name:           itemName,
		Representation: asm.Representation,
		Assembly:       asm,
	})
	return &sexpItem{id: id, name: itemName}, nil
}

// registerBuiltins installs all boxy DSL builtins into a zygomys environment.
// The builtins populate s during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, s *scene.Scene, cfg *config.Config) {
	b := &builtins{scene: s, cfg: cfg}

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, errors.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		var v geom.Point3
		for i, arg := range args {
			f, err := toFloat64(arg)
			if err != nil {
				return zygo.SexpNull, errors.Wrapf(err, "vec3: %s", geom.Axis(i))
			}
			v = v.WithComponent(geom.Axis(i), f)
		}
		return vecSexp(v), nil
	})

	// -----------------------------------------------------------------------
	// (component v :x)
	// -----------------------------------------------------------------------
	env.AddFunction("component", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, errors.New("component requires a vector and an axis")
		}
		v, err := toVec3(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "component")
		}
		axis, err := toAxis(args[1])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "component")
		}
		return &zygo.SexpFloat{Val: v.Component(axis)}, nil
	})

	// -----------------------------------------------------------------------
	// (vadd a b)
	// -----------------------------------------------------------------------
	env.AddFunction("vadd", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		var sum geom.Point3
		for i, arg := range args {
			v, err := toVec3(arg)
			if err != nil {
				return zygo.SexpNull, errors.Wrapf(err, "vadd: argument %d", i)
			}
			sum = sum.Add(v)
		}
		return vecSexp(sum), nil
	})

	// -----------------------------------------------------------------------
	// (boxy :size (vec3 100 210 20) :at (vec3 0 0 0) :rotate (vec3 0 90 0)
	//       :pivot :f2)
	// (boxy :preset "door")
	// -----------------------------------------------------------------------
	env.AddFunction("boxy", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		pivot, err := cfg.Pivot()
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "boxy: default pivot")
		}
		var size, at, rot geom.Point3
		if v, ok := pa.kw["preset"]; ok {
			presetName, err := toKeywordString(v)
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "boxy: preset")
			}
			p, ok := cfg.Preset(presetName)
			if !ok {
				return zygo.SexpNull, errors.Errorf("boxy: unknown preset %q", presetName)
			}
			size = p
		}
		for _, f := range []struct {
			kw  string
			dst *geom.Point3
		}{{"size", &size}, {"at", &at}, {"rotate", &rot}} {
			if err := pa.vec(f.kw, f.dst); err != nil {
				return zygo.SexpNull, errors.Wrap(err, "boxy")
			}
		}
		if v, ok := pa.kw["pivot"]; ok {
			if pivot, err = toAnchor(v, cfg.AdvancedPivots); err != nil {
				return zygo.SexpNull, errors.Wrap(err, "boxy: pivot")
			}
		}

		bd, err := box.NewBoxData(size, at, rot, pivot)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "boxy")
		}
		return &sexpBox{bd: bd}, nil
	})

	// -----------------------------------------------------------------------
	// (boxy-around [p1 p2 ...] :heading 30 :pivot :bottom)
	// (boxy-around door-item window-box (vec3 0 300 0))
	// -----------------------------------------------------------------------
	env.AddFunction("boxy_around", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) == 0 {
			return zygo.SexpNull, errors.New("boxy-around requires points, boxes or items")
		}

		pivot, err := cfg.Pivot()
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "boxy-around: default pivot")
		}
		if v, ok := pa.kw["pivot"]; ok {
			if pivot, err = toAnchor(v, cfg.AdvancedPivots); err != nil {
				return zygo.SexpNull, errors.Wrap(err, "boxy-around: pivot")
			}
		}
		var heading float64
		if err := pa.float("heading", &heading); err != nil {
			return zygo.SexpNull, errors.Wrap(err, "boxy-around")
		}

		var points []geom.Point3
		for _, arg := range pa.positional {
			pts, err := b.points(arg)
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, "boxy-around")
			}
			points = append(points, pts...)
		}
		bd, err := box.BoxAroundPoints(points, heading, pivot)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "boxy-around")
		}
		return &sexpBox{bd: bd}, nil
	})

	// -----------------------------------------------------------------------
	// (center b)
	// -----------------------------------------------------------------------
	env.AddFunction("center", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, errors.New("center requires a box or item")
		}
		bd, err := b.toBox(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "center")
		}
		return vecSexp(bd.Center()), nil
	})

	// -----------------------------------------------------------------------
	// (anchor b :e4)
	// -----------------------------------------------------------------------
	env.AddFunction("anchor", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, errors.New("anchor requires a box or item and an anchor")
		}
		bd, err := b.toBox(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "anchor")
		}
		a, err := toAnchor(args[1], true)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "anchor")
		}
		return vecSexp(bd.AnchorPosition(a)), nil
	})

	// -----------------------------------------------------------------------
	// (face b :top)
	// -----------------------------------------------------------------------
	env.AddFunction("face", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, errors.New("face requires a box or item and a side")
		}
		bd, err := b.toBox(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "face")
		}
		side, err := toSide(args[1])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "face")
		}
		p, err := bd.Bounds().Pivot(side)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "face")
		}
		return vecSexp(p), nil
	})

	// -----------------------------------------------------------------------
	// (repivot b :f2)
	// -----------------------------------------------------------------------
	env.AddFunction("repivot", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, errors.New("repivot requires a box and an anchor")
		}
		bd, err := b.toBox(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "repivot")
		}
		a, err := toAnchor(args[1], cfg.AdvancedPivots)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "repivot")
		}
		out, err := bd.Repivot(a)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "repivot")
		}
		return &sexpBox{bd: out}, nil
	})

	// -----------------------------------------------------------------------
	// (reorient b :y 90)
	// -----------------------------------------------------------------------
	env.AddFunction("reorient", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, errors.New("reorient requires a box, an axis and an angle")
		}
		bd, err := b.toBox(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "reorient")
		}
		axis, err := toAxis(args[1])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "reorient")
		}
		deg, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "reorient")
		}
		out, err := bd.Reorient(axis, deg)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "reorient")
		}
		return &sexpBox{bd: out}, nil
	})

	// -----------------------------------------------------------------------
	// (slice-rotation :x true)
	// -----------------------------------------------------------------------
	env.AddFunction("slice_rotation", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, errors.New("slice-rotation requires an axis and a direction")
		}
		axis, err := toAxis(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "slice-rotation")
		}
		positive, err := toBool(args[1])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "slice-rotation")
		}
		rot, err := box.SliceRotation(axis, positive)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "slice-rotation")
		}
		return vecSexp(rot), nil
	})

	// -----------------------------------------------------------------------
	// (defbox "name" b)
	// -----------------------------------------------------------------------
	env.AddFunction("defbox", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return b.place("defbox", arch.BoxyCreator{}, parseArgs(args))
	})

	// -----------------------------------------------------------------------
	// (cube "name" b)
	// -----------------------------------------------------------------------
	env.AddFunction("cube", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return b.place("cube", arch.CubeCreator{}, parseArgs(args))
	})

	// -----------------------------------------------------------------------
	// (door "name" b :frame 10 :skirt 2 :depth 5 :hinge :left :opening :front)
	// -----------------------------------------------------------------------
	env.AddFunction("door", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		p, err := cfg.DoorParams()
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "door: defaults")
		}
		for kw, dst := range map[string]*float64{"frame": &p.Frame, "skirt": &p.Skirt, "depth": &p.Depth} {
			if err := pa.float(kw, dst); err != nil {
				return zygo.SexpNull, errors.Wrap(err, "door")
			}
		}
		for kw, dst := range map[string]*box.Side{"hinge": &p.Hinge, "opening": &p.Opening} {
			v, ok := pa.kw[kw]
			if !ok {
				continue
			}
			side, err := toSide(v)
			if err != nil {
				return zygo.SexpNull, errors.Wrapf(err, "door: %s", kw)
			}
			*dst = side
		}
		return b.place("door", arch.DoorCreator{Params: p}, pa)
	})

	// -----------------------------------------------------------------------
	// (window "name" b :frame 10 :skirt 2 :sill-thickness 2 :sill-depth 4)
	// -----------------------------------------------------------------------
	env.AddFunction("window", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		p := cfg.Window
		for kw, dst := range map[string]*float64{
			"frame":          &p.Frame,
			"skirt":          &p.Skirt,
			"sill-thickness": &p.SillThickness,
			"sill-depth":     &p.SillDepth,
		} {
			if err := pa.float(kw, dst); err != nil {
				return zygo.SexpNull, errors.Wrap(err, "window")
			}
		}
		return b.place("window", arch.WindowCreator{Params: p}, pa)
	})

	// -----------------------------------------------------------------------
	// (staircase "name" b :target-rise 20 :axis :z)
	// -----------------------------------------------------------------------
	env.AddFunction("staircase", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		p, err := cfg.StaircaseParams()
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "staircase: defaults")
		}
		if err := pa.float("target-rise", &p.TargetRise); err != nil {
			return zygo.SexpNull, errors.Wrap(err, "staircase")
		}
		if v, ok := pa.kw["axis"]; ok {
			if p.Axis, err = toAxis(v); err != nil {
				return zygo.SexpNull, errors.Wrap(err, "staircase: axis")
			}
		}
		return b.place("staircase", arch.StaircaseCreator{Params: p}, pa)
	})

	// -----------------------------------------------------------------------
	// (convert "name" :cube :pivot :c)
	// -----------------------------------------------------------------------
	env.AddFunction("convert", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 2 {
			return zygo.SexpNull, errors.New("convert requires an item and a target kind")
		}
		n, err := b.toItem(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "convert")
		}
		kindName, err := toKeywordString(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "convert: kind")
		}
		kind, err := arch.ParseKind(kindName)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "convert")
		}
		pivot := n.Assembly.Box().PivotAnchor
		if v, ok := pa.kw["pivot"]; ok {
			if pivot, err = toAnchor(v, cfg.AdvancedPivots); err != nil {
				return zygo.SexpNull, errors.Wrap(err, "convert: pivot")
			}
		}

		var rep arch.Representation
		switch kind {
		case arch.KindBoxy:
			rep, err = arch.ToBoxy(n.Representation, pivot)
		case arch.KindCube:
			rep, err = arch.ToCube(n.Representation, pivot)
		default:
			return zygo.SexpNull, errors.Errorf("convert: cannot convert to %s", kind)
		}
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "convert")
		}
		asm, err := arch.Rebuild(rep)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "convert")
		}

		b.scene.AddNode(&scene.Node{
			ID:             n.ID,
			Name:           n.Name,
			Representation: rep,
			Assembly:       asm,
			Mirror:         n.Mirror,
		})
		return &sexpItem{id: n.ID, name: n.Name}, nil
	})

	// -----------------------------------------------------------------------
	// (mirror item :axis :x :positive true :at (vec3 0 0 0))
	// -----------------------------------------------------------------------
	env.AddFunction("mirror", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, errors.New("mirror requires an item")
		}
		n, err := b.toItem(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "mirror")
		}

		axis := geom.AxisX
		if v, ok := pa.kw["axis"]; ok {
			if axis, err = toAxis(v); err != nil {
				return zygo.SexpNull, errors.Wrap(err, "mirror: axis")
			}
		}
		keepPositive := true
		if v, ok := pa.kw["positive"]; ok {
			if keepPositive, err = toBool(v); err != nil {
				return zygo.SexpNull, errors.Wrap(err, "mirror: positive")
			}
		}
		at := n.Assembly.Box().Center()
		if err := pa.vec("at", &at); err != nil {
			return zygo.SexpNull, errors.Wrap(err, "mirror")
		}

		plan, err := box.PlanMirror(axis, keepPositive, at)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "mirror")
		}
		n.Mirror = &plan
		return &sexpItem{id: n.ID, name: n.Name}, nil
	})

	// -----------------------------------------------------------------------
	// (item "name")
	// -----------------------------------------------------------------------
	env.AddFunction("item", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, errors.New("item requires a name argument")
		}
		itemName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "item: name")
		}
		n, err := b.lookup(itemName)
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "item")
		}
		return &sexpItem{id: n.ID, name: n.Name}, nil
	})

	// -----------------------------------------------------------------------
	// (marker item "hinge")
	// -----------------------------------------------------------------------
	env.AddFunction("marker", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, errors.New("marker requires an item and a marker name")
		}
		n, err := b.toItem(args[0])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "marker")
		}
		markerName, err := toKeywordString(args[1])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "marker")
		}
		p, ok := n.Assembly.Markers[markerName]
		if !ok {
			return zygo.SexpNull, errors.Errorf("marker: %s has no marker %q", n.Label(), markerName)
		}
		return vecSexp(p), nil
	})
}
