// Package tessellate turns scene items into kernel solids and triangle
// meshes. One mesh is produced per item.
package tessellate

import (
	"github.com/chazu/boxy/pkg/arch"
	"github.com/chazu/boxy/pkg/box"
	"github.com/chazu/boxy/pkg/kernel"
	"github.com/chazu/boxy/pkg/scene"
	"github.com/pkg/errors"
)

// Tessellate builds every item in scene order and meshes it with the
// provided kernel. The scene is never mutated.
func Tessellate(s *scene.Scene, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if s == nil {
		return nil, nil
	}

	meshes := make([]*kernel.Mesh, 0, s.NodeCount())
	for _, n := range s.Items() {
		solid, err := BuildSolid(k, n)
		if err != nil {
			return nil, errors.Wrapf(err, "tessellate: item %s", n.Label())
		}
		if solid == nil {
			continue
		}
		mesh, err := k.ToMesh(solid)
		if err != nil {
			return nil, errors.Wrapf(err, "tessellate: ToMesh failed for item %s", n.Label())
		}
		mesh.ItemName = n.Label()
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// BuildSolid returns the solid for one item: the union of its parts, each
// minus its cutouts, with the item's mirror applied last. An item without
// parts yields a nil solid.
func BuildSolid(k kernel.Kernel, n *scene.Node) (kernel.Solid, error) {
	if n == nil || n.Assembly == nil {
		return nil, nil
	}

	var solid kernel.Solid
	for _, p := range n.Assembly.Parts {
		ps, err := partSolid(k, p)
		if err != nil {
			return nil, err
		}
		if solid == nil {
			solid = ps
		} else {
			solid = k.Union(solid, ps)
		}
	}
	if solid == nil {
		return nil, nil
	}

	if n.Mirror != nil {
		solid = applyMirror(k, solid, *n.Mirror)
	}
	return solid, nil
}

// partSolid creates the part's box and subtracts each cutout.
func partSolid(k kernel.Kernel, p arch.Part) (kernel.Solid, error) {
	solid, err := boundsSolid(k, p.Bounds)
	if err != nil {
		return nil, errors.Wrapf(err, "part %s", p.Name)
	}
	for i, c := range p.Cutouts {
		hole, err := boundsSolid(k, c)
		if err != nil {
			return nil, errors.Wrapf(err, "part %s cutout %d", p.Name, i)
		}
		solid = k.Difference(solid, hole)
	}
	return solid, nil
}

// boundsSolid places a box: centered primitive, rotated, then translated
// to the bounds' world center.
func boundsSolid(k kernel.Kernel, b box.Bounds) (kernel.Solid, error) {
	solid, err := k.Box(b.Size.X, b.Size.Y, b.Size.Z)
	if err != nil {
		return nil, err
	}

	rot := b.Rotation
	if !rot.IsZero() {
		solid = k.Rotate(solid, rot.X, rot.Y, rot.Z)
	}

	pos := b.Position
	if !pos.IsZero() {
		solid = k.Translate(solid, pos.X, pos.Y, pos.Z)
	}
	return solid, nil
}

// applyMirror slices away the discarded half and unions the kept half
// with its reflection across the pivot plane.
func applyMirror(k kernel.Kernel, s kernel.Solid, m box.MirrorPlan) kernel.Solid {
	kept := k.Cut(s, m.Pivot, m.CutNormal())
	mirrored := k.Reflect(kept, m.Axis, m.Pivot.Component(m.Axis))
	return k.Union(kept, mirrored)
}
