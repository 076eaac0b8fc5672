// Package box models placeholder boxes: the 27-anchor addressing scheme,
// the legacy side and pivot-index vocabularies, oriented bounds, the
// pivot/center resolver, and the slice/mirror lookup tables.
//
// A box is described two ways. BoxData records the world position of a
// chosen pivot anchor (what a scene stores as the object's translation);
// Bounds records the world center. BoxData.Bounds and BoxFromBounds move
// between them, and for every anchor A:
//
//	bd.Bounds().AnchorPosition(bd.PivotAnchor) == bd.Translation
package box
