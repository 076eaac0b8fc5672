package scene

import (
	"github.com/chazu/boxy/pkg/arch"
	"github.com/chazu/boxy/pkg/box"
	"github.com/google/uuid"
)

// idNamespace scopes node IDs so the same path always yields the same ID.
var idNamespace = uuid.MustParse("6f1c3d0e-2b8a-5c47-9e1d-b0c5a7e4f213")

// NodeID is a content-addressed node identifier: a UUIDv5 of the node's
// path within the scene.
type NodeID string

// ZeroID is the empty NodeID.
const ZeroID NodeID = ""

// NewNodeID derives the ID for a node path such as "door/front".
func NewNodeID(path string) NodeID {
	return NodeID(uuid.NewSHA1(idNamespace, []byte(path)).String())
}

// IsZero reports whether id is unset.
func (id NodeID) IsZero() bool {
	return id == ZeroID
}

// Short returns the first 8 characters for log and error messages.
func (id NodeID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}

// Node is one created item: its representation, the generated assembly,
// and an optional mirror applied to the generated geometry.
type Node struct {
	ID             NodeID              `json:"id"`
	Name           string              `json:"name"`
	Representation arch.Representation `json:"-"`
	Assembly       *arch.Assembly      `json:"assembly,omitempty"`
	Mirror         *box.MirrorPlan     `json:"mirror,omitempty"`
}

// Kind returns the representation kind, or boxy when unset.
func (n *Node) Kind() arch.Kind {
	if n.Representation == nil {
		return arch.KindBoxy
	}
	return n.Representation.Kind()
}

// Label returns the node's name, falling back to its short ID.
func (n *Node) Label() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID.Short()
}
