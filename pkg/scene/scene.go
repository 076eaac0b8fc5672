package scene

import "fmt"

// Scene is the immutable result of one evaluation: every created item in
// creation order. It is never mutated once handed out; each evaluation
// produces a new scene.
type Scene struct {
	Nodes          map[NodeID]*Node  `json:"nodes"`
	Order          []NodeID          `json:"order"`
	NameIndex      map[string]NodeID `json:"name_index"`
	AdvancedPivots bool              `json:"advanced_pivots"`
	Version        uint64            `json:"version"`
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		Nodes:     make(map[NodeID]*Node),
		NameIndex: make(map[string]NodeID),
	}
}

// AddNode appends a node. Duplicate names are not rejected here;
// Validate reports them.
func (s *Scene) AddNode(n *Node) {
	if _, seen := s.Nodes[n.ID]; !seen {
		s.Order = append(s.Order, n.ID)
	}
	s.Nodes[n.ID] = n
	if n.Name != "" {
		s.NameIndex[n.Name] = n.ID
	}
}

// Lookup returns the node with the given name, or nil.
func (s *Scene) Lookup(name string) *Node {
	id, ok := s.NameIndex[name]
	if !ok {
		return nil
	}
	return s.Nodes[id]
}

// MustLookup returns the node with the given name, or panics.
func (s *Scene) MustLookup(name string) *Node {
	n := s.Lookup(name)
	if n == nil {
		panic(fmt.Sprintf("scene: no node named %q", name))
	}
	return n
}

// Get returns the node with the given ID, or nil.
func (s *Scene) Get(id NodeID) *Node {
	return s.Nodes[id]
}

// Items returns the nodes in creation order.
func (s *Scene) Items() []*Node {
	out := make([]*Node, 0, len(s.Order))
	for _, id := range s.Order {
		if n := s.Nodes[id]; n != nil {
			out = append(out, n)
		}
	}
	return out
}

// NodeCount returns the number of nodes.
func (s *Scene) NodeCount() int {
	return len(s.Nodes)
}
