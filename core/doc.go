// Package core provides the thread-safe in-memory Graph used by every
// algorithm in this module.
//
// The Graph G = (V,E) is a simple graph with string vertex IDs:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Optional self-loops (WithLoops)
//   - At most one edge per ordered vertex pair; an undirected edge occupies
//     both orders
//   - Float weights plus any number of named numeric attributes per edge
//     (WithEdgeAttr), resolved through Edge.WeightOf(key)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to] = edgeID
//   - Monotonic edge IDs ("e1", "e2", …), preserved by Clone and views
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Weight attributes:
//
//	g.AddEdge("C", "D", 1, core.WithEdgeAttr("length", 3))
//	e, _ := g.EdgeBetween("C", "D")
//	e.WeightOf("weight") // 1 (DefaultWeightKey reads Edge.Weight)
//	e.WeightOf("length") // 3
//	e.WeightOf("cost")   // ErrAttrNotFound
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error           // O(1)
//	HasVertex(id string) bool            // O(1)
//	RemoveVertex(id string) error        // O(E), drops incident edges
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error)
//	RemoveEdge(edgeID string) error      // O(1)
//	RemoveEdgeBetween(from, to string) error
//	HasEdge(from, to string) bool        // O(1)
//	EdgeBetween(from, to string) (*Edge, error)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error) // outgoing, creation order
//	Vertices() []string                   // sorted
//	Edges() []*Edge                       // creation order
//
//	// Copies
//	Clone() *Graph                        // deep copy
//	WithoutVertices(g, ids...) *Graph     // copy minus vertices
//	InducedSubgraph(g, keep) *Graph
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – NaN or infinite weight/attribute
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second edge for the same ordered pair
//	ErrAttrNotFound        – edge lacks the requested weight attribute
package core
