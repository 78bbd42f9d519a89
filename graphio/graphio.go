// SPDX-License-Identifier: MIT

package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kpaths/core"
)

// DefaultWeight is assigned to edges whose document entry omits weight.
const DefaultWeight = 1.0

// Sentinel errors.
var (
	// ErrEmptyDocument indicates an input with no document at all.
	ErrEmptyDocument = errors.New("graphio: empty document")

	// ErrBadEdge indicates an edge entry the graph rejected; the core error is wrapped.
	ErrBadEdge = errors.New("graphio: invalid edge")

	// ErrBadVertex indicates a vertex entry the graph rejected.
	ErrBadVertex = errors.New("graphio: invalid vertex")
)

// Document is the serialized form of a graph.
type Document struct {
	Directed bool      `json:"directed" yaml:"directed"`
	Loops    bool      `json:"loops,omitempty" yaml:"loops,omitempty"`
	Vertices []string  `json:"vertices,omitempty" yaml:"vertices,omitempty"`
	Edges    []EdgeDoc `json:"edges" yaml:"edges"`
}

// EdgeDoc is one edge entry. A nil Weight means DefaultWeight.
type EdgeDoc struct {
	From   string             `json:"from" yaml:"from"`
	To     string             `json:"to" yaml:"to"`
	Weight *float64           `json:"weight,omitempty" yaml:"weight,omitempty"`
	Attrs  map[string]float64 `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Decode reads one YAML or JSON document from r and builds a graph.
//
// Errors: ErrEmptyDocument, a wrapped yaml error for malformed input,
// ErrBadVertex or ErrBadEdge (wrapping the core error) for rejected entries.
func Decode(r io.Reader) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	return doc.Graph()
}

// Load decodes the graph document stored at path.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Graph builds a core graph from the document.
func (d *Document) Graph() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for i, id := range d.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%w: vertices[%d]: %w", ErrBadVertex, i, err)
		}
	}
	for i, e := range d.Edges {
		w := DefaultWeight
		if e.Weight != nil {
			w = *e.Weight
		}
		eopts := make([]core.EdgeOption, 0, len(e.Attrs))
		for _, k := range sortedKeys(e.Attrs) {
			eopts = append(eopts, core.WithEdgeAttr(k, e.Attrs[k]))
		}
		if _, err := g.AddEdge(e.From, e.To, w, eopts...); err != nil {
			return nil, fmt.Errorf("%w: edges[%d] %s→%s: %w", ErrBadEdge, i, e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a document. Vertices are listed in sorted order
// and edges in creation order, so Graph() rebuilds the same edge sequence.
func FromGraph(g *core.Graph) *Document {
	doc := &Document{
		Directed: g.Directed(),
		Loops:    g.Looped(),
		Vertices: g.Vertices(),
	}
	for _, e := range g.Edges() {
		w := e.Weight
		ed := EdgeDoc{From: e.From, To: e.To, Weight: &w}
		if len(e.Attrs) > 0 {
			ed.Attrs = make(map[string]float64, len(e.Attrs))
			for k, v := range e.Attrs {
				ed.Attrs[k] = v
			}
		}
		doc.Edges = append(doc.Edges, ed)
	}

	return doc
}

// Encode writes g to w as YAML.
func Encode(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}

// EncodeJSON writes g to w as indented JSON.
func EncodeJSON(w io.Writer, g *core.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return nil
}

// Save writes g to path, as JSON when the extension is ".json" and as YAML otherwise.
func Save(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("graphio: %w", cerr)
		}
	}()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return EncodeJSON(f, g)
	}

	return Encode(f, g)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
