package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/matrix"
)

var (
	// ErrDecode wraps YAML syntax and schema errors.
	ErrDecode = errors.New("graphio: cannot decode document")

	// ErrBadDocument is returned for a well-formed document with impossible content.
	ErrBadDocument = errors.New("graphio: invalid document")
)

// GraphDoc is the on-disk form of a core.Graph.
type GraphDoc struct {
	Name  string    `yaml:"name,omitempty"`
	Nodes int       `yaml:"nodes"`
	Edges []EdgeDoc `yaml:"edges"`
}

// EdgeDoc is one undirected edge.
type EdgeDoc struct {
	From   int   `yaml:"from"`
	To     int   `yaml:"to"`
	Weight int64 `yaml:"weight,omitempty"`
}

// MatrixDoc is the on-disk form of a dense matrix.
type MatrixDoc struct {
	Matrix [][]float64 `yaml:"matrix"`
}

// DecodeGraph reads one graph document from r.
func DecodeGraph(r io.Reader) (*core.Graph, error) {
	var doc GraphDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("DecodeGraph: %w: %w", ErrDecode, err)
	}

	return doc.Graph()
}

// Graph builds the core.Graph described by doc.
func (doc GraphDoc) Graph() (*core.Graph, error) {
	if doc.Nodes < 0 {
		return nil, fmt.Errorf("Graph: nodes=%d: %w", doc.Nodes, ErrBadDocument)
	}
	n := doc.Nodes
	for _, e := range doc.Edges {
		if e.From < 0 || e.To < 0 {
			return nil, fmt.Errorf("Graph: edge %d-%d: %w", e.From, e.To, ErrBadDocument)
		}
		if doc.Nodes == 0 {
			n = max(n, e.From+1, e.To+1)
		}
	}

	g := core.NewGraph(n, core.WithName(doc.Name))
	for i, e := range doc.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("Graph: edge #%d %d-%d: %w: %w", i, e.From, e.To, ErrBadDocument, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a document, edges in ID order.
func FromGraph(g *core.Graph) GraphDoc {
	doc := GraphDoc{Name: g.Name(), Nodes: g.VertexCount(), Edges: []EdgeDoc{}}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// EncodeGraph writes g to w as a YAML graph document.
func EncodeGraph(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("EncodeGraph: %w: nil graph", ErrBadDocument)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("EncodeGraph: %w", err)
	}

	return enc.Close()
}

// DecodeMatrix reads one matrix document from r.
func DecodeMatrix(r io.Reader) (*matrix.Dense, error) {
	var doc MatrixDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("DecodeMatrix: %w: %w", ErrDecode, err)
	}
	m, err := matrix.NewFromRows(doc.Matrix)
	if err != nil {
		return nil, fmt.Errorf("DecodeMatrix: %w: %w", ErrBadDocument, err)
	}

	return m, nil
}

// LoadGraph decodes the graph document at path.
func LoadGraph(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadGraph: %w", err)
	}
	defer f.Close()

	return DecodeGraph(f)
}

// LoadMatrix decodes the matrix document at path.
func LoadMatrix(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadMatrix: %w", err)
	}
	defer f.Close()

	return DecodeMatrix(f)
}

// SaveGraph writes g to path, replacing any existing file.
func SaveGraph(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveGraph: %w", err)
	}
	if err := EncodeGraph(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
