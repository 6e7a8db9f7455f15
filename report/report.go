// Package report renders similarity.Report values as CSV and JSON.
package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/profile"
	"github.com/katalvlaran/graphsim/similarity"
)

// ErrNilReport is returned when a nil report is passed to a writer.
var ErrNilReport = errors.New("report: nil report")

// Section headers of the neighbors CSV. The second greedy section lists
// graph B nodes first but keeps the historical header.
const (
	HeaderClosest = "Nodes in G1,Closest neighbor in G2"
	HeaderBest    = "Nodes in G1,Best neighbor in G2"
)

// SummaryHeader is the first row written by WriteSummaryCSV.
var SummaryHeader = []string{
	"trial", "run_id",
	"nodes_a", "edges_a", "nodes_b", "edges_b",
	"components_a", "components_b",
	"mutual", "optimal_weight",
	"path_distance", "path_iterations", "path_exhausted",
	"flow_a", "flow_b",
	"authority_equal", "hub_equal", "similar",
}

// WriteNeighborsCSV writes three sections: greedy A→B, greedy B→A and the
// mutual pairs, each preceded by its header row.
func WriteNeighborsCSV(w io.Writer, r *similarity.Report) error {
	if r == nil {
		return ErrNilReport
	}
	cw := csv.NewWriter(w)
	sections := []struct {
		header string
		rows   []profile.Correspondence
	}{
		{HeaderClosest, r.GreedyAB},
		{HeaderClosest, r.GreedyBA},
		{HeaderBest, r.Mutual},
	}
	for _, s := range sections {
		if err := cw.Write(splitHeader(s.header)); err != nil {
			return fmt.Errorf("WriteNeighborsCSV: %w", err)
		}
		for _, c := range s.rows {
			if err := cw.Write([]string{strconv.Itoa(c.Node), strconv.Itoa(c.Match)}); err != nil {
				return fmt.Errorf("WriteNeighborsCSV: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteNeighborsCSV: %w", err)
	}

	return nil
}

// WriteSummaryCSV writes SummaryHeader and one row per report. Cells of a
// skipped stage are left empty.
func WriteSummaryCSV(w io.Writer, reports []*similarity.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SummaryHeader); err != nil {
		return fmt.Errorf("WriteSummaryCSV: %w", err)
	}
	for i, r := range reports {
		if r == nil {
			return fmt.Errorf("WriteSummaryCSV: row %d: %w", i, ErrNilReport)
		}
		if err := cw.Write(summaryRow(r)); err != nil {
			return fmt.Errorf("WriteSummaryCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteSummaryCSV: %w", err)
	}

	return nil
}

// WriteJSON encodes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}

	return nil
}

func summaryRow(r *similarity.Report) []string {
	row := make([]string, 0, len(SummaryHeader))
	row = append(row, strconv.Itoa(r.Trial), r.RunID)
	for _, st := range []*core.GraphStats{r.GraphA, r.GraphB} {
		if st == nil {
			row = append(row, "", "")
			continue
		}
		row = append(row, strconv.Itoa(st.VertexCount), strconv.Itoa(st.EdgeCount))
	}
	for _, st := range []*similarity.Structure{r.StructureA, r.StructureB} {
		if st == nil {
			row = append(row, "")
			continue
		}
		row = append(row, strconv.Itoa(st.Components))
	}
	row = append(row, strconv.Itoa(len(r.Mutual)), formatFloat(r.OptimalWeight))

	if p := r.Path; p != nil {
		row = append(row, formatFloat(p.Distance), strconv.Itoa(p.Iterations), p.Exhausted.String())
	} else {
		row = append(row, "", "", "")
	}
	if f := r.Flow; f != nil {
		row = append(row, strconv.FormatInt(f.A, 10), strconv.FormatInt(f.B, 10))
	} else {
		row = append(row, "", "")
	}
	if sp := r.Spectrum; sp != nil {
		row = append(row,
			strconv.FormatBool(sp.AuthorityEqual),
			strconv.FormatBool(sp.HubEqual),
			strconv.FormatBool(sp.Similar))
	} else {
		row = append(row, "", "", "")
	}

	return row
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// splitHeader turns "a,b" into a two-cell record.
func splitHeader(h string) []string {
	left, right, _ := strings.Cut(h, ",")

	return []string{left, right}
}
