// Package graphsim compares two weighted undirected graphs and reports how
// alike they are: which nodes correspond, how differently they route
// capacity, and whether their link-analysis spectra agree.
//
// The library is organized as one package per concern:
//
//	core/       thread-safe Graph with int vertices, int64 capacities and edge IDs
//	builder/    seeded random, cycle and complete graphs; relabelling
//	graphio/    YAML graph and matrix documents
//	bfs/        fewest-hop search and paths
//	dfs/        depth-first search, components, cycle detection
//	dijkstra/   least-capacity paths
//	flow/       max flow (Dinic, Edmonds-Karp, Ford-Fulkerson) and min cuts
//	matrix/     dense matrices, adjacency builders, tolerance comparison
//	profile/    per-node neighbor profiles and closest-node search
//	matching/   bipartite similarity graph and maximum-weight matching
//	pathdist/   shortest-path drain distance between matched endpoints
//	dtw/        dynamic time warping for path-sum sequences
//	hits/       HITS hub/authority scores and spectrum comparison
//	similarity/ the full pipeline, instrumented, plus parallel trials
//	report/     CSV and JSON renderings of a similarity report
//
// The graphsim command (cmd/graphsim) wires the pipeline to configuration,
// structured logging, Prometheus metrics and OpenTelemetry tracing.
//
// Quick start:
//
//	g1 := core.NewGraph(3)
//	_, _ = g1.AddEdge(0, 1, 2)
//	_, _ = g1.AddEdge(1, 2, 5)
//	g2 := g1.Clone()
//
//	r, err := similarity.Compare(ctx, g1, g2)
//	if err != nil { ... }
//	fmt.Println(r.OptimalCorrespondences, r.Spectrum.Similar)
package graphsim
