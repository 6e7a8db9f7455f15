// Package similarity runs every graph-similarity heuristic in graphsim
// against one pair of graphs and gathers the results into a Report.
//
// Stages, in order:
//
//  1. structure – components, circuit rank and a witness cycle (dfs)
//  2. profiles  – sorted incident-capacity vectors for both graphs (profile.Build)
//  3. closest   – greedy A→B and B→A correspondences plus their mutual subset
//  4. matching  – maximum-weight matching on the bipartite similarity graph
//  5. path      – shortest-path distance estimate on private clones (pathdist)
//  6. flow      – max flow between the path endpoints in each graph (flow)
//  7. spectrum  – HITS authority/hub comparison of the adjacency matrices
//
// Input graphs are never modified. Each stage is timed into a Prometheus
// histogram, wrapped in an OpenTelemetry span, and logged at debug level.
// A matching with fewer than two distinct pairs cannot seed the path
// estimator; the stage is then skipped, Report.PathSkipped is set and the
// flow stage, which reuses its endpoints, has nothing to do.
// Likewise an edgeless graph has no HITS spectrum and sets SpectrumSkipped.
//
// RunTrials fans independent comparisons out over an errgroup. Every trial
// builds its own graphs, so no graph is shared between goroutines.
package similarity
