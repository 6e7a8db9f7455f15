// Package graphio reads and writes graphs and matrices as YAML documents.
// JSON input is accepted too, since a JSON document is valid YAML.
//
// Graph document:
//
//	name: sample
//	nodes: 4          # optional; defaults to the largest endpoint + 1
//	edges:
//	  - {from: 0, to: 1, weight: 3}
//	  - {from: 1, to: 2}          # weight 0 reads as capacity 1
//
// Matrix document:
//
//	matrix:
//	  - [0, 1]
//	  - [1, 0]
//
// Unknown keys are rejected.
package graphio
