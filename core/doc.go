// Package core is the ground-set representation shared by graphmatroid: an
// undirected, simple, real-weighted graph with O(1) edge lookup by endpoint
// pair and deterministic ID-ordered iteration.
package core
