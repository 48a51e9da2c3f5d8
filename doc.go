// Package potgrid computes navigation potential fields over 2D costmaps:
// the cost-to-go backbone of a grid path planner.
//
// Given a costmap snapshot, a start and a goal, an A*-style best-first
// expansion settles cells in order of estimated total cost and writes each
// cell's accumulated traversal cost into a potential field. Walking that
// field downhill from the goal recovers the path.
//
// Everything is organized under focused subpackages:
//
//	costmap/   — flat row-major cost grid, ROS-style Lethal/Inscribed/Unknown
//	heuristic/ — Euclidean, Manhattan, Chebyshev, Octile and Zero estimators
//	potential/ — Additive and Quadratic potential calculators
//	expander/  — budgeted best-first expansion producing the field
//	gridpath/  — steepest-descent path extraction from a settled field
//	scenario/  — YAML planning requests for tools and tests
//	cmd/potgrid — command-line runner for scenario files
//
// Quick ASCII example (S start, G goal, # lethal):
//
//	S....
//	.###.
//	....G
//
// Each call is a fresh, stateless computation; nothing persists between
// requests.
//
//	go get github.com/katalvlaran/potgrid
package potgrid
