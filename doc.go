// Package gridnav is the root of a navigational-support engine for lifelong
// multi-agent path finding on 4-connected grids.
//
// What is gridnav?
//
//	Everything a learned or search-based policy needs to know about "where is
//	my goal from here", computed ahead of the policy and cheap to slice:
//		• gridgraph: obstacle grids, components, margined regions
//		• distfield: per-target BFS distance fields, cached and built in parallel
//		• heuristic: direction masks, observation windows, cost-to-go windows
//		• lifelong : reproducible goal sequences for lifelong episodes
//		• episode  : per-agent state tying the above together
//		• config   : HCL episode files
//		• render   : PNG and HTML diagnostics
//
// Quick ASCII example (target T, distances from it):
//
//	3 2 1 T
//	4 # 2 1
//	5 4 3 2
//
// From the 5 in the corner both Up and Right lead to a 4: either choice
// reaches T in exactly five moves.
//
//	go install github.com/katalvlaran/gridnav/cmd/gridnav@latest
package gridnav
