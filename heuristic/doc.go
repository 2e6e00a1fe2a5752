// Package heuristic derives per-direction guidance from a distance field and
// slices it into fixed-size observation windows for policies.
//
// What:
//
//   - BuildMask marks, for every in-region cell and each of the four
//     directions (Up, Down, Left, Right), whether that move lands on a cell
//     strictly closer to the target.
//   - Window crops a 4×(2r+1)×(2r+1) block of the mask centred on an agent.
//   - CostToGo crops the distance field itself into a normalised
//     (2r+1)×(2r+1) window where the closest cell scores 1 and the farthest 0.
//
// Guarantees:
//
//   - Following any marked direction from a cell at distance d lands on a cell
//     at distance d-1; repeating reaches the target in exactly d moves, for
//     every choice among ties.
//   - Cells with the Unreachable sentinel have no marked direction: guidance
//     degrades to "no information" instead of failing.
//
// Errors:
//
//   - *ConfigurationError (errors.Is ErrOutsideMargin): the requested window
//     centre lies outside the margined region, i.e. the grid margin was not
//     provisioned for the observation radius. Reported before any access.
//   - ErrNilField: a nil field was passed.
//   - ErrRegionMismatch: the region does not describe the field's grid.
package heuristic
