// Package lifelong pre-computes, per agent, the sequence of goals a lifelong
// episode will hand out once the agent keeps reaching its targets.
//
// What:
//
//   - Sequencer starts from the agent's current goal and repeatedly samples a
//     next goal until the summed Manhattan gaps reach Horizon + Margin.
//   - ComponentSampler draws uniformly among cells of the cursor's 4-connected
//     component; CandidateSampler draws from a fixed list of targets.
//   - Source is a seeded PCG stream that can be snapshotted, serialised and
//     forked into per-agent streams, so sequence generation never advances
//     the episode's own randomness.
//
// Why:
//
//   - Planners that look several goals ahead need the future goals now, and
//     they must be exactly the goals the episode will later assign.
//
// Degenerate pools:
//
//   - A pool whose only cell is the cursor yields the cursor again (a zero
//     step). Sequencer.MaxGoals bounds the loop; reaching it returns the
//     partial sequence together with ErrGoalLimit.
//
// Known approximation:
//
//   - Gaps are Manhattan distances, not realised path lengths, so the
//     sequence may be shorter in steps than Horizon + Margin on twisted maps.
package lifelong
