// Package episode owns the navigational state of one lifelong episode: the
// grid, its components and margined region, a shared field cache and, per
// agent, its position, goal sequence, distance field and direction mask.
//
// What:
//
//   - New validates agents against the margined region, derives a random
//     stream per agent from Config.Seed, pre-computes lifelong goal sequences
//     and builds every agent's field and mask in parallel.
//   - Observe and CostToGo return the agent-centred windows a policy consumes.
//   - Move records the agent's new cell; on arrival the goal cursor advances
//     and the field and mask are refreshed, exactly once per arrival.
//   - Close drops all state; later calls fail with ErrClosed.
//
// Concurrency:
//
//   - An Episode is safe for concurrent use. Fields and masks handed out are
//     immutable and may be read after the lock is released.
//
// Logging:
//
//   - The logger is taken from the context passed to New (see ctxlog) and
//     every record carries the episode's uuid.
package episode
