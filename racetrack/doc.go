// Package racetrack finds cheats on a grid race track.
//
// What:
//
//	A cheat lets a runner pass through walls once, for at most maxJump
//	orthogonal steps, landing on an open cell. Cheats counts the distinct
//	(from, to) endpoint pairs that shorten the honest route by at least
//	minSaving steps.
//
// How:
//
//  1. Two single-source distance fields are built with gridpath.Distances:
//     one from the start, one from the end. The grid bounds cap both.
//  2. For every cell a reachable from the start and every offset with
//     Manhattan length m ≤ maxJump, the landing cell b is scored as
//     dStart[a] + m + dEnd[b].
//  3. A pair counts when that score is at most best - minSaving.
//
// The track may branch; distances are true shortest distances, not positions
// along a single corridor.
//
// Complexity:
//
//   - New:    O(W·H·log(W·H)) for the two distance fields.
//   - Cheats: O(C·J²) time, O(1) extra memory.
//
// Errors:
//
//   - ErrNoTrack: the end is unreachable without cheating.
//   - ErrBadJump: negative maxJump.
//   - gridpath precondition errors (start or end on a wall) are wrapped.
package racetrack
