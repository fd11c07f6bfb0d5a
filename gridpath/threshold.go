package gridpath

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Threshold binary-searches [0, n] for the smallest k at which reachable(k)
// turns false, assuming reachability never recovers as k grows.
//
// The boundaries are checked first: ErrBlockedAtStart if reachable(0) is
// false, ErrNeverBlocked if reachable(n) is true. The returned k always
// satisfies reachable(k-1) && !reachable(k); if the predicate is not
// monotone, k is some such transition rather than necessarily the first.
// Errors from reachable are returned unchanged.
//
// Complexity: O(log n) calls to reachable.
func Threshold(n int, reachable func(k int) (bool, error)) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative range %d", ErrOptionViolation, n)
	}
	ok, err := reachable(0)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrBlockedAtStart
	}
	if ok, err = reachable(n); err != nil {
		return 0, err
	}
	if ok {
		return 0, ErrNeverBlocked
	}

	// Invariant: reachable(lo) && !reachable(hi).
	lo, hi := 0, n
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if ok, err = reachable(mid); err != nil {
			return 0, err
		}
		if ok {
			lo = mid
		} else {
			hi = mid
		}
	}

	return hi, nil
}

// FirstBlocking finds the first cell in drops whose addition, together with
// every drop before it, disconnects start from goal. It returns that cell and
// its index in drops.
//
// Each probe runs ShortestPath against the prefix drops[:k]; opts are passed
// through unchanged. A drop that lands on start or goal disconnects them.
// Boundary and option errors follow Threshold and ShortestPath.
func FirstBlocking(start, goal Cell, drops []Cell, opts ...Option) (Cell, int, error) {
	log := buildOptions(opts).Logger
	probe := func(k int) (bool, error) {
		blocked := mapset.New[Cell]()
		for _, c := range drops[:k] {
			blocked.Put(c)
		}
		if blocked.Has(start) || blocked.Has(goal) {
			return false, nil
		}
		_, found, err := ShortestPath(start, goal, blocked, opts...)
		if err != nil {
			return false, err
		}
		log.WithFields(logrus.Fields{"prefix": k, "reachable": found}).Debug("gridpath: threshold probe")

		return found, nil
	}

	k, err := Threshold(len(drops), probe)
	if err != nil {
		return Cell{}, 0, err
	}

	return drops[k-1], k - 1, nil
}
