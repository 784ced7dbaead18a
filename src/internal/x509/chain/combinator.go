// Copyright (c) 2026 The x509verify Authors. All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

// step pairs a thunk with whether it should run at all; combine/sequence
// skip inactive steps entirely rather than running them and discarding an
// empty result, so a disabled check never appears in the evaluation order.
type step struct {
	active bool
	run    func() []Reason
}

// combine is the exhaustion combinator of §4.7. It evaluates first; if
// that yields nothing, second runs unconditionally (there is nothing to
// short-circuit). If first already failed, second still runs when
// exhaustive is true, with its reasons appended; otherwise first's reasons
// are returned alone and second is never invoked.
func combine(exhaustive bool, first, second func() []Reason) []Reason {
	r1 := first()
	if len(r1) == 0 {
		return second()
	}
	if exhaustive {
		return append(r1, second()...)
	}
	return r1
}

// sequence folds combine over an ordered list of steps, skipping inactive
// ones. It is the exhaustiveList of §4.7, used wherever a fixed group of
// independent checks needs to run in a stated order under one exhaustion
// mode — the leaf phase's name/version/key-usage/EKU checks, for instance.
func sequence(exhaustive bool, steps []step) []Reason {
	var result func(i int) []Reason
	result = func(i int) []Reason {
		if i >= len(steps) {
			return nil
		}
		s := steps[i]
		if !s.active {
			return result(i + 1)
		}
		return combine(exhaustive, s.run, func() []Reason { return result(i + 1) })
	}
	return result(0)
}
