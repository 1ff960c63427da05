package patch

import (
	"fmt"
	"slices"
)

// Op selects whether a delta is applied or reversed.
type Op uint8

const (
	Add Op = iota + 1
	Sub
)

func (op Op) String() string {
	if op == Sub {
		return "sub"
	}
	return "add"
}

// Apply folds delta into state in place.
//
// Numbers are added or subtracted. Booleans are OR-ed on Add and cleared on Sub
// only when both sides are true. Lists grow on Add and are left untouched on
// Sub, so their maximum never decreases. Maps recurse. Every key of delta must
// already exist in state with the same kind, otherwise ErrShape is returned and
// state may be partially updated.
func Apply(state, delta Map, op Op) error {
	for _, key := range delta.Keys() {
		d := delta[key]
		cur, ok := state[key]
		if !ok {
			return fmt.Errorf("%w: unknown field %q", ErrShape, key)
		}
		if cur.kind != d.kind {
			return fmt.Errorf("%w: %q holds %s, delta is %s", ErrShape, key, cur.kind, d.kind)
		}

		switch d.kind {
		case KindNumber:
			if op == Sub {
				cur.num -= d.num
			} else {
				cur.num += d.num
			}
		case KindBool:
			if op == Sub {
				cur.b = cur.b && !d.b
			} else {
				cur.b = cur.b || d.b
			}
		case KindList:
			if op == Add {
				grown, err := appendSorted(cur.list, d.list)
				if err != nil {
					return fmt.Errorf("%s: %w", key, err)
				}
				cur.list = grown
			}
		case KindMap:
			if err := Apply(cur.m, d.m, op); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			continue
		default:
			return fmt.Errorf("%w: %s delta for %q", ErrShape, d.kind, key)
		}
		state[key] = cur
	}
	return nil
}

// appendSorted returns a new slice holding have and extra in ascending order, so
// that the result does not depend on the order deltas were applied in.
func appendSorted(have, extra []Value) ([]Value, error) {
	out := make([]Value, 0, len(have)+len(extra))
	out = append(out, have...)
	for _, it := range extra {
		if it.kind == KindList || it.kind == KindMap || it.kind == KindInvalid {
			return nil, fmt.Errorf("%w: list delta holds %s", ErrShape, it.kind)
		}
		out = append(out, it)
	}
	slices.SortStableFunc(out, compareLeaves)
	return out, nil
}

func compareLeaves(a, b Value) int {
	if a.kind != b.kind {
		return int(a.kind) - int(b.kind)
	}
	switch a.kind {
	case KindNumber:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
	case KindBool:
		switch {
		case !a.b && b.b:
			return -1
		case a.b && !b.b:
			return 1
		}
	case KindString:
		switch {
		case a.str < b.str:
			return -1
		case a.str > b.str:
			return 1
		}
	}
	return 0
}
