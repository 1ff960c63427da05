package patch

import "fmt"

// Compare reports whether actual satisfies the partial description expected.
//
// Every key of expected must exist in actual. Lists match when every expected
// element is contained in the actual list, nested maps recurse, booleans must
// be equal and numbers match when actual >= expected. An empty expected map
// always matches. Any other pairing of leaves yields ErrIncomparable.
func Compare(actual, expected Map) (bool, error) {
	for _, key := range expected.Keys() {
		act, ok := actual[key]
		if !ok {
			return false, nil
		}
		match, err := compareValue(act, expected[key])
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		if !match {
			return false, nil
		}
	}
	return true, nil
}

func compareValue(act, exp Value) (bool, error) {
	switch exp.kind {
	case KindList:
		if act.kind != KindList {
			return false, fmt.Errorf("%w: %s against list", ErrIncomparable, act.kind)
		}
		return containsAll(act.list, exp.list), nil
	case KindMap:
		if act.kind != KindMap {
			return false, fmt.Errorf("%w: %s against map", ErrIncomparable, act.kind)
		}
		return Compare(act.m, exp.m)
	case KindBool:
		if act.kind == KindBool {
			return act.b == exp.b, nil
		}
	case KindNumber:
		if act.kind == KindNumber {
			return act.num >= exp.num, nil
		}
	}
	return false, fmt.Errorf("%w: %s against %s", ErrIncomparable, act.kind, exp.kind)
}

func containsAll(have, want []Value) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h.Equal(w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
