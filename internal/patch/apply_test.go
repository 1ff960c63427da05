package patch_test

import (
	"errors"
	"testing"

	"completion-planner/internal/patch"
)

func newState() patch.Map {
	return patch.Map{
		"percent":    patch.Number(0),
		"geo":        patch.Number(100),
		"essenceReq": patch.Numbers(0),
		"flag":       patch.Bool(false),
		"nested": patch.Nested(patch.Map{
			"count": patch.Number(1),
		}),
	}
}

func TestApplyRoundTrip(t *testing.T) {
	state := newState()
	delta := patch.Map{
		"percent": patch.Number(1),
		"geo":     patch.Number(-30),
		"flag":    patch.Bool(true),
		"nested":  patch.Nested(patch.Map{"count": patch.Number(2)}),
	}

	if err := patch.Apply(state, delta, patch.Add); err != nil {
		t.Fatalf("Apply(Add) error = %v", err)
	}
	if n, _ := state["geo"].Num(); n != 70 {
		t.Errorf("geo = %v, want 70", n)
	}
	if b, _ := state["flag"].Flag(); !b {
		t.Error("flag = false, want true")
	}
	if n, _ := state.Lookup("nested", "count"); !n.Equal(patch.Number(3)) {
		t.Errorf("nested.count = %v, want 3", n)
	}

	if err := patch.Apply(state, delta, patch.Sub); err != nil {
		t.Fatalf("Apply(Sub) error = %v", err)
	}
	if !state.Equal(newState()) {
		t.Errorf("state after round trip = %v, want %v", state.Any(), newState().Any())
	}
}

func TestApplyBoolParity(t *testing.T) {
	tests := []struct {
		name  string
		state bool
		delta bool
		op    patch.Op
		want  bool
	}{
		{"add true", false, true, patch.Add, true},
		{"add false keeps", true, false, patch.Add, true},
		{"sub true clears", true, true, patch.Sub, false},
		{"sub false keeps", true, false, patch.Sub, true},
		{"sub on unset", false, true, patch.Sub, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := patch.Map{"f": patch.Bool(tt.state)}
			if err := patch.Apply(state, patch.Map{"f": patch.Bool(tt.delta)}, tt.op); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if got, _ := state["f"].Flag(); got != tt.want {
				t.Errorf("f = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyListKeepsMaximum(t *testing.T) {
	state := newState()
	for _, n := range []float64{500, 300} {
		if err := patch.Apply(state, patch.Map{"essenceReq": patch.Numbers(n)}, patch.Add); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
	}
	if err := patch.Apply(state, patch.Map{"essenceReq": patch.Numbers(500)}, patch.Sub); err != nil {
		t.Fatalf("Apply(Sub) error = %v", err)
	}

	if hi, _ := state.Number("essenceReq"); hi != 500 {
		t.Errorf("essenceReq max = %v, want 500", hi)
	}
	if !state["essenceReq"].Equal(patch.Numbers(0, 300, 500)) {
		t.Errorf("essenceReq = %v, want sorted [0 300 500]", state["essenceReq"].Any())
	}
}

func TestApplyListOrderIndependent(t *testing.T) {
	a, b := newState(), newState()
	first := patch.Map{"essenceReq": patch.Numbers(700)}
	second := patch.Map{"essenceReq": patch.Numbers(200)}

	_ = patch.Apply(a, first, patch.Add)
	_ = patch.Apply(a, second, patch.Add)
	_ = patch.Apply(b, second, patch.Add)
	_ = patch.Apply(b, first, patch.Add)

	if !a.Equal(b) {
		t.Errorf("states differ: %v vs %v", a.Any(), b.Any())
	}
}

func TestApplyShapeErrors(t *testing.T) {
	tests := []struct {
		name  string
		delta patch.Map
	}{
		{"unknown field", patch.Map{"mana": patch.Number(1)}},
		{"kind mismatch", patch.Map{"geo": patch.Bool(true)}},
		{"nested unknown", patch.Map{"nested": patch.Nested(patch.Map{"other": patch.Number(1)})}},
		{"string delta", patch.Map{"name": patch.String("x")}},
		{"nested list element", patch.Map{"essenceReq": patch.List(patch.Numbers(1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newState()
			state["name"] = patch.String("")
			if err := patch.Apply(state, tt.delta, patch.Add); !errors.Is(err, patch.ErrShape) {
				t.Errorf("Apply() error = %v, want ErrShape", err)
			}
		})
	}
}
