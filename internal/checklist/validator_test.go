package checklist_test

import (
	"errors"
	"strings"
	"testing"

	"completion-planner/internal/catalog"
	"completion-planner/internal/checklist"
	"completion-planner/internal/patch"
)

func TestThresholdRefinement(t *testing.T) {
	e := newTestEngine(t)
	mustToggle(t, e, "bosses", "[False Knight]")
	mustToggle(t, e, "bosses", "[Gruz Mother]")

	req, err := e.ValidateCheck("shop", "[Sharpened Nail]")
	if err != nil || req != nil {
		t.Fatalf("ValidateCheck(Sharpened Nail) = %v, %v, want satisfied with 250 collected", req, err)
	}

	mustToggle(t, e, "shop", "[Sharpened Nail]")
	if n := counter(t, e, "geoReq"); n != 250 {
		t.Fatalf("geoReq = %v, want 250", n)
	}
	if req, _ := e.ValidateCheck("shop", "[Sharpened Nail]"); req != nil {
		t.Errorf("checked Sharpened Nail reported unmet: %v", req.Any())
	}

	req, err = e.ValidateCheck("shop", "[Channelled Nail]")
	if err != nil {
		t.Fatalf("ValidateCheck(Channelled Nail) error = %v", err)
	}
	if !req.Equal(patch.Map{"geo": patch.Number(250)}) {
		t.Errorf("ValidateCheck(Channelled Nail) = %v, want {geo: 250}", req)
	}

	mustToggle(t, e, "shop", "[Channelled Nail]")
	violations, err := e.ValidateChecks()
	if err != nil {
		t.Fatalf("ValidateChecks() error = %v", err)
	}
	if _, ok := violations["shop"]["[Channelled Nail]"]; !ok {
		t.Errorf("ValidateChecks() = %v, want [Channelled Nail] flagged", violations)
	}

	mustToggle(t, e, "bosses", "[Mantis Lords]")
	violations, err = e.ValidateChecks()
	if err != nil {
		t.Fatalf("ValidateChecks() error = %v", err)
	}
	if violations.Len() != 0 {
		t.Errorf("ValidateChecks() = %v, want none after collecting more geo", violations)
	}
}

func TestValidatorScope(t *testing.T) {
	e := newTestEngine(t)

	req, err := e.ValidateCheck("bosses", "[Hornet]")
	if err != nil || req == nil {
		t.Fatalf("ValidateCheck(Hornet) = %v, %v, want unmet requirement", req, err)
	}

	violations, err := e.ValidateChecks()
	if err != nil {
		t.Fatalf("ValidateChecks() error = %v", err)
	}
	if violations.Len() != 0 {
		t.Errorf("unchecked check reported: %v", violations)
	}

	mustToggle(t, e, "bosses", "[Hornet]")
	violations, err = e.ValidateChecks()
	if err != nil {
		t.Fatalf("ValidateChecks() error = %v", err)
	}
	chk, _ := e.Catalog().Check("bosses", "[Hornet]")
	if got := violations["bosses"]["[Hornet]"]; !got.Equal(chk.Requires) {
		t.Errorf("violation = %v, want %v", got, chk.Requires)
	}

	mustToggle(t, e, "equipment", "[Mothwing Cloak]")
	violations, _ = e.ValidateChecks()
	if violations.Len() != 0 {
		t.Errorf("ValidateChecks() = %v, want none", violations)
	}
}

func TestMonotonicEssenceRequirement(t *testing.T) {
	e := newTestEngine(t)
	mustToggle(t, e, "dreamNail", "[Whispering Root]")
	mustToggle(t, e, "dreamNail", "[Awoken Dream Nail]")
	mustToggle(t, e, "dreamNail", "[Seer Reward]")

	essence := func() checklist.Balance {
		for _, b := range e.Balances() {
			if b.Field == "essence" {
				return b
			}
		}
		t.Fatal("no essence balance")
		return checklist.Balance{}
	}

	if b := essence(); b.Required != 500 || b.Available != 100 {
		t.Errorf("essence balance = %+v, want required 500 available 100", b)
	}

	mustToggle(t, e, "dreamNail", "[Awoken Dream Nail]")
	if b := essence(); b.Required != 500 {
		t.Errorf("essence required after uncheck = %v, want 500", b.Required)
	}

	if err := e.Reset(""); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if b := essence(); b.Required != 0 {
		t.Errorf("essence required after full reset = %v, want 0", b.Required)
	}
}

func TestBalances(t *testing.T) {
	e := newTestEngine(t)
	mustToggle(t, e, "bosses", "[Gruz Mother]")
	mustToggle(t, e, "shop", "[Sharpened Nail]")

	got := e.Balances()
	if len(got) != 2 {
		t.Fatalf("len(Balances()) = %d, want 2", len(got))
	}
	want := checklist.Balance{
		Field: "geo", Label: "[GEO]", Collected: 50, Required: 250,
		Available: -200, Short: true, Consumable: true,
	}
	if got[0] != want {
		t.Errorf("Balances()[0] = %+v, want %+v", got[0], want)
	}
}

func TestValidateCheckIncomparable(t *testing.T) {
	c, err := catalog.Parse([]byte(testCatalog))
	if err != nil {
		t.Fatalf("catalog.Parse() error = %v", err)
	}
	snapshot := checklist.NewState(c).Snapshot()
	chk := catalog.Check{
		Name:     "[Broken]",
		Requires: patch.Map{"essence": patch.Bool(true)},
	}

	if _, err := checklist.ValidateCheck(c.Rules(), snapshot, chk, true); !errors.Is(err, patch.ErrIncomparable) {
		t.Errorf("ValidateCheck() error = %v, want ErrIncomparable", err)
	}
}

func TestFormatViolation(t *testing.T) {
	c, err := catalog.Parse([]byte(testCatalog))
	if err != nil {
		t.Fatalf("catalog.Parse() error = %v", err)
	}

	tests := []struct {
		name    string
		check   string
		req     patch.Map
		want    string
		wantErr error
	}{
		{
			name:  "resource",
			check: "[Channelled Nail]",
			req:   patch.Map{"geo": patch.Number(250)},
			want:  "[Channelled Nail] requires 250 [GEO]",
		},
		{
			name:  "checks across sections",
			check: "[Hornet]",
			req: patch.Map{
				"essence": patch.Number(300),
				"checks": patch.Nested(patch.Map{
					"equipment": patch.Nested(patch.Map{"[Mothwing Cloak]": patch.Nested(patch.Map{"checked": patch.Bool(true)})}),
					"bosses": patch.Nested(patch.Map{
						"[Gruz Mother]":  patch.Nested(patch.Map{"checked": patch.Bool(true)}),
						"[False Knight]": patch.Nested(patch.Map{"checked": patch.Bool(true)}),
					}),
				}),
			},
			want: "[Hornet] requires 300 [ESSENCE], [False Knight], [Gruz Mother] to be defeated; [Mothwing Cloak] to be collected",
		},
		{
			name:    "unknown field",
			check:   "[Hornet]",
			req:     patch.Map{"percent": patch.Number(1)},
			wantErr: checklist.ErrUnformattable,
		},
		{
			name:  "unknown section",
			check: "[Hornet]",
			req: patch.Map{"checks": patch.Nested(patch.Map{
				"spells": patch.Nested(patch.Map{"[Vengeful Spirit]": patch.Nested(patch.Map{})}),
			})},
			wantErr: checklist.ErrUnformattable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checklist.FormatViolation(c, tt.check, tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FormatViolation() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatViolation() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatViolation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatEveryRequirement(t *testing.T) {
	for _, game := range catalog.Games() {
		c, err := catalog.Load(game)
		if err != nil {
			t.Fatalf("catalog.Load(%s) error = %v", game, err)
		}
		for _, sec := range c.Sections {
			for _, chk := range sec.Checks {
				if len(chk.Requires) == 0 {
					continue
				}
				msg, err := checklist.FormatViolation(c, chk.Name, chk.Requires)
				if err != nil {
					t.Errorf("%s/%s: %v", sec.Name, chk.Name, err)
					continue
				}
				if !strings.HasPrefix(msg, chk.Name+" requires ") {
					t.Errorf("%s/%s: message %q", sec.Name, chk.Name, msg)
				}
			}
		}
	}
}

func TestMarkdown(t *testing.T) {
	e := newTestEngine(t)
	mustToggle(t, e, "equipment", "[Mothwing Cloak]")

	md := e.Markdown()
	for _, want := range []string{
		"# hollow-knight\n",
		"Test Knight: 2%\n",
		"## equipment\n\n- [x] [Mothwing Cloak]\n",
		"- [ ] [Hornet]\n",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q:\n%s", want, md)
		}
	}
}
