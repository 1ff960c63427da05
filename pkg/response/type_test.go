package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"completion-planner/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.Local)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-05-01 15:30:00"` {
		t.Errorf("expected \"2024-05-01 15:30:00\", got %s", b)
	}

	got, err := json.Marshal(struct {
		At response.DateTime `json:"at"`
	}{At: response.DateTime(tm.UTC())})
	if err != nil {
		t.Fatalf("unexpected error marshaling struct: %v", err)
	}
	if string(got) != `{"at":"2024-05-01 15:30:00"}` {
		t.Errorf("expected UTC input rendered in local time, got %s", got)
	}
}
