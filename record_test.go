package veloce

import "testing"

func TestRecordAccessors(t *testing.T) {
	r := Record{
		"name":    "node-1",
		"total":   float64(42),
		"ratio":   1.5,
		"active":  true,
		"config":  map[string]any{"port": float64(443)},
		"users":   []any{map[string]any{"username": "alice"}, "not-an-object"},
		"nothing": nil,
	}

	if got := r.String("name"); got != "node-1" {
		t.Errorf("String(name) = %q", got)
	}
	if got := r.String("missing"); got != "" {
		t.Errorf("String(missing) = %q, want empty", got)
	}
	if got := r.Int("total"); got != 42 {
		t.Errorf("Int(total) = %d, want 42", got)
	}
	if got := r.Int("name"); got != 0 {
		t.Errorf("Int(name) = %d, want 0", got)
	}
	if got := r.Float("ratio"); got != 1.5 {
		t.Errorf("Float(ratio) = %v, want 1.5", got)
	}
	if !r.Bool("active") {
		t.Error("Bool(active) = false")
	}
	if r.Bool("name") {
		t.Error("Bool(name) = true")
	}

	cfg := r.Record("config")
	if cfg == nil || cfg.Int("port") != 443 {
		t.Errorf("Record(config) = %v", cfg)
	}
	if r.Record("name") != nil {
		t.Error("Record(name) != nil")
	}

	users := r.Records("users")
	if len(users) != 1 {
		t.Fatalf("Records(users) len = %d, want 1 (non-objects skipped)", len(users))
	}
	if users[0].String("username") != "alice" {
		t.Errorf("users[0] = %v", users[0])
	}
	if r.Records("missing") != nil {
		t.Error("Records(missing) != nil")
	}

	if !r.Has("nothing") {
		t.Error("Has(nothing) = false, key is present")
	}
	if r.Has("missing") {
		t.Error("Has(missing) = true")
	}
}
