package veloce

// Record is a single decoded JSON object returned by the panel API.
// The panel's responses evolve independently of this SDK, so resource
// operations return untyped records with typed accessors instead of
// fixed structs.
type Record map[string]any

// String returns the value for key as a string, or "" when absent or of
// another type.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Int returns the value for key as an int64. JSON numbers decode as
// float64; they are truncated. Returns 0 when absent or not a number.
func (r Record) Int(key string) int64 {
	switch v := r[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

// Float returns the value for key as a float64, or 0 when absent or not
// a number.
func (r Record) Float(key string) float64 {
	f, _ := r[key].(float64)
	return f
}

// Bool returns the value for key as a bool, or false when absent or of
// another type.
func (r Record) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// Record returns the value for key as a nested Record, or nil.
func (r Record) Record(key string) Record {
	m, _ := r[key].(map[string]any)
	return Record(m)
}

// Records returns the value for key as a slice of Records. Elements that
// are not objects are skipped.
func (r Record) Records(key string) []Record {
	items, _ := r[key].([]any)
	if items == nil {
		return nil
	}
	records := make([]Record, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			records = append(records, Record(m))
		}
	}
	return records
}

// Has reports whether key is present.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}
