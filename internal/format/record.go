package format

import "strconv"

// Record is one loosely-typed entry (order, holding, position, trade)
// decoded from a tool result. Field presence is never guaranteed, so every
// accessor takes an explicit default and is total: absent or mistyped fields
// yield the default instead of failing.
type Record map[string]any

// Str returns the string field for key, or def when absent or non-string.
func (r Record) Str(key, def string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return def
}

// Num returns the numeric field for key, or def when absent or non-numeric.
func (r Record) Num(key string, def float64) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}

// ID returns the field for key rendered as a string. Identifiers arrive as
// either strings or numbers depending on the upstream serializer; numeric
// ids are stringified without a decimal point. Returns def when the field is
// absent or of any other type.
func (r Record) ID(key, def string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	return def
}

// asRecord converts a decoded list element to a Record, if it is an object.
func asRecord(v any) (Record, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Record(m), true
}
