package client

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for job timestamps. The backend emits naive ISO-8601
// (no zone), which is taken as UTC.
var nullTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// NullTime decodes a timestamp that may be null, empty, zoned or naive.
type NullTime struct {
	T time.Time
}

// String returns the timestamp in RFC3339, or "" when unset.
func (nt NullTime) String() string {
	if nt.T.IsZero() {
		return ""
	}
	return nt.T.Format(time.RFC3339)
}

// UnmarshalJSON implements json.Unmarshaler.
func (nt *NullTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "" || s == "null" || s == `"null"` || s == `""` {
		nt.T = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("failed to parse date: %w", err)
	}
	raw = strings.TrimSpace(raw)
	for _, layout := range nullTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			nt.T = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("failed to parse date %q", raw)
}

// MarshalJSON implements json.Marshaler.
func (nt NullTime) MarshalJSON() ([]byte, error) {
	if nt.T.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(nt.String())
}
