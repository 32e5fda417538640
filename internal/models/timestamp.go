package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimestampLayout is the wire format for all timestamps: UTC, millisecond precision
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp wraps time.Time so it scans from Postgres and marshals as TimestampLayout
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON renders the timestamp in UTC with millisecond precision
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(TimestampLayout) + `"`), nil
}

// UnmarshalJSON accepts TimestampLayout as well as RFC 3339
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		t.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid timestamp %s", s)
	}
	s = s[1 : len(s)-1]
	parsed, err := time.Parse(TimestampLayout, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}

// Scan implements sql.Scanner
func (t *Timestamp) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		t.Time = time.Time{}
	case time.Time:
		t.Time = v
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", value)
	}
	return nil
}

// Value implements driver.Valuer
func (t Timestamp) Value() (driver.Value, error) {
	return t.Time, nil
}
