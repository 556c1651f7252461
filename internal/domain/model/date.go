package model

import (
	"encoding/json"
	"fmt"
	"time"

	"womens-health-tracker/internal/domain"
)

// DateLayout is the wire form of every date in the persisted store.
const DateLayout = "2006-01-02"

// Date is a naive local calendar date. No timezone semantics: the store
// only ever sees the YYYY-MM-DD string.
type Date struct {
	t time.Time
}

// ParseDate parses a YYYY-MM-DD string. Malformed and impossible dates
// (2024-13-40, Feb 30) both come back as ErrInvalidDate; callers do not
// distinguish the two cases.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, domain.ErrInvalidDate
	}
	return Date{t: t}, nil
}

// MustDate is a test/fixture helper; it panics on an invalid literal.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(fmt.Sprintf("model.MustDate(%q): %v", s, err))
	}
	return d
}

// DateOf truncates a wall-clock time to its local calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) String() string     { return d.t.Format(DateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	p, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("date %q: %w", s, err)
	}
	*d = p
	return nil
}
