package models

import (
	"bytes"
	"time"
)

// Status is the two-value lifecycle state shared by all entities.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Valid reports whether s is one of the two allowed values.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Gender is an optional student attribute.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Valid reports whether g is empty or one of the allowed values.
func (g Gender) Valid() bool {
	switch g {
	case "", GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

const dateLayout = "2006-01-02"

// Date is a civil date with an explicit absent state (the zero value). It
// marshals to the yyyy-mm-dd form the UI exchanges, and unmarshals leniently:
// null, empty, or malformed input all decode to the zero value so a bad
// optional field never fails a read.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day.
func NewDate(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day in UTC.
func Today() Date {
	return NewDate(time.Now().UTC())
}

// ParseDate parses the yyyy-mm-dd form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// MustDate is a test and seed-data helper; it panics on malformed input.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	trimmed := bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*d = Date{}
		return nil
	}
	parsed, err := time.Parse(dateLayout, string(trimmed))
	if err != nil {
		*d = Date{}
		return nil
	}
	*d = Date{parsed}
	return nil
}
