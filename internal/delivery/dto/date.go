package dto

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format of calendar dates such as a patient's birthday.
const DateLayout = "2006-01-02"

// Date is a calendar date carried as "YYYY-MM-DD". RFC 3339 timestamps are
// accepted on input and truncated to their date.
type Date time.Time

func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func (d Date) Time() time.Time {
	return time.Time(d)
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if raw == "" {
		*d = Date{}
		return nil
	}

	if t, err := time.Parse(DateLayout, raw); err == nil {
		*d = Date(t)
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("date %q is not in %s format", raw, DateLayout)
	}
	*d = NewDate(t.Year(), t.Month(), t.Day())
	return nil
}
