package utils

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component. It maps to a
// DATE column and marshals to "2006-01-02" in JSON.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	return NewDate(time.Now())
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	*d = NewDate(t)
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *Date) Scan(v interface{}) error {
	switch t := v.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = NewDate(t)
	case string:
		return d.UnmarshalJSON([]byte(t))
	default:
		return fmt.Errorf("cannot scan %T into Date", v)
	}
	return nil
}

func (Date) GormDataType() string {
	return "date"
}
