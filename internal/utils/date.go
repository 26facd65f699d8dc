package util

import (
	"database/sql/driver"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// LocalDate is a calendar date without a time of day, "2006-01-02" on the wire.
type LocalDate struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewLocalDate(year int, month time.Month, day int) LocalDate {
	return LocalDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseLocalDate(s string) (LocalDate, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDate{Time: t}, nil
}

func (d LocalDate) String() string {
	return d.Format(dateLayout)
}

func (d *LocalDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseLocalDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d LocalDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d LocalDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return datatypes.Date(d.Time).Value()
}

func (d *LocalDate) Scan(value interface{}) error {
	var date datatypes.Date
	if err := date.Scan(value); err != nil {
		return err
	}
	t := time.Time(date)
	if t.IsZero() {
		d.Time = time.Time{}
		return nil
	}
	y, m, dd := t.Date()
	d.Time = time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
	return nil
}
