// file: internals/features/users/students/model/grade.go
package model

import (
	"database/sql/driver"
	"fmt"
)

/* =============================================================================
   ENUM-like: Grade level ('K','1st',...,'12th')
   Urutan tetap; angka kelas dipakai untuk rentang game (K=0 .. 12th=12).
============================================================================= */
type Grade string

const (
	GradeK    Grade = "K"
	Grade1st  Grade = "1st"
	Grade2nd  Grade = "2nd"
	Grade3rd  Grade = "3rd"
	Grade4th  Grade = "4th"
	Grade5th  Grade = "5th"
	Grade6th  Grade = "6th"
	Grade7th  Grade = "7th"
	Grade8th  Grade = "8th"
	Grade9th  Grade = "9th"
	Grade10th Grade = "10th"
	Grade11th Grade = "11th"
	Grade12th Grade = "12th"
)

// AllGrades urutan tetap K..12
var AllGrades = []Grade{
	GradeK, Grade1st, Grade2nd, Grade3rd, Grade4th, Grade5th, Grade6th,
	Grade7th, Grade8th, Grade9th, Grade10th, Grade11th, Grade12th,
}

func (g Grade) String() string { return string(g) }

func (g Grade) Valid() bool {
	for _, v := range AllGrades {
		if g == v {
			return true
		}
	}
	return false
}

// Number K=0, 1st=1, ..., 12th=12; -1 jika tidak dikenal.
func (g Grade) Number() int {
	for i, v := range AllGrades {
		if g == v {
			return i
		}
	}
	return -1
}

// sql.Scanner + driver.Valuer (aman saat scan ke enum)
func (g *Grade) Scan(value any) error {
	if value == nil {
		*g = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*g = Grade(v)
	case []byte:
		*g = Grade(string(v))
	default:
		return fmt.Errorf("unsupported type for Grade: %T", value)
	}
	if *g != "" && !g.Valid() {
		return fmt.Errorf("invalid Grade: %q", *g)
	}
	return nil
}

func (g Grade) Value() (driver.Value, error) {
	if g == "" {
		return nil, nil
	}
	if !g.Valid() {
		return nil, fmt.Errorf("invalid Grade: %q", g)
	}
	return string(g), nil
}
