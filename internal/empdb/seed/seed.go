// Package seed generates the synthetic records written by the bulk insert
// mode.
package seed

import (
	"fmt"
	"time"

	"github.com/nsqlite/empdb/internal/employee"
)

const (
	// DefaultBirthDate is shared by every generated record.
	DefaultBirthDate = "1990-01-01"
	// DefaultRegularCount is the number of "NameN" records.
	DefaultRegularCount = 1_000_000
	// DefaultMatchingCount is the number of "FN" male records.
	DefaultMatchingCount = 100
)

// Config holds the sizes of the generated data set.
type Config struct {
	// RegularCount records are named Name0, Name1, ... and alternate between
	// Male (even index) and Female (odd index).
	RegularCount int
	// MatchingCount records are named F0, F1, ... and are all Male, so they
	// match the default criteria query.
	MatchingCount int
	// BirthDate is used by every record, DefaultBirthDate when empty.
	BirthDate string
	// Now is the instant ages are computed at, time.Now() when zero.
	Now time.Time
}

// DefaultConfig returns the full-size data set configuration.
func DefaultConfig() Config {
	return Config{
		RegularCount:  DefaultRegularCount,
		MatchingCount: DefaultMatchingCount,
		BirthDate:     DefaultBirthDate,
	}
}

// Total returns how many records Generate produces.
func (c Config) Total() int {
	return c.RegularCount + c.MatchingCount
}

// Generate builds the regular records followed by the matching ones.
func Generate(conf Config) ([]employee.Employee, error) {
	if conf.RegularCount < 0 || conf.MatchingCount < 0 {
		return nil, fmt.Errorf(
			"record counts must not be negative, got %d and %d",
			conf.RegularCount, conf.MatchingCount,
		)
	}
	if conf.BirthDate == "" {
		conf.BirthDate = DefaultBirthDate
	}
	if conf.Now.IsZero() {
		conf.Now = time.Now()
	}

	// Every record shares the birth date, so the age is computed once.
	age, err := employee.CalculateAgeAt(conf.BirthDate, conf.Now)
	if err != nil {
		return nil, err
	}

	employees := make([]employee.Employee, 0, conf.Total())
	for i := range conf.RegularCount {
		gender := employee.Male
		if i%2 != 0 {
			gender = employee.Female
		}
		employees = append(employees, employee.Employee{
			FullName:  fmt.Sprintf("Name%d", i),
			BirthDate: conf.BirthDate,
			Gender:    gender.Value,
			Age:       age,
		})
	}

	for i := range conf.MatchingCount {
		employees = append(employees, employee.Employee{
			FullName:  fmt.Sprintf("F%d", i),
			BirthDate: conf.BirthDate,
			Gender:    employee.Male.Value,
			Age:       age,
		})
	}

	return employees, nil
}
