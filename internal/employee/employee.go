// Package employee holds the employee record and the age calculation used
// when a record is created.
package employee

import (
	"fmt"
	"time"

	"github.com/orsinium-labs/enum"
)

// BirthDateLayout is the accepted birth date format (YYYY-MM-DD).
const BirthDateLayout = "2006-01-02"

// secondsPerYear is the average length of a year, leap years included.
const secondsPerYear = 365.25 * 24 * 60 * 60

// Gender is one of the gender values empdb writes itself. Stored records may
// carry any text.
type Gender enum.Member[string]

var (
	Male    = Gender{Value: "Male"}
	Female  = Gender{Value: "Female"}
	Genders = enum.New(Male, Female)
)

// Employee is a single employee record.
//
// Age is computed once when the record is built and is stored as is, it is
// never recomputed from BirthDate afterwards.
type Employee struct {
	FullName  string
	BirthDate string
	Gender    string
	Age       int
}

// New builds an Employee computing its age from birthDate at the current
// time.
func New(fullName, birthDate, gender string) (Employee, error) {
	age, err := CalculateAge(birthDate)
	if err != nil {
		return Employee{}, err
	}

	return Employee{
		FullName:  fullName,
		BirthDate: birthDate,
		Gender:    gender,
		Age:       age,
	}, nil
}

// String returns the record in the "name, birth date, gender, Age: n" form.
func (e Employee) String() string {
	return fmt.Sprintf("%s, %s, %s, Age: %d", e.FullName, e.BirthDate, e.Gender, e.Age)
}

// CalculateAge returns the age in whole years of someone born on birthDate.
func CalculateAge(birthDate string) (int, error) {
	return CalculateAgeAt(birthDate, time.Now())
}

// CalculateAgeAt returns the age in whole years at now of someone born on
// birthDate, parsed as local midnight.
//
// The elapsed seconds are divided by 365.25 days and truncated toward zero,
// so a birth date in the future yields zero or a negative age.
func CalculateAgeAt(birthDate string, now time.Time) (int, error) {
	birth, err := time.ParseInLocation(BirthDateLayout, birthDate, time.Local)
	if err != nil {
		return 0, &ValidationError{Field: "birth date", Value: birthDate, Err: err}
	}

	elapsed := now.Sub(birth).Seconds()
	return int(elapsed / secondsPerYear), nil
}
