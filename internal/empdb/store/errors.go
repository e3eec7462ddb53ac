package store

import "fmt"

// ConnectionError is returned when the database file cannot be opened.
type ConnectionError struct {
	Path string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot open database %s: %v", e.Path, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// SchemaError is returned when the EMPLOYEE table cannot be created.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("failed to create table: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// InsertError is returned when a record cannot be inserted. FullName is the
// record being inserted, empty when the failure is not tied to one record.
type InsertError struct {
	FullName string
	Err      error
}

func (e *InsertError) Error() string {
	if e.FullName == "" {
		return fmt.Sprintf("failed to insert employees: %v", e.Err)
	}
	return fmt.Sprintf("failed to insert employee %q: %v", e.FullName, e.Err)
}

func (e *InsertError) Unwrap() error { return e.Err }

// QueryError is returned when reading records fails.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("failed to query employees: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
