// Package store provides the SQLite persistence of employee records.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nsqlite/empdb/internal/employee"
	"github.com/nsqlite/empdb/internal/log"
)

const (
	createTableSQL = `
		CREATE TABLE IF NOT EXISTS EMPLOYEE(
			ID INTEGER PRIMARY KEY AUTOINCREMENT,
			FULLNAME TEXT NOT NULL,
			BIRTHDATE TEXT NOT NULL,
			GENDER TEXT NOT NULL,
			AGE INTEGER NOT NULL
		)`

	insertSQL = `INSERT INTO EMPLOYEE (FULLNAME, BIRTHDATE, GENDER, AGE) VALUES (?, ?, ?, ?)`

	selectAllSQL = `
		SELECT ID, FULLNAME, BIRTHDATE, GENDER, AGE
		FROM EMPLOYEE
		ORDER BY FULLNAME`

	selectByCriteriaSQL = `
		SELECT ID, FULLNAME, BIRTHDATE, GENDER, AGE
		FROM EMPLOYEE
		WHERE GENDER = ? AND FULLNAME LIKE ? ESCAPE '\'`

	countSQL = `SELECT COUNT(*) FROM EMPLOYEE`
)

// Config represents the configuration for a Store.
type Config struct {
	// Logger is the shared empdb logger.
	Logger log.Logger
	// Path is the database file, created if it does not exist.
	Path string
	// Driver selects the SQLite driver, DriverMattn when empty.
	Driver Driver
	// DisableOptimizations skips the WAL, synchronous and cache pragmas.
	DisableOptimizations bool
}

// Store owns the single connection to the employees database.
type Store struct {
	Config
	db *sql.DB
}

// Criteria filters employees by exact gender and full name prefix.
type Criteria struct {
	Gender string
	Prefix string
}

// DefaultCriteria returns male employees whose name starts with "F".
func DefaultCriteria() Criteria {
	return Criteria{
		Gender: employee.Male.Value,
		Prefix: "F",
	}
}

// Open opens, creating it if needed, the database file described by config.
func Open(ctx context.Context, config Config) (*Store, error) {
	if !config.Logger.IsInitialized() {
		return nil, errors.New("logger is required")
	}
	if config.Path == "" {
		return nil, &ConnectionError{Err: errors.New("database path is required")}
	}
	if config.Driver.Value == "" {
		config.Driver = DriverMattn
	}
	if Drivers.Parse(config.Driver.Value) == nil {
		return nil, &ConnectionError{
			Path: config.Path,
			Err:  fmt.Errorf("unknown driver %q", config.Driver.Value),
		}
	}

	dsn := createDSN(config.Driver, config.Path, config.DisableOptimizations)
	db, err := sql.Open(config.Driver.Value, dsn)
	if err != nil {
		return nil, &ConnectionError{Path: config.Path, Err: err}
	}

	db.SetConnMaxIdleTime(0)
	db.SetConnMaxLifetime(0)
	db.SetMaxIdleConns(1)
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &ConnectionError{Path: config.Path, Err: err}
	}

	config.Logger.DebugNs(log.NsDatabase, "database opened", log.KV{
		"path":   config.Path,
		"driver": config.Driver.Value,
	})

	return &Store{
		Config: config,
		db:     db,
	}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	s.Logger.DebugNs(log.NsDatabase, "database closed")
	return nil
}

// CreateTable creates the EMPLOYEE table if it does not exist yet.
func (s *Store) CreateTable(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return &SchemaError{Err: err}
	}
	return nil
}

// InsertEmployee inserts a single record.
func (s *Store) InsertEmployee(ctx context.Context, e employee.Employee) error {
	_, err := s.db.ExecContext(
		ctx, insertSQL, e.FullName, e.BirthDate, e.Gender, e.Age,
	)
	if err != nil {
		return &InsertError{FullName: e.FullName, Err: err}
	}
	return nil
}

// InsertEmployees inserts all records in a single transaction, either every
// record is stored or none is.
//
// onInserted, if not nil, is called after each record is written.
func (s *Store) InsertEmployees(
	ctx context.Context, employees []employee.Employee, onInserted func(),
) error {
	start := time.Now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &InsertError{Err: fmt.Errorf("failed to begin transaction: %w", err)}
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return &InsertError{Err: fmt.Errorf("failed to prepare statement: %w", err)}
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range employees {
		_, err := stmt.ExecContext(
			ctx, e.FullName, e.BirthDate, e.Gender, e.Age,
		)
		if err != nil {
			return &InsertError{FullName: e.FullName, Err: err}
		}
		if onInserted != nil {
			onInserted()
		}
	}

	if err := tx.Commit(); err != nil {
		return &InsertError{Err: fmt.Errorf("failed to commit transaction: %w", err)}
	}

	s.Logger.DebugNs(log.NsDatabase, "employees inserted", log.KV{
		"count":    len(employees),
		"duration": time.Since(start).String(),
	})
	return nil
}

// AllEmployees returns every record ordered by full name.
func (s *Store) AllEmployees(ctx context.Context) ([]employee.Employee, error) {
	rows, err := s.db.QueryContext(ctx, selectAllSQL)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	return scanEmployees(rows)
}

// EmployeesByCriteria returns the records whose gender equals c.Gender and
// whose full name starts with c.Prefix. The prefix is matched literally with
// SQLite LIKE, so ASCII letters match regardless of case.
func (s *Store) EmployeesByCriteria(
	ctx context.Context, c Criteria,
) ([]employee.Employee, error) {
	rows, err := s.db.QueryContext(
		ctx, selectByCriteriaSQL, c.Gender, escapeLike(c.Prefix)+"%",
	)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	return scanEmployees(rows)
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, countSQL).Scan(&count); err != nil {
		return 0, &QueryError{Err: err}
	}
	return count, nil
}

// scanEmployees maps (ID, FULLNAME, BIRTHDATE, GENDER, AGE) rows into
// records and closes rows. The ID is discarded.
func scanEmployees(rows *sql.Rows) ([]employee.Employee, error) {
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		var id int64
		var e employee.Employee
		if err := rows.Scan(&id, &e.FullName, &e.BirthDate, &e.Gender, &e.Age); err != nil {
			return nil, &QueryError{Err: fmt.Errorf("error when scanning: %w", err)}
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Err: err}
	}

	return employees, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes the LIKE wildcards in s using '\' as escape character.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
