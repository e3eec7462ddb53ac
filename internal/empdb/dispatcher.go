package empdb

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/nsqlite/empdb/internal/empdb/config"
	"github.com/nsqlite/empdb/internal/empdb/progress"
	"github.com/nsqlite/empdb/internal/empdb/seed"
	"github.com/nsqlite/empdb/internal/empdb/store"
	"github.com/nsqlite/empdb/internal/empdb/styled"
	"github.com/nsqlite/empdb/internal/employee"
	"github.com/nsqlite/empdb/internal/log"
	"github.com/nsqlite/empdb/internal/util/numutil"
)

// dispatcher runs a single mode against an open store.
type dispatcher struct {
	conf   config.Config
	store  *store.Store
	stdout io.Writer
	stderr io.Writer
	logger log.Logger
}

func (d *dispatcher) run(ctx context.Context, mode Mode) error {
	switch mode {
	case ModeCreateSchema:
		return d.createSchema(ctx)
	case ModeInsertOne:
		return d.insertOne(ctx, d.conf.Args[0], d.conf.Args[1], d.conf.Args[2])
	case ModeListAll:
		return d.listAll(ctx)
	case ModeBulkInsert:
		return d.bulkInsert(ctx)
	case ModeCriteriaQuery:
		return d.criteriaQuery(ctx)
	}

	return &UsageError{Msg: "Unknown mode."}
}

func (d *dispatcher) createSchema(ctx context.Context) error {
	if err := d.store.CreateTable(ctx); err != nil {
		return err
	}

	fmt.Fprintln(d.stdout, "Table was created.")
	return nil
}

func (d *dispatcher) insertOne(
	ctx context.Context, fullName, birthDate, gender string,
) error {
	e, err := employee.New(fullName, birthDate, gender)
	if err != nil {
		return err
	}

	if err := d.store.InsertEmployee(ctx, e); err != nil {
		return err
	}

	fmt.Fprintln(d.stdout, "Employee was added.")
	return nil
}

func (d *dispatcher) listAll(ctx context.Context) error {
	employees, err := d.store.AllEmployees(ctx)
	if err != nil {
		return err
	}

	d.printEmployees(employees)
	return nil
}

// bulkInsert writes the synthetic data set in one transaction.
func (d *dispatcher) bulkInsert(ctx context.Context) error {
	seedConf := seed.DefaultConfig()
	seedConf.RegularCount = d.conf.BulkCount
	seedConf.MatchingCount = d.conf.BulkMatchingCount

	employees, err := seed.Generate(seedConf)
	if err != nil {
		return err
	}
	total := len(employees)

	var bar *progress.Bar
	if !d.conf.NoProgress {
		bar = progress.NewBar(
			d.stderr,
			fmt.Sprintf("Inserting %s employees", numutil.IntWithCommas(total)),
			total,
		)
	}

	start := time.Now()
	if err := d.store.InsertEmployees(ctx, employees, bar.Inc); err != nil {
		bar.Exit()
		return err
	}
	bar.Finish()

	count, err := d.store.Count(ctx)
	if err != nil {
		return err
	}
	d.logger.DebugNs(log.NsCLI, "bulk insert finished", log.KV{
		"inserted": total,
		"rows":     count,
	})

	if bar != nil {
		styled.DimmedColor(d.stderr).Fprintf(
			d.stderr, "Inserted %s employees in %s\n",
			numutil.IntWithCommas(total), time.Since(start).Round(time.Millisecond),
		)
	}

	fmt.Fprintf(d.stdout, "%d employees were added.\n", total)
	return nil
}

// criteriaQuery times the criteria query and prints the elapsed seconds
// followed by the matching records.
func (d *dispatcher) criteriaQuery(ctx context.Context) error {
	criteria := store.Criteria{
		Gender: d.conf.CriteriaGender,
		Prefix: d.conf.CriteriaPrefix,
	}

	start := time.Now()
	employees, err := d.store.EmployeesByCriteria(ctx, criteria)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	d.logger.InfoNs(log.NsDatabase, "criteria query done", log.KV{
		"gender":  criteria.Gender,
		"prefix":  criteria.Prefix,
		"rows":    len(employees),
		"elapsed": elapsed.String(),
	})

	fmt.Fprintf(d.stdout, "Query executed in %.4f seconds.\n", elapsed.Seconds())
	d.printEmployees(employees)
	return nil
}

func (d *dispatcher) printEmployees(employees []employee.Employee) {
	if d.conf.ParsedFormat == config.FormatTable {
		fmt.Fprintln(d.stdout, styled.EmployeesTable(employees))
		return
	}

	for _, e := range employees {
		fmt.Fprintln(d.stdout, e.String())
	}
}
