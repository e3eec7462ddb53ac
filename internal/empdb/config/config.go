package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/joho/godotenv"
	"github.com/nsqlite/empdb/internal/empdb/store"
	"github.com/nsqlite/empdb/internal/version"
	"github.com/orsinium-labs/enum"
)

// Format is the way records are printed.
type Format enum.Member[string]

var (
	FormatPlain = Format{Value: "plain"}
	FormatTable = Format{Value: "table"}
	Formats     = enum.New(FormatPlain, FormatTable)
)

// Config represents the configuration for empdb.
type Config struct {
	Mode                 string   `arg:"positional" help:"Mode to run: 1 create table, 2 insert employee, 3 list employees, 4 bulk insert, 5 criteria query"`
	Args                 []string `arg:"positional" help:"Mode arguments, mode 2 expects FULLNAME BIRTHDATE GENDER"`
	Database             string   `arg:"--database,env:EMPDB_DATABASE" help:"Path of the SQLite database file" default:"employees.db"`
	Driver               string   `arg:"--driver,env:EMPDB_DRIVER" help:"SQLite driver (sqlite3, sqlite)" default:"sqlite3"`
	DisableOptimizations bool     `arg:"--disable-optimizations,env:EMPDB_DISABLE_OPTIMIZATIONS" help:"Disable the WAL, synchronous and cache pragmas" default:"false"`
	Format               string   `arg:"--format,env:EMPDB_FORMAT" help:"Record output format (plain, table)" default:"plain"`
	CriteriaGender       string   `arg:"--criteria-gender,env:EMPDB_CRITERIA_GENDER" help:"Gender matched by the criteria query" default:"Male"`
	CriteriaPrefix       string   `arg:"--criteria-prefix,env:EMPDB_CRITERIA_PREFIX" help:"Full name prefix matched by the criteria query" default:"F"`
	BulkCount            int      `arg:"--bulk-count,env:EMPDB_BULK_COUNT" help:"Number of NameN records written by the bulk insert" default:"1000000"`
	BulkMatchingCount    int      `arg:"--bulk-matching-count,env:EMPDB_BULK_MATCHING_COUNT" help:"Number of FN male records written by the bulk insert" default:"100"`
	NoProgress           bool     `arg:"--no-progress,env:EMPDB_NO_PROGRESS" help:"Hide the bulk insert progress bar" default:"false"`
	Verbose              bool     `arg:"-v,--verbose,env:EMPDB_VERBOSE" help:"Write debug logs to stderr" default:"false"`

	ParsedDriver store.Driver `arg:"-"`
	ParsedFormat Format       `arg:"-"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.CLIVersion())
}

// LoadEnv loads environment variables from the given .env files, or from
// ".env" in the working directory when none is given. Variables already set
// are kept and missing files are ignored.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// NewParser returns the go-arg parser filling cfg.
func NewParser(cfg *Config) (*arg.Parser, error) {
	return arg.NewParser(arg.Config{Program: "empdb"}, cfg)
}

// Parse parses and validates the configuration from the command line
// arguments, args[0] being the program name.
//
// arg.ErrHelp and arg.ErrVersion are returned as is together with the
// parser so the caller can print the help or version.
func Parse(args []string) (Config, *arg.Parser, error) {
	cfg := Config{}

	parser, err := NewParser(&cfg)
	if err != nil {
		return cfg, nil, err
	}
	if len(args) > 0 {
		args = args[1:]
	}
	if err := parser.Parse(args); err != nil {
		return cfg, parser, err
	}

	if cfg.ParsedDriver, err = validateDriver(cfg.Driver); err != nil {
		return cfg, parser, err
	}

	if cfg.ParsedFormat, err = validateFormat(cfg.Format); err != nil {
		return cfg, parser, err
	}

	if err := validateCount("bulk count", cfg.BulkCount); err != nil {
		return cfg, parser, err
	}

	if err := validateCount("bulk matching count", cfg.BulkMatchingCount); err != nil {
		return cfg, parser, err
	}

	if cfg.Database == "" {
		return cfg, parser, errors.New("database path must not be empty")
	}

	return cfg, parser, nil
}

// validateDriver validates if name is a supported SQLite driver.
func validateDriver(name string) (store.Driver, error) {
	driver := store.Drivers.Parse(name)
	if driver == nil {
		return store.Driver{}, fmt.Errorf(
			"invalid driver, valid values are: %s",
			strings.Join(enumValues(store.Drivers.Members()), ", "),
		)
	}
	return *driver, nil
}

// validateFormat validates if name is a supported output format.
func validateFormat(name string) (Format, error) {
	format := Formats.Parse(name)
	if format == nil {
		return Format{}, fmt.Errorf(
			"invalid format, valid values are: %s",
			strings.Join(enumValues(Formats.Members()), ", "),
		)
	}
	return *format, nil
}

// validateCount validates if count is not negative.
func validateCount(name string, count int) error {
	if count < 0 {
		return fmt.Errorf("invalid %s, must not be negative", name)
	}
	return nil
}

func enumValues[M ~struct{ Value string }](members []M) []string {
	values := make([]string, 0, len(members))
	for _, m := range members {
		values = append(values, struct{ Value string }(m).Value)
	}
	return values
}
