package store

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/orsinium-labs/enum"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// Driver is a registered database/sql SQLite driver name.
type Driver enum.Member[string]

var (
	// DriverMattn is github.com/mattn/go-sqlite3 (cgo).
	DriverMattn = Driver{Value: "sqlite3"}
	// DriverModernc is modernc.org/sqlite (pure Go).
	DriverModernc = Driver{Value: "sqlite"}

	Drivers = enum.New(DriverMattn, DriverModernc)
)

// uriPathEscaper escapes the characters SQLite gives a meaning to in the
// path part of a "file:" URI.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// createDSN builds the connection string for the given driver. Both drivers
// accept "file:" URIs but spell pragmas differently.
func createDSN(
	driver Driver, dbPath string, disableOptimizations bool,
) string {
	pragmas := [][2]string{
		{"busy_timeout", "5000"},
	}

	if !disableOptimizations {
		pragmas = append(pragmas,
			[2]string{"journal_mode", "WAL"},
			[2]string{"synchronous", "NORMAL"},
			[2]string{"cache_size", "10000"},
		)
	}

	qp := url.Values{}
	for _, p := range pragmas {
		switch driver {
		case DriverModernc:
			qp.Add("_pragma", fmt.Sprintf("%s(%s)", p[0], p[1]))
		default:
			qp.Add("_"+p[0], p[1])
		}
	}

	return fmt.Sprintf("file:%s?%s", uriPathEscaper.Replace(dbPath), qp.Encode())
}
