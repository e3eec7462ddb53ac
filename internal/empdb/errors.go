package empdb

import (
	"errors"
	"fmt"
	"io"

	"github.com/nsqlite/empdb/internal/empdb/styled"
)

// UsageError is returned for missing or malformed command line arguments
// and unknown modes. Nothing is read from or written to the database when
// it is returned.
type UsageError struct {
	Msg string
	Err error
}

func (e *UsageError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s %v", e.Msg, e.Err)
}

func (e *UsageError) Unwrap() error { return e.Err }

// PrintError writes err to w the way the CLI reports it: usage errors as is,
// anything else behind an "Error:" prefix.
func PrintError(w io.Writer, err error) {
	var uerr *UsageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(w, uerr.Error())
		return
	}

	styled.ErrorColor(w).Fprint(w, "Error:")
	fmt.Fprintf(w, " %v\n", err)
}
