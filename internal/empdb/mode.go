package empdb

import (
	"strconv"
	"strings"

	"github.com/orsinium-labs/enum"
)

// Mode is one of the operations selected by the first positional argument.
type Mode enum.Member[int]

var (
	ModeCreateSchema  = Mode{Value: 1}
	ModeInsertOne     = Mode{Value: 2}
	ModeListAll       = Mode{Value: 3}
	ModeBulkInsert    = Mode{Value: 4}
	ModeCriteriaQuery = Mode{Value: 5}

	Modes = enum.New(
		ModeCreateSchema,
		ModeInsertOne,
		ModeListAll,
		ModeBulkInsert,
		ModeCriteriaQuery,
	)
)

// insertOneArgs is the number of extra arguments of ModeInsertOne.
const insertOneArgs = 3

// parseMode validates the mode argument and the number of extra arguments
// it was given.
func parseMode(raw string, args []string) (Mode, error) {
	if strings.TrimSpace(raw) == "" {
		return Mode{}, &UsageError{Msg: "Invalid arguments."}
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Mode{}, &UsageError{Msg: "Unknown mode."}
	}

	mode := Modes.Parse(n)
	if mode == nil {
		return Mode{}, &UsageError{Msg: "Unknown mode."}
	}

	if *mode == ModeInsertOne && len(args) != insertOneArgs {
		return Mode{}, &UsageError{Msg: "Invalid arguments for mode 2."}
	}

	return *mode, nil
}
