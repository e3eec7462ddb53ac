package main

import (
	"context"
	"os"

	"github.com/nsqlite/empdb/internal/empdb"
)

func main() {
	if err := empdb.Run(context.Background(), os.Args, os.Stdout, os.Stderr); err != nil {
		empdb.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
