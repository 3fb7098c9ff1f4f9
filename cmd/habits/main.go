// Command habits is a personal daily habit tracker backed by flat-file
// records in a local directory.
package main

import (
	"os"

	"github.com/ersincine/habit-tracker/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
