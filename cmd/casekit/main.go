package main

import (
	"os"

	"github.com/msto63/casekit/cmd/casekit/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
