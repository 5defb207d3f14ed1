package main

import (
	"os"
	"priority-task-list/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}
