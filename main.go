package main

import (
	"context"
	"os"

	"tesla-notes/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
