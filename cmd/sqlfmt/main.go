package main

import (
	"context"
	"log"
	"os"

	"github.com/pseudomuto/sqlfmt/pkg/cmd"
)

// NB: This is set by GoReleaser during a build.
var version string

func main() {
	if err := cmd.Root(version).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
