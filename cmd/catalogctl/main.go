package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cloudmeta/instance-catalog/pkg/cli"
)

func main() {
	if err := cli.New().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
