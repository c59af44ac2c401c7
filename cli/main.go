package main

import (
	"context"
	"fmt"
	"os"

	"github.com/usvp-token/usvp-deploy/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background(), cli.NewRootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatFatal(err))
		os.Exit(1)
	}
}
