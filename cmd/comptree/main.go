package main

import (
	"comptree/internal/ui/cli"
	"context"
	"os"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
