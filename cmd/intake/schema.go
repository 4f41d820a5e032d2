package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/goliatone/go-intake/pkg/export"
)

func runSchema(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "json", "output format: json or yaml")
	out := fs.String("out", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	doc, err := export.Schema(context.Background())
	if err != nil {
		fmt.Fprintf(stderr, "schema: %v\n", err)
		return exitFailure
	}
	data, err := export.EncodeSchema(doc, *format)
	if err != nil {
		fmt.Fprintf(stderr, "schema: %v\n", err)
		return exitUsage
	}
	if err := writeOutput(*out, data, stdout); err != nil {
		fmt.Fprintf(stderr, "schema: %v\n", err)
		return exitFailure
	}
	return exitOK
}
