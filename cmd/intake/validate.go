package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-intake/pkg/export"
	"github.com/goliatone/go-intake/pkg/profile"
)

func runValidate(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	partial := fs.Bool("partial", false, "accept profiles with topics still missing")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "validate: expected exactly one file")
		return exitUsage
	}
	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "validate: %v\n", err)
		return exitFailure
	}
	p, err := export.Decode(data)
	if err != nil {
		fmt.Fprintf(stderr, "validate: %s: %v\n", path, err)
		return exitFailure
	}

	failed := false
	if !*partial {
		for _, topic := range profile.Topics() {
			if !p.Has(topic.Key) {
				fmt.Fprintf(stdout, "%s: tópico não preenchido (%s)\n", topic.Key, topic.Title)
				failed = true
			}
		}
	}

	result := p.Validate()
	byField := result.ByField()
	for _, field := range result.Paths() {
		for _, msg := range byField[field] {
			fmt.Fprintf(stdout, "%s: %s\n", field, msg)
		}
	}
	if failed || !result.Valid {
		return exitFailure
	}
	fmt.Fprintf(stdout, "%s: perfil válido (%d/%d tópicos)\n", path, p.Len(), profile.TopicCount)
	return exitOK
}
