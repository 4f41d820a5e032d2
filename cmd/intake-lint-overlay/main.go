package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goliatone/go-intake/pkg/profile"
	"github.com/goliatone/go-intake/pkg/uischema"
)

func main() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %s [dirs...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(out, "\nLint prompt overlay directories against the intake record types.\n")
		fmt.Fprintf(out, "Without arguments the embedded overlay is checked.\n")
	}
	flag.Parse()
	os.Exit(lint(flag.Args(), os.Stderr))
}

func lint(dirs []string, stderr io.Writer) int {
	var violations []uischema.Violation
	if len(dirs) == 0 {
		store, err := uischema.Default()
		if err != nil {
			fmt.Fprintf(stderr, "lint embedded overlay: %v\n", err)
			return 1
		}
		violations = check(store)
	}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil {
			fmt.Fprintf(stderr, "lint %s: %v\n", dir, err)
			return 1
		}
		if !info.IsDir() {
			fmt.Fprintf(stderr, "lint %s: expected a directory\n", dir)
			return 1
		}
		store, err := uischema.LoadFS(os.DirFS(dir))
		if err != nil {
			fmt.Fprintf(stderr, "lint %s: %v\n", dir, err)
			return 1
		}
		for _, v := range check(store) {
			v.Source = filepath.Join(dir, v.Source)
			violations = append(violations, v)
		}
	}

	for _, v := range violations {
		fmt.Fprintln(stderr, v.String())
	}
	if len(violations) > 0 {
		return 1
	}
	return 0
}

func check(store *uischema.Store) []uischema.Violation {
	records := make(map[string]any, profile.TopicCount)
	for _, topic := range profile.Topics() {
		if record, ok := profile.Blank(topic.Key); ok {
			records[string(topic.Key)] = record
		}
	}
	return store.Check(records,
		uischema.WithOptionSets(func(set string) bool { return len(profile.Options(set)) > 0 }),
		uischema.WithOptionSources("serviceNames"),
	)
}
