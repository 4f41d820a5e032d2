// Command intake runs the business intake wizard in a terminal and works
// with the profiles it produces.
//
//	intake run [-config file] [-format json|yaml|pretty] [-out path] [-resume path] [-session path]
//	intake schema [-format json|yaml] [-out path]
//	intake validate [-partial] <file>
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitAborted = 130
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "run":
		return runWizard(args[1:], stdout, stderr)
	case "schema":
		return runSchema(args[1:], stdout, stderr)
	case "validate":
		return runValidate(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return exitOK
	}
	fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
	usage(stderr)
	return exitUsage
}

func usage(w io.Writer) {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(w, "Usage: %s <command> [flags]\n\n", name)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run       fill in the business profile interactively")
	fmt.Fprintln(w, "  schema    print the OpenAPI 3 schema of the profile")
	fmt.Fprintln(w, "  validate  check a profile file and list every issue")
}

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
