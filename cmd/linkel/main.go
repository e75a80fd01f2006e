package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pthm/linkel"
	"github.com/pthm/linkel/lib/dom"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "render":
		if err := runRender(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("linkel version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`linkel - canonical hyperlink component

Usage:
  linkel <command> [arguments]

Commands:
  render <file>         Parse an HTML fragment, upgrade cmp-link elements,
                        and print the rendered markup
  version               Print version
  help                  Show this help

Options for render:
  --verbose             Log element upgrades and mutation delivery

Examples:
  linkel render page.html            Render a fragment to stdout
  linkel render --verbose page.html  Render with mutation tracing`)
}

func runRender(args []string) error {
	var verbose bool
	var files []string

	for _, arg := range args {
		if arg == "--verbose" {
			verbose = true
		} else {
			files = append(files, arg)
		}
	}

	if len(files) != 1 {
		return fmt.Errorf("render expects exactly one file argument")
	}

	markup, err := os.ReadFile(files[0])
	if err != nil {
		return err
	}

	var opts []dom.Option
	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer log.Sync()
		opts = append(opts, dom.WithLogger(log))
	}

	reg := dom.NewRegistry()
	if _, err := linkel.Register(reg); err != nil {
		return err
	}

	doc := dom.NewDocument(reg, opts...)
	nodes, err := doc.ParseFragment(string(markup))
	if err != nil {
		return err
	}

	// Run mounts and the resulting render passes to quiescence before
	// serializing.
	doc.Scheduler().Flush()

	fmt.Println(dom.SerializeFragment(nodes))
	return nil
}
