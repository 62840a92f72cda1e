// Package cmd implements the gallery CLI commands.
//
// A root command dispatches to subcommands (run, snapshot, fonts, version).
// Each subcommand parses its own flags with the standard flag package.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "gallery",
	Short: "Fluent Gallery",
	Long: `Fluent Gallery shows Fluent controls drawn by a small retained widget
toolkit: a bounded number input, a pick list, typography, icons and
theming.

Use "gallery <command> --help" for more information about a command.`,
	Usage: "gallery [--dir DIR] <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var (
	commands = make(map[string]*Command)
	ordered  []*Command
)

// stdout is where commands print results.
var stdout io.Writer = os.Stdout

// projectDir overrides project root discovery when set by --dir.
var projectDir string

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	ordered = append(ordered, cmd)
}

// Execute runs the CLI with args, which exclude the program name. With no
// command it runs the gallery.
func Execute(args []string) error {
	projectDir = ""

	var filtered []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help" || arg == "help":
			if len(filtered) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filtered = append(filtered, arg)
		case arg == "-v" || arg == "--version":
			if len(filtered) == 0 {
				printVersion()
				return nil
			}
			filtered = append(filtered, arg)
		case arg == "--dir" && len(filtered) == 0:
			if i+1 >= len(args) {
				return fmt.Errorf("--dir requires a directory path")
			}
			projectDir = args[i+1]
			i++
		case strings.HasPrefix(arg, "--dir=") && len(filtered) == 0:
			projectDir = strings.TrimPrefix(arg, "--dir=")
		default:
			filtered = append(filtered, arg)
		}
	}
	args = filtered

	if len(args) == 0 {
		args = []string{"run"}
	}

	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", name)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", name)
	}

	for _, arg := range args[1:] {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(args[1:])
}

func printVersion() {
	fmt.Fprintf(stdout, "Fluent Gallery version %s (built %s)\n", Version, BuildTime)
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range ordered {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --dir DIR            Project directory holding gallery.yaml")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Environment:")
	fmt.Fprintln(stdout, "  GALLERY_THEME        light or dark")
	fmt.Fprintln(stdout, "  GALLERY_LOG_LEVEL    trace, debug, info, warn or error")
	fmt.Fprintln(stdout, "  GALLERY_FONT_DIRS    Extra font directories")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  gallery                                 Open the gallery window")
	fmt.Fprintln(stdout, "  gallery snapshot --page /number-input   Render a page to PNG")
	fmt.Fprintln(stdout, "  gallery fonts                           Show which fonts were found")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
