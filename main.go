package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "linkify",
	Short: "Linkify rewrites filesystem paths in piped output into clickable terminal hyperlinks",
	Long: `Linkify is a pass-through filter that reads lines from stdin and wraps
every substring that looks like a filesystem path in an OSC 8 terminal
hyperlink. Everything else, including embedded color escape sequences,
is copied through unchanged. Place it between a path-printing program
and the terminal, e.g.:

  git status | linkify`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "localhost"
		}

		home := os.Getenv("HOME")

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}

		re, err := regexp.Compile(buildPattern(collectPrefixes(cwd)))
		if err != nil {
			return fmt.Errorf("failed to compile path pattern: %w", err)
		}

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for scanner.Scan() {
			if _, err := fmt.Fprintln(os.Stdout, processLine(scanner.Text(), re, hostname, home, cwd)); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
