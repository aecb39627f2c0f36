package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var hostnameOverride string
var excludePatterns []string
var skipGitignored bool
var showCatalog bool

var rootCmd = &cobra.Command{
	Use:   "linkify",
	Short: "Linkify rewrites filesystem paths in piped output into clickable terminal hyperlinks",
	Long: `Linkify is a pass-through filter that reads lines from stdin and wraps
every substring that looks like a filesystem path in an OSC 8 terminal
hyperlink (the escape sequence iTerm2, Windows Terminal, GNOME Terminal
and friends turn into a clickable link). Everything else, including
embedded color escape sequences, is copied through unchanged, so the
visible output of the upstream program does not change.

A path is recognized when it starts with a well-known system directory
(/etc, /usr, /tmp, ...), with the name of an entry in the current
working directory, or with ~. Relative matches are resolved against the
working directory and ~/ against $HOME when building the file:// URL.

Typical use:

  git status | linkify
  make 2>&1 | linkify`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		hostname := hostnameOverride
		if hostname == "" {
			hostname = lookupHostname()
		}

		home := os.Getenv("HOME")

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}

		catalog, err := buildCatalog(cwd, excludePatterns, skipGitignored)
		if err != nil {
			return err
		}

		rewriter, err := newRewriter(catalog, hostname, home, cwd)
		if err != nil {
			return fmt.Errorf("failed to compile path pattern: %w", err)
		}

		if showCatalog {
			return writeCatalogDump(os.Stdout, rewriter, catalog)
		}

		log.Debug().
			Str("hostname", hostname).
			Str("cwd", cwd).
			Int("prefixes", len(catalog.Prefixes)).
			Msg("starting filter")

		return rewriter.run(os.Stdin, os.Stdout)
	},
}

// lookupHostname returns the machine hostname, or "localhost" when the lookup
// fails. The failure is never surfaced.
func lookupHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return hostname
}

func init() {
	rootCmd.Flags().StringVar(&hostnameOverride, "hostname", "", "Hostname used in file:// URLs (default: system hostname)")
	rootCmd.Flags().StringArrayVarP(&excludePatterns, "exclude", "e", nil, "Glob pattern for working-directory entries to leave out of path detection (repeatable)")
	rootCmd.Flags().BoolVar(&skipGitignored, "skip-gitignored", false, "Leave entries matched by the working directory's .gitignore out of path detection")
	rootCmd.Flags().BoolVar(&showCatalog, "show-catalog", false, "Print the effective prefix catalog as YAML and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
