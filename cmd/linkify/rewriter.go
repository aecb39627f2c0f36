package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
)

// maxLineBytes caps a single input line; anything longer is a read error.
const maxLineBytes = 1024 * 1024

// pathRunPattern is the optional tail after a recognized prefix: a /-led run
// of characters. The excluded characters (whitespace, $, ;, ~, :, ", ESC) are
// the ones that end a shell-displayed path token, so color escapes and
// trailing punctuation stay out of the match.
const pathRunPattern = `(?:/[^$\s;~:"\x1b]+)?`

// buildPattern joins the catalog into the matching grammar: alternation over
// all escaped prefixes, optionally followed by a path run. Catalog order is
// alternation order.
func buildPattern(c *Catalog) string {
	return `(?:` + strings.Join(c.Prefixes, "|") + `)` + pathRunPattern
}

// Rewriter rewrites recognized path tokens into OSC 8 hyperlink envelopes.
// All fields are fixed at construction; one Rewriter serves the whole stream.
type Rewriter struct {
	re       *regexp.Regexp
	hostname string
	home     string
	cwd      string
}

func newRewriter(c *Catalog, hostname, home, cwd string) (*Rewriter, error) {
	re, err := regexp.Compile(buildPattern(c))
	if err != nil {
		return nil, err
	}
	return &Rewriter{
		re:       re,
		hostname: hostname,
		home:     home,
		cwd:      cwd,
	}, nil
}

// rewriteLine replaces every non-overlapping path match in line with a
// hyperlink-wrapped copy of itself. The visible text is the original match;
// text outside matches passes through byte-for-byte.
func (r *Rewriter) rewriteLine(line string) string {
	return r.re.ReplaceAllStringFunc(line, func(matched string) string {
		expanded := matched
		if strings.HasPrefix(matched, "~/") {
			expanded = r.home + matched[1:]
		}

		absPath := expanded
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(r.cwd, absPath)
		}

		return makeHyperlink(fileURL(r.hostname, absPath), matched)
	})
}

// run copies in to out line by line, rewriting each line. Output is flushed
// after every line so the filter stays transparent when the upstream program
// prints incrementally. The first read or write error ends the stream.
func (r *Rewriter) run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	writer := bufio.NewWriter(out)
	for scanner.Scan() {
		if _, err := writer.WriteString(r.rewriteLine(scanner.Text())); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := writer.Flush(); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}
