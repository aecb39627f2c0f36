package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// maxLineBytes caps a single input line; anything longer is a read error.
const maxLineBytes = 1024 * 1024

// systemDirs are the well-known root-level directories always recognized as
// the start of a path.
var systemDirs = []string{
	"/bin", "/boot", "/dev", "/etc", "/home", "/lib", "/lib64",
	"/lost+found", "/mnt", "/opt", "/proc", "/root", "/run",
	"/sbin", "/srv", "/sys", "/tmp", "/usr", "/var",
}

// collectPrefixes returns the escaped prefix list: system directories, then
// every entry of the working directory, then the home marker. A directory
// that cannot be read simply contributes no entries.
func collectPrefixes(cwd string) []string {
	prefixes := make([]string, 0, len(systemDirs)+1)
	for _, dir := range systemDirs {
		prefixes = append(prefixes, regexp.QuoteMeta(dir))
	}

	if entries, err := os.ReadDir(cwd); err == nil {
		for _, entry := range entries {
			prefixes = append(prefixes, regexp.QuoteMeta(entry.Name()))
		}
	}

	prefixes = append(prefixes, regexp.QuoteMeta("~"))
	return prefixes
}

// buildPattern joins the escaped prefixes into the matching grammar: any known
// prefix, optionally followed by a /-led run of characters. The excluded
// characters (whitespace, $, ;, ~, :, ", ESC) are the ones that end a
// shell-displayed path token, so color escapes and trailing punctuation stay
// out of the match.
func buildPattern(prefixes []string) string {
	return `(?:` + strings.Join(prefixes, "|") + `)(?:/[^$\s;~:"\x1b]+)?`
}

// processLine replaces every path match in line with a hyperlink-wrapped copy
// of itself. The visible text is the original match; only the invisible OSC 8
// envelope is added.
func processLine(line string, re *regexp.Regexp, hostname, home, cwd string) string {
	return re.ReplaceAllStringFunc(line, func(matched string) string {
		expanded := matched
		if strings.HasPrefix(matched, "~/") {
			expanded = home + matched[1:]
		}

		absPath := expanded
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(cwd, absPath)
		}

		url := "file://" + hostname + absPath
		return makeHyperlink(url, matched)
	})
}

// makeHyperlink wraps text in an OSC 8 hyperlink escape sequence pointing at url.
func makeHyperlink(url, text string) string {
	return fmt.Sprintf("\x1b]8;;%s\x07%s\x1b]8;;\x07", url, text)
}
