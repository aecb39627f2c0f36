package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"
	ignore "github.com/sabhiram/go-gitignore"
)

// systemDirs are the well-known root-level directories always recognized as
// the start of a path.
var systemDirs = []string{
	"/bin", "/boot", "/dev", "/etc", "/home", "/lib", "/lib64",
	"/lost+found", "/mnt", "/opt", "/proc", "/root", "/run",
	"/sbin", "/srv", "/sys", "/tmp", "/usr", "/var",
}

// Catalog is the ordered list of literal prefixes recognized as path starts.
// Every entry is already regexp-escaped; the list is built once at startup and
// never changes.
type Catalog struct {
	Prefixes []string
}

// entryFilter decides which working-directory entries contribute dynamic
// prefixes to the catalog.
type entryFilter struct {
	patterns  []string
	gitIgnore *ignore.GitIgnore
}

func newEntryFilter(cwd string, patterns []string, skipGitignored bool) (*entryFilter, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	f := &entryFilter{patterns: patterns}

	if skipGitignored {
		gitIgnorePath := filepath.Join(cwd, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			gitIgnore, err := ignore.CompileIgnoreFile(gitIgnorePath)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", gitIgnorePath, err)
			}
			f.gitIgnore = gitIgnore
		}
	}

	return f, nil
}

// shouldInclude returns true if the named entry should contribute a prefix.
func (f *entryFilter) shouldInclude(name string) bool {
	for _, pattern := range f.patterns {
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return false
		}
	}
	if f.gitIgnore != nil && f.gitIgnore.MatchesPath(name) {
		return false
	}
	return true
}

// buildCatalog assembles the prefix list: the system directories, then every
// entry of the working directory that passes the filter, then the home marker.
// A working directory that cannot be listed contributes no dynamic prefixes;
// that is not an error.
func buildCatalog(cwd string, excludePatterns []string, skipGitignored bool) (*Catalog, error) {
	filter, err := newEntryFilter(cwd, excludePatterns, skipGitignored)
	if err != nil {
		return nil, err
	}

	prefixes := make([]string, 0, len(systemDirs)+1)
	for _, dir := range systemDirs {
		prefixes = append(prefixes, regexp.QuoteMeta(dir))
	}

	entries, err := os.ReadDir(cwd)
	if err != nil {
		log.Debug().Err(err).Str("dir", cwd).Msg("could not list working directory")
	} else {
		for _, entry := range entries {
			if filter.shouldInclude(entry.Name()) {
				prefixes = append(prefixes, regexp.QuoteMeta(entry.Name()))
			}
		}
	}

	prefixes = append(prefixes, regexp.QuoteMeta("~"))

	return &Catalog{Prefixes: prefixes}, nil
}
