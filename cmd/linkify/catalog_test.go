package main

import (
	"os"
	"path/filepath"
	"testing"
)

func mustWriteFile(t *testing.T, path string, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func containsPrefix(c *Catalog, prefix string) bool {
	for _, p := range c.Prefixes {
		if p == prefix {
			return true
		}
	}
	return false
}

func TestBuildCatalogSystemEntriesAndHomeMarker(t *testing.T) {
	tmp := t.TempDir()
	mustWriteFile(t, filepath.Join(tmp, "a.txt"), "")
	if err := os.Mkdir(filepath.Join(tmp, "sub"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	catalog, err := buildCatalog(tmp, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if catalog.Prefixes[0] != "/bin" {
		t.Fatalf("expected /bin first, got %q", catalog.Prefixes[0])
	}
	if !containsPrefix(catalog, `/lost\+found`) {
		t.Fatalf("expected escaped /lost+found in catalog: %v", catalog.Prefixes)
	}
	if !containsPrefix(catalog, `a\.txt`) {
		t.Fatalf("expected escaped a.txt in catalog: %v", catalog.Prefixes)
	}
	if !containsPrefix(catalog, "sub") {
		t.Fatalf("expected sub in catalog: %v", catalog.Prefixes)
	}
	if last := catalog.Prefixes[len(catalog.Prefixes)-1]; last != "~" {
		t.Fatalf("expected ~ last, got %q", last)
	}
}

func TestBuildCatalogUnreadableDirDegrades(t *testing.T) {
	catalog, err := buildCatalog(filepath.Join(t.TempDir(), "missing"), nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(catalog.Prefixes) != len(systemDirs)+1 {
		t.Fatalf("expected system prefixes plus ~, got %d entries", len(catalog.Prefixes))
	}
}

func TestBuildCatalogExcludePatterns(t *testing.T) {
	tmp := t.TempDir()
	mustWriteFile(t, filepath.Join(tmp, "foo.log"), "")
	mustWriteFile(t, filepath.Join(tmp, "bar.txt"), "")

	catalog, err := buildCatalog(tmp, []string{"*.log"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if containsPrefix(catalog, `foo\.log`) {
		t.Fatalf("expected foo.log to be excluded: %v", catalog.Prefixes)
	}
	if !containsPrefix(catalog, `bar\.txt`) {
		t.Fatalf("expected bar.txt to be kept: %v", catalog.Prefixes)
	}
}

func TestBuildCatalogInvalidExcludePattern(t *testing.T) {
	if _, err := buildCatalog(t.TempDir(), []string{"["}, false); err == nil {
		t.Fatalf("expected error for invalid pattern")
	}
}

func TestBuildCatalogSkipGitignored(t *testing.T) {
	tmp := t.TempDir()
	mustWriteFile(t, filepath.Join(tmp, ".gitignore"), "ignored.bin\n")
	mustWriteFile(t, filepath.Join(tmp, "ignored.bin"), "")
	mustWriteFile(t, filepath.Join(tmp, "kept.txt"), "")

	catalog, err := buildCatalog(tmp, nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if containsPrefix(catalog, `ignored\.bin`) {
		t.Fatalf("expected ignored.bin to be skipped: %v", catalog.Prefixes)
	}
	if !containsPrefix(catalog, `kept\.txt`) {
		t.Fatalf("expected kept.txt to be kept: %v", catalog.Prefixes)
	}

	// Without the flag the gitignored entry stays in the catalog.
	catalog, err = buildCatalog(tmp, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !containsPrefix(catalog, `ignored\.bin`) {
		t.Fatalf("expected ignored.bin to be included by default: %v", catalog.Prefixes)
	}
}
