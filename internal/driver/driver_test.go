package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"schemat/internal/driver"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func resultFor(t *testing.T, results []driver.Result, path string) driver.Result {
	t.Helper()
	for _, r := range results {
		if r.Path == path {
			return r
		}
	}
	t.Fatalf("no result for %s in %v", path, results)
	return driver.Result{}
}

func TestFormatPaths_RewritesFiles(t *testing.T) {
	dir := t.TempDir()
	messy := writeFile(t, dir, "messy.scm", "( define   x 1 )\n")
	clean := writeFile(t, dir, "clean.scm", "(define y 2)\n")

	results, err := driver.FormatPaths(context.Background(), []string{dir}, driver.Options{})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	if r := resultFor(t, results, messy); !r.Changed || r.Err != nil {
		t.Errorf("messy: changed=%v err=%v", r.Changed, r.Err)
	}
	if r := resultFor(t, results, clean); r.Changed || r.Err != nil {
		t.Errorf("clean: changed=%v err=%v", r.Changed, r.Err)
	}

	data, err := os.ReadFile(messy)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "(define x 1)\n" {
		t.Errorf("rewritten content = %q", data)
	}
}

func TestFormatPaths_CheckLeavesFilesAlone(t *testing.T) {
	dir := t.TempDir()
	const original = "( define   x 1 )\n"
	path := writeFile(t, dir, "messy.scm", original)

	results, err := driver.FormatPaths(context.Background(), []string{path}, driver.Options{Check: true})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if r := resultFor(t, results, path); !r.Changed {
		t.Error("expected Changed for non-canonical file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != original {
		t.Errorf("check mode modified the file: %q", data)
	}
}

func TestFormatPaths_Stdout(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "in.scm", "(a   b)")

	results, err := driver.FormatPaths(context.Background(), []string{path}, driver.Options{Stdout: true})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	r := resultFor(t, results, path)
	if string(r.Formatted) != "(a b)\n" {
		t.Errorf("formatted = %q", r.Formatted)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "(a   b)" {
		t.Errorf("stdout mode modified the file: %q", data)
	}
}

func TestFormatPaths_ParseErrorIsPerFile(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.scm", "(a (b)\n")
	good := writeFile(t, dir, "good.scm", "(ok)\n")

	results, err := driver.FormatPaths(context.Background(), []string{dir}, driver.Options{})
	if err != nil {
		t.Fatalf("run-level error: %v", err)
	}
	if r := resultFor(t, results, bad); r.Err == nil {
		t.Error("expected parse error for bad.scm")
	}
	if r := resultFor(t, results, good); r.Err != nil {
		t.Errorf("good.scm: %v", r.Err)
	}
}

func TestFormatPaths_NoSources(t *testing.T) {
	if _, err := driver.FormatPaths(context.Background(), []string{t.TempDir()}, driver.Options{}); err == nil {
		t.Error("expected error for empty directory")
	}
}

func TestCollectSourceFiles_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.scm", "(b)")
	writeFile(t, dir, "a.sld", "(a)")
	writeFile(t, dir, "notes.txt", "skip")
	writeFile(t, dir, filepath.Join("vendor", "dep.scm"), "(v)")
	writeFile(t, dir, "gen_out.scm", "(g)")

	files, err := driver.CollectSourceFiles(context.Background(), []string{dir}, nil, []string{"vendor", "gen_*.scm"})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := []string{filepath.Join(dir, "a.sld"), filepath.Join(dir, "b.scm")}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestCollectSourceFiles_ExplicitFileAnyExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "script.lisp", "(x)")

	files, err := driver.CollectSourceFiles(context.Background(), []string{path}, nil, nil)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("files = %v", files)
	}
}

func TestCollectSourceFiles_GlobPattern(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.scm", "(a)")
	writeFile(t, dir, "b.sld", "(b)")

	files, err := driver.CollectSourceFiles(context.Background(), []string{filepath.Join(dir, "*.scm")}, nil, nil)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(files) != 1 || files[0] != a {
		t.Errorf("files = %v, want [%s]", files, a)
	}
}

func TestFormatPaths_CacheSkipsCanonicalFiles(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	dir := t.TempDir()
	path := writeFile(t, dir, "f.scm", "( a   b )\n")
	opts := driver.Options{Cache: cache}

	results, err := driver.FormatPaths(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if r := resultFor(t, results, path); !r.Changed || r.Skipped {
		t.Errorf("first run: changed=%v skipped=%v", r.Changed, r.Skipped)
	}

	results, err = driver.FormatPaths(context.Background(), []string{path}, opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if r := resultFor(t, results, path); !r.Skipped {
		t.Error("second run should hit the cache")
	}

	// A different width invalidates the entry.
	results, err = driver.FormatPaths(context.Background(), []string{path}, driver.Options{Cache: cache, MaxWidth: 40})
	if err != nil {
		t.Fatalf("third run: %v", err)
	}
	if r := resultFor(t, results, path); r.Skipped {
		t.Error("width change must bypass the cache")
	}
}

func TestFormatPaths_ObserverSeesEveryFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.scm", "(a)\n")
	writeFile(t, dir, "b.scm", "(b)\n")

	var seen []string
	_, err := driver.FormatPaths(context.Background(), []string{dir}, driver.Options{
		Jobs: 2,
		Observer: func(r driver.Result) {
			seen = append(seen, r.Path)
		},
	})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if len(seen) != 2 {
		t.Errorf("observer saw %d files, want 2", len(seen))
	}
}
