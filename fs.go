package tagmatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// FS is an in-memory set of generated files that supports batch-writing its
// contents to the real filesystem, or batch-comparing its contents to the real
// filesystem. Its intended use is for `go generate`-style generators whose
// results are committed to version control.
//
// In such cases, the normal behavior of a generator is to write files to disk,
// but in CI, that behavior should change to verify that what is already on disk
// is identical to the results of code generation. FS supports these related
// behaviors through its Write() and Verify() methods, respectively.
//
// Files may not be removed once added. A path conflict on Add or Merge is an
// error.
type FS struct {
	mu    sync.Mutex
	files map[string]File
}

// NewFS creates a new FS, ready for use.
func NewFS() *FS {
	return &FS{
		files: make(map[string]File),
	}
}

// Len reports the number of files in the FS.
func (wd *FS) Len() int {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	return len(wd.files)
}

// Verify checks the contents of each file against the filesystem. It emits an error
// if any of its contained files differ.
//
// If the provided prefix path is non-empty, it will be prepended to all file
// entries in the map for writing. prefix may be an absolute path.
func (wd *FS) Verify(ctx context.Context, prefix string) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(12)

	var rmu sync.Mutex
	var result *multierror.Error
	record := func(err error) {
		rmu.Lock()
		result = multierror.Append(result, err)
		rmu.Unlock()
	}

	for _, item := range wd.sorted() {
		g.Go(func() error {
			ipath := filepath.Join(prefix, item.RelativePath)
			if _, err := os.Stat(ipath); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					record(fmt.Errorf("%s: generated file should exist, but does not", ipath))
					return nil
				}
				return fmt.Errorf("%s: could not stat generated file: %w", ipath, err)
			}

			ob, err := os.ReadFile(ipath) //nolint:gosec
			if err != nil {
				return fmt.Errorf("%s: error reading file: %w", ipath, err)
			}
			if dstr := cmp.Diff(string(ob), string(item.Data)); dstr != "" {
				record(fmt.Errorf("%s would have changed:\n\n%s", ipath, dstr))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("io error while verifying tree: %w", err)
	}

	return result.ErrorOrNil()
}

// Write writes all of the files to their indicated paths.
//
// If the provided prefix path is non-empty, it will be prepended to all file
// entries in the map for writing. prefix may be an absolute path.
func (wd *FS) Write(ctx context.Context, prefix string) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(12)

	for _, item := range wd.sorted() {
		g.Go(func() error {
			path := filepath.Join(prefix, item.RelativePath)
			if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
				return fmt.Errorf("%s: failed to ensure parent directory exists: %w", path, err)
			}

			if err := os.WriteFile(path, item.Data, 0644); err != nil {
				return fmt.Errorf("%s: error while writing file: %w", path, err)
			}
			return nil
		})
	}

	return g.Wait()
}

func (wd *FS) sorted() Files {
	sl := make(Files, 0, len(wd.files))
	for _, f := range wd.files {
		sl = append(sl, f)
	}
	sort.Slice(sl, func(i, j int) bool {
		return sl[i].RelativePath < sl[j].RelativePath
	})
	return sl
}

// AsFiles returns the contents of the FS as a Files, sorted by path.
func (wd *FS) AsFiles() Files {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	return wd.sorted()
}

// Add validates the given files and adds them to the FS. Nothing is added if
// any file is invalid or its path is already taken.
func (wd *FS) Add(flist ...File) error {
	if err := Files(flist).Validate(); err != nil {
		return err
	}
	wd.mu.Lock()
	defer wd.mu.Unlock()
	return wd.addValidated(flist...)
}

func (wd *FS) addValidated(flist ...File) error {
	var result *multierror.Error
	for _, f := range flist {
		if rf, has := wd.files[f.RelativePath]; has {
			result = multierror.Append(result, fmt.Errorf("%s from %s is already generated by %s", f.RelativePath, jennystack(f.From), jennystack(rf.From)))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	for _, f := range flist {
		wd.files[f.RelativePath] = f
	}
	return nil
}

// Merge adds every file of wd2 to wd. JennyList builds one FS per input and
// merges them, so conflicting outputs of two definition files surface here.
func (wd *FS) Merge(wd2 *FS) error {
	other := wd2.AsFiles()
	wd.mu.Lock()
	defer wd.mu.Unlock()
	return wd.addValidated(other...)
}
