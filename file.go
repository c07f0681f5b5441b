package tagmatch

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// File is a single generated file.
type File struct {
	// The relative path to which the generated file should be written.
	RelativePath string

	// Contents of the generated file.
	Data []byte

	// From is the stack of jennies responsible for producing this File.
	// Wrapper jennies are earlier in the stack.
	From []NamedJenny
}

// Exists reports whether the File has contents to write.
func (f *File) Exists() bool {
	return len(f.Data) > 0
}

// Validate checks that the File has a relative, non-empty path.
func (f *File) Validate() error {
	if f.RelativePath == "" {
		return fmt.Errorf("file with %d bytes from %s has an empty path", len(f.Data), jennystack(f.From))
	}
	if filepath.IsAbs(f.RelativePath) {
		return fmt.Errorf("file %s from %s must have a relative path", f.RelativePath, jennystack(f.From))
	}
	return nil
}

// Files is a set of File objects.
//
// A Files is valid if it contains no two File entries with the same
// RelativePath.
type Files []File

// Validate checks that each member File is valid and that no two members share
// a path.
func (fsl Files) Validate() error {
	var result *multierror.Error
	seen := make(map[string]File, len(fsl))
	for _, f := range fsl {
		if err := f.Validate(); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if prior, has := seen[f.RelativePath]; has {
			result = multierror.Append(result, fmt.Errorf("multiple files at %s from %s and %s", f.RelativePath, jennystack(prior.From), jennystack(f.From)))
			continue
		}
		seen[f.RelativePath] = f
	}
	return result.ErrorOrNil()
}

// FileMapper takes a File and transforms it into a new File.
//
// JennyList runs its FileMappers on every File emitted by a member jenny.
type FileMapper func(File) (File, error)

func jennystack(s []NamedJenny) string {
	names := make([]string, 0, len(s))
	for _, j := range s {
		names = append(names, j.JennyName())
	}
	return strings.Join(names, ":")
}
