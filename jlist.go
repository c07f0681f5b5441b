package tagmatch

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// JennyList is the ordered set of jennies run over every input of a tagmatch
// invocation, normally one *Unit per definition file.
//
// Each input gets its own [FS]: the member jennies run in append order, their
// files are stamped with the emitting jenny, postprocessed and added. The
// per-input trees are then merged, so two definition files that claim the same
// output path are reported as a conflict rather than one silently winning.
type JennyList[Input any] struct {
	mu    sync.RWMutex
	steps []step[Input]
	post  []FileMapper
	namer func(Input) string
}

// step is a member jenny with its Generate normalized to return Files.
type step[Input any] struct {
	jenny NamedJenny
	gen   func(Input) (Files, error)
}

// JennyListWithNamer returns an empty JennyList that names inputs with namer
// in its errors.
func JennyListWithNamer[Input any](namer func(Input) string) *JennyList[Input] {
	return &JennyList[Input]{namer: namer}
}

func (jl *JennyList[Input]) JennyName() string {
	return fmt.Sprintf("JennyList[%s]", reflect.TypeOf(new(Input)).Elem())
}

// AppendOneToOne adds jennies that emit at most one file per input. A nil
// or empty File is skipped.
func (jl *JennyList[Input]) AppendOneToOne(jennies ...OneToOne[Input]) {
	jl.mu.Lock()
	defer jl.mu.Unlock()
	for _, j := range jennies {
		jl.steps = append(jl.steps, step[Input]{jenny: j, gen: func(in Input) (Files, error) {
			f, err := j.Generate(in)
			if err != nil || f == nil || !f.Exists() {
				return nil, err
			}
			return Files{*f}, nil
		}})
	}
}

// AppendOneToMany adds jennies that emit any number of files per input.
func (jl *JennyList[Input]) AppendOneToMany(jennies ...OneToMany[Input]) {
	jl.mu.Lock()
	defer jl.mu.Unlock()
	for _, j := range jennies {
		jl.steps = append(jl.steps, step[Input]{jenny: j, gen: j.Generate})
	}
}

// AddPostprocessors appends FileMappers that run, in order, on every file
// the list emits.
func (jl *JennyList[Input]) AddPostprocessors(fn ...FileMapper) {
	jl.mu.Lock()
	defer jl.mu.Unlock()
	jl.post = append(jl.post, fn...)
}

// GenerateFS runs every member jenny over each input and returns the merged
// result. Errors from all inputs and jennies are aggregated; on any error the
// FS is nil. An empty list returns nil, nil.
func (jl *JennyList[Input]) GenerateFS(inputs ...Input) (*FS, error) {
	jl.mu.RLock()
	defer jl.mu.RUnlock()
	if len(jl.steps) == 0 {
		return nil, nil
	}

	out := NewFS()
	var result *multierror.Error
	for _, in := range inputs {
		ufs, errs := jl.generateOne(in)
		if len(errs) == 0 {
			errs = split(out.Merge(ufs))
		}
		for _, err := range errs {
			result = multierror.Append(result, jl.named(in, err))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

func (jl *JennyList[Input]) generateOne(in Input) (*FS, []error) {
	ufs := NewFS()
	var errs []error
	for _, s := range jl.steps {
		fl, err := s.gen(in)
		if err == nil {
			fl, err = jl.postprocess(s.jenny, fl)
		}
		if err == nil {
			err = ufs.Add(fl...)
		}
		for _, e := range split(err) {
			errs = append(errs, fmt.Errorf("%s: %w", s.jenny.JennyName(), e))
		}
	}
	return ufs, errs
}

func (jl *JennyList[Input]) postprocess(j NamedJenny, fl Files) (Files, error) {
	out := make(Files, 0, len(fl))
	for _, f := range fl {
		f.From = append([]NamedJenny{j}, f.From...)
		if err := f.Validate(); err != nil {
			return nil, err
		}
		for _, post := range jl.post {
			pf, err := post(f)
			if err != nil {
				return nil, fmt.Errorf("postprocessing %s: %w", f.RelativePath, err)
			}
			f = pf
		}
		out = append(out, f)
	}
	return out, nil
}

func (jl *JennyList[Input]) named(in Input, err error) error {
	if jl.namer == nil {
		return err
	}
	return fmt.Errorf("%w for input %q", err, jl.namer(in))
}

// split returns the members of an aggregated error, so each one can carry its
// own jenny and input name.
func split(err error) []error {
	if err == nil {
		return nil
	}
	if merr, ok := err.(*multierror.Error); ok {
		return merr.WrappedErrors()
	}
	return []error{err}
}
