package tagmatch

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the default name of a tagmatch definition file.
const ConfigFile = "tagmatch.yaml"

// DefaultOutput is the file name used when a Config does not set Output.
const DefaultOutput = "tagmatch_gen.go"

// Config is the top-level tagmatch.yaml definition.
type Config struct {
	// Package is the Go package name of the generated files.
	Package string `yaml:"package"`

	// Output is the name of the file holding the generated funcs, relative
	// to the directory of the definition file. Defaults to DefaultOutput.
	Output string `yaml:"output,omitempty"`

	// Imports lists import paths the templates or concrete types refer to.
	// Unused imports are dropped from the output.
	Imports []string `yaml:"imports,omitempty"`

	// Helpers enables one extra file per enumeration with a Variants func
	// and a ConcreteName method. The enumeration must be declared in
	// Package.
	Helpers bool `yaml:"helpers,omitempty"`

	// Enums declares the tag enumerations, each of which gets a single-tag
	// dispatcher.
	Enums []Enum `yaml:"enums"`

	// Combinations lists the ordered enumeration names to generate combined
	// dispatchers for.
	Combinations [][]string `yaml:"combinations,omitempty"`

	// Funcs are the templates to expand into Go funcs.
	Funcs []Func `yaml:"funcs,omitempty"`
}

// Func is one invocation of a dispatcher, emitted as a Go func whose body is
// the expanded template.
type Func struct {
	// Name of the generated Go func.
	Name string `yaml:"name"`

	// Doc is the doc comment, without comment markers.
	Doc string `yaml:"doc,omitempty"`

	// Use is the name of the dispatcher to invoke, e.g.
	// "match_exchange_strategy" or, for a single enumeration, "exchange".
	Use string `yaml:"use"`

	// Params are the func parameters as "name Type". Each parameter name is
	// the value expression for the dispatcher argument at the same position.
	Params []string `yaml:"params"`

	// Types are the placeholders, paired by position with Params.
	Types []string `yaml:"types"`

	// Returns is the result list of the func, e.g. "string" or
	// "(string, error)". Empty for no results.
	Returns string `yaml:"returns,omitempty"`

	// Body is the template: Go statements evaluated with every placeholder
	// bound to a concrete type.
	Body string `yaml:"body"`
}

// Values returns the parameter names, which are the value expressions passed
// to the dispatcher.
func (f Func) Values() []string {
	vals := make([]string, len(f.Params))
	for i, p := range f.Params {
		if fields := strings.Fields(p); len(fields) > 0 {
			vals[i] = fields[0]
		}
	}
	return vals
}

// LoadConfig reads and parses a tagmatch.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses tagmatch.yaml content from bytes. Unknown keys are
// errors, so a misspelled key is reported instead of silently dropped.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches for tagmatch.yaml starting from dir and walking up
// to parent directories. Returns the path to the config file, or an empty
// string and nil error if none was found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range []string{ConfigFile, "tagmatch.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) setDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}

// validate checks the configuration for problems that would make generation
// meaningless. Arity and dispatcher availability are deliberately left to
// Resolve and expansion.
func (c *Config) validate() error {
	var result *multierror.Error
	if !token.IsIdentifier(c.Package) {
		result = multierror.Append(result, fmt.Errorf("package %q is not a Go identifier", c.Package))
	}
	if c.Output != "" && (filepath.IsAbs(c.Output) || filepath.Ext(c.Output) != ".go") {
		result = multierror.Append(result, fmt.Errorf("output %q must be a relative .go file name", c.Output))
	}
	for _, e := range c.Enums {
		if err := e.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	seen := make(map[string]bool, len(c.Funcs))
	for i, f := range c.Funcs {
		if err := f.validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("funcs[%d]: %w", i, err))
		}
		if seen[f.Name] {
			result = multierror.Append(result, fmt.Errorf("funcs[%d]: duplicate func %s", i, f.Name))
		}
		seen[f.Name] = true
	}
	return result.ErrorOrNil()
}

func (f Func) validate() error {
	var result *multierror.Error
	if !token.IsIdentifier(f.Name) {
		result = multierror.Append(result, fmt.Errorf("name %q is not a Go identifier", f.Name))
	}
	if f.Use == "" {
		result = multierror.Append(result, errors.New("use is required"))
	}
	if len(f.Params) != len(f.Types) {
		result = multierror.Append(result, fmt.Errorf("%d params but %d types", len(f.Params), len(f.Types)))
	}
	for i, p := range f.Params {
		fields := strings.Fields(p)
		if len(fields) < 2 || !token.IsIdentifier(fields[0]) {
			result = multierror.Append(result, fmt.Errorf("params[%d]: %q must be \"name Type\"", i, p))
		}
	}
	if strings.TrimSpace(f.Body) == "" {
		result = multierror.Append(result, errors.New("body is required"))
	}
	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("func %s: %w", f.Name, err)
	}
	return nil
}

// Unit is a resolved Config: every enumeration's dispatcher and every
// combined dispatcher defined in one Scope, ready for expansion.
type Unit struct {
	// Dir is the directory generated paths are relative to, itself
	// relative to the generation root.
	Dir string

	Config *Config
	Scope  *Scope

	// Combined holds the generated combined dispatchers, in Config order.
	Combined []*Combined
}

// Resolve defines the Config's dispatchers in a new Scope. Generated paths
// are placed under dir.
//
// A combination of unsupported arity fails here. A combination naming an
// enumeration that has no dispatcher does not: that surfaces when a Func
// uses it.
func (c *Config) Resolve(dir string) (*Unit, error) {
	u := &Unit{
		Dir:    dir,
		Config: c,
		Scope:  NewScope(),
	}

	var result *multierror.Error
	for _, e := range c.Enums {
		if err := u.Scope.Define(e); err != nil {
			result = multierror.Append(result, fmt.Errorf("enum %s: %w", e.Name, err))
		}
	}
	for i, names := range c.Combinations {
		cd, err := Generate(u.Scope, names...)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("combinations[%d]: %w", i, err))
			continue
		}
		u.Combined = append(u.Combined, cd)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return u, nil
}

// Name identifies the Unit in error messages.
func (u *Unit) Name() string {
	return filepath.Join(u.Dir, ConfigFile)
}
