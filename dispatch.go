package tagmatch

import (
	"errors"
	"fmt"
	"go/token"
	"reflect"
	"sort"
	"sync"
)

var (
	// ErrUnsupportedArity is returned when a combined dispatcher is requested
	// for a number of enumerations outside [MinArity, MaxArity]. Nest
	// single-tag dispatchers by hand instead.
	ErrUnsupportedArity = errors.New("unsupported arity")

	// ErrNoSuchDispatcher is returned when expansion refers to a dispatcher
	// that is not defined in the scope.
	ErrNoSuchDispatcher = errors.New("no such dispatcher")

	// ErrDuplicateDispatcher is returned when a name is defined twice with
	// different definitions.
	ErrDuplicateDispatcher = errors.New("dispatcher already defined")

	// ErrArgumentCount is returned when the number of values or placeholders
	// passed to a dispatcher differs from its arity.
	ErrArgumentCount = errors.New("wrong number of arguments")

	// ErrInvalidPlaceholder is returned when a placeholder is not a valid Go
	// identifier.
	ErrInvalidPlaceholder = errors.New("invalid placeholder")
)

// A Dispatcher is a single-tag dispatcher: it resolves one runtime tag value
// to the concrete type associated with its variant.
//
// Dispatch expands to Go statements that match value against every variant of
// the enumeration and, for each, evaluate body with placeholder bound to that
// variant's concrete type. The match must be total.
type Dispatcher interface {
	DispatcherName() string
	Dispatch(value, placeholder, body string) (string, error)
}

// A Matcher is anything a template can be expanded through: N value
// expressions and N placeholders, resolved in order.
type Matcher interface {
	MatcherName() string
	Arity() int
	Expand(scope *Scope, values, placeholders []string, body string) (string, error)
}

// single lets a Dispatcher be invoked directly as an arity-1 Matcher.
type single struct {
	d Dispatcher
}

func (s single) MatcherName() string { return s.d.DispatcherName() }

func (s single) Arity() int { return 1 }

func (s single) Expand(_ *Scope, values, placeholders []string, body string) (string, error) {
	if err := checkArgs(s, values, placeholders); err != nil {
		return "", err
	}
	return s.d.Dispatch(values[0], placeholders[0], body)
}

func checkArgs(m Matcher, values, placeholders []string) error {
	if len(values) != m.Arity() || len(placeholders) != m.Arity() {
		return fmt.Errorf("%s takes %d values and %d placeholders, got %d and %d: %w",
			m.MatcherName(), m.Arity(), m.Arity(), len(values), len(placeholders), ErrArgumentCount)
	}
	seen := make(map[string]bool, len(placeholders))
	for _, p := range placeholders {
		if !token.IsIdentifier(p) {
			return fmt.Errorf("%s: %q is not a Go identifier: %w", m.MatcherName(), p, ErrInvalidPlaceholder)
		}
		// An inner alias would shadow the outer one for the whole body.
		if seen[p] {
			return fmt.Errorf("%s: placeholder %q bound more than once: %w", m.MatcherName(), p, ErrInvalidPlaceholder)
		}
		seen[p] = true
	}
	return nil
}

// Scope is the definition scope that dispatchers live in. Single-tag
// dispatchers and combined dispatchers share one namespace.
//
// A Scope is safe for concurrent use.
type Scope struct {
	mu       sync.RWMutex
	singles  map[string]Dispatcher
	combined map[string]*Combined
}

// NewScope returns an empty Scope.
func NewScope() *Scope {
	return &Scope{
		singles:  make(map[string]Dispatcher),
		combined: make(map[string]*Combined),
	}
}

// Define introduces a single-tag dispatcher into the scope under its own
// name. Redefining a name with an equal dispatcher is a no-op.
func (s *Scope) Define(d Dispatcher) error {
	name := d.DispatcherName()
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, has := s.combined[name]; has {
		return fmt.Errorf("%s: %w as combined dispatcher over %v", name, ErrDuplicateDispatcher, c.enums)
	}
	if prior, has := s.singles[name]; has {
		if reflect.DeepEqual(prior, d) {
			return nil
		}
		return fmt.Errorf("%s: %w", name, ErrDuplicateDispatcher)
	}
	s.singles[name] = d
	return nil
}

func (s *Scope) defineCombined(c *Combined) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, has := s.singles[c.name]; has {
		return fmt.Errorf("%s: %w as single-tag dispatcher", c.name, ErrDuplicateDispatcher)
	}
	if prior, has := s.combined[c.name]; has {
		if reflect.DeepEqual(prior.enums, c.enums) {
			return nil
		}
		return fmt.Errorf("%s: %w over %v", c.name, ErrDuplicateDispatcher, prior.enums)
	}
	s.combined[c.name] = c
	return nil
}

// dispatcher returns the single-tag dispatcher defined under name.
func (s *Scope) dispatcher(name string) (Dispatcher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, has := s.singles[name]
	if !has {
		return nil, fmt.Errorf("%w %q", ErrNoSuchDispatcher, name)
	}
	return d, nil
}

// Lookup returns the Matcher defined under name, either a combined
// dispatcher or a single-tag dispatcher.
func (s *Scope) Lookup(name string) (Matcher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, has := s.combined[name]; has {
		return c, nil
	}
	if d, has := s.singles[name]; has {
		return single{d: d}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrNoSuchDispatcher, name)
}

// Expand invokes the dispatcher defined under name with the given values,
// placeholders and template body.
func (s *Scope) Expand(name string, values, placeholders []string, body string) (string, error) {
	m, err := s.Lookup(name)
	if err != nil {
		return "", err
	}
	return m.Expand(s, values, placeholders, body)
}

// Names returns the names of every dispatcher in the scope, sorted.
func (s *Scope) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.singles)+len(s.combined))
	for n := range s.singles {
		names = append(names, n)
	}
	for n := range s.combined {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
