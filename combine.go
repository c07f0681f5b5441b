package tagmatch

import "fmt"

const (
	// MinArity is the smallest number of enumerations a combined dispatcher
	// can be generated for.
	MinArity = 2
	// MaxArity is the largest number of enumerations a combined dispatcher
	// can be generated for.
	MaxArity = 5
)

// Combined is a combined dispatcher: it resolves one runtime tag value per
// enumeration, left to right, by nesting the single-tag dispatcher of each
// enumeration around the next. The template is the innermost body.
//
// A Combined records only the enumeration names. The single-tag dispatchers
// are looked up in the [Scope] on every expansion.
type Combined struct {
	name  string
	enums []string
}

// NewCombined generates the combined dispatcher for the ordered enumeration
// names. Names are treated as opaque tokens and may repeat.
func NewCombined(enums ...string) (*Combined, error) {
	if len(enums) < MinArity || len(enums) > MaxArity {
		return nil, fmt.Errorf("cannot combine %d enumerations %v, need %d to %d: %w", len(enums), enums, MinArity, MaxArity, ErrUnsupportedArity)
	}
	return &Combined{
		name:  CombinedName(enums...),
		enums: append([]string(nil), enums...),
	}, nil
}

// Generate generates the combined dispatcher for the ordered enumeration
// names and defines it in scope under [CombinedName]. Whether the
// enumerations' single-tag dispatchers exist is not checked until expansion.
func Generate(scope *Scope, enums ...string) (*Combined, error) {
	c, err := NewCombined(enums...)
	if err != nil {
		return nil, err
	}
	if err := scope.defineCombined(c); err != nil {
		return nil, err
	}
	return c, nil
}

// MatcherName returns the name the dispatcher is defined under.
func (c *Combined) MatcherName() string {
	return c.name
}

// Arity returns the number of enumerations combined.
func (c *Combined) Arity() int {
	return len(c.enums)
}

// Enums returns the enumeration names in resolution order.
func (c *Combined) Enums() []string {
	return append([]string(nil), c.enums...)
}

// Expand expands body through the nested single-tag dispatchers. values[i]
// and placeholders[i] are paired with the i-th enumeration. A missing
// single-tag dispatcher fails with [ErrNoSuchDispatcher].
func (c *Combined) Expand(scope *Scope, values, placeholders []string, body string) (string, error) {
	if err := checkArgs(c, values, placeholders); err != nil {
		return "", err
	}
	out, err := c.nest(scope, 0, values, placeholders, body)
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.name, err)
	}
	return out, nil
}

func (c *Combined) nest(scope *Scope, i int, values, placeholders []string, body string) (string, error) {
	if i == len(c.enums) {
		return body, nil
	}
	d, err := scope.dispatcher(DispatcherName(c.enums[i]))
	if err != nil {
		return "", err
	}
	inner, err := c.nest(scope, i+1, values, placeholders, body)
	if err != nil {
		return "", err
	}
	return d.Dispatch(values[i], placeholders[i], inner)
}
