package tagmatch

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Enum is a tag enumeration: a closed set of variants, each associated with
// exactly one concrete Go type. The enumeration's Go type and constants are
// declared by the user; Enum only describes them.
//
// Enum implements [Dispatcher] by emitting a switch statement.
type Enum struct {
	// Name identifies the enumeration. Its single-tag dispatcher is defined
	// under DispatcherName(Name).
	Name string `yaml:"name"`

	// Type is the Go type of tag values. Defaults to Name.
	Type string `yaml:"type,omitempty"`

	// Qualifier, if set, is prepended with a dot to the default Type and to
	// default variant constants, for enumerations declared in another
	// package.
	Qualifier string `yaml:"qualifier,omitempty"`

	// Variants lists the variants in declaration order.
	Variants []Variant `yaml:"variants"`
}

// Variant is one variant of an Enum.
type Variant struct {
	// Name of the variant, e.g. "Binance".
	Name string `yaml:"name"`

	// Const is the Go constant holding the variant's tag value. Defaults to
	// the enumeration name followed by the variant name, e.g. "ExchangeBinance".
	Const string `yaml:"const,omitempty"`

	// Concrete is the Go type associated with the variant, e.g. "Binance" or
	// "venues.Binance".
	Concrete string `yaml:"concrete"`
}

func (e Enum) qualify(s string) string {
	if e.Qualifier == "" {
		return s
	}
	return e.Qualifier + "." + s
}

// GoType returns the Go type of the enumeration's tag values.
func (e Enum) GoType() string {
	if e.Type != "" {
		return e.Type
	}
	return e.qualify(e.Name)
}

// ConstOf returns the Go constant for the given variant.
func (e Enum) ConstOf(v Variant) string {
	if v.Const != "" {
		return v.Const
	}
	return e.qualify(e.Name + v.Name)
}

// DispatcherName implements [Dispatcher].
func (e Enum) DispatcherName() string {
	return DispatcherName(e.Name)
}

// Dispatch implements [Dispatcher]. Each case clause binds placeholder with a
// block-local type alias, so body is compiled once per variant against that
// variant's concrete type. The default clause panics, which covers tag values
// outside the declared variants and makes the switch a terminating statement.
//
// value is evaluated once, into a switch-local named after the placeholder.
// body is spliced in verbatim; the output is unformatted and is laid out by
// gofmt (see [GoImports]), so raw string literals in body keep their bytes.
func (e Enum) Dispatch(value, placeholder, body string) (string, error) {
	if len(e.Variants) == 0 {
		return "", fmt.Errorf("%s has no variants to dispatch over", e.Name)
	}
	if !token.IsIdentifier(placeholder) {
		return "", fmt.Errorf("%s: %q is not a Go identifier: %w", e.DispatcherName(), placeholder, ErrInvalidPlaceholder)
	}

	tag := tagVar(placeholder)
	var b strings.Builder
	fmt.Fprintf(&b, "switch %s := %s; %s {\n", tag, value, tag)
	for _, v := range e.Variants {
		fmt.Fprintf(&b, "case %s:\n", e.ConstOf(v))
		fmt.Fprintf(&b, "type %s = %s\n", placeholder, v.Concrete)
		b.WriteString(body)
		if body != "" && !strings.HasSuffix(body, "\n") {
			b.WriteByte('\n')
		}
	}
	b.WriteString("default:\n")
	fmt.Fprintf(&b, "panic(fmt.Sprintf(%q, %s))\n", "tagmatch: unmatched "+e.Name+" variant %v", tag)
	b.WriteString("}\n")
	return b.String(), nil
}

// Validate checks that every variant has a name and a concrete type, and
// that no variant name repeats.
func (e Enum) Validate() error {
	var result *multierror.Error
	if !token.IsIdentifier(e.Name) {
		result = multierror.Append(result, fmt.Errorf("enum name %q is not a Go identifier", e.Name))
	}
	if len(e.Variants) == 0 {
		result = multierror.Append(result, errors.New("no variants declared"))
	}
	seen := make(map[string]bool, len(e.Variants))
	for i, v := range e.Variants {
		switch {
		case v.Name == "":
			result = multierror.Append(result, fmt.Errorf("variants[%d]: name is required", i))
		case seen[v.Name]:
			result = multierror.Append(result, fmt.Errorf("variants[%d]: duplicate variant %s", i, v.Name))
		}
		seen[v.Name] = true
		if v.Concrete == "" {
			result = multierror.Append(result, fmt.Errorf("variants[%d]: %s has no concrete type", i, v.Name))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("enum %s: %w", e.Name, err)
	}
	return nil
}
