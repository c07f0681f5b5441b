package tagmatch

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matryer/is"
)

// fakeDispatcher renders its invocation instead of a switch, so nesting is
// visible in the output.
type fakeDispatcher struct {
	name string
}

func (f fakeDispatcher) DispatcherName() string { return f.name }

func (f fakeDispatcher) Dispatch(value, placeholder, body string) (string, error) {
	return fmt.Sprintf("%s!(%s; %s => {%s})", f.name, value, placeholder, body), nil
}

func fakeScope(t *testing.T, names ...string) *Scope {
	t.Helper()
	s := NewScope()
	for _, n := range names {
		if err := s.Define(fakeDispatcher{name: n}); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestArityBoundary(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F"}
	for n := 0; n <= len(names); n++ {
		c, err := NewCombined(names[:n]...)
		if n >= MinArity && n <= MaxArity {
			if err != nil {
				t.Errorf("arity %d: unexpected error %v", n, err)
				continue
			}
			if c.Arity() != n {
				t.Errorf("arity %d: Arity() = %d", n, c.Arity())
			}
			continue
		}
		if !errors.Is(err, ErrUnsupportedArity) {
			t.Errorf("arity %d: expected ErrUnsupportedArity, got %v", n, err)
		}
		if c != nil {
			t.Errorf("arity %d: expected no dispatcher", n)
		}
	}
}

func TestGenerateDefinesInScope(t *testing.T) {
	is := is.New(t)
	s := fakeScope(t, "exchange", "strategy")
	c, err := Generate(s, "Exchange", "Strategy")
	is.NoErr(err)
	is.Equal(c.MatcherName(), "match_exchange_strategy")

	m, err := s.Lookup("match_exchange_strategy")
	is.NoErr(err)
	is.Equal(m.Arity(), 2)
	is.Equal(s.Names(), []string{"exchange", "match_exchange_strategy", "strategy"})

	_, err = Generate(s, "Exchange")
	is.True(errors.Is(err, ErrUnsupportedArity))
	is.Equal(len(s.Names()), 3) // nothing defined for the failed generation
}

func TestExpandNestsLeftToRight(t *testing.T) {
	is := is.New(t)
	s := fakeScope(t, "exchange", "strategy", "time_frame")
	_, err := Generate(s, "Exchange", "Strategy", "TimeFrame")
	is.NoErr(err)

	got, err := s.Expand("match_exchange_strategy_time_frame",
		[]string{"ex", "st", "tf"}, []string{"E", "S", "T"}, "body")
	is.NoErr(err)
	want := "exchange!(ex; E => {strategy!(st; S => {time_frame!(tf; T => {body})})})"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("expansion mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandOrderSensitive(t *testing.T) {
	is := is.New(t)
	s := fakeScope(t, "exchange", "strategy")
	_, err := Generate(s, "Exchange", "Strategy")
	is.NoErr(err)
	_, err = Generate(s, "Strategy", "Exchange")
	is.NoErr(err)

	fwd, err := s.Expand("match_exchange_strategy", []string{"ex", "st"}, []string{"E", "S"}, "b")
	is.NoErr(err)
	rev, err := s.Expand("match_strategy_exchange", []string{"st", "ex"}, []string{"S", "E"}, "b")
	is.NoErr(err)
	is.Equal(fwd, "exchange!(ex; E => {strategy!(st; S => {b})})")
	is.Equal(rev, "strategy!(st; S => {exchange!(ex; E => {b})})")
}

func TestExpandAllArities(t *testing.T) {
	enums := []string{"Exchange", "Strategy", "TimeFrame", "Market", "RiskLevel"}
	s := fakeScope(t, "exchange", "strategy", "time_frame", "market", "risk_level")
	for n := MinArity; n <= MaxArity; n++ {
		c, err := Generate(s, enums[:n]...)
		if err != nil {
			t.Fatalf("arity %d: %v", n, err)
		}
		values := make([]string, n)
		phs := make([]string, n)
		for i := range values {
			values[i] = fmt.Sprintf("v%d", i)
			phs[i] = fmt.Sprintf("P%d", i)
		}
		out, err := c.Expand(s, values, phs, "body")
		if err != nil {
			t.Fatalf("arity %d: %v", n, err)
		}
		if got := strings.Count(out, "!("); got != n {
			t.Errorf("arity %d: %d dispatcher invocations in %q", n, got, out)
		}
		if !strings.HasPrefix(out, "exchange!(v0; P0 => {") {
			t.Errorf("arity %d: outermost dispatcher is not the first enumeration: %q", n, out)
		}
	}
}

func TestMissingCollaboratorSurfacesOnUse(t *testing.T) {
	is := is.New(t)
	s := fakeScope(t, "exchange")
	c, err := Generate(s, "Exchange", "Venue")
	is.NoErr(err) // generation does not check availability

	_, err = c.Expand(s, []string{"ex", "ve"}, []string{"E", "V"}, "b")
	is.True(errors.Is(err, ErrNoSuchDispatcher))
	is.True(strings.Contains(err.Error(), `"venue"`))

	is.NoErr(s.Define(fakeDispatcher{name: "venue"}))
	_, err = c.Expand(s, []string{"ex", "ve"}, []string{"E", "V"}, "b")
	is.NoErr(err)
}

func TestExpandArgumentChecks(t *testing.T) {
	s := fakeScope(t, "exchange", "strategy")
	c, err := Generate(s, "Exchange", "Strategy")
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		name   string
		values []string
		phs    []string
		want   error
	}{
		{"too few values", []string{"ex"}, []string{"E", "S"}, ErrArgumentCount},
		{"too many placeholders", []string{"ex", "st"}, []string{"E", "S", "T"}, ErrArgumentCount},
		{"bad placeholder", []string{"ex", "st"}, []string{"E", "1S"}, ErrInvalidPlaceholder},
		{"repeated placeholder", []string{"ex", "st"}, []string{"E", "E"}, ErrInvalidPlaceholder},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Expand(s, tc.values, tc.phs, "b")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRepeatedEnumeration(t *testing.T) {
	is := is.New(t)
	s := fakeScope(t, "exchange")
	c, err := Generate(s, "Exchange", "Exchange")
	is.NoErr(err)
	is.Equal(c.MatcherName(), "match_exchange_exchange")
	out, err := c.Expand(s, []string{"from", "to"}, []string{"F", "T"}, "b")
	is.NoErr(err)
	is.Equal(out, "exchange!(from; F => {exchange!(to; T => {b})})")
}

func TestIndependentInvocations(t *testing.T) {
	is := is.New(t)
	s := fakeScope(t, "exchange", "strategy")
	c, err := Generate(s, "Exchange", "Strategy")
	is.NoErr(err)

	a, err := c.Expand(s, []string{"a1", "a2"}, []string{"E", "S"}, "f[E, S]()")
	is.NoErr(err)
	b, err := c.Expand(s, []string{"b1", "b2"}, []string{"E", "S"}, "f[E, S]()")
	is.NoErr(err)
	a2, err := c.Expand(s, []string{"a1", "a2"}, []string{"E", "S"}, "f[E, S]()")
	is.NoErr(err)
	is.True(a != b)
	is.Equal(a, a2)
	is.Equal(c.Enums(), []string{"Exchange", "Strategy"})
}

func TestCombinedOverSwitchDispatchersIsTotal(t *testing.T) {
	is := is.New(t)
	s := NewScope()
	names := []string{"Exchange", "Strategy", "TimeFrame", "Market", "RiskLevel"}
	for _, n := range names {
		is.NoErr(s.Define(Enum{
			Name: n,
			Variants: []Variant{
				{Name: "One", Concrete: n + "One"},
				{Name: "Two", Concrete: n + "Two"},
			},
		}))
	}
	c, err := Generate(s, names...)
	is.NoErr(err)

	out, err := c.Expand(s, []string{"a", "b", "c", "d", "e"}, []string{"A", "B", "C", "D", "E"}, "return f[A, B, C, D, E]()")
	is.NoErr(err)
	is.Equal(strings.Count(out, "return f[A, B, C, D, E]()"), 32)
	is.Equal(strings.Count(out, "type E = RiskLevelOne"), 16)
	is.Equal(strings.Count(out, "type A = "), 2)
	is.Equal(strings.Count(out, "default:"), 1+2+4+8+16)
}

func TestCombinedKeepsRawStringTemplate(t *testing.T) {
	is := is.New(t)
	s := NewScope()
	is.NoErr(s.Define(exchangeEnum))
	is.NoErr(s.Define(Enum{Name: "Strategy", Variants: []Variant{
		{Name: "A", Concrete: "AlphaStrategy"},
		{Name: "B", Concrete: "BetaStrategy"},
	}}))
	c, err := Generate(s, "Exchange", "Strategy")
	is.NoErr(err)

	tmpl := "return `line1\n\tline2\nline3`"
	out, err := c.Expand(s, []string{"ex", "st"}, []string{"E", "S"}, tmpl)
	is.NoErr(err)
	is.Equal(strings.Count(out, tmpl+"\n"), 4)
	is.Equal(strings.Count(out, ":= ex;"), 1)
	is.Equal(strings.Count(out, ":= st;"), 2)
}
