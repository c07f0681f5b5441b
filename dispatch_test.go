package tagmatch

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/matryer/is"
)

func TestScopeLookupSingle(t *testing.T) {
	is := is.New(t)
	s := fakeScope(t, "exchange")

	m, err := s.Lookup("exchange")
	is.NoErr(err)
	is.Equal(m.Arity(), 1)
	is.Equal(m.MatcherName(), "exchange")

	out, err := s.Expand("exchange", []string{"ex"}, []string{"E"}, "b")
	is.NoErr(err)
	is.Equal(out, "exchange!(ex; E => {b})")

	_, err = s.Expand("exchange", []string{"ex", "st"}, []string{"E", "S"}, "b")
	is.True(errors.Is(err, ErrArgumentCount))

	_, err = s.Lookup("strategy")
	is.True(errors.Is(err, ErrNoSuchDispatcher))
}

func TestScopeRedefinition(t *testing.T) {
	is := is.New(t)
	s := NewScope()
	ex := Enum{Name: "Exchange", Variants: []Variant{{Name: "Binance", Concrete: "Binance"}}}
	is.NoErr(s.Define(ex))
	is.NoErr(s.Define(ex)) // identical redefinition

	changed := ex
	changed.Variants = []Variant{{Name: "Okx", Concrete: "Okx"}}
	is.True(errors.Is(s.Define(changed), ErrDuplicateDispatcher))

	_, err := Generate(s, "Exchange", "Strategy")
	is.NoErr(err)
	_, err = Generate(s, "Exchange", "Strategy")
	is.NoErr(err)

	// TimeFrame and Time_Frame normalize to the same name.
	_, err = Generate(s, "TimeFrame", "Market")
	is.NoErr(err)
	_, err = Generate(s, "Time_Frame", "Market")
	is.True(errors.Is(err, ErrDuplicateDispatcher))

	is.True(errors.Is(s.Define(fakeDispatcher{name: "match_exchange_strategy"}), ErrDuplicateDispatcher))
}

func TestScopeConcurrentUse(t *testing.T) {
	s := fakeScope(t, "exchange", "strategy")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := Generate(s, "Exchange", "Strategy"); err != nil {
				t.Error(err)
				return
			}
			v := fmt.Sprintf("v%d", i)
			out, err := s.Expand("match_exchange_strategy", []string{v, v}, []string{"E", "S"}, "b")
			if err != nil {
				t.Error(err)
				return
			}
			if want := fmt.Sprintf("exchange!(%s; E => {strategy!(%s; S => {b})})", v, v); out != want {
				t.Errorf("got %q, want %q", out, want)
			}
		}(i)
	}
	wg.Wait()
}
