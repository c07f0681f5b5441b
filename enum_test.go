package tagmatch

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matryer/is"
)

var exchangeEnum = Enum{
	Name: "Exchange",
	Variants: []Variant{
		{Name: "Binance", Concrete: "venues.Binance"},
		{Name: "Okx", Const: "OKX", Concrete: "venues.Okx"},
	},
}

func TestEnumDispatch(t *testing.T) {
	got, err := exchangeEnum.Dispatch("ex", "E", "var v E\nreturn v.Label()\n")
	if err != nil {
		t.Fatal(err)
	}
	want := `switch tagmatchE := ex; tagmatchE {
case ExchangeBinance:
type E = venues.Binance
var v E
return v.Label()
case OKX:
type E = venues.Okx
var v E
return v.Label()
default:
panic(fmt.Sprintf("tagmatch: unmatched Exchange variant %v", tagmatchE))
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("dispatch mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumQualifier(t *testing.T) {
	is := is.New(t)
	e := Enum{Name: "Market", Qualifier: "trading", Variants: []Variant{{Name: "Spot", Concrete: "Spot"}}}
	is.Equal(e.GoType(), "trading.Market")
	is.Equal(e.ConstOf(e.Variants[0]), "trading.MarketSpot")
	is.Equal(e.DispatcherName(), "market")

	e.Type = "mkt.Kind"
	is.Equal(e.GoType(), "mkt.Kind")
}

func TestEnumDispatchErrors(t *testing.T) {
	is := is.New(t)
	_, err := Enum{Name: "Empty"}.Dispatch("v", "T", "b")
	is.True(err != nil)

	_, err = exchangeEnum.Dispatch("v", "not ident", "b")
	is.True(errors.Is(err, ErrInvalidPlaceholder))
}

func TestEnumValidate(t *testing.T) {
	is := is.New(t)
	is.NoErr(exchangeEnum.Validate())

	bad := Enum{
		Name: "Exchange",
		Variants: []Variant{
			{Name: "Binance", Concrete: "Binance"},
			{Name: "Binance", Concrete: "Binance"},
			{Name: "Okx"},
			{Concrete: "Nameless"},
		},
	}
	err := bad.Validate()
	is.True(err != nil)
	msg := err.Error()
	is.True(strings.Contains(msg, "duplicate variant Binance"))
	is.True(strings.Contains(msg, "Okx has no concrete type"))
	is.True(strings.Contains(msg, "variants[3]: name is required"))

	is.True(Enum{Name: "1x", Variants: exchangeEnum.Variants}.Validate() != nil)
	is.True(Enum{Name: "None"}.Validate() != nil)
}

func TestEnumDispatchEvaluatesValueOnce(t *testing.T) {
	is := is.New(t)
	got, err := exchangeEnum.Dispatch("next()", "E", "return nil\n")
	is.NoErr(err)
	is.Equal(strings.Count(got, "next()"), 1)
	is.True(strings.HasPrefix(got, "switch tagmatchE := next(); tagmatchE {\n"))
	is.True(strings.Contains(got, "variant %v\", tagmatchE))"))
}

func TestEnumDispatchKeepsBodyVerbatim(t *testing.T) {
	is := is.New(t)
	body := "return `first\n  second\nthird`"
	got, err := exchangeEnum.Dispatch("ex", "E", body)
	is.NoErr(err)
	is.Equal(strings.Count(got, body+"\n"), 2)
}
