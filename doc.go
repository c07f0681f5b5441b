// Package tagmatch generates Go code that resolves several runtime tag values
// to their associated concrete types at once.
//
// A tag enumeration is an ordinary Go enum whose every variant is associated
// with one concrete type. Its single-tag dispatcher ([Enum] implements
// [Dispatcher]) expands a code template into a switch over the variants that
// binds a placeholder to each variant's concrete type:
//
//	switch tagmatchE := exchange; tagmatchE {
//	case ExchangeBinance:
//		type E = Binance
//		return NewSystem[E]().Name()
//	...
//
// [Generate] builds a combined dispatcher over 2 to 5 enumerations by nesting
// their single-tag dispatchers left to right, so the template is compiled once
// for every combination of variants with all placeholders bound:
//
//	scope := tagmatch.NewScope()
//	scope.Define(exchange)
//	scope.Define(strategy)
//	tagmatch.Generate(scope, "Exchange", "Strategy") // defines match_exchange_strategy
//	src, err := scope.Expand("match_exchange_strategy",
//		[]string{"ex", "st"}, []string{"E", "S"},
//		"return NewDualSystem[E, S]().Name()")
//
// Most users drive this through a tagmatch.yaml file and the tagmatch command,
// typically from a go:generate directive. The generated files are built with a
// [JennyList] and written or verified through an [FS].
package tagmatch
