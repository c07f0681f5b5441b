// Package trading is a worked example of tagmatch: five tag enumerations,
// each mapping its variants to a type in package kinds, and systems
// parameterised over those types. The dispatch funcs in tagmatch_gen.go are
// generated from tagmatch.yaml.
package trading

//go:generate go run github.com/sdboyer/tagmatch/cmd/tagmatch

// Exchange selects a trading venue.
type Exchange int

const (
	ExchangeBinance Exchange = iota
	ExchangeOkx
)

// Strategy selects a trading strategy.
type Strategy int

const (
	StrategyA Strategy = iota
	StrategyB
)

// TimeFrame selects a candle width.
type TimeFrame int

const (
	TimeFrameMinute TimeFrame = iota
	TimeFrameHour
)

// Market selects a market segment.
type Market int

const (
	MarketSpot Market = iota
	MarketFutures
)

// RiskLevel selects a risk profile.
type RiskLevel int

const (
	RiskLevelLow RiskLevel = iota
	RiskLevelHigh
)
