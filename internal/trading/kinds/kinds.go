// Package kinds holds the concrete types associated with the trading tag
// enumerations. Each type carries nothing but its label.
package kinds

// Venues.
type (
	Binance struct{}
	Okx     struct{}
)

func (Binance) Label() string { return "binance" }
func (Okx) Label() string { return "okx" }

// Strategies.
type (
	StrategyA struct{}
	StrategyB struct{}
)

func (StrategyA) Label() string { return "strategy_a" }
func (StrategyB) Label() string { return "strategy_b" }

// Time frames.
type (
	Minute struct{}
	Hour   struct{}
)

func (Minute) Label() string { return "minute" }
func (Hour) Label() string { return "hour" }

// Markets.
type (
	Spot    struct{}
	Futures struct{}
)

func (Spot) Label() string { return "spot" }
func (Futures) Label() string { return "futures" }

// Risk levels.
type (
	Low  struct{}
	High struct{}
)

func (Low) Label() string { return "low_risk" }
func (High) Label() string { return "high_risk" }
