package collate

import (
	"sync/atomic"

	"golang.org/x/text/language"
)

// processDefault holds the process-wide ordering and number conventions.
// It is the one shared mutable resource the engine consults; replacement
// is atomic, but callers that swap it mid-operation get whichever
// strategy each read observes, exactly like a process locale change.
type processDefault struct {
	order   Order
	numbers NumberLocale
}

var defaultState atomic.Pointer[processDefault]

func init() {
	defaultState.Store(&processDefault{
		order:   New(language.Und),
		numbers: Numbers(language.Und),
	})
}

// Default returns the process-wide collation order.
func Default() Order {
	return defaultState.Load().order
}

// DefaultNumbers returns the process-wide number conventions.
func DefaultNumbers() NumberLocale {
	return defaultState.Load().numbers
}

// SetDefault replaces the process-wide collation order.
// Intended for the outermost boundary (config load, CLI flags).
func SetDefault(order Order) {
	if order == nil {
		return
	}
	cur := defaultState.Load()
	defaultState.Store(&processDefault{order: order, numbers: cur.numbers})
}

// SetDefaultNumbers replaces the process-wide number conventions.
func SetDefaultNumbers(loc NumberLocale) {
	cur := defaultState.Load()
	defaultState.Store(&processDefault{order: cur.order, numbers: loc})
}

// SetDefaultLocale points both the order and the number conventions at
// one language.
func SetDefaultLocale(tag language.Tag) {
	defaultState.Store(&processDefault{
		order:   New(tag),
		numbers: Numbers(tag),
	})
}
