package entity

// Counter is a physical pickup point. An order's lines are partitioned by
// counter, and one scratch token is issued per distinct counter touched.
type Counter string

const (
	CounterSnacks    Counter = "Snacks & Hot Beverages"
	CounterMeals     Counter = "Meals"
	CounterColdBev   Counter = "Cold Beverages"
)

// DefaultCounter is used when a menu item carries no counter assignment.
const DefaultCounter = CounterSnacks

func (c Counter) Valid() bool {
	switch c {
	case CounterSnacks, CounterMeals, CounterColdBev:
		return true
	}
	return false
}

// OrDefault maps an empty counter to the default pickup point.
func (c Counter) OrDefault() Counter {
	if c == "" {
		return DefaultCounter
	}
	return c
}

func Counters() []Counter {
	return []Counter{CounterSnacks, CounterMeals, CounterColdBev}
}
