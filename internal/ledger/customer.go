package ledger

// Sink receives human-readable notification text. The presentation layer
// supplies one per customer for observer updates, plus one ambient sink for
// operational notices.
type Sink func(msg string)

// Customer observes accounts and receives balance-change notifications.
// Identity is the registry-assigned id, never the name; two customers may
// share a name.
type Customer struct {
	ID   int
	Name string

	sink Sink
}

// Notify posts a message to the customer's sink, if one is set.
func (c *Customer) Notify(msg string) {
	if c.sink != nil {
		c.sink(msg)
	}
}
