package filter

// Holder owns a State and exposes setters as the only mutation path.
// Observers run synchronously, in subscription order, after every setter call.
// A Holder is not safe for concurrent use; each session owns its own.
type Holder struct {
	state     State
	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func(State)
}

// NewHolder returns a Holder starting from the given state.
func NewHolder(initial State) *Holder {
	return &Holder{state: initial}
}

// State returns the current filter criteria.
func (h *Holder) State() State {
	return h.state
}

// SetFilterText replaces the filter text verbatim and notifies observers.
func (h *Holder) SetFilterText(text string) {
	h.state.FilterText = text
	h.notify()
}

// SetInStockOnly replaces the in-stock flag and notifies observers.
func (h *Holder) SetInStockOnly(flag bool) {
	h.state.InStockOnly = flag
	h.notify()
}

// Subscribe registers fn to run after every change. The returned function
// removes the subscription.
func (h *Holder) Subscribe(fn func(State)) func() {
	if fn == nil {
		return func() {}
	}
	h.nextID++
	id := h.nextID
	h.observers = append(h.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range h.observers {
			if o.id == id {
				h.observers = append(h.observers[:i:i], h.observers[i+1:]...)
				return
			}
		}
	}
}

func (h *Holder) notify() {
	snapshot := h.state
	// Copy so observers may unsubscribe while being notified.
	current := append([]observer(nil), h.observers...)
	for _, o := range current {
		o.fn(snapshot)
	}
}
