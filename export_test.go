package mt64

// Cursor exposes the number of words consumed from the current batch.
func (e *Engine) Cursor() int {
	return e.cursor
}

// State returns a copy of the recurrence register.
func (e *Engine) State() [stateSize]uint64 {
	return e.words
}

const StateSize = stateSize
