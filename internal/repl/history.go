package repl

// entry is one evaluated expression and its outcome.
type entry struct {
	expr  string
	value float64
	// err is the rendered error message, or "" on success.
	err string
}

// history is a bounded record of the most recent evaluations. When full, the
// oldest entry is dropped.
type history struct {
	entries []entry
	max     int
}

func newHistory(max int) *history {
	if max < 1 {
		max = 1
	}
	return &history{entries: make([]entry, 0, max), max: max}
}

func (h *history) push(e entry) {
	if len(h.entries) == h.max {
		copy(h.entries, h.entries[1:])
		h.entries[len(h.entries)-1] = e
		return
	}
	h.entries = append(h.entries, e)
}

// all returns the recorded entries, oldest first. The slice is shared; it is
// only valid until the next push.
func (h *history) all() []entry {
	return h.entries
}
