package host

// History is the in-memory list of visited addresses for one session.
type History struct {
	entries []string
	index   int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{index: -1}
}

// Visit records addr as the current entry and drops any forward entries.
func (h *History) Visit(addr string) {
	h.entries = append(h.entries[:h.index+1], addr)
	h.index = len(h.entries) - 1
}

// Back moves one entry back and returns it.
func (h *History) Back() (string, bool) {
	if !h.CanGoBack() {
		return "", false
	}
	h.index--
	return h.entries[h.index], true
}

// Forward moves one entry forward and returns it.
func (h *History) Forward() (string, bool) {
	if !h.CanGoForward() {
		return "", false
	}
	h.index++
	return h.entries[h.index], true
}

// Current returns the current entry.
func (h *History) Current() (string, bool) {
	if h.index < 0 {
		return "", false
	}
	return h.entries[h.index], true
}

func (h *History) CanGoBack() bool {
	return h.index > 0
}

func (h *History) CanGoForward() bool {
	return h.index >= 0 && h.index < len(h.entries)-1
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}
