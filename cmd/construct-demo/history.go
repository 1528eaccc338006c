package main

// history manages the screens visited for back navigation (push/pop).
type history struct {
	stack []string
}

// push adds a screen ID to the top of the stack.
func (h *history) push(id string) {
	h.stack = append(h.stack, id)
}

// pop removes and returns the top screen ID.
// Returns false if the stack is empty.
func (h *history) pop() (string, bool) {
	if len(h.stack) == 0 {
		return "", false
	}
	top := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	return top, true
}

func (h *history) len() int {
	return len(h.stack)
}
