// Package accordion holds the single-expand state of a list of collapsible entries.
package accordion

import "strconv"

// None is the index reported when no entry is open.
const None = -1

// State records which entry, if any, is expanded. The zero value has nothing open.
type State struct {
	open int // index+1; 0 means none
}

// Open returns a state with entry i expanded. A negative i means none.
func Open(i int) State {
	if i < 0 {
		return State{}
	}
	return State{open: i + 1}
}

// Index returns the expanded entry or None.
func (s State) Index() int {
	return s.open - 1
}

func (s State) IsOpen(i int) bool {
	return i >= 0 && s.open == i+1
}

// Toggle selects entry i: it closes i if it is already open, otherwise it
// opens i and closes whatever was open before.
func (s State) Toggle(i int) State {
	if s.IsOpen(i) {
		return State{}
	}
	return Open(i)
}

// Parse reads a state from a query value for a list of n entries.
// Anything that is not an index in [0, n) yields the closed state.
func Parse(raw string, n int) State {
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= n {
		return State{}
	}
	return Open(i)
}

// String formats the state the way Parse reads it; closed is "".
func (s State) String() string {
	if s.open == 0 {
		return ""
	}
	return strconv.Itoa(s.Index())
}
