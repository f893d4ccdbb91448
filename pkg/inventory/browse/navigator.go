// Package browse pages through product sheets one at a time.
package browse

// Navigator tracks the current position in a list of sheet titles.
type Navigator struct {
	sheets []string
	idx    int
}

// NewNavigator starts at the first sheet.
func NewNavigator(sheets []string) *Navigator {
	return &Navigator{sheets: sheets}
}

// Current returns the selected title, or false when there are no sheets.
func (n *Navigator) Current() (string, bool) {
	if len(n.sheets) == 0 {
		return "", false
	}
	return n.sheets[n.idx], true
}

// Index returns the zero-based position of the current sheet.
func (n *Navigator) Index() int {
	return n.idx
}

// Len returns the number of sheets.
func (n *Navigator) Len() int {
	return len(n.sheets)
}

// Next moves forward and reports whether the position changed.
func (n *Navigator) Next() bool {
	if n.idx >= len(n.sheets)-1 {
		return false
	}
	n.idx++
	return true
}

// Prev moves backward and reports whether the position changed.
func (n *Navigator) Prev() bool {
	if n.idx <= 0 {
		return false
	}
	n.idx--
	return true
}

// Goto selects the sheet with the given title.
func (n *Navigator) Goto(title string) bool {
	for i, s := range n.sheets {
		if s == title {
			n.idx = i
			return true
		}
	}
	return false
}

// Reset replaces the sheet list, keeping the selection on the same title when
// it still exists and clamping the position otherwise.
func (n *Navigator) Reset(sheets []string) {
	cur, _ := n.Current()
	n.sheets = sheets
	if n.Goto(cur) {
		return
	}
	if n.idx > len(sheets)-1 {
		n.idx = len(sheets) - 1
	}
	if n.idx < 0 {
		n.idx = 0
	}
}
