package library

import "milxos/internal/model"

// Outcome tells the presentation layer what a key did.
type Outcome int

const (
	// OutcomeNone means the key was handled (or ignored) and only state changed.
	OutcomeNone Outcome = iota
	// OutcomeSelected means the current project was chosen; see KeyResult.Project.
	OutcomeSelected
	// OutcomeBack means the user asked to leave the library view.
	OutcomeBack
	// OutcomeForwardToInput means the search box owns the key.
	OutcomeForwardToInput
	// OutcomeForwardToPopover means the open popover owns the key.
	OutcomeForwardToPopover
)

type KeyResult struct {
	Outcome Outcome
	Project model.Project
}

// Key names follow Bubble Tea's KeyMsg.String() spelling.
const (
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyEnter     = "enter"
	KeySpace     = " "
	KeyEsc       = "esc"
	KeyBackspace = "backspace"
)

// HandleKey applies the library keyboard map.
//
// With the search box open only esc is intercepted (it clears and closes search).
// The coming-soon modal is dismissed by esc, enter, or space and swallows other keys.
// With a popover open esc closes it and other keys go to the popover.
func (c *Controller) HandleKey(k string) KeyResult {
	if c.searchOpen {
		if k == KeyEsc {
			c.CloseSearch()
			return KeyResult{}
		}
		return KeyResult{Outcome: OutcomeForwardToInput}
	}

	if c.comingSoonOpen {
		switch k {
		case KeyEsc, KeyEnter, KeySpace:
			c.DismissComingSoon()
		}
		return KeyResult{}
	}

	if c.popover != PopoverNone {
		if k == KeyEsc {
			c.ClosePopover()
			return KeyResult{}
		}
		return KeyResult{Outcome: OutcomeForwardToPopover}
	}

	switch k {
	case KeyLeft:
		c.MoveSelection(-1)
	case KeyRight:
		c.MoveSelection(+1)
	case KeyEnter, KeySpace:
		if p, ok := c.SelectCurrent(); ok {
			return KeyResult{Outcome: OutcomeSelected, Project: p}
		}
	case KeyEsc, KeyBackspace:
		return KeyResult{Outcome: OutcomeBack}
	}
	return KeyResult{}
}
