package game

import (
	"errors"
	"strconv"
)

const maxEntryLen = 3

// Entry is the modal editor for one coefficient: a small text buffer that accepts
// digits, a leading minus sign, and backspace.
type Entry struct {
	Var    Var
	Buf    string
	Active bool
	warn   string
}

// Open starts editing v, prefilled with its current value. It refuses while the
// level is solved or a sequence is playing.
func (e *Entry) Open(c *Controller, v Var) bool {
	if c.state.Solved || c.seq.Active() {
		return false
	}
	e.Var = v
	e.Buf = c.Coefficient(v).String()
	e.Active = true
	e.warn = ""
	return true
}

// Prompt is the modal's label.
func (e *Entry) Prompt() string {
	return "Set value for " + e.Var.String() + ":"
}

// Placeholder is shown while the buffer is empty.
func (e *Entry) Placeholder() string {
	if e.warn != "" {
		return e.warn
	}
	if e.Var == VarA {
		return "1"
	}
	return "0"
}

// Digit appends d (0-9).
func (e *Entry) Digit(d int) {
	if !e.Active || d < 0 || d > 9 || len(e.Buf) >= maxEntryLen {
		return
	}
	e.Buf += strconv.Itoa(d)
}

// Minus starts a negative number; it only applies to an empty buffer.
func (e *Entry) Minus() {
	if e.Active && e.Buf == "" {
		e.Buf = "-"
	}
}

// Backspace removes the last character.
func (e *Entry) Backspace() {
	if e.Active && len(e.Buf) > 0 {
		e.Buf = e.Buf[:len(e.Buf)-1]
	}
}

// Cancel closes the editor without changing the coefficient.
func (e *Entry) Cancel() {
	e.Active = false
	e.Buf = ""
	e.warn = ""
}

// Confirm applies the buffer to the controller. Non-numeric input keeps the
// editor open unchanged; a zero a clears the buffer and warns.
func (e *Entry) Confirm(c *Controller) error {
	if !e.Active {
		return nil
	}
	err := c.SetCoefficient(e.Var, e.Buf)
	switch {
	case err == nil:
		e.Cancel()
	case errors.Is(err, ErrZeroA):
		e.Buf = ""
		e.warn = "Not 0!"
	case errors.Is(err, ErrBusy), errors.Is(err, ErrSolved):
		e.Cancel()
	}
	return err
}
