package game

import (
	"time"

	"vquest/constants"
)

// HUD turns controller events into what is on screen at a given time: a feedback
// toast that expires, and a result overlay that appears after a short delay.
type HUD struct {
	toast      Feedback
	hasToast   bool
	outcome    Outcome
	hasOutcome bool
}

// Apply records events; later events replace earlier ones of the same kind.
func (h *HUD) Apply(events []Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case Feedback:
			h.toast, h.hasToast = ev, true
		case Outcome:
			h.outcome, h.hasOutcome = ev, true
		}
	}
}

// Clear removes the toast and overlay.
func (h *HUD) Clear() {
	*h = HUD{}
}

// Overlay returns the level outcome once its delay has passed.
func (h *HUD) Overlay(now time.Duration) (Outcome, bool) {
	if !h.hasOutcome || now < h.outcome.At+constants.OverlayDelay {
		return Outcome{}, false
	}
	return h.outcome, true
}

// Toast returns the current feedback message while it is visible. The toast is
// hidden once the overlay shows.
func (h *HUD) Toast(now time.Duration) (Feedback, bool) {
	if !h.hasToast || now >= h.toast.At+constants.FeedbackDuration {
		return Feedback{}, false
	}
	if _, ok := h.Overlay(now); ok {
		return Feedback{}, false
	}
	return h.toast, true
}
