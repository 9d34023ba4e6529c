package game

import (
	"fmt"
	"time"

	"vquest/answer"
)

// Var names one of the three coefficients of y = a|x-h|+k.
type Var int

const (
	VarA Var = iota
	VarH
	VarK
)

func (v Var) String() string {
	switch v {
	case VarA:
		return "a"
	case VarH:
		return "h"
	case VarK:
		return "k"
	}
	return "?"
}

// Coef is a coefficient that may not have been entered yet.
type Coef struct {
	Value int
	Set   bool
}

func (c Coef) String() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprint(c.Value)
}

// State is the player-facing game state.
type State struct {
	Level       int
	Score       int
	Attempts    int
	MaxAttempts int
	A, H, K     Coef
	Solved      bool
	History     []int
}

// Complete reports whether all three coefficients have been entered.
func (s State) Complete() bool {
	return s.A.Set && s.H.Set && s.K.Set
}

// Submission returns the entered coefficients.
func (s State) Submission() answer.Submission {
	return answer.Submission{A: s.A.Value, H: s.H.Value, K: s.K.Value}
}

func (s *State) coef(v Var) *Coef {
	switch v {
	case VarA:
		return &s.A
	case VarH:
		return &s.H
	default:
		return &s.K
	}
}

// FeedbackKind categorizes a feedback message.
type FeedbackKind int

const (
	FeedbackFail FeedbackKind = iota
	FeedbackSuccess
)

// Event is emitted by the controller for the frontend to present.
type Event interface {
	at() time.Duration
}

// Feedback is a short message shown after an action.
type Feedback struct {
	Text string
	Kind FeedbackKind
	At   time.Duration
}

func (f Feedback) at() time.Duration { return f.At }

// Outcome ends a level, either solved with a reward or failed with the answer revealed.
type Outcome struct {
	Solved       bool
	Stars        int
	Points       int
	AttemptsUsed int
	MaxAttempts  int
	Answer       answer.Submission
	At           time.Duration
}

func (o Outcome) at() time.Duration { return o.At }

// AnswerText reveals the correct coefficients.
func (o Outcome) AnswerText() string {
	return fmt.Sprintf("The answer was a = %d, h = %d, k = %d.", o.Answer.A, o.Answer.H, o.Answer.K)
}

// AttemptsText is the "used/max" summary for the completion overlay.
func (o Outcome) AttemptsText() string {
	return fmt.Sprintf("%d/%d", o.AttemptsUsed, o.MaxAttempts)
}
