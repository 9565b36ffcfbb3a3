package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Selection is one answer slot: either unanswered or a chosen option index.
// The zero value is unanswered, so choosing option 0 stays distinguishable.
type Selection struct {
	option   int
	answered bool
}

// Unanswered returns an empty answer slot
func Unanswered() Selection {
	return Selection{}
}

// Chose returns a slot holding the given option index
func Chose(option int) Selection {
	return Selection{option: option, answered: true}
}

// Option returns the chosen index and whether the slot is answered
func (s Selection) Option() (int, bool) {
	return s.option, s.answered
}

// IsAnswered reports whether an option has been chosen
func (s Selection) IsAnswered() bool {
	return s.answered
}

// Matches reports whether the slot holds exactly the given option.
// An unanswered slot matches nothing.
func (s Selection) Matches(option int) bool {
	return s.answered && s.option == option
}

func (s Selection) String() string {
	if !s.answered {
		return "unanswered"
	}
	return fmt.Sprintf("option %d", s.option)
}

// MarshalJSON encodes an unanswered slot as null and an answer as its index
func (s Selection) MarshalJSON() ([]byte, error) {
	if !s.answered {
		return []byte("null"), nil
	}
	return json.Marshal(s.option)
}

// UnmarshalJSON accepts null or an integer option index
func (s *Selection) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = Unanswered()
		return nil
	}
	var option int
	if err := json.Unmarshal(data, &option); err != nil {
		return fmt.Errorf("selection must be null or an option index: %w", err)
	}
	*s = Chose(option)
	return nil
}

// AnswerState holds one Selection per question. Its length is fixed when
// the session starts; only slot contents change.
type AnswerState []Selection

// NewAnswerState returns an all-unanswered state for n questions
func NewAnswerState(n int) AnswerState {
	return make(AnswerState, n)
}

// UnansweredCount returns the number of empty slots
func (a AnswerState) UnansweredCount() int {
	count := 0
	for _, s := range a {
		if !s.IsAnswered() {
			count++
		}
	}
	return count
}

// Clone returns an independent copy
func (a AnswerState) Clone() AnswerState {
	out := make(AnswerState, len(a))
	copy(out, a)
	return out
}

// TimerState is a point-in-time view of the countdown
type TimerState struct {
	RemainingSeconds int  `json:"remaining_seconds"`
	Running          bool `json:"running"`
}
