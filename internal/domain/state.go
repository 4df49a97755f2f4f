package domain

import (
	"encoding/json"
	"fmt"
)

// State of a settlement day. The zero value is Unvalidated, which is also what
// a day without a stored row is.
type State int

const (
	StateUnvalidated State = iota
	StatePendingValidation
	StateValidated
)

var stateNames = map[State]string{
	StateUnvalidated:       "UNVALIDATED",
	StatePendingValidation: "PENDING_VALIDATION",
	StateValidated:         "VALIDATED",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func ParseState(s string) (State, error) {
	for state, name := range stateNames {
		if name == s {
			return state, nil
		}
	}
	return StateUnvalidated, fmt.Errorf("unknown settlement state %q", s)
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *State) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseState(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Next reports the state an action moves s to, and false when the action does
// not apply to s. Validate only moves pending days; reopening is admin-only
// and goes back to Unvalidated.
func (s State) Next(action Action) (State, bool) {
	switch action {
	case ActionMarkPending:
		if s == StateUnvalidated {
			return StatePendingValidation, true
		}
	case ActionValidate:
		if s == StatePendingValidation {
			return StateValidated, true
		}
	case ActionReopen:
		if s == StatePendingValidation || s == StateValidated {
			return StateUnvalidated, true
		}
	}
	return s, false
}
