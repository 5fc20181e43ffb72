package requests

import (
	"bytes"

	"github.com/goccy/go-json"
)

// PatientRegistration is the body accepted on POST /register. Keys keep the
// lower-case spelling the registration form sends.
type PatientRegistration struct {
	FirstName    LooseString `json:"firstname"`
	LastName     LooseString `json:"lastname"`
	DOB          LooseString `json:"dob"`
	DepartmentID LooseString `json:"departmentid"`
	Email        LooseString `json:"email"`
}

// LooseString accepts any JSON scalar and keeps its textual form. Strings are
// unquoted, numbers and booleans keep their literal, objects and arrays keep
// their compact JSON text. null and absent keys leave it unset.
type LooseString struct {
	Value string
	Set   bool
}

func NewLooseString(value string) LooseString {
	return LooseString{Value: value, Set: true}
}

func (s *LooseString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = LooseString{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*s = NewLooseString(value)
	case '{', '[':
		var compacted bytes.Buffer
		if err := json.Compact(&compacted, trimmed); err != nil {
			return err
		}
		*s = NewLooseString(compacted.String())
	default:
		*s = NewLooseString(string(trimmed))
	}
	return nil
}

func (s LooseString) MarshalJSON() ([]byte, error) {
	if !s.Set {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// Ptr returns nil when the value was never set.
func (s LooseString) Ptr() *string {
	if !s.Set {
		return nil
	}
	value := s.Value
	return &value
}
