package team

import "strings"

type Validatable interface {
	IsValid() error
}

type TeamID struct {
	value string
}

// NewTeamID normalizes a raw team id to the canonical uppercase form.
func NewTeamID(raw string) TeamID {
	return TeamID{value: strings.ToUpper(strings.TrimSpace(raw))}
}

func (t *TeamID) IsValid() error {
	const minTeamIDLength = 2
	const maxTeamIDLength = 16
	if len(t.value) < minTeamIDLength {
		return newErrTeamIDTooShort(minTeamIDLength)
	}
	if len(t.value) > maxTeamIDLength {
		return newErrTeamIDTooLong(maxTeamIDLength)
	}
	for _, r := range t.value {
		isDigit := r >= '0' && r <= '9'
		isUpper := r >= 'A' && r <= 'Z'
		if !isDigit && !isUpper {
			return newErrTeamIDInvalidChars()
		}
	}
	return nil
}

func (t TeamID) String() string {
	return t.value
}

type TeamName struct {
	Value string
}

func (n *TeamName) IsValid() error {
	const maxTeamNameLength = 64
	if strings.TrimSpace(n.Value) == "" {
		return newErrTeamNameEmpty()
	}
	if len(n.Value) > maxTeamNameLength {
		return newErrTeamNameTooLong(maxTeamNameLength)
	}
	return nil
}

type Password struct {
	Value string
}

func (p *Password) IsValid() error {
	const minPasswordLength = 6
	if len(p.Value) < minPasswordLength {
		return newErrPasswordTooShort(minPasswordLength)
	}
	if len(p.Value) > 1024 {
		return newErrPasswordTooLong()
	}
	return nil
}
