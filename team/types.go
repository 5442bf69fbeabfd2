package team

import "time"

// Team is a contest account. TeamID is the opaque uppercase key every
// other subsystem uses; it is stable for the life of the contest.
type Team struct {
	TeamID    string
	Name      string
	School    string
	Members   []Member
	BcryptPwd []byte
	LoginTime *time.Time
	Active    bool
	CreatedAt time.Time
}

type Member struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Grade string `json:"grade"`
}

type CreateTeamParams struct {
	TeamID   string
	Name     string
	School   string
	Members  []Member
	Password string
}

type LoginParams struct {
	TeamID   string
	Password string
}
