package team

import (
	"fmt"
	"net/http"

	"github.com/coderelay/backend/srvcerror"
)

const ErrCodeTeamIDTooShort = "team_id_too_short"

func newErrTeamIDTooShort(minLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamIDTooShort,
		fmt.Sprintf("team id must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTeamIDTooLong = "team_id_too_long"

func newErrTeamIDTooLong(maxLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamIDTooLong,
		fmt.Sprintf("team id must be at most %d characters long", maxLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTeamIDInvalidChars = "team_id_invalid_chars"

func newErrTeamIDInvalidChars() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamIDInvalidChars,
		"team id may only contain uppercase letters and digits",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTeamNameEmpty = "team_name_empty"

func newErrTeamNameEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamNameEmpty,
		"team name must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTeamNameTooLong = "team_name_too_long"

func newErrTeamNameTooLong(maxLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamNameTooLong,
		fmt.Sprintf("team name must be at most %d characters long", maxLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePasswordTooShort = "password_too_short"

func newErrPasswordTooShort(minLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodePasswordTooShort,
		fmt.Sprintf("password must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePasswordTooLong = "password_too_long"

func newErrPasswordTooLong() *srvcerror.Error {
	return srvcerror.New(
		ErrCodePasswordTooLong,
		"password is unreasonably long",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTeamExists = "team_exists"

func newErrTeamExists(teamID string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamExists,
		fmt.Sprintf("team %s already exists", teamID),
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeTeamNotFound = "team_not_found"

func newErrTeamNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamNotFound,
		"team was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeInvalidCredentials = "invalid_credentials"

func newErrInvalidCredentials() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidCredentials,
		"team id or password is incorrect",
	).SetHttpStatusCode(http.StatusUnauthorized)
}
