package scoring

import (
	"fmt"
	"net/http"

	"github.com/coderelay/backend/srvcerror"
)

const ErrCodeTeamScoreNotFound = "team_score_not_found"

func newErrTeamScoreNotFound(teamID string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamScoreNotFound,
		"score record for this team was not found",
	).SetHttpStatusCode(http.StatusNotFound).
		SetDebug(fmt.Errorf("no score record for team %s", teamID))
}

const ErrCodeInvalidDecision = "invalid_decision"

func newErrInvalidDecision(decision string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidDecision,
		"decision must be either correct or wrong",
	).SetHttpStatusCode(http.StatusBadRequest).
		SetDebug(fmt.Errorf("invalid decision value: %q", decision))
}

const ErrCodeNegativePenalty = "negative_penalty"

func newErrNegativePenalty(penalty int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNegativePenalty,
		"penalty must not be negative",
	).SetHttpStatusCode(http.StatusBadRequest).
		SetDebug(fmt.Errorf("negative penalty delta: %d", penalty))
}

const ErrCodeProblemWithoutSections = "problem_without_sections"

func newErrProblemWithoutSections(problemID string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeProblemWithoutSections,
		"problem is configured without sections",
	).SetHttpStatusCode(http.StatusUnprocessableEntity).
		SetDebug(fmt.Errorf("problem %s has zero sections", problemID))
}
