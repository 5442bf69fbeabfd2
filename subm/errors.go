package subm

import (
	"fmt"
	"net/http"

	"github.com/coderelay/backend/srvcerror"
)

const ErrCodeContestNotActive = "contest_not_active"

func newErrContestNotActive(windowStatus string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeContestNotActive,
		"the contest is not accepting submissions right now",
	).SetHttpStatusCode(http.StatusForbidden).
		SetDebug(fmt.Errorf("contest window status: %s", windowStatus))
}

const ErrCodeInvalidLanguage = "invalid_language"

func newErrInvalidLanguage(language string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidLanguage,
		"only Python (py) and C++ (cpp) submissions are accepted",
	).SetHttpStatusCode(http.StatusBadRequest).
		SetDebug(fmt.Errorf("invalid language: %q", language))
}

const ErrCodeCodeTooShort = "code_too_short"

func newErrCodeTooShort(minLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCodeTooShort,
		fmt.Sprintf("submitted code must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeCodeTooLong = "code_too_long"

func newErrCodeTooLong(maxLengthKB int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCodeTooLong,
		fmt.Sprintf("submitted code is too long, the maximum is %d KB", maxLengthKB),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUnknownProblemSection = "unknown_problem_section"

func newErrUnknownProblemSection(problemID, section string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnknownProblemSection,
		"the referenced problem section does not exist",
	).SetHttpStatusCode(http.StatusUnprocessableEntity).
		SetDebug(fmt.Errorf("no section %q in problem %q", section, problemID))
}

const ErrCodeSectionAlreadySolved = "section_already_solved"

func newErrSectionAlreadySolved() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSectionAlreadySolved,
		"this section has already been solved correctly",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodePendingReview = "pending_review"

func newErrPendingReview() *srvcerror.Error {
	return srvcerror.New(
		ErrCodePendingReview,
		"a previous submission for this section is still under review",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeSubmissionNotFound = "submission_not_found"

func newErrSubmissionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionNotFound,
		"submission was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeAlreadyReviewed = "already_reviewed"

func newErrAlreadyReviewed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAlreadyReviewed,
		"this submission has already been reviewed",
	).SetHttpStatusCode(http.StatusConflict)
}
