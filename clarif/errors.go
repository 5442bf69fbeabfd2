package clarif

import (
	"net/http"

	"github.com/coderelay/backend/srvcerror"
)

const ErrCodeQuestionEmpty = "clarification_question_empty"

func newErrQuestionEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeQuestionEmpty,
		"Clarification question must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeAnswerEmpty = "clarification_answer_empty"

func newErrAnswerEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAnswerEmpty,
		"Clarification answer must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeClarifNotFound = "clarification_not_found"

func newErrClarifNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeClarifNotFound,
		"Clarification not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeAlreadyAnswered = "clarification_already_answered"

func newErrAlreadyAnswered() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAlreadyAnswered,
		"Clarification has already been answered",
	).SetHttpStatusCode(http.StatusConflict)
}
