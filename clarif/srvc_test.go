package clarif_test

import (
	"context"
	"testing"

	"github.com/coderelay/backend/clarif"
	"github.com/coderelay/backend/srvcerror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSrvc() *clarif.ClarifSrvc {
	return clarif.NewClarifSrvc(clarif.NewInMemClarifRepo())
}

func assertErrCode(t *testing.T, err error, expectedCode string) {
	t.Helper()
	require.Error(t, err)
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, expectedCode, srvcErr.ErrorCode())
}

func TestCreateAndAnswerClarif(t *testing.T) {
	srvc := newTestSrvc()
	ctx := context.Background()

	created, err := srvc.CreateClarif(ctx, clarif.CreateClarifParams{
		TeamID:    "ALPHA",
		ProblemID: "1",
		Question:  "Is the input terminated by EOF?",
	})
	require.NoError(t, err)
	assert.Equal(t, clarif.StatusPending, created.Status)

	pending, err := srvc.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	answered, err := srvc.AnswerClarif(ctx, clarif.AnswerClarifParams{
		ClarifUUID: created.UUID,
		Answer:     "Yes.",
		Public:     true,
		Reviewer:   "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, clarif.StatusAnswered, answered.Status)
	assert.True(t, answered.Public)
	require.NotNil(t, answered.AnsweredBy)
	assert.Equal(t, "admin", *answered.AnsweredBy)

	pending, err = srvc.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending)
}

func TestCreateClarifRejectsEmptyQuestion(t *testing.T) {
	srvc := newTestSrvc()
	_, err := srvc.CreateClarif(context.Background(), clarif.CreateClarifParams{
		TeamID:   "ALPHA",
		Question: "  ",
	})
	assertErrCode(t, err, clarif.ErrCodeQuestionEmpty)
}

func TestAnswerClarifGuards(t *testing.T) {
	srvc := newTestSrvc()
	ctx := context.Background()

	_, err := srvc.AnswerClarif(ctx, clarif.AnswerClarifParams{
		ClarifUUID: uuid.New(),
		Answer:     "Yes.",
		Reviewer:   "admin",
	})
	assertErrCode(t, err, clarif.ErrCodeClarifNotFound)

	created, err := srvc.CreateClarif(ctx, clarif.CreateClarifParams{
		TeamID:   "ALPHA",
		Question: "May we use the standard library?",
	})
	require.NoError(t, err)

	_, err = srvc.AnswerClarif(ctx, clarif.AnswerClarifParams{
		ClarifUUID: created.UUID,
		Answer:     " ",
		Reviewer:   "admin",
	})
	assertErrCode(t, err, clarif.ErrCodeAnswerEmpty)

	_, err = srvc.AnswerClarif(ctx, clarif.AnswerClarifParams{
		ClarifUUID: created.UUID,
		Answer:     "Yes.",
		Reviewer:   "admin",
	})
	require.NoError(t, err)

	_, err = srvc.AnswerClarif(ctx, clarif.AnswerClarifParams{
		ClarifUUID: created.UUID,
		Answer:     "No.",
		Reviewer:   "admin",
	})
	assertErrCode(t, err, clarif.ErrCodeAlreadyAnswered)
}

func TestTeamVisibility(t *testing.T) {
	srvc := newTestSrvc()
	ctx := context.Background()

	mine, err := srvc.CreateClarif(ctx, clarif.CreateClarifParams{
		TeamID:   "ALPHA",
		Question: "Question from alpha",
	})
	require.NoError(t, err)
	theirsPublic, err := srvc.CreateClarif(ctx, clarif.CreateClarifParams{
		TeamID:   "BRAVO",
		Question: "Question from bravo, answered publicly",
	})
	require.NoError(t, err)
	theirsPrivate, err := srvc.CreateClarif(ctx, clarif.CreateClarifParams{
		TeamID:   "BRAVO",
		Question: "Question from bravo, answered privately",
	})
	require.NoError(t, err)

	_, err = srvc.AnswerClarif(ctx, clarif.AnswerClarifParams{
		ClarifUUID: theirsPublic.UUID, Answer: "Yes.", Public: true, Reviewer: "admin"})
	require.NoError(t, err)
	_, err = srvc.AnswerClarif(ctx, clarif.AnswerClarifParams{
		ClarifUUID: theirsPrivate.UUID, Answer: "No.", Reviewer: "admin"})
	require.NoError(t, err)

	visible, err := srvc.ListTeamClarifs(ctx, "ALPHA")
	require.NoError(t, err)
	require.Len(t, visible, 2, "own question plus the public answer")

	ids := map[uuid.UUID]bool{}
	for _, c := range visible {
		ids[c.UUID] = true
	}
	assert.True(t, ids[mine.UUID])
	assert.True(t, ids[theirsPublic.UUID])
	assert.False(t, ids[theirsPrivate.UUID])

	all, err := srvc.ListAllClarifs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
