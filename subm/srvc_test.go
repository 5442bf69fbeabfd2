package subm_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/coderelay/backend/scoring"
	"github.com/coderelay/backend/srvcerror"
	"github.com/coderelay/backend/subm"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct{}

func (stubCatalog) HasSection(problemID, sectionKey string) bool {
	return problemID == "1" && (sectionKey == "S1" || sectionKey == "S2")
}

func activeWindow() subm.ContestWindow {
	return subm.ContestWindow{
		Start: time.Now().Add(-time.Hour),
		End:   time.Now().Add(time.Hour),
	}
}

func newTestSrvc(t *testing.T, window subm.ContestWindow) (*subm.SubmSrvc, *scoring.ScoreSrvc) {
	t.Helper()
	scores := scoring.NewScoreSrvc(scoring.NewInMemScoreRepo())
	err := scores.Provision(context.Background(), "ALPHA", []scoring.ProblemSpec{
		{
			ProblemID: "1",
			Sections: []scoring.SectionSpec{
				{Key: "S1", Points: 20},
				{Key: "S2", Points: 20},
			},
		},
	})
	require.NoError(t, err)
	return subm.NewSubmSrvc(subm.NewInMemSubmRepo(), scores, stubCatalog{}, window), scores
}

func validParams() subm.CreateSubmissionParams {
	return subm.CreateSubmissionParams{
		TeamID:    "ALPHA",
		ProblemID: "1",
		Section:   "S1",
		Language:  "py",
		Code:      "print(sum(map(int, input().split())))",
	}
}

func assertErrCode(t *testing.T, err error, expectedCode string) {
	t.Helper()
	require.Error(t, err)
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, expectedCode, srvcErr.ErrorCode())
}

func review(t *testing.T, srvc *subm.SubmSrvc, id uuid.UUID, decision string) *subm.Submission {
	t.Helper()
	reviewed, err := srvc.ReviewSubmission(context.Background(), subm.ReviewParams{
		SubmissionUUID: id,
		Decision:       decision,
		Reviewer:       "admin",
	})
	require.NoError(t, err)
	return reviewed
}

func TestCreateSubmission(t *testing.T) {
	srvc, scores := newTestSrvc(t, activeWindow())
	ctx := context.Background()

	created, err := srvc.CreateSubmission(ctx, validParams())
	require.NoError(t, err)

	assert.Equal(t, subm.StatusPending, created.Status)
	assert.Equal(t, subm.ReviewStatusUnderReview, created.ReviewStatus)
	assert.Equal(t, len(validParams().Code), created.CodeLength)

	score, err := scores.GetTeamScore(ctx, "ALPHA")
	require.NoError(t, err)
	assert.Equal(t, 1, score.Problems["1"].Sections["S1"].Trials,
		"submission must count as a trial")
}

func TestCreateSubmissionOutsideWindow(t *testing.T) {
	for _, window := range []subm.ContestWindow{
		{Start: time.Now().Add(time.Hour), End: time.Now().Add(2 * time.Hour)},
		{Start: time.Now().Add(-2 * time.Hour), End: time.Now().Add(-time.Hour)},
	} {
		srvc, _ := newTestSrvc(t, window)
		_, err := srvc.CreateSubmission(context.Background(), validParams())
		assertErrCode(t, err, subm.ErrCodeContestNotActive)
	}
}

func TestCreateSubmissionValidation(t *testing.T) {
	srvc, _ := newTestSrvc(t, activeWindow())
	ctx := context.Background()

	p := validParams()
	p.Language = "java"
	_, err := srvc.CreateSubmission(ctx, p)
	assertErrCode(t, err, subm.ErrCodeInvalidLanguage)

	p = validParams()
	p.Code = "x=1"
	_, err = srvc.CreateSubmission(ctx, p)
	assertErrCode(t, err, subm.ErrCodeCodeTooShort)

	p = validParams()
	p.Code = strings.Repeat("a", 65*1024)
	_, err = srvc.CreateSubmission(ctx, p)
	assertErrCode(t, err, subm.ErrCodeCodeTooLong)

	p = validParams()
	p.Section = "S9"
	_, err = srvc.CreateSubmission(ctx, p)
	assertErrCode(t, err, subm.ErrCodeUnknownProblemSection)

	p = validParams()
	p.ProblemID = "42"
	_, err = srvc.CreateSubmission(ctx, p)
	assertErrCode(t, err, subm.ErrCodeUnknownProblemSection)
}

func TestCreateSubmissionUnknownTeam(t *testing.T) {
	srvc, _ := newTestSrvc(t, activeWindow())
	p := validParams()
	p.TeamID = "GHOST"
	_, err := srvc.CreateSubmission(context.Background(), p)
	assertErrCode(t, err, scoring.ErrCodeTeamScoreNotFound)
}

func TestCreateSubmissionBlockedWhilePending(t *testing.T) {
	srvc, _ := newTestSrvc(t, activeWindow())
	ctx := context.Background()

	_, err := srvc.CreateSubmission(ctx, validParams())
	require.NoError(t, err)

	_, err = srvc.CreateSubmission(ctx, validParams())
	assertErrCode(t, err, subm.ErrCodePendingReview)

	// Another section of the same problem is not blocked.
	p := validParams()
	p.Section = "S2"
	_, err = srvc.CreateSubmission(ctx, p)
	require.NoError(t, err)
}

func TestReviewWrongUnblocksResubmission(t *testing.T) {
	srvc, scores := newTestSrvc(t, activeWindow())
	ctx := context.Background()

	created, err := srvc.CreateSubmission(ctx, validParams())
	require.NoError(t, err)

	reviewed := review(t, srvc, created.UUID, "wrong")
	assert.Equal(t, subm.StatusWrong, reviewed.Status)
	assert.Equal(t, subm.ReviewStatusReviewed, reviewed.ReviewStatus)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, "admin", *reviewed.ReviewedBy)

	score, err := scores.GetTeamScore(ctx, "ALPHA")
	require.NoError(t, err)
	section := score.Problems["1"].Sections["S1"]
	assert.Equal(t, scoring.StatusWrong, section.Status)
	assert.Equal(t, subm.DefaultWrongPenalty, section.Penalty)

	_, err = srvc.CreateSubmission(ctx, validParams())
	require.NoError(t, err, "wrong verdict must allow another attempt")
}

func TestReviewCorrectScoresAndClosesSection(t *testing.T) {
	srvc, scores := newTestSrvc(t, activeWindow())
	ctx := context.Background()

	created, err := srvc.CreateSubmission(ctx, validParams())
	require.NoError(t, err)
	review(t, srvc, created.UUID, "correct")

	score, err := scores.GetTeamScore(ctx, "ALPHA")
	require.NoError(t, err)
	section := score.Problems["1"].Sections["S1"]
	assert.Equal(t, scoring.StatusCorrect, section.Status)
	assert.Equal(t, 20, section.Score)
	assert.Equal(t, 0, section.Penalty)
	assert.Equal(t, 20, score.TotalScore)

	_, err = srvc.CreateSubmission(ctx, validParams())
	assertErrCode(t, err, subm.ErrCodeSectionAlreadySolved)
}

func TestReviewPenaltyOverride(t *testing.T) {
	srvc, scores := newTestSrvc(t, activeWindow())
	ctx := context.Background()

	created, err := srvc.CreateSubmission(ctx, validParams())
	require.NoError(t, err)

	penalty := 5
	_, err = srvc.ReviewSubmission(ctx, subm.ReviewParams{
		SubmissionUUID:  created.UUID,
		Decision:        "wrong",
		PenaltyOverride: &penalty,
		Reviewer:        "admin",
	})
	require.NoError(t, err)

	score, err := scores.GetTeamScore(ctx, "ALPHA")
	require.NoError(t, err)
	assert.Equal(t, 5, score.Problems["1"].Sections["S1"].Penalty)
}

func TestReviewTwiceRejected(t *testing.T) {
	srvc, _ := newTestSrvc(t, activeWindow())
	ctx := context.Background()

	created, err := srvc.CreateSubmission(ctx, validParams())
	require.NoError(t, err)
	review(t, srvc, created.UUID, "wrong")

	_, err = srvc.ReviewSubmission(ctx, subm.ReviewParams{
		SubmissionUUID: created.UUID,
		Decision:       "correct",
		Reviewer:       "admin",
	})
	assertErrCode(t, err, subm.ErrCodeAlreadyReviewed)
}

func TestReviewUnknownSubmission(t *testing.T) {
	srvc, _ := newTestSrvc(t, activeWindow())
	_, err := srvc.ReviewSubmission(context.Background(), subm.ReviewParams{
		SubmissionUUID: uuid.New(),
		Decision:       "correct",
		Reviewer:       "admin",
	})
	assertErrCode(t, err, subm.ErrCodeSubmissionNotFound)
}

func TestReviewInvalidDecision(t *testing.T) {
	srvc, _ := newTestSrvc(t, activeWindow())
	ctx := context.Background()

	created, err := srvc.CreateSubmission(ctx, validParams())
	require.NoError(t, err)

	_, err = srvc.ReviewSubmission(ctx, subm.ReviewParams{
		SubmissionUUID: created.UUID,
		Decision:       "maybe",
		Reviewer:       "admin",
	})
	assertErrCode(t, err, scoring.ErrCodeInvalidDecision)
}

func TestCountUnreviewed(t *testing.T) {
	srvc, _ := newTestSrvc(t, activeWindow())
	ctx := context.Background()

	count, err := srvc.CountUnreviewed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	created, err := srvc.CreateSubmission(ctx, validParams())
	require.NoError(t, err)

	count, err = srvc.CountUnreviewed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	review(t, srvc, created.UUID, "wrong")

	count, err = srvc.CountUnreviewed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestListTeamSubmissions(t *testing.T) {
	srvc, _ := newTestSrvc(t, activeWindow())
	ctx := context.Background()

	created, err := srvc.CreateSubmission(ctx, validParams())
	require.NoError(t, err)
	review(t, srvc, created.UUID, "wrong")
	p := validParams()
	p.Section = "S2"
	_, err = srvc.CreateSubmission(ctx, p)
	require.NoError(t, err)

	subms, err := srvc.ListTeamSubmissions(ctx, "ALPHA")
	require.NoError(t, err)
	require.Len(t, subms, 2)

	subms, err = srvc.ListTeamSubmissions(ctx, "GHOST")
	require.NoError(t, err)
	assert.Empty(t, subms)
}
