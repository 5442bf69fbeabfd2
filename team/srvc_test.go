package team_test

import (
	"context"
	"testing"

	"github.com/coderelay/backend/problem"
	"github.com/coderelay/backend/scoring"
	"github.com/coderelay/backend/srvcerror"
	"github.com/coderelay/backend/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTeamSrvc(t *testing.T) (*team.TeamSrvc, *scoring.ScoreSrvc) {
	t.Helper()
	scoreSrvc := scoring.NewScoreSrvc(scoring.NewInMemScoreRepo())
	problemSrvc := problem.NewProblemSrvc([]problem.Problem{
		{
			ID: "1", Label: "A", Number: 1, Title: "Warmup",
			Sections: []problem.Section{
				{Key: "A", Points: 20},
				{Key: "B", Points: 20},
			},
		},
	})
	teamSrvc := team.NewTeamSrvc(team.NewInMemTeamRepo(), scoreSrvc, problemSrvc)
	return teamSrvc, scoreSrvc
}

func assertErrCode(t *testing.T, err error, expectedCode string) {
	t.Helper()
	require.Error(t, err)
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, expectedCode, srvcErr.ErrorCode())
}

func TestCreateTeamProvisionsScoreRecord(t *testing.T) {
	teamSrvc, scoreSrvc := newTestTeamSrvc(t)
	ctx := context.Background()

	created, err := teamSrvc.CreateTeam(ctx, team.CreateTeamParams{
		TeamID:   "alpha1",
		Name:     "Team Alpha",
		School:   "Central High",
		Password: "secret6",
	})
	require.NoError(t, err)
	assert.Equal(t, "ALPHA1", created.TeamID, "team id is normalized to uppercase")
	assert.True(t, created.Active)
	assert.NotEqual(t, "secret6", string(created.BcryptPwd))

	score, err := scoreSrvc.GetTeamScore(ctx, "ALPHA1")
	require.NoError(t, err)
	require.Contains(t, score.Problems, "1")
	assert.Len(t, score.Problems["1"].Sections, 2)
}

func TestCreateTeamValidation(t *testing.T) {
	teamSrvc, _ := newTestTeamSrvc(t)
	ctx := context.Background()

	_, err := teamSrvc.CreateTeam(ctx, team.CreateTeamParams{
		TeamID: "A", Name: "x", Password: "secret6",
	})
	assertErrCode(t, err, team.ErrCodeTeamIDTooShort)

	_, err = teamSrvc.CreateTeam(ctx, team.CreateTeamParams{
		TeamID: "AL PHA", Name: "x", Password: "secret6",
	})
	assertErrCode(t, err, team.ErrCodeTeamIDInvalidChars)

	_, err = teamSrvc.CreateTeam(ctx, team.CreateTeamParams{
		TeamID: "ALPHA1", Name: "", Password: "secret6",
	})
	assertErrCode(t, err, team.ErrCodeTeamNameEmpty)

	_, err = teamSrvc.CreateTeam(ctx, team.CreateTeamParams{
		TeamID: "ALPHA1", Name: "x", Password: "short",
	})
	assertErrCode(t, err, team.ErrCodePasswordTooShort)
}

func TestCreateTeamDuplicate(t *testing.T) {
	teamSrvc, _ := newTestTeamSrvc(t)
	ctx := context.Background()

	_, err := teamSrvc.CreateTeam(ctx, team.CreateTeamParams{
		TeamID: "ALPHA1", Name: "Team Alpha", Password: "secret6",
	})
	require.NoError(t, err)

	_, err = teamSrvc.CreateTeam(ctx, team.CreateTeamParams{
		TeamID: "alpha1", Name: "Other", Password: "secret7",
	})
	assertErrCode(t, err, team.ErrCodeTeamExists)
}

func TestGetTeamNormalizesID(t *testing.T) {
	teamSrvc, _ := newTestTeamSrvc(t)
	ctx := context.Background()

	_, err := teamSrvc.CreateTeam(ctx, team.CreateTeamParams{
		TeamID: "ALPHA1", Name: "Team Alpha", Password: "secret6",
	})
	require.NoError(t, err)

	found, err := teamSrvc.GetTeam(ctx, " alpha1 ")
	require.NoError(t, err)
	assert.Equal(t, "ALPHA1", found.TeamID)

	_, err = teamSrvc.GetTeam(ctx, "NOBODY")
	assertErrCode(t, err, team.ErrCodeTeamNotFound)
}

func TestLogin(t *testing.T) {
	teamSrvc, _ := newTestTeamSrvc(t)
	ctx := context.Background()

	_, err := teamSrvc.CreateTeam(ctx, team.CreateTeamParams{
		TeamID: "ALPHA1", Name: "Team Alpha", Password: "secret6",
	})
	require.NoError(t, err)

	logged, err := teamSrvc.Login(ctx, team.LoginParams{TeamID: "alpha1", Password: "secret6"})
	require.NoError(t, err)
	assert.Equal(t, "ALPHA1", logged.TeamID)
	assert.NotNil(t, logged.LoginTime)

	_, err = teamSrvc.Login(ctx, team.LoginParams{TeamID: "alpha1", Password: "wrongpw"})
	assertErrCode(t, err, team.ErrCodeInvalidCredentials)

	_, err = teamSrvc.Login(ctx, team.LoginParams{TeamID: "nobody", Password: "secret6"})
	assertErrCode(t, err, team.ErrCodeInvalidCredentials)
}

func TestDeactivatedTeamCannotLogin(t *testing.T) {
	teamSrvc, _ := newTestTeamSrvc(t)
	ctx := context.Background()

	_, err := teamSrvc.CreateTeam(ctx, team.CreateTeamParams{
		TeamID: "ALPHA1", Name: "Team Alpha", Password: "secret6",
	})
	require.NoError(t, err)
	require.NoError(t, teamSrvc.Deactivate(ctx, "ALPHA1"))

	_, err = teamSrvc.Login(ctx, team.LoginParams{TeamID: "ALPHA1", Password: "secret6"})
	assertErrCode(t, err, team.ErrCodeInvalidCredentials)
}
