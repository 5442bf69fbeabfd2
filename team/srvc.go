package team

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coderelay/backend/scoring"
	"github.com/coderelay/backend/srvcerror"
	"golang.org/x/crypto/bcrypt"
)

// CatalogProvider hands the scoring engine the problem/section layout
// when a new team's score record is provisioned.
type CatalogProvider interface {
	ProvisionSpecs() []scoring.ProblemSpec
}

type TeamSrvc struct {
	logger  *slog.Logger
	repo    TeamRepo
	scores  *scoring.ScoreSrvc
	catalog CatalogProvider
}

func NewTeamSrvc(repo TeamRepo, scores *scoring.ScoreSrvc, catalog CatalogProvider) *TeamSrvc {
	return &TeamSrvc{
		logger:  slog.Default().With("module", "team"),
		repo:    repo,
		scores:  scores,
		catalog: catalog,
	}
}

// CreateTeam registers a team and provisions its score record with
// every catalog problem/section at zero.
func (s *TeamSrvc) CreateTeam(ctx context.Context, p CreateTeamParams) (*Team, error) {
	teamID := NewTeamID(p.TeamID)
	name := TeamName{p.Name}
	password := Password{p.Password}

	for _, v := range []Validatable{&teamID, &name, &password} {
		if err := v.IsValid(); err != nil {
			return nil, err
		}
	}

	existing, err := s.repo.Get(ctx, teamID.String())
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error looking up team: %w", err))
	}
	if existing != nil {
		return nil, newErrTeamExists(teamID.String())
	}

	bcryptPwd, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error hashing password: %w", err))
	}

	team := Team{
		TeamID:    teamID.String(),
		Name:      p.Name,
		School:    p.School,
		Members:   p.Members,
		BcryptPwd: bcryptPwd,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Store(ctx, team); err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error storing team: %w", err))
	}

	if err := s.scores.Provision(ctx, team.TeamID, s.catalog.ProvisionSpecs()); err != nil {
		return nil, err
	}

	s.logger.Info("team created", "team", team.TeamID, "school", team.School)
	return &team, nil
}

// Login verifies credentials and records the login time. The score
// record is provisioned here as well in case the team predates the
// catalog (provisioning is a no-op for already provisioned teams).
func (s *TeamSrvc) Login(ctx context.Context, p LoginParams) (*Team, error) {
	teamID := NewTeamID(p.TeamID)

	team, err := s.repo.Get(ctx, teamID.String())
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error looking up team: %w", err))
	}
	if team == nil || !team.Active {
		return nil, newErrInvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword(team.BcryptPwd, []byte(p.Password)); err != nil {
		return nil, newErrInvalidCredentials()
	}

	now := time.Now()
	team.LoginTime = &now
	if err := s.repo.Update(ctx, *team); err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error updating login time: %w", err))
	}

	if err := s.scores.Provision(ctx, team.TeamID, s.catalog.ProvisionSpecs()); err != nil {
		return nil, err
	}

	return team, nil
}

func (s *TeamSrvc) GetTeam(ctx context.Context, teamID string) (*Team, error) {
	team, err := s.repo.Get(ctx, NewTeamID(teamID).String())
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error looking up team: %w", err))
	}
	if team == nil {
		return nil, newErrTeamNotFound()
	}
	return team, nil
}

func (s *TeamSrvc) ListTeams(ctx context.Context) ([]Team, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error listing teams: %w", err))
	}
	return teams, nil
}

// Deactivate locks a team out without deleting its contest state.
func (s *TeamSrvc) Deactivate(ctx context.Context, teamID string) error {
	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	team.Active = false
	if err := s.repo.Update(ctx, *team); err != nil {
		return srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("error deactivating team: %w", err))
	}
	s.logger.Info("team deactivated", "team", team.TeamID)
	return nil
}
