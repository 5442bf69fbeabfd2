package http

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/coderelay/backend/auth"
	"github.com/coderelay/backend/httpjson"
	"github.com/coderelay/backend/srvcerror"
	"github.com/coderelay/backend/team"
)

func (s *HttpServer) authLogin(w http.ResponseWriter, r *http.Request) {
	type loginRequest struct {
		TeamID   string `json:"teamId"`
		Password string `json:"password"`
	}

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w,
			http.StatusText(http.StatusBadRequest),
			http.StatusBadRequest, "bad_request")
		return
	}

	loggedIn, err := s.teamSrvc.Login(r.Context(), team.LoginParams{
		TeamID:   request.TeamID,
		Password: request.Password,
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	token, err := auth.GenerateTeamJWT(loggedIn.TeamID, loggedIn.Name, s.jwtKey)
	if err != nil {
		s.handleError(w, r,
			srvcerror.ErrInternalSE().SetDebug(err))
		return
	}

	httpjson.WriteSuccessJson(w, struct {
		Token string       `json:"token"`
		Team  teamResponse `json:"team"`
	}{
		Token: token,
		Team:  mapTeam(*loggedIn),
	})
}

func (s *HttpServer) authAdminLogin(w http.ResponseWriter, r *http.Request) {
	type adminLoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var request adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w,
			http.StatusText(http.StatusBadRequest),
			http.StatusBadRequest, "bad_request")
		return
	}

	if request.Username != s.adminCreds.Username ||
		bcrypt.CompareHashAndPassword(
			[]byte(s.adminCreds.BcryptPwd), []byte(request.Password)) != nil {
		httpjson.WriteErrorJson(w,
			"Invalid username or password",
			http.StatusUnauthorized, "invalid_credentials")
		return
	}

	token, err := auth.GenerateAdminJWT(request.Username, s.jwtKey)
	if err != nil {
		s.handleError(w, r,
			srvcerror.ErrInternalSE().SetDebug(err))
		return
	}

	httpjson.WriteSuccessJson(w, struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}{
		Token:    token,
		Username: request.Username,
	})
}
