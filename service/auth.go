package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"kawe_webmanager/model"
	"kawe_webmanager/repository"
)

// AuthService resolves the opaque per-player auth codes handed out in-game.
// There is no password store; possession of a valid code is the credential.
type AuthService struct {
	Repo *repository.Repository
}

func NewAuthService(repo *repository.Repository) *AuthService {
	return &AuthService{Repo: repo}
}

func (s *AuthService) Login(data *model.LoginAPI) (*model.LoginResultAPI, error) {
	steamId, err := s.Repo.SteamIdForAuthCode(strings.TrimSpace(data.Code))
	if err != nil {
		return nil, err
	}
	if steamId == "" {
		return nil, errors.New(model.ErrInvalidCode)
	}

	// Best effort; a failed timestamp update must not block the login.
	_ = s.Repo.TouchAuthCode(steamId)

	name, err := s.Repo.FetchPlayerName(steamId)
	if err != nil {
		return nil, err
	}

	return &model.LoginResultAPI{
		Success:    true,
		SteamId:    steamId,
		PlayerName: name,
		Token:      uuid.NewString(),
	}, nil
}

func (s *AuthService) Resolve(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", nil
	}
	return s.Repo.SteamIdForAuthCode(code)
}
