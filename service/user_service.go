package service

import (
	"database/sql"
	"errors"
	"fmt"
	"oft-transacts/logger"
	"oft-transacts/model"
	"oft-transacts/repository"
	"strings"

	"github.com/lib/pq"
)

// UserService maps verified identity-provider claims to internal users.
type UserService struct {
	userRepo repository.IUserRepository
}

func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ResolveUser returns the internal user for a verified claim set,
// provisioning one on first sight. The lookup key is the lowercased
// email claim when present, otherwise a synthetic key derived from the
// subject so the same external identity always maps to the same row.
func (s *UserService) ResolveUser(claims *model.IDPClaims) (*model.User, error) {
	if claims.Subject == "" {
		return nil, ErrTokenInvalid
	}

	email := strings.ToLower(strings.TrimSpace(claims.Email))
	if email == "" {
		email = "sub:" + claims.Subject
	}

	user, err := s.userRepo.GetUserByEmail(email)
	if err == nil {
		return user, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("could not look up user: %w", err)
	}

	username := claims.Name
	if username == "" {
		username = claims.Subject
	}

	user = &model.User{Email: email, Username: username}
	if err := s.userRepo.CreateUser(user); err != nil {
		// A concurrent first request for the same identity may win the
		// insert; the unique constraint on email is the tie-breaker and
		// the loser retries the lookup.
		if isUniqueViolation(err) {
			logger.Log.WithField("email", email).Info("Lost provisioning race, retrying lookup")
			return s.userRepo.GetUserByEmail(email)
		}
		return nil, fmt.Errorf("could not provision user: %w", err)
	}

	logger.Log.WithField("email", email).Info("Provisioned new user")
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
