package services

import (
	"context"

	"style-shop/models"
	"style-shop/repositories"
)

type UserService struct {
	userStore UserStore
}

func NewUserService() *UserService {
	return &UserService{
		userStore: repositories.NewUserRepository(),
	}
}

// GetUser returns a user's profile. Users may only read their own.
func (s *UserService) GetUser(ctx context.Context, requesterID, userID int) (*models.User, error) {
	if requesterID != userID {
		return nil, models.ForbiddenError()
	}

	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.UserNotFoundError()
	}
	return user, nil
}

// UpdateUser applies a partial profile update. Only fields present in the
// request are written.
func (s *UserService) UpdateUser(ctx context.Context, requesterID, userID int, req models.UpdateUserRequest) (*models.User, error) {
	if requesterID != userID {
		return nil, models.ForbiddenError()
	}

	existing, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, models.UserNotFoundError()
	}

	return s.userStore.Update(ctx, userID, req)
}

func (s *UserService) UpdateAvatar(ctx context.Context, requesterID, userID int, avatarURL string) (*models.User, error) {
	if requesterID != userID {
		return nil, models.ForbiddenError()
	}

	existing, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, models.UserNotFoundError()
	}

	if err := s.userStore.UpdateAvatar(ctx, userID, avatarURL); err != nil {
		return nil, err
	}
	return s.userStore.FindByID(ctx, userID)
}
