package services

import (
	"context"
	"log"

	"style-shop/models"
	"style-shop/repositories"
	"style-shop/utils"
)

type AuthService struct {
	userStore UserStore
	email     *models.EmailService
}

func NewAuthService() *AuthService {
	email, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service disabled:", err)
		email = nil
	}

	return &AuthService{
		userStore: repositories.NewUserRepository(),
		email:     email,
	}
}

func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	existing, err := s.userStore.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ConflictError("User already exists")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.email != nil {
		// Best effort; signup never fails on mail problems.
		go func(email, firstName string) {
			if err := s.email.SendWelcomeEmail(email, firstName); err != nil {
				log.Println("Failed to send welcome email:", err)
			}
		}(user.Email, user.FirstName)
	}

	return user, nil
}

func (s *AuthService) Signin(ctx context.Context, req models.SigninRequest) (*models.LoginResponse, error) {
	user, err := s.userStore.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.AuthError("Invalid email or password")
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, models.AuthError("Invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}
