package controllers

import (
	"github.com/gin-gonic/gin"

	"style-shop/models"
	"style-shop/services"
)

type AuthController struct {
	authService *services.AuthService
	userService *services.UserService
}

func NewAuthController() *AuthController {
	return &AuthController{
		authService: services.NewAuthService(),
		userService: services.NewUserService(),
	}
}

// Signup godoc
// @Summary Register new user
// @Description Create a new customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup Request"
// @Success 201 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request data: "+err.Error())
		return
	}

	user, err := ctrl.authService.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "User created successfully", gin.H{"user": user})
}

// Signin godoc
// @Summary Sign in
// @Description Authenticate with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SigninRequest true "Signin Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/signin [post]
func (ctrl *AuthController) Signin(c *gin.Context) {
	var req models.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request data: "+err.Error())
		return
	}

	result, err := ctrl.authService.Signin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Login successful", result)
}

// Profile godoc
// @Summary Current user profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/profile [get]
func (ctrl *AuthController) Profile(c *gin.Context) {
	userID := c.GetInt("user_id")

	user, err := ctrl.userService.GetUser(c.Request.Context(), userID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Profile fetched", gin.H{"user": user})
}
