package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"style-shop/libs"
	"style-shop/models"
	"style-shop/services"
	"style-shop/utils"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController() *UserController {
	return &UserController{
		userService: services.NewUserService(),
	}
}

// GetUser godoc
// @Summary Get user details
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [get]
func (ctrl *UserController) GetUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid user ID")
		return
	}

	user, svcErr := ctrl.userService.GetUser(c.Request.Context(), c.GetInt("user_id"), userID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	respondOK(c, "User details fetched successfully", gin.H{"user": user})
}

// UpdateUser godoc
// @Summary Update user profile
// @Description Partial update; absent fields are left untouched
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body models.UpdateUserRequest true "Update Request"
// @Success 200 {object} models.Response
// @Router /users/{id} [put]
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid user ID")
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request data: "+err.Error())
		return
	}

	user, svcErr := ctrl.userService.UpdateUser(c.Request.Context(), c.GetInt("user_id"), userID, req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	respondOK(c, "User profile updated successfully", gin.H{"user": user})
}

// UpdateAvatar godoc
// @Summary Upload user avatar
// @Tags Users
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "User ID"
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} models.Response
// @Router /users/{id}/avatar [patch]
func (ctrl *UserController) UpdateAvatar(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid user ID")
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		respondBadRequest(c, "avatar file is required")
		return
	}

	localPath, err := utils.SaveUploadedImage(c, file)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	avatarURL, err := libs.UploadAvatar(localPath)
	if err != nil {
		utils.RemoveLocalFile(localPath)
		respondError(c, err)
		return
	}

	user, svcErr := ctrl.userService.UpdateAvatar(c.Request.Context(), c.GetInt("user_id"), userID, avatarURL)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	respondOK(c, "Avatar updated successfully", gin.H{"user": user})
}
