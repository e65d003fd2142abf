package controller

import (
	"errors"

	"careerready_backend/internal/service"
	"careerready_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService       *service.UserService
	ConnectionService *service.ConnectionService
}

func NewUserController(userService *service.UserService, connectionService *service.ConnectionService) *UserController {
	return &UserController{UserService: userService, ConnectionService: connectionService}
}

// Profile godoc
// @Summary Get the authenticated user's profile
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/profile [get]
func (c *UserController) Profile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user.Public())
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ProfileInput true "Profile fields"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Router /api/user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.ProfileInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(ctx.Request.Context(), claims.UserID, &input)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user.Public())
}

// UploadAvatar godoc
// @Summary Upload a profile picture
// @Tags user
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Image file"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Router /api/user/avatar/upload [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "Missing avatar file")
		return
	}

	user, err := c.UserService.UploadAvatar(ctx.Request.Context(), claims.UserID, file)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user.Public())
}

// PublicProfile godoc
// @Summary Get another user's public profile
// @Tags user
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [get]
func (c *UserController) PublicProfile(ctx *gin.Context) {
	user, err := c.UserService.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	// The route sits behind TryAuthMiddleware: a signed-in viewer gets their
	// favorite state for the profile, an anonymous one gets false.
	isFavorite := false
	if claims := util.GetUserFromContext(ctx); claims != nil && claims.UserID != user.ID {
		fav, err := c.ConnectionService.IsFavorite(claims.UserID, user.ID)
		if err == nil {
			isFavorite = fav
		}
	}

	util.Success(ctx, gin.H{
		"user":       user.Public(),
		"isFavorite": isFavorite,
	})
}
