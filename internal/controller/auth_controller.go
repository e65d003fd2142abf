package controller

import (
	"errors"
	"net/http"

	"careerready_backend/internal/service"
	"careerready_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterInput true "Registration details"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "Email already registered"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var input service.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, token, err := c.AuthService.Register(&input)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, http.StatusConflict, "Email is already registered")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"user": user.Public(), "token": token})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.LoginInput true "Credentials"
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response "Invalid credentials"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var input service.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, token, err := c.AuthService.Login(&input)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.Error(ctx, http.StatusUnauthorized, "Invalid email or password")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"user": user.Public(), "token": token})
}
