package controller

import (
	"errors"

	"careerready_backend/internal/service"
	"careerready_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ConnectionController struct {
	ConnectionService *service.ConnectionService
}

func NewConnectionController(connectionService *service.ConnectionService) *ConnectionController {
	return &ConnectionController{ConnectionService: connectionService}
}

// Suggestions godoc
// @Summary Suggest users to connect with
// @Description Without a query, candidates share at least one interest with the caller. With a query, the whole user base is searched by name. Favorites sort first either way.
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param query query string false "Name search"
// @Success 200 {object} util.Response{data=[]service.Suggestion}
// @Router /api/connections/suggestions [get]
func (c *ConnectionController) Suggestions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	suggestions, err := c.ConnectionService.Suggestions(ctx.Request.Context(), claims.UserID, ctx.Query("query"))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, suggestions)
}

// Favorites godoc
// @Summary List the caller's favorited users
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/connections/favorites [get]
func (c *ConnectionController) Favorites(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	favorites, err := c.ConnectionService.FavoriteUsers(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, favorites)
}

// ToggleFavorite godoc
// @Summary Favorite or unfavorite a user
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Target user id"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "Cannot favorite yourself"
// @Router /api/users/{id}/favorite [post]
func (c *ConnectionController) ToggleFavorite(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.ConnectionService.ToggleFavorite(claims.UserID, ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSelfFavorite):
			util.BadRequest(ctx, "Cannot favorite yourself")
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user.Public())
}

// Interests godoc
// @Summary List the shared interest vocabulary
// @Tags connections
// @Produce json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/interests [get]
func (c *ConnectionController) Interests(ctx *gin.Context) {
	names, err := c.ConnectionService.Vocabulary(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, names)
}

// SuggestInterests godoc
// @Summary Suggest interest tags for a typed fragment
// @Tags connections
// @Produce json
// @Param input query string false "Typed fragment"
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/interests/suggest [get]
func (c *ConnectionController) SuggestInterests(ctx *gin.Context) {
	tags, err := c.ConnectionService.SuggestInterests(ctx.Request.Context(), ctx.Query("input"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tags)
}
