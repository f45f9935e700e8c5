package handler

import (
	"Spotlight/middleware"
	"Spotlight/pkg/context"
	"Spotlight/pkg/jwt"
	"Spotlight/pkg/response"
	"Spotlight/service"
	"Spotlight/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Verifier      *jwt.Verifier
	UserService   service.IUserService
	FollowService service.IFollowService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(u.Verifier)
	g := r.Group("/v1/users")
	g.Use(authorize)
	g.GET("/me", context.Wrap(u.GetCurrentUser))
	g.POST("/:user_id/follow", context.Wrap(u.ToggleFollow))
}

// GetCurrentUser 当前登录用户
func (u *User) GetCurrentUser(c *gin.Context) error {
	me, err := u.UserService.GetCurrentUser(c.Request.Context(), context.GetIdentity(c))
	if err != nil {
		return err
	}
	response.Success(c, me)
	return nil
}

// ToggleFollow 关注/取消关注
func (u *User) ToggleFollow(c *gin.Context) error {
	targetID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	following, err := u.FollowService.ToggleFollow(c.Request.Context(), context.GetIdentity(c), targetID)
	if err != nil {
		return err
	}
	response.Success(c, &types.ToggleFollowResponse{Following: following})
	return nil
}
