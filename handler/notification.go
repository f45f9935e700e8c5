package handler

import (
	"net/http"

	"Spotlight/middleware"
	"Spotlight/pkg/context"
	"Spotlight/pkg/jwt"
	"Spotlight/pkg/log"
	"Spotlight/pkg/response"
	"Spotlight/pkg/socket"
	"Spotlight/service"
	"Spotlight/types"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Notification struct {
	Verifier      *jwt.Verifier
	NoticeService service.INoticeService
	UserService   service.IUserService
	Hub           *socket.Hub
}

func (n *Notification) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(n.Verifier)
	g := r.Group("/v1/notifications")
	g.Use(authorize)
	g.GET("", context.Wrap(n.List))
	g.GET("/unread", context.Wrap(n.UnreadCount))
	g.GET("/ws", context.Wrap(n.Stream))
}

// List 通知列表，同时清空未读数
func (n *Notification) List(c *gin.Context) error {
	var req types.ListNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return badRequest("limit 参数错误")
	}

	items, err := n.NoticeService.ListNotifications(c.Request.Context(), context.GetIdentity(c), req.Limit)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (n *Notification) UnreadCount(c *gin.Context) error {
	unread, err := n.NoticeService.UnreadCount(c.Request.Context(), context.GetIdentity(c))
	if err != nil {
		return err
	}
	response.Success(c, &types.UnreadCountResponse{Unread: unread})
	return nil
}

// Stream 升级为 websocket，实时推送新通知
func (n *Notification) Stream(c *gin.Context) error {
	user, err := n.UserService.ResolveCurrentUser(c.Request.Context(), context.GetIdentity(c))
	if err != nil {
		return err
	}

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade 已写入错误响应
		log.L.Warn("websocket upgrade failed", zap.Uint64("user_id", user.ID), zap.Error(err))
		return nil
	}

	n.Hub.Serve(user.ID, conn)
	return nil
}
