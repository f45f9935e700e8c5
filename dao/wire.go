package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserDAO,
	NewPostDAO,
	NewCommentDAO,
	NewBookmarkDAO,
	NewLikeDAO,
	NewFollowDAO,
	NewNotificationDAO,
	NewWebhookEventDAO,
)
