package server

import (
	"Spotlight/handler"
)

type Handlers struct {
	User         *handler.User
	Post         *handler.Post
	Notification *handler.Notification
	Webhook      *handler.Webhook
}
