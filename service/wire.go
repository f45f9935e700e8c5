package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(NoticeService), "*"),
	wire.Bind(new(INoticeService), new(*NoticeService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(CommentsService), "*"),
	wire.Bind(new(ICommentsService), new(*CommentsService)),

	wire.Struct(new(BookmarkService), "*"),
	wire.Bind(new(IBookmarkService), new(*BookmarkService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(WebhookService), "*"),
	wire.Bind(new(IWebhookService), new(*WebhookService)),

	wire.Struct(new(ReconcileService), "*"),

	NewMediaStore,
)
