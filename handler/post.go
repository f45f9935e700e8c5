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

type Post struct {
	Verifier        *jwt.Verifier
	PostService     service.IPostService
	CommentsService service.ICommentsService
	BookmarkService service.IBookmarkService
}

func (p *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(p.Verifier)
	g := r.Group("/v1/posts")
	g.Use(authorize)
	g.POST("/upload-url", context.Wrap(p.GenerateUploadURL))
	g.POST("", context.Wrap(p.CreatePost))
	g.GET("/feed", context.Wrap(p.GetFeed))
	g.POST("/:post_id/like", context.Wrap(p.ToggleLike))
	g.POST("/:post_id/bookmark", context.Wrap(p.ToggleBookmark))
	g.GET("/:post_id/comments", context.Wrap(p.ListComments))
	g.POST("/:post_id/comments", context.Wrap(p.AddComment))

	b := r.Group("/v1/bookmarks")
	b.Use(authorize)
	b.GET("", context.Wrap(p.ListBookmarks))
}

// GenerateUploadURL 获取图片直传地址
func (p *Post) GenerateUploadURL(c *gin.Context) error {
	resp, err := p.PostService.GenerateUploadURL(c.Request.Context(), context.GetIdentity(c))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// CreatePost 发布帖子
func (p *Post) CreatePost(c *gin.Context) error {
	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest("storage_id 不能为空")
	}

	id, err := p.PostService.CreatePost(c.Request.Context(), context.GetIdentity(c), req.StorageID, req.Caption)
	if err != nil {
		return err
	}
	response.Success(c, &types.CreatePostResponse{ID: id})
	return nil
}

// GetFeed 首页信息流
func (p *Post) GetFeed(c *gin.Context) error {
	var req types.GetFeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return badRequest("cursor 或 limit 参数错误")
	}

	feed, err := p.PostService.GetFeed(c.Request.Context(), context.GetIdentity(c), req.Cursor, req.Limit)
	if err != nil {
		return err
	}
	response.Success(c, feed)
	return nil
}

func (p *Post) ToggleLike(c *gin.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	liked, err := p.PostService.ToggleLike(c.Request.Context(), context.GetIdentity(c), postID)
	if err != nil {
		return err
	}
	response.Success(c, &types.ToggleLikeResponse{Liked: liked})
	return nil
}

func (p *Post) ToggleBookmark(c *gin.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	bookmarked, err := p.BookmarkService.ToggleBookmark(c.Request.Context(), context.GetIdentity(c), postID)
	if err != nil {
		return err
	}
	response.Success(c, &types.ToggleBookmarkResponse{Bookmarked: bookmarked})
	return nil
}

// ListBookmarks 我的收藏，最近收藏的在前
func (p *Post) ListBookmarks(c *gin.Context) error {
	posts, err := p.BookmarkService.ListBookmarkedPosts(c.Request.Context(), context.GetIdentity(c))
	if err != nil {
		return err
	}
	response.Success(c, posts)
	return nil
}

// ListComments 帖子评论，按发布时间正序
func (p *Post) ListComments(c *gin.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	comments, err := p.CommentsService.ListComments(c.Request.Context(), postID)
	if err != nil {
		return err
	}
	response.Success(c, comments)
	return nil
}

// AddComment 发表评论
func (p *Post) AddComment(c *gin.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest("content 不能为空")
	}

	id, err := p.CommentsService.AddComment(c.Request.Context(), context.GetIdentity(c), postID, req.Content)
	if err != nil {
		return err
	}
	response.Success(c, &types.CreateCommentResponse{ID: id})
	return nil
}
