package types

import "time"

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateCommentResponse struct {
	ID uint64 `json:"id,string"`
}

// CommentAuthor 评论作者信息，读取时关联
type CommentAuthor struct {
	Fullname string `json:"fullname"`
	Image    string `json:"image"`
}

type CommentResponse struct {
	ID        uint64        `json:"id,string"`
	PostID    uint64        `json:"post_id,string"`
	UserID    uint64        `json:"user_id,string"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	User      CommentAuthor `json:"user"`
}
