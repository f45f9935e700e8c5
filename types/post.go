package types

import "time"

type CreatePostRequest struct {
	StorageID string  `json:"storage_id" binding:"required"`
	Caption   *string `json:"caption"`
}

type CreatePostResponse struct {
	ID uint64 `json:"id,string"`
}

type GetFeedRequest struct {
	// Cursor is the id of the last post seen, 0 for the first page
	Cursor uint64 `form:"cursor"`
	Limit  int   `form:"limit"`
}

type PostResponse struct {
	ID           uint64      `json:"id,string"`
	ImageURL     string      `json:"image_url"`
	Caption      *string     `json:"caption,omitempty"`
	Likes        int64       `json:"likes"`
	Comments     int64       `json:"comments"`
	CreatedAt    time.Time   `json:"created_at"`
	Author       UserProfile `json:"author"`
	IsLiked      bool        `json:"is_liked"`
	IsBookmarked bool        `json:"is_bookmarked"`
}

type FeedResponse struct {
	Posts      []*PostResponse `json:"posts"`
	NextCursor uint64          `json:"next_cursor,string"`
	HasMore    bool            `json:"has_more"`
}

type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
}

type ToggleBookmarkResponse struct {
	Bookmarked bool `json:"bookmarked"`
}
