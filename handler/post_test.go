package handler

import (
	"net/http"
	"testing"

	"Spotlight/models"
	"Spotlight/service"
	"Spotlight/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type postMocks struct {
	posts     *mockPostService
	comments  *mockCommentsService
	bookmarks *mockBookmarkService
}

func newPostHandler(t *testing.T) (*Post, *postMocks) {
	m := &postMocks{
		posts:     &mockPostService{},
		comments:  &mockCommentsService{},
		bookmarks: &mockBookmarkService{},
	}
	return &Post{
		Verifier:        newVerifier(t),
		PostService:     m.posts,
		CommentsService: m.comments,
		BookmarkService: m.bookmarks,
	}, m
}

func TestCreatePost(t *testing.T) {
	h, m := newPostHandler(t)
	r := newEngine(h)

	caption := "sunset"
	m.posts.On("CreatePost", mock.Anything, identityFor("user_a"), "posts/2026/10/19/abc", &caption).
		Return(uint64(1001), nil)

	w := do(r, http.MethodPost, "/api/v1/posts", bearer(t, "user_a"),
		jsonBody(`{"storage_id":"posts/2026/10/19/abc","caption":"sunset"}`))
	assert.Equal(t, http.StatusOK, w.Code)
	_, data := decode(t, w)
	assert.Equal(t, "1001", data["id"])
}

func TestCreatePostMissingStorageID(t *testing.T) {
	h, m := newPostHandler(t)
	r := newEngine(h)

	w := do(r, http.MethodPost, "/api/v1/posts", bearer(t, "user_a"), jsonBody(`{"caption":"x"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	m.posts.AssertNotCalled(t, "CreatePost")
}

func TestCreatePostMediaNotFound(t *testing.T) {
	h, m := newPostHandler(t)
	r := newEngine(h)

	m.posts.On("CreatePost", mock.Anything, mock.Anything, "posts/missing", (*string)(nil)).
		Return(uint64(0), service.ErrMediaNotFound)

	w := do(r, http.MethodPost, "/api/v1/posts", bearer(t, "user_a"), jsonBody(`{"storage_id":"posts/missing"}`))
	assert.Equal(t, http.StatusNotFound, w.Code)
	resp, _ := decode(t, w)
	assert.Equal(t, "MediaNotFound", resp.Kind)
}

func TestGetFeed(t *testing.T) {
	h, m := newPostHandler(t)
	r := newEngine(h)

	m.posts.On("GetFeed", mock.Anything, identityFor("user_a"), uint64(500), 10).
		Return(&types.FeedResponse{Posts: []*types.PostResponse{{ID: 499}}, NextCursor: 499, HasMore: true}, nil)

	w := do(r, http.MethodGet, "/api/v1/posts/feed?cursor=500&limit=10", bearer(t, "user_a"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	_, data := decode(t, w)
	assert.Equal(t, "499", data["next_cursor"])
	assert.Equal(t, true, data["has_more"])

	w = do(r, http.MethodGet, "/api/v1/posts/feed?cursor=oops", bearer(t, "user_a"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleLikeAndBookmark(t *testing.T) {
	h, m := newPostHandler(t)
	r := newEngine(h)

	m.posts.On("ToggleLike", mock.Anything, mock.Anything, uint64(5)).Return(true, nil)
	m.bookmarks.On("ToggleBookmark", mock.Anything, mock.Anything, uint64(5)).Return(false, nil)
	m.posts.On("ToggleLike", mock.Anything, mock.Anything, uint64(6)).Return(false, service.ErrTooFrequent)

	w := do(r, http.MethodPost, "/api/v1/posts/5/like", bearer(t, "user_a"), nil)
	_, data := decode(t, w)
	assert.Equal(t, true, data["liked"])

	w = do(r, http.MethodPost, "/api/v1/posts/5/bookmark", bearer(t, "user_a"), nil)
	_, data = decode(t, w)
	assert.Equal(t, false, data["bookmarked"])

	w = do(r, http.MethodPost, "/api/v1/posts/6/like", bearer(t, "user_a"), nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestComments(t *testing.T) {
	h, m := newPostHandler(t)
	r := newEngine(h)

	m.comments.On("AddComment", mock.Anything, identityFor("user_a"), uint64(5), "nice").Return(uint64(77), nil)
	m.comments.On("ListComments", mock.Anything, uint64(5)).
		Return([]*types.CommentResponse{{ID: 77, Content: "nice"}}, nil)

	w := do(r, http.MethodPost, "/api/v1/posts/5/comments", bearer(t, "user_a"), jsonBody(`{"content":"nice"}`))
	assert.Equal(t, http.StatusOK, w.Code)
	_, data := decode(t, w)
	assert.Equal(t, "77", data["id"])

	w = do(r, http.MethodPost, "/api/v1/posts/5/comments", bearer(t, "user_a"), jsonBody(`{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/v1/posts/5/comments", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"content":"nice"`)
	m.comments.AssertExpectations(t)
}

func TestListBookmarks(t *testing.T) {
	h, m := newPostHandler(t)
	r := newEngine(h)

	m.bookmarks.On("ListBookmarkedPosts", mock.Anything, identityFor("user_a")).
		Return([]*models.Post{{ID: 3}, {ID: 1}}, nil)

	w := do(r, http.MethodGet, "/api/v1/bookmarks", bearer(t, "user_a"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	m.bookmarks.AssertExpectations(t)
}
