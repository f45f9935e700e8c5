package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Spotlight/config"
	"Spotlight/models"
	"Spotlight/pkg/jwt"
	"Spotlight/pkg/response"
	"Spotlight/types"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "handler-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newVerifier(t *testing.T) *jwt.Verifier {
	t.Helper()
	v, err := jwt.NewVerifier(&config.Jwt{Secret: testSecret})
	require.NoError(t, err)
	return v
}

func bearer(t *testing.T, sub string) string {
	t.Helper()
	claims := jwt.Claims{
		Email: sub + "@example.com",
		RegisteredClaims: jwtv5.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	s, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + s
}

func identityFor(sub string) *types.Identity {
	return &types.Identity{Subject: sub, Email: sub + "@example.com"}
}

type router interface {
	RegisterRouter(r gin.IRouter)
}

func newEngine(handlers ...router) *gin.Engine {
	r := gin.New()
	api := r.Group("/api")
	for _, h := range handlers {
		h.RegisterRouter(api)
	}
	return r
}

func do(r http.Handler, method, target, auth string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) (response.Response, map[string]any) {
	t.Helper()
	var raw struct {
		response.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))

	data := map[string]any{}
	if len(raw.Data) > 0 && raw.Data[0] == '{' {
		require.NoError(t, json.Unmarshal(raw.Data, &data))
	}
	return raw.Response, data
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) ResolveCurrentUser(ctx context.Context, identity *types.Identity) (*models.User, error) {
	args := m.Called(ctx, identity)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserService) GetCurrentUser(ctx context.Context, identity *types.Identity) (*types.CurrentUserResponse, error) {
	args := m.Called(ctx, identity)
	u, _ := args.Get(0).(*types.CurrentUserResponse)
	return u, args.Error(1)
}

func (m *mockUserService) SyncFromEvent(ctx context.Context, event *types.ClerkUserEvent) (bool, error) {
	args := m.Called(ctx, event)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserService) BatchGetProfiles(ctx context.Context, ids []uint64) (map[uint64]types.UserProfile, error) {
	args := m.Called(ctx, ids)
	p, _ := args.Get(0).(map[uint64]types.UserProfile)
	return p, args.Error(1)
}

type mockFollowService struct {
	mock.Mock
}

func (m *mockFollowService) ToggleFollow(ctx context.Context, identity *types.Identity, targetID uint64) (bool, error) {
	args := m.Called(ctx, identity, targetID)
	return args.Bool(0), args.Error(1)
}

type mockPostService struct {
	mock.Mock
}

func (m *mockPostService) GenerateUploadURL(ctx context.Context, identity *types.Identity) (*types.UploadURLResponse, error) {
	args := m.Called(ctx, identity)
	r, _ := args.Get(0).(*types.UploadURLResponse)
	return r, args.Error(1)
}

func (m *mockPostService) CreatePost(ctx context.Context, identity *types.Identity, storageID string, caption *string) (uint64, error) {
	args := m.Called(ctx, identity, storageID, caption)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockPostService) GetFeed(ctx context.Context, identity *types.Identity, cursor uint64, limit int) (*types.FeedResponse, error) {
	args := m.Called(ctx, identity, cursor, limit)
	r, _ := args.Get(0).(*types.FeedResponse)
	return r, args.Error(1)
}

func (m *mockPostService) ToggleLike(ctx context.Context, identity *types.Identity, postID uint64) (bool, error) {
	args := m.Called(ctx, identity, postID)
	return args.Bool(0), args.Error(1)
}

type mockCommentsService struct {
	mock.Mock
}

func (m *mockCommentsService) AddComment(ctx context.Context, identity *types.Identity, postID uint64, content string) (uint64, error) {
	args := m.Called(ctx, identity, postID, content)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockCommentsService) ListComments(ctx context.Context, postID uint64) ([]*types.CommentResponse, error) {
	args := m.Called(ctx, postID)
	r, _ := args.Get(0).([]*types.CommentResponse)
	return r, args.Error(1)
}

type mockBookmarkService struct {
	mock.Mock
}

func (m *mockBookmarkService) ToggleBookmark(ctx context.Context, identity *types.Identity, postID uint64) (bool, error) {
	args := m.Called(ctx, identity, postID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookmarkService) ListBookmarkedPosts(ctx context.Context, identity *types.Identity) ([]*models.Post, error) {
	args := m.Called(ctx, identity)
	r, _ := args.Get(0).([]*models.Post)
	return r, args.Error(1)
}

type mockNoticeService struct {
	mock.Mock
}

func (m *mockNoticeService) Create(ctx context.Context, tx *gorm.DB, receiverID, senderID uint64, kind string, postID, commentID *uint64) (*models.Notification, error) {
	args := m.Called(ctx, tx, receiverID, senderID, kind, postID, commentID)
	n, _ := args.Get(0).(*models.Notification)
	return n, args.Error(1)
}

func (m *mockNoticeService) Dispatch(ctx context.Context, n *models.Notification) {
	m.Called(ctx, n)
}

func (m *mockNoticeService) ListNotifications(ctx context.Context, identity *types.Identity, limit int) ([]*types.NotificationResponse, error) {
	args := m.Called(ctx, identity, limit)
	r, _ := args.Get(0).([]*types.NotificationResponse)
	return r, args.Error(1)
}

func (m *mockNoticeService) UnreadCount(ctx context.Context, identity *types.Identity) (int64, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(int64), args.Error(1)
}

type mockWebhookService struct {
	mock.Mock
}

func (m *mockWebhookService) HandleClerkEvent(ctx context.Context, msgID string, payload []byte) error {
	return m.Called(ctx, msgID, payload).Error(0)
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
