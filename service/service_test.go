package service

import (
	"context"
	"testing"
	"time"

	"Spotlight/config"
	"Spotlight/dao"
	"Spotlight/dao/cache"
	"Spotlight/internal/testkit"
	"Spotlight/models"
	"Spotlight/pkg/rocketmq"
	"Spotlight/pkg/snowflake"
	"Spotlight/types"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockMedia struct {
	mock.Mock
}

func (m *mockMedia) GenerateUploadURL(ctx context.Context) (*types.UploadURLResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*types.UploadURLResponse)
	return resp, args.Error(1)
}

func (m *mockMedia) ResolveURL(ctx context.Context, storageID string) (string, error) {
	args := m.Called(ctx, storageID)
	return args.String(0), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, topic string, body []byte) error {
	return m.Called(ctx, topic, body).Error(0)
}

type fixture struct {
	db    *gorm.DB
	rds   *redis.Client
	mr    *miniredis.Miniredis
	media *mockMedia

	userDAO     *dao.UserDAO
	postDAO     *dao.PostDAO
	commentDAO  *dao.CommentDAO
	bookmarkDAO *dao.BookmarkDAO

	users     *UserService
	notices   *NoticeService
	posts     *PostService
	comments  *CommentsService
	bookmarks *BookmarkService
	follows   *FollowService
	reconcile *ReconcileService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testkit.NewDB(t)
	rds, mr := testkit.NewRedis(t)

	f := &fixture{
		db:          db,
		rds:         rds,
		mr:          mr,
		media:       &mockMedia{},
		userDAO:     dao.NewUserDAO(db),
		postDAO:     dao.NewPostDAO(db),
		commentDAO:  dao.NewCommentDAO(db),
		bookmarkDAO: dao.NewBookmarkDAO(db),
	}
	locks := cache.NewLockStorage(rds)

	f.users = &UserService{UserDAO: f.userDAO}
	f.notices = &NoticeService{
		NotificationDAO: dao.NewNotificationDAO(db),
		PostDAO:         f.postDAO,
		UserService:     f.users,
		Unread:          cache.NewUnreadStorage(rds),
		Notice:          cache.NewNoticeStorage(rds),
		Publisher:       rocketmq.NopPublisher{},
		MQConfig:        &config.RocketMQConfig{},
	}
	f.posts = &PostService{
		UserService:   f.users,
		NoticeService: f.notices,
		Media:         f.media,
		Locks:         locks,
		UserDAO:       f.userDAO,
		PostDAO:       f.postDAO,
		LikeDAO:       dao.NewLikeDAO(db),
		BookmarkDAO:   f.bookmarkDAO,
	}
	f.comments = &CommentsService{
		UserService:   f.users,
		NoticeService: f.notices,
		UserDAO:       f.userDAO,
		PostDAO:       f.postDAO,
		CommentDAO:    f.commentDAO,
	}
	f.bookmarks = &BookmarkService{
		UserService: f.users,
		Locks:       locks,
		PostDAO:     f.postDAO,
		BookmarkDAO: f.bookmarkDAO,
	}
	f.follows = &FollowService{
		UserService:   f.users,
		NoticeService: f.notices,
		Locks:         locks,
		UserDAO:       f.userDAO,
		FollowDAO:     dao.NewFollowDAO(db),
	}
	f.reconcile = &ReconcileService{
		Config:  &config.Reconcile{},
		PostDAO: f.postDAO,
		UserDAO: f.userDAO,
	}
	return f
}

// seedUser 通过身份同步创建用户，返回用户与其身份
func (f *fixture) seedUser(t *testing.T, clerkID, first, last string) (*models.User, *types.Identity) {
	t.Helper()

	_, err := f.users.SyncFromEvent(context.Background(), &types.ClerkUserEvent{
		ExternalID: clerkID,
		Email:      clerkID + "@example.com",
		FirstName:  first,
		LastName:   last,
		ImageURL:   "https://img.example.com/" + clerkID,
	})
	require.NoError(t, err)

	identity := &types.Identity{Subject: clerkID}
	user, err := f.users.ResolveCurrentUser(context.Background(), identity)
	require.NoError(t, err)
	return user, identity
}

// seedPost 绕过媒体存储直接写入帖子
func (f *fixture) seedPost(t *testing.T, owner uint64) *models.Post {
	t.Helper()

	p := &models.Post{
		ID:        snowflake.GenID(),
		UserID:    owner,
		ImageURL:  "https://cdn.example.com/p.jpg",
		StorageID: "posts/p.jpg",
		CreatedAt: time.Now(),
	}
	require.NoError(t, f.db.Create(p).Error)
	return p
}

func (f *fixture) reloadPost(t *testing.T, id uint64) *models.Post {
	t.Helper()
	p, err := f.postDAO.FindByID(context.Background(), id)
	require.NoError(t, err)
	return p
}

func (f *fixture) reloadUser(t *testing.T, id uint64) *models.User {
	t.Helper()
	u, err := f.userDAO.FindByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

func (f *fixture) countComments(t *testing.T, postID uint64) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error)
	return count
}

func (f *fixture) notifications(t *testing.T) []*models.Notification {
	t.Helper()
	var items []*models.Notification
	require.NoError(t, f.db.Order("id ASC").Find(&items).Error)
	return items
}
