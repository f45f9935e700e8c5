package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"Spotlight/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment_NotifiesPostOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u1, _ := f.seedUser(t, "user_1", "Ann", "Lee")
	u2, id2 := f.seedUser(t, "user_2", "Bo", "Kim")
	post := f.seedPost(t, u1.ID)

	commentID, err := f.comments.AddComment(ctx, id2, post.ID, "nice")
	require.NoError(t, err)
	assert.NotZero(t, commentID)

	assert.Equal(t, int64(1), f.reloadPost(t, post.ID).Comments)

	list, err := f.comments.ListComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "nice", list[0].Content)
	assert.Equal(t, u2.ID, list[0].UserID)
	assert.Equal(t, "Bo Kim", list[0].User.Fullname)
	assert.Equal(t, "https://img.example.com/user_2", list[0].User.Image)

	notices := f.notifications(t)
	require.Len(t, notices, 1)
	n := notices[0]
	assert.Equal(t, u1.ID, n.ReceiverID)
	assert.Equal(t, u2.ID, n.SenderID)
	assert.Equal(t, models.NoticeTypeComment, n.Type)
	require.NotNil(t, n.PostID)
	assert.Equal(t, post.ID, *n.PostID)
	require.NotNil(t, n.CommentID)
	assert.Equal(t, commentID, *n.CommentID)

	unread, err := f.notices.Unread.Get(ctx, u1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestAddComment_SelfCommentHasNoNotification(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u1, id1 := f.seedUser(t, "user_1", "Ann", "Lee")
	post := f.seedPost(t, u1.ID)

	_, err := f.comments.AddComment(ctx, id1, post.ID, "my own post")
	require.NoError(t, err)

	assert.Equal(t, int64(1), f.reloadPost(t, post.ID).Comments)
	assert.Empty(t, f.notifications(t))
}

func TestAddComment_ConcurrentIncrements(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner, _ := f.seedUser(t, "owner", "Own", "Er")
	_, commenter := f.seedUser(t, "commenter", "Com", "Menter")
	post := f.seedPost(t, owner.ID)

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.comments.AddComment(ctx, commenter, post.ID, "hello")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, int64(n), f.reloadPost(t, post.ID).Comments)
	assert.Equal(t, int64(n), f.countComments(t, post.ID))
}

func TestAddComment_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u1, id1 := f.seedUser(t, "user_1", "Ann", "Lee")
	post := f.seedPost(t, u1.ID)

	_, err := f.comments.AddComment(ctx, nil, post.ID, "x")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.comments.AddComment(ctx, id1, 12345, "x")
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = f.comments.AddComment(ctx, id1, post.ID, "   ")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = f.comments.AddComment(ctx, id1, post.ID, strings.Repeat("a", maxCommentLength+1))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Zero(t, f.reloadPost(t, post.ID).Comments)
}

func TestAddComment_MissingOwnerRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, id1 := f.seedUser(t, "user_1", "Ann", "Lee")
	post := f.seedPost(t, 999)

	_, err := f.comments.AddComment(ctx, id1, post.ID, "hello")
	assert.ErrorIs(t, err, ErrDanglingReference)

	assert.Zero(t, f.reloadPost(t, post.ID).Comments)
	assert.Zero(t, f.countComments(t, post.ID))
}

func TestListComments_OrderAndDanglingAuthor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u1, id1 := f.seedUser(t, "user_1", "Ann", "Lee")
	u2, id2 := f.seedUser(t, "user_2", "Bo", "Kim")
	post := f.seedPost(t, u1.ID)

	_, err := f.comments.AddComment(ctx, id1, post.ID, "first")
	require.NoError(t, err)
	_, err = f.comments.AddComment(ctx, id2, post.ID, "second")
	require.NoError(t, err)
	_, err = f.comments.AddComment(ctx, id1, post.ID, "third")
	require.NoError(t, err)

	list, err := f.comments.ListComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Content)
	assert.Equal(t, "second", list[1].Content)
	assert.Equal(t, "third", list[2].Content)

	require.NoError(t, f.db.Delete(&models.User{}, u2.ID).Error)

	list, err = f.comments.ListComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Content)
	assert.Equal(t, "third", list[1].Content)

	empty, err := f.comments.ListComments(ctx, 777)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
