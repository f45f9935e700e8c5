package service

import (
	"context"
	"errors"
	"strings"

	"Spotlight/dao"
	"Spotlight/dao/cache"
	"Spotlight/models"
	"Spotlight/pkg/log"
	"Spotlight/pkg/response"
	"Spotlight/pkg/snowflake"
	"Spotlight/types"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 50
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	GenerateUploadURL(ctx context.Context, identity *types.Identity) (*types.UploadURLResponse, error)
	CreatePost(ctx context.Context, identity *types.Identity, storageID string, caption *string) (uint64, error)
	GetFeed(ctx context.Context, identity *types.Identity, cursor uint64, limit int) (*types.FeedResponse, error)
	ToggleLike(ctx context.Context, identity *types.Identity, postID uint64) (bool, error)
}

type PostService struct {
	UserService   IUserService
	NoticeService INoticeService
	Media         MediaStore
	Locks         *cache.LockStorage
	UserDAO       *dao.UserDAO
	PostDAO       *dao.PostDAO
	LikeDAO       *dao.LikeDAO
	BookmarkDAO   *dao.BookmarkDAO
}

func (s *PostService) GenerateUploadURL(ctx context.Context, identity *types.Identity) (*types.UploadURLResponse, error) {
	if _, err := s.UserService.ResolveCurrentUser(ctx, identity); err != nil {
		return nil, err
	}

	resp, err := s.Media.GenerateUploadURL(ctx)
	if err != nil {
		return nil, response.Downstream(err)
	}
	return resp, nil
}

func (s *PostService) CreatePost(ctx context.Context, identity *types.Identity, storageID string, caption *string) (uint64, error) {
	user, err := s.UserService.ResolveCurrentUser(ctx, identity)
	if err != nil {
		return 0, err
	}

	imageURL, err := s.Media.ResolveURL(ctx, storageID)
	if err != nil {
		return 0, response.Downstream(err)
	}
	if imageURL == "" {
		return 0, ErrMediaNotFound
	}

	if caption != nil {
		trimmed := strings.TrimSpace(*caption)
		caption = &trimmed
		if trimmed == "" {
			caption = nil
		}
	}

	post := &models.Post{
		ID:        snowflake.GenID(),
		UserID:    user.ID,
		ImageURL:  imageURL,
		StorageID: storageID,
		Caption:   caption,
	}

	err = s.PostDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.PostDAO.WithTx(tx).Create(ctx, post); err != nil {
			return err
		}
		return s.UserDAO.WithTx(tx).IncrColumn(ctx, user.ID, dao.UserColumnPosts, 1)
	})
	if dao.IsNotFound(err) {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, response.Downstream(err)
	}

	return post.ID, nil
}

func (s *PostService) GetFeed(ctx context.Context, identity *types.Identity, cursor uint64, limit int) (*types.FeedResponse, error) {
	user, err := s.UserService.ResolveCurrentUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultFeedLimit
	}
	limit = min(limit, maxFeedLimit)

	posts, err := s.PostDAO.Feed(ctx, cursor, limit)
	if err != nil {
		return nil, response.Downstream(err)
	}

	resp := &types.FeedResponse{Posts: make([]*types.PostResponse, 0, len(posts))}
	if len(posts) == 0 {
		return resp, nil
	}

	postIDs := lo.Map(posts, func(p *models.Post, _ int) uint64 { return p.ID })
	authorIDs := lo.Map(posts, func(p *models.Post, _ int) uint64 { return p.UserID })

	// 并发获取作者、点赞、收藏状态
	var (
		wg          conc.WaitGroup
		profiles    map[uint64]types.UserProfile
		liked       map[uint64]bool
		bookmarked  map[uint64]bool
		profileErr  error
		likeErr     error
		bookmarkErr error
	)
	wg.Go(func() {
		profiles, profileErr = s.UserService.BatchGetProfiles(ctx, authorIDs)
	})
	wg.Go(func() {
		liked, likeErr = s.LikeDAO.BatchCheckExists(ctx, user.ID, postIDs)
	})
	wg.Go(func() {
		bookmarked, bookmarkErr = s.BookmarkDAO.BatchCheckExists(ctx, user.ID, postIDs)
	})
	wg.Wait()

	if err := errors.Join(profileErr, likeErr, bookmarkErr); err != nil {
		return nil, response.Downstream(err)
	}

	for _, p := range posts {
		author, ok := profiles[p.UserID]
		if !ok {
			log.L.Warn("dangling post author", zap.Uint64("post_id", p.ID), zap.Uint64("user_id", p.UserID))
			continue
		}
		resp.Posts = append(resp.Posts, &types.PostResponse{
			ID:           p.ID,
			ImageURL:     p.ImageURL,
			Caption:      p.Caption,
			Likes:        p.Likes,
			Comments:     p.Comments,
			CreatedAt:    p.CreatedAt,
			Author:       author,
			IsLiked:      liked[p.ID],
			IsBookmarked: bookmarked[p.ID],
		})
	}

	resp.HasMore = len(posts) == limit
	resp.NextCursor = posts[len(posts)-1].ID
	return resp, nil
}

func (s *PostService) ToggleLike(ctx context.Context, identity *types.Identity, postID uint64) (bool, error) {
	user, err := s.UserService.ResolveCurrentUser(ctx, identity)
	if err != nil {
		return false, err
	}

	var (
		liked  bool
		notice *models.Notification
	)
	err = withToggleLock(ctx, s.Locks, "like", user.ID, postID, func() error {
		err := s.PostDAO.Transaction(ctx, func(tx *gorm.DB) error {
			post, err := s.PostDAO.WithTx(tx).FindByID(ctx, postID)
			if err != nil {
				return err
			}

			likes := s.LikeDAO.WithTx(tx)
			existing, err := likes.GetByUserPost(ctx, user.ID, postID)
			if err != nil {
				return err
			}

			if existing != nil {
				if err := likes.DeleteByID(ctx, existing.ID); err != nil {
					return err
				}
				liked = false
				return s.PostDAO.WithTx(tx).IncrColumn(ctx, postID, dao.PostColumnLikes, -1)
			}

			err = likes.Create(ctx, &models.Like{ID: snowflake.GenID(), UserID: user.ID, PostID: postID})
			if dao.IsDuplicateKey(err) {
				return errAlreadyApplied
			}
			if err != nil {
				return err
			}
			if err := s.PostDAO.WithTx(tx).IncrColumn(ctx, postID, dao.PostColumnLikes, 1); err != nil {
				return err
			}
			liked = true

			notice, err = s.NoticeService.Create(ctx, tx, post.UserID, user.ID, models.NoticeTypeLike, &post.ID, nil)
			return err
		})
		switch {
		case errors.Is(err, errAlreadyApplied):
			liked, notice = true, nil
			return nil
		case dao.IsNotFound(err):
			return ErrPostNotFound
		case err != nil:
			return response.Downstream(err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	s.NoticeService.Dispatch(ctx, notice)
	return liked, nil
}
