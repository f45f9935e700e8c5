package service

import (
	"context"
	"errors"

	"Spotlight/dao"
	"Spotlight/dao/cache"
	"Spotlight/models"
	"Spotlight/pkg/log"
	"Spotlight/pkg/response"
	"Spotlight/pkg/snowflake"
	"Spotlight/types"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IBookmarkService = (*BookmarkService)(nil)

type IBookmarkService interface {
	// ToggleBookmark flips the caller's bookmark on a post and reports the new state.
	ToggleBookmark(ctx context.Context, identity *types.Identity, postID uint64) (bool, error)
	// ListBookmarkedPosts returns the caller's bookmarked posts, most recently bookmarked first.
	ListBookmarkedPosts(ctx context.Context, identity *types.Identity) ([]*models.Post, error)
}

type BookmarkService struct {
	UserService IUserService
	Locks       *cache.LockStorage
	PostDAO     *dao.PostDAO
	BookmarkDAO *dao.BookmarkDAO
}

func (s *BookmarkService) ToggleBookmark(ctx context.Context, identity *types.Identity, postID uint64) (bool, error) {
	user, err := s.UserService.ResolveCurrentUser(ctx, identity)
	if err != nil {
		return false, err
	}

	var bookmarked bool
	err = withToggleLock(ctx, s.Locks, "bookmark", user.ID, postID, func() error {
		err := s.BookmarkDAO.Transaction(ctx, func(tx *gorm.DB) error {
			bookmarks := s.BookmarkDAO.WithTx(tx)
			existing, err := bookmarks.GetByUserPost(ctx, user.ID, postID)
			if err != nil {
				return err
			}
			// 取消收藏不要求帖子仍然存在，悬空收藏也能删掉
			if existing != nil {
				bookmarked = false
				return bookmarks.DeleteByID(ctx, existing.ID)
			}

			exist, err := s.PostDAO.WithTx(tx).IsExist(ctx, "id = ?", postID)
			if err != nil {
				return err
			}
			if !exist {
				return ErrPostNotFound
			}

			err = bookmarks.Create(ctx, &models.Bookmark{ID: snowflake.GenID(), UserID: user.ID, PostID: postID})
			if dao.IsDuplicateKey(err) {
				return errAlreadyApplied
			}
			bookmarked = true
			return err
		})
		if errors.Is(err, errAlreadyApplied) {
			bookmarked = true
			return nil
		}
		return response.Downstream(err)
	})
	if err != nil {
		return false, err
	}

	return bookmarked, nil
}

func (s *BookmarkService) ListBookmarkedPosts(ctx context.Context, identity *types.Identity) ([]*models.Post, error) {
	user, err := s.UserService.ResolveCurrentUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	bookmarks, err := s.BookmarkDAO.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, response.Downstream(err)
	}
	if len(bookmarks) == 0 {
		return make([]*models.Post, 0), nil
	}

	postIDs := lo.Map(bookmarks, func(b *models.Bookmark, _ int) uint64 { return b.PostID })
	posts, err := s.PostDAO.FindByIds(ctx, postIDs)
	if err != nil {
		return nil, response.Downstream(err)
	}
	postMap := lo.KeyBy(posts, func(p *models.Post) uint64 { return p.ID })

	// 按收藏顺序重排，过滤已不存在的帖子
	result := make([]*models.Post, 0, len(bookmarks))
	for _, b := range bookmarks {
		post, ok := postMap[b.PostID]
		if !ok {
			log.L.Warn("dangling bookmark", zap.Uint64("bookmark_id", b.ID), zap.Uint64("post_id", b.PostID))
			continue
		}
		result = append(result, post)
	}

	return result, nil
}
