package service

import (
	"context"
	"errors"

	"Spotlight/dao"
	"Spotlight/dao/cache"
	"Spotlight/models"
	"Spotlight/pkg/response"
	"Spotlight/pkg/snowflake"
	"Spotlight/types"

	"gorm.io/gorm"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	ToggleFollow(ctx context.Context, identity *types.Identity, targetID uint64) (bool, error)
}

type FollowService struct {
	UserService   IUserService
	NoticeService INoticeService
	Locks         *cache.LockStorage
	UserDAO       *dao.UserDAO
	FollowDAO     *dao.FollowDAO
}

func (s *FollowService) ToggleFollow(ctx context.Context, identity *types.Identity, targetID uint64) (bool, error) {
	user, err := s.UserService.ResolveCurrentUser(ctx, identity)
	if err != nil {
		return false, err
	}

	// 不能关注自己
	if user.ID == targetID {
		return false, ErrInvalidArgument
	}

	var (
		following bool
		notice    *models.Notification
	)
	err = withToggleLock(ctx, s.Locks, "follow", user.ID, targetID, func() error {
		err := s.FollowDAO.Transaction(ctx, func(tx *gorm.DB) error {
			users := s.UserDAO.WithTx(tx)
			follows := s.FollowDAO.WithTx(tx)

			exist, err := users.IsExist(ctx, "id = ?", targetID)
			if err != nil {
				return err
			}
			if !exist {
				return ErrUserNotFound
			}

			existing, err := follows.GetPair(ctx, user.ID, targetID)
			if err != nil {
				return err
			}

			delta := int64(1)
			if existing != nil {
				if err := follows.DeleteByID(ctx, existing.ID); err != nil {
					return err
				}
				delta = -1
			} else {
				err := follows.Create(ctx, &models.Follow{ID: snowflake.GenID(), FollowerID: user.ID, FollowingID: targetID})
				if dao.IsDuplicateKey(err) {
					return errAlreadyApplied
				}
				if err != nil {
					return err
				}
			}

			// 被关注人的粉丝数、关注人的关注数
			if err := users.IncrColumn(ctx, targetID, dao.UserColumnFollowers, delta); err != nil {
				return err
			}
			if err := users.IncrColumn(ctx, user.ID, dao.UserColumnFollowing, delta); err != nil {
				return err
			}

			following = delta > 0
			if !following {
				return nil
			}

			notice, err = s.NoticeService.Create(ctx, tx, targetID, user.ID, models.NoticeTypeFollow, nil, nil)
			return err
		})
		switch {
		case errors.Is(err, errAlreadyApplied):
			following, notice = true, nil
			return nil
		case dao.IsNotFound(err):
			return ErrUserNotFound
		}
		return response.Downstream(err)
	})
	if err != nil {
		return false, err
	}

	s.NoticeService.Dispatch(ctx, notice)
	return following, nil
}
