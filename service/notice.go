package service

import (
	"context"
	"encoding/json"

	"Spotlight/config"
	"Spotlight/dao"
	"Spotlight/dao/cache"
	"Spotlight/models"
	"Spotlight/pkg/log"
	"Spotlight/pkg/response"
	"Spotlight/pkg/rocketmq"
	"Spotlight/pkg/snowflake"
	"Spotlight/types"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultNoticeLimit = 50
	maxNoticeLimit     = 100
)

var _ INoticeService = (*NoticeService)(nil)

type INoticeService interface {
	// Create inserts a notification inside the caller's transaction. Self-addressed
	// notifications are skipped and return nil.
	Create(ctx context.Context, tx *gorm.DB, receiverID, senderID uint64, kind string, postID, commentID *uint64) (*models.Notification, error)
	// Dispatch delivers a committed notification: unread counter, live stream and event stream.
	Dispatch(ctx context.Context, n *models.Notification)
	ListNotifications(ctx context.Context, identity *types.Identity, limit int) ([]*types.NotificationResponse, error)
	UnreadCount(ctx context.Context, identity *types.Identity) (int64, error)
}

type NoticeService struct {
	NotificationDAO *dao.NotificationDAO
	PostDAO         *dao.PostDAO
	UserService     IUserService
	Unread          *cache.UnreadStorage
	Notice          *cache.NoticeStorage
	Publisher       rocketmq.Publisher
	MQConfig        *config.RocketMQConfig
}

func (s *NoticeService) Create(ctx context.Context, tx *gorm.DB, receiverID, senderID uint64, kind string, postID, commentID *uint64) (*models.Notification, error) {
	if receiverID == senderID {
		return nil, nil
	}

	n := &models.Notification{
		ID:         snowflake.GenID(),
		ReceiverID: receiverID,
		SenderID:   senderID,
		Type:       kind,
		PostID:     postID,
		CommentID:  commentID,
	}
	if err := s.NotificationDAO.WithTx(tx).Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NoticeService) Dispatch(ctx context.Context, n *models.Notification) {
	if n == nil {
		return
	}

	if err := s.Unread.Incr(ctx, n.ReceiverID); err != nil {
		log.L.Warn("incr unread notice", zap.Uint64("receiver_id", n.ReceiverID), zap.Error(err))
	}

	body, err := json.Marshal(&types.NoticeEvent{
		ID:         n.ID,
		Type:       n.Type,
		ReceiverID: n.ReceiverID,
		SenderID:   n.SenderID,
		PostID:     n.PostID,
		CommentID:  n.CommentID,
		CreatedAt:  n.CreatedAt,
	})
	if err != nil {
		log.L.Error("marshal notice event", zap.Error(err))
		return
	}

	if err := s.Notice.Publish(ctx, n.ReceiverID, body); err != nil {
		log.L.Warn("publish notice", zap.Uint64("notice_id", n.ID), zap.Error(err))
	}

	if s.MQConfig.Enabled() {
		if err := s.Publisher.Publish(ctx, s.MQConfig.Topic, body); err != nil {
			log.L.Warn("send notice to mq", zap.Uint64("notice_id", n.ID), zap.Error(err))
		}
	}
}

func (s *NoticeService) ListNotifications(ctx context.Context, identity *types.Identity, limit int) ([]*types.NotificationResponse, error) {
	user, err := s.UserService.ResolveCurrentUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultNoticeLimit
	}
	limit = min(limit, maxNoticeLimit)

	items, err := s.NotificationDAO.ListByReceiver(ctx, user.ID, limit)
	if err != nil {
		return nil, response.Downstream(err)
	}

	senderIDs := lo.Map(items, func(n *models.Notification, _ int) uint64 { return n.SenderID })
	postIDs := lo.Uniq(lo.FilterMap(items, func(n *models.Notification, _ int) (uint64, bool) {
		if n.PostID == nil {
			return 0, false
		}
		return *n.PostID, true
	}))

	var (
		wg       conc.WaitGroup
		profiles map[uint64]types.UserProfile
		posts    []*models.Post
		userErr  error
		postErr  error
	)
	wg.Go(func() {
		profiles, userErr = s.UserService.BatchGetProfiles(ctx, senderIDs)
	})
	wg.Go(func() {
		posts, postErr = s.PostDAO.FindByIds(ctx, postIDs)
	})
	wg.Wait()

	if userErr != nil {
		return nil, userErr
	}
	if postErr != nil {
		return nil, response.Downstream(postErr)
	}

	postMap := lo.KeyBy(posts, func(p *models.Post) uint64 { return p.ID })

	result := make([]*types.NotificationResponse, 0, len(items))
	for _, n := range items {
		sender, ok := profiles[n.SenderID]
		if !ok {
			log.L.Warn("dangling notification sender", zap.Uint64("notice_id", n.ID), zap.Uint64("sender_id", n.SenderID))
			continue
		}

		item := &types.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Sender:    sender,
			PostID:    n.PostID,
			CommentID: n.CommentID,
			CreatedAt: n.CreatedAt,
		}
		if n.PostID != nil {
			post, ok := postMap[*n.PostID]
			if !ok {
				log.L.Warn("dangling notification post", zap.Uint64("notice_id", n.ID), zap.Uint64("post_id", *n.PostID))
				continue
			}
			item.PostImage = post.ImageURL
		}
		result = append(result, item)
	}

	if err := s.Unread.Reset(ctx, user.ID); err != nil {
		log.L.Warn("reset unread notice", zap.Uint64("user_id", user.ID), zap.Error(err))
	}

	return result, nil
}

func (s *NoticeService) UnreadCount(ctx context.Context, identity *types.Identity) (int64, error) {
	user, err := s.UserService.ResolveCurrentUser(ctx, identity)
	if err != nil {
		return 0, err
	}

	n, err := s.Unread.Get(ctx, user.ID)
	if err != nil {
		return 0, response.Downstream(err)
	}
	return n, nil
}
