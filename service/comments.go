package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"Spotlight/dao"
	"Spotlight/models"
	"Spotlight/pkg/log"
	"Spotlight/pkg/response"
	"Spotlight/pkg/snowflake"
	"Spotlight/types"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxCommentLength = 1000

var _ ICommentsService = (*CommentsService)(nil)

type ICommentsService interface {
	AddComment(ctx context.Context, identity *types.Identity, postID uint64, content string) (uint64, error)
	ListComments(ctx context.Context, postID uint64) ([]*types.CommentResponse, error)
}

type CommentsService struct {
	UserService   IUserService
	NoticeService INoticeService
	UserDAO       *dao.UserDAO
	PostDAO       *dao.PostDAO
	CommentDAO    *dao.CommentDAO
}

func (s *CommentsService) AddComment(ctx context.Context, identity *types.Identity, postID uint64, content string) (uint64, error) {
	user, err := s.UserService.ResolveCurrentUser(ctx, identity)
	if err != nil {
		return 0, err
	}

	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > maxCommentLength {
		return 0, ErrInvalidArgument
	}

	comment := &models.Comment{
		ID:      snowflake.GenID(),
		UserID:  user.ID,
		PostID:  postID,
		Content: content,
	}

	var notice *models.Notification
	err = s.CommentDAO.Transaction(ctx, func(tx *gorm.DB) error {
		posts := s.PostDAO.WithTx(tx)

		post, err := posts.FindByID(ctx, postID)
		if dao.IsNotFound(err) {
			return ErrPostNotFound
		}
		if err != nil {
			return err
		}

		if post.UserID != user.ID {
			exist, err := s.UserDAO.WithTx(tx).IsExist(ctx, "id = ?", post.UserID)
			if err != nil {
				return err
			}
			if !exist {
				return ErrDanglingReference
			}
		}

		if err := s.CommentDAO.WithTx(tx).Create(ctx, comment); err != nil {
			return err
		}

		// 原子自增，并发评论不会丢失计数
		if err := posts.IncrColumn(ctx, postID, dao.PostColumnComments, 1); err != nil {
			if dao.IsNotFound(err) {
				return ErrPostNotFound
			}
			return err
		}

		notice, err = s.NoticeService.Create(ctx, tx, post.UserID, user.ID, models.NoticeTypeComment, &post.ID, &comment.ID)
		return err
	})
	if err != nil {
		return 0, response.Downstream(err)
	}

	s.NoticeService.Dispatch(ctx, notice)
	return comment.ID, nil
}

func (s *CommentsService) ListComments(ctx context.Context, postID uint64) ([]*types.CommentResponse, error) {
	comments, err := s.CommentDAO.ListByPost(ctx, postID)
	if err != nil {
		return nil, response.Downstream(err)
	}

	result := make([]*types.CommentResponse, 0, len(comments))
	if len(comments) == 0 {
		return result, nil
	}

	userIDs := lo.Map(comments, func(c *models.Comment, _ int) uint64 { return c.UserID })
	profiles, err := s.UserService.BatchGetProfiles(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	for _, c := range comments {
		author, ok := profiles[c.UserID]
		if !ok {
			log.L.Warn("dangling comment author", zap.Uint64("comment_id", c.ID), zap.Uint64("user_id", c.UserID))
			continue
		}
		result = append(result, &types.CommentResponse{
			ID:        c.ID,
			PostID:    c.PostID,
			UserID:    c.UserID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			User: types.CommentAuthor{
				Fullname: author.Fullname,
				Image:    author.Image,
			},
		})
	}

	return result, nil
}
