package dao

import (
	"context"

	"Spotlight/models"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		Repo: NewRepo[models.Comment](db),
	}
}

func (d *CommentDAO) WithTx(tx *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](tx)}
}

// ListByPost 帖子下全部评论，按创建顺序
func (d *CommentDAO) ListByPost(ctx context.Context, postID uint64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&comments).Error
	return comments, err
}
