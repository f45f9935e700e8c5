package dao

import (
	"context"

	"Spotlight/models"

	"gorm.io/gorm"
)

// 帖子计数字段
const (
	PostColumnLikes    = "likes"
	PostColumnComments = "comments"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{
		Repo: NewRepo[models.Post](db),
	}
}

func (d *PostDAO) WithTx(tx *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](tx)}
}

// Feed 按 id 倒序分页，snowflake id 与创建时间同序；cursor 为上一页最后一条的 id
func (d *PostDAO) Feed(ctx context.Context, cursor uint64, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	query := d.Db.WithContext(ctx).Model(&models.Post{})
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

// IncrColumn 原子地调整计数字段，行不存在时返回 gorm.ErrRecordNotFound
func (d *PostDAO) IncrColumn(ctx context.Context, postID uint64, column string, delta int64) error {
	res := d.Db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReconcileCounters 按明细表重算 posts.comments 与 posts.likes，返回修正的行数
func (d *PostDAO) ReconcileCounters(ctx context.Context) (int64, error) {
	var fixed int64
	err := d.Transaction(ctx, func(tx *gorm.DB) error {
		comments := "(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id)"
		res := tx.Exec("UPDATE posts SET comments = " + comments + " WHERE posts.comments <> " + comments)
		if res.Error != nil {
			return res.Error
		}
		fixed += res.RowsAffected

		likes := "(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id)"
		res = tx.Exec("UPDATE posts SET likes = " + likes + " WHERE posts.likes <> " + likes)
		if res.Error != nil {
			return res.Error
		}
		fixed += res.RowsAffected
		return nil
	})
	return fixed, err
}
