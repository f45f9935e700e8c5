package dao

import (
	"context"

	"Spotlight/models"

	"gorm.io/gorm"
)

// 用户计数字段
const (
	UserColumnPosts     = "posts"
	UserColumnFollowers = "followers"
	UserColumnFollowing = "following"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		Repo: NewRepo[models.User](db),
	}
}

// WithTx 返回绑定到事务的 DAO
func (d *UserDAO) WithTx(tx *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](tx)}
}

// FindByClerkID 按身份提供方的用户 ID 查询
func (d *UserDAO) FindByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	return d.FindByWhere(ctx, "clerk_id = ?", clerkID)
}

// IncrColumn 原子地调整计数字段，行不存在时返回 gorm.ErrRecordNotFound
func (d *UserDAO) IncrColumn(ctx context.Context, userID uint64, column string, delta int64) error {
	res := d.Db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReconcilePosts 按帖子表重算 users.posts，返回修正的行数
func (d *UserDAO) ReconcilePosts(ctx context.Context) (int64, error) {
	sub := "(SELECT COUNT(*) FROM posts WHERE posts.user_id = users.id)"
	res := d.Db.WithContext(ctx).Exec("UPDATE users SET posts = " + sub + " WHERE users.posts <> " + sub)
	return res.RowsAffected, res.Error
}
