package dao

import (
	"context"

	"Spotlight/models"

	"gorm.io/gorm"
)

type BookmarkDAO struct {
	Repo[models.Bookmark]
}

func NewBookmarkDAO(db *gorm.DB) *BookmarkDAO {
	return &BookmarkDAO{
		Repo: NewRepo[models.Bookmark](db),
	}
}

func (d *BookmarkDAO) WithTx(tx *gorm.DB) *BookmarkDAO {
	return &BookmarkDAO{Repo: NewRepo[models.Bookmark](tx)}
}

// GetByUserPost 查询收藏记录，不存在返回 nil, nil
func (d *BookmarkDAO) GetByUserPost(ctx context.Context, userID, postID uint64) (*models.Bookmark, error) {
	var item models.Bookmark
	err := d.Db.WithContext(ctx).Where("user_id = ? AND post_id = ?", userID, postID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (d *BookmarkDAO) DeleteByID(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).Where("id = ?", id).Delete(&models.Bookmark{}).Error
}

// ListByUser 用户收藏，最新的在前
func (d *BookmarkDAO) ListByUser(ctx context.Context, userID uint64) ([]*models.Bookmark, error) {
	var items []*models.Bookmark
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&items).Error
	return items, err
}

// BatchCheckExists 批量判断 postIDs 中哪些被用户收藏
func (d *BookmarkDAO) BatchCheckExists(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}
	var ids []uint64
	err := d.Db.WithContext(ctx).Model(&models.Bookmark{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}
