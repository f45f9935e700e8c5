package dao

import (
	"context"

	"Spotlight/models"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{
		Repo: NewRepo[models.Like](db),
	}
}

func (d *LikeDAO) WithTx(tx *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](tx)}
}

// GetByUserPost 查询点赞记录，不存在返回 nil, nil
func (d *LikeDAO) GetByUserPost(ctx context.Context, userID, postID uint64) (*models.Like, error) {
	var item models.Like
	err := d.Db.WithContext(ctx).Where("user_id = ? AND post_id = ?", userID, postID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (d *LikeDAO) DeleteByID(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).Where("id = ?", id).Delete(&models.Like{}).Error
}

func (d *LikeDAO) BatchCheckExists(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}
	var ids []uint64
	err := d.Db.WithContext(ctx).Model(&models.Like{}).
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
