package dao

import (
	"context"

	"Spotlight/models"

	"gorm.io/gorm"
)

type FollowDAO struct {
	Repo[models.Follow]
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{
		Repo: NewRepo[models.Follow](db),
	}
}

func (d *FollowDAO) WithTx(tx *gorm.DB) *FollowDAO {
	return &FollowDAO{Repo: NewRepo[models.Follow](tx)}
}

// GetPair 查询关注关系，不存在返回 nil, nil
func (d *FollowDAO) GetPair(ctx context.Context, followerID, followingID uint64) (*models.Follow, error) {
	var item models.Follow
	err := d.Db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (d *FollowDAO) DeleteByID(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).Where("id = ?", id).Delete(&models.Follow{}).Error
}
