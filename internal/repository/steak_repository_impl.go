package repository

import (
	"steak-log-server/internal/model"

	"gorm.io/gorm"
)

type SteakRepository struct {
	db *gorm.DB
}

func (r *SteakRepository) Create(steak *model.Steak) error {
	return r.db.Create(steak).Error
}

func (r *SteakRepository) ListByOwner(owner string) ([]model.Steak, error) {
	var steaks []model.Steak
	if err := r.db.Where("owner = ?", owner).
		Order("timestamp DESC").
		Find(&steaks).Error; err != nil {
		return nil, err
	}
	return steaks, nil
}

// FindOwned 按 (id, owner) 查询。
// 不存在与归属他人返回同样的 gorm.ErrRecordNotFound，二者不可区分。
func (r *SteakRepository) FindOwned(id string, owner string) (*model.Steak, error) {
	var steak model.Steak
	if err := r.db.Where("id = ? AND owner = ?", id, owner).First(&steak).Error; err != nil {
		return nil, err
	}
	return &steak, nil
}

func (r *SteakRepository) DeleteOwned(id string, owner string) error {
	return r.db.Where("id = ? AND owner = ?", id, owner).Delete(&model.Steak{}).Error
}
