package repository

import (
	"steak-log-server/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsernames 返回全部用户名，忽略大小写升序。
// 用 LOWER() 排序以兼容 sqlite/mysql/postgres 三种驱动。
func (r *UserRepository) ListUsernames() ([]string, error) {
	var usernames []string
	if err := r.db.Model(&model.User{}).
		Order("LOWER(username) ASC").
		Pluck("username", &usernames).Error; err != nil {
		return nil, err
	}
	return usernames, nil
}
