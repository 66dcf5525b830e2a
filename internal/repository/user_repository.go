package repository

import "steak-log-server/internal/model"

type UserStore interface {
	Create(user *model.User) error
	FindByUsername(username string) (*model.User, error)
	ListUsernames() ([]string, error)
}
