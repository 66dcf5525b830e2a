package repository

import (
	"gorm.io/gorm"
)

type Repositories struct {
	Steak SteakStore
	User  UserStore
}

func NewSteakRepository(db *gorm.DB) SteakStore {
	return &SteakRepository{db: db}
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func NewRepositories(steak SteakStore, user UserStore) *Repositories {
	return &Repositories{
		Steak: steak,
		User:  user,
	}
}
