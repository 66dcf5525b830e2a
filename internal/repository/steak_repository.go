package repository

import "steak-log-server/internal/model"

type SteakStore interface {
	Create(steak *model.Steak) error
	ListByOwner(owner string) ([]model.Steak, error)
	FindOwned(id string, owner string) (*model.Steak, error)
	DeleteOwned(id string, owner string) error
}
