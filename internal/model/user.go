package model

import "time"

type User struct {
	Username  string `json:"username" gorm:"primaryKey;size:255"`
	Password  string `json:"-" gorm:"not null"` // bcrypt 哈希，绝不返回给客户端
	CreatedAt time.Time
}
