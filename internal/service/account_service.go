package service

import (
	"errors"
	"strings"

	"steak-log-server/internal/common"
	"steak-log-server/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Register 创建新账号。
// 用户名大小写敏感且唯一；只持久化 bcrypt 哈希，绝不返回哈希本身。
func (s *AppService) Register(username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", common.NewValidationError("缺少用户名或密码")
	}

	_, err := s.repos.User.FindByUsername(username)
	if err == nil {
		return "", common.NewConflictError("用户名已存在")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := model.User{Username: username, Password: string(hashed)}
	if err := s.repos.User.Create(&user); err != nil {
		return "", err
	}
	return username, nil
}

// Login 校验用户名密码。
// 未知用户与密码错误都返回 unauthorized；bcrypt 比较本身提供尽力而为的恒时性。
func (s *AppService) Login(username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", common.NewValidationError("缺少登录凭证")
	}

	user, err := s.repos.User.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", common.NewUnauthorizedError("未知用户")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", common.NewUnauthorizedError("密码错误")
	}
	return user.Username, nil
}

// ListUsernames 返回全部注册用户名，忽略大小写升序。
func (s *AppService) ListUsernames() ([]string, error) {
	usernames, err := s.repos.User.ListUsernames()
	if err != nil {
		return nil, err
	}
	if usernames == nil {
		usernames = []string{}
	}
	return usernames, nil
}
