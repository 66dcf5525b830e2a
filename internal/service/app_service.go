package service

import "steak-log-server/internal/repository"

type AppService struct {
	repos     *repository.Repositories
	uploadDir string
}

// NewAppService 构造服务层。
// uploadDir 显式传入而不是读全局配置，方便测试时隔离上传目录。
func NewAppService(repos *repository.Repositories, uploadDir string) *AppService {
	return &AppService{repos: repos, uploadDir: uploadDir}
}
