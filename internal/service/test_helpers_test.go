package service

import (
	"testing"

	"steak-log-server/internal/repository"
	"steak-log-server/internal/testutils"

	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*AppService, *gorm.DB, string) {
	t.Helper()

	gdb := testutils.SetupDB(t)
	uploadDir := t.TempDir()
	appService := NewAppService(repository.NewRepositories(
		repository.NewSteakRepository(gdb),
		repository.NewUserRepository(gdb),
	), uploadDir)
	return appService, gdb, uploadDir
}
