package handler

import (
	"testing"

	"steak-log-server/internal/repository"
	"steak-log-server/internal/service"
	"steak-log-server/internal/testutils"

	"gorm.io/gorm"
)

var (
	testService *service.AppService
	testHandler *Handler
)

func setupTestDB(t *testing.T) (*gorm.DB, string) {
	t.Helper()

	gdb := testutils.SetupDB(t)
	uploadDir := t.TempDir()
	testService = service.NewAppService(repository.NewRepositories(
		repository.NewSteakRepository(gdb),
		repository.NewUserRepository(gdb),
	), uploadDir)
	testHandler = NewHandler(testService)
	return gdb, uploadDir
}
