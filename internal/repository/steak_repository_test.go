package repository

import (
	"errors"
	"testing"

	"steak-log-server/internal/model"
	"steak-log-server/internal/testutils"

	"gorm.io/gorm"
)

func newSteak(id, owner, timestamp string) *model.Steak {
	return &model.Steak{
		ID:        id,
		Owner:     owner,
		Type:      "Ribeye Steak",
		Cost:      12.5,
		Weight:    300,
		Timestamp: timestamp,
	}
}

// 测试内容：验证列表按时间倒序且只含指定 owner 的记录。
func TestSteakRepository_ListByOwner(t *testing.T) {
	gdb := testutils.SetupDB(t)
	repo := NewSteakRepository(gdb)

	_ = repo.Create(newSteak("a1", "alice", "2026-08-01T10:00:00.000Z"))
	_ = repo.Create(newSteak("a2", "alice", "2026-08-02T10:00:00.000Z"))
	_ = repo.Create(newSteak("b1", "bob", "2026-08-03T10:00:00.000Z"))

	steaks, err := repo.ListByOwner("alice")
	if err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}
	if len(steaks) != 2 {
		t.Fatalf("期望 2 条记录，实际为 %d", len(steaks))
	}
	if steaks[0].ID != "a2" || steaks[1].ID != "a1" {
		t.Fatalf("期望按时间倒序 [a2 a1]，实际为 [%s %s]", steaks[0].ID, steaks[1].ID)
	}

	steaks, err = repo.ListByOwner("carol")
	if err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}
	if len(steaks) != 0 {
		t.Fatalf("期望空列表，实际为 %d 条", len(steaks))
	}
}

// 测试内容：验证按 (id, owner) 查询对不存在与归属他人返回同样的错误。
func TestSteakRepository_FindOwned(t *testing.T) {
	gdb := testutils.SetupDB(t)
	repo := NewSteakRepository(gdb)

	_ = repo.Create(newSteak("a1", "alice", "2026-08-01T10:00:00.000Z"))

	if _, err := repo.FindOwned("a1", "alice"); err != nil {
		t.Fatalf("期望查询成功: %v", err)
	}

	_, errMissing := repo.FindOwned("nope", "alice")
	_, errForeign := repo.FindOwned("a1", "bob")
	if !errors.Is(errMissing, gorm.ErrRecordNotFound) {
		t.Fatalf("期望 ErrRecordNotFound，实际为 %v", errMissing)
	}
	if !errors.Is(errForeign, gorm.ErrRecordNotFound) {
		t.Fatalf("期望 ErrRecordNotFound，实际为 %v", errForeign)
	}
}

// 测试内容：验证删除后记录不再出现在列表中。
func TestSteakRepository_DeleteOwned(t *testing.T) {
	gdb := testutils.SetupDB(t)
	repo := NewSteakRepository(gdb)

	_ = repo.Create(newSteak("a1", "alice", "2026-08-01T10:00:00.000Z"))

	if err := repo.DeleteOwned("a1", "alice"); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	steaks, _ := repo.ListByOwner("alice")
	if len(steaks) != 0 {
		t.Fatalf("期望删除后列表为空，实际为 %d 条", len(steaks))
	}
}
