package service

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"steak-log-server/internal/common"
	"steak-log-server/internal/model"
	"steak-log-server/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// timestampLayout 固定宽度的 UTC 时间格式。
// 定宽保证 timestamp 列的字典序与时间序一致。
const timestampLayout = "2006-01-02T15:04:05.000Z"

// AddSteak 校验通过后生成 id 与时间戳并落库，返回完整记录。
// 校验先于任何写入，不会产生半成品记录。
func (s *AppService) AddSteak(owner, steakType string, cost, weight float64, photo *string) (*model.Steak, error) {
	if strings.TrimSpace(steakType) == "" || cost <= 0 || weight <= 0 {
		return nil, common.NewValidationError("缺少必要字段")
	}

	// photo 只保留文件名引用，空串视同未附带
	if photo != nil {
		name := filepath.Base(strings.TrimSpace(*photo))
		if name == "" || name == "." {
			photo = nil
		} else {
			photo = &name
		}
	}

	steak := model.Steak{
		ID:        uuid.New().String(),
		Owner:     owner,
		Type:      steakType,
		Cost:      cost,
		Weight:    weight,
		Photo:     photo,
		Timestamp: time.Now().UTC().Format(timestampLayout),
	}

	if err := s.repos.Steak.Create(&steak); err != nil {
		return nil, err
	}
	return &steak, nil
}

// ListSteaks 返回 owner 的全部记录，按时间倒序。
func (s *AppService) ListSteaks(owner string) ([]model.Steak, error) {
	steaks, err := s.repos.Steak.ListByOwner(owner)
	if err != nil {
		return nil, err
	}
	if steaks == nil {
		steaks = []model.Steak{}
	}
	return steaks, nil
}

// DeleteSteak 删除 owner 名下的指定记录。
// 记录不存在与归属他人统一返回 not_found，不泄露记录是否存在。
// 删除元数据成功即视为操作成功，照片文件清理尽力而为。
func (s *AppService) DeleteSteak(owner, id string) error {
	steak, err := s.repos.Steak.FindOwned(id, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("记录不存在")
		}
		return err
	}

	if err := s.repos.Steak.DeleteOwned(id, owner); err != nil {
		return err
	}

	if steak.Photo != nil {
		s.removePhotoFile(*steak.Photo)
	}
	return nil
}

// removePhotoFile 尽力删除上传目录下的照片文件，失败仅记录日志。
func (s *AppService) removePhotoFile(filename string) {
	fullPath, err := utils.SecureJoin(s.uploadDir, filepath.Base(filename))
	if err != nil {
		log.Printf("⚠️  照片路径校验失败，跳过清理: %v", err)
		return
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️  照片文件删除失败: %v, path: %s", err, fullPath)
	}
}
