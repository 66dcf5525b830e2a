package service

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"steak-log-server/internal/common"
	"steak-log-server/internal/consts"
	"steak-log-server/internal/utils"

	"github.com/google/uuid"
)

// StoreUpload 保存上传的照片并返回生成的唯一文件名。
// 文件名为 uuid + 原扩展名（无扩展名时用默认扩展名），
// 该文件名是后续引用这份文件的唯一句柄。
func (s *AppService) StoreUpload(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", common.NewValidationError("未选择文件")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = consts.DefaultUploadExt
	}
	newFilename := uuid.New().String() + ext

	if err := os.MkdirAll(s.uploadDir, 0755); err != nil {
		return "", err
	}

	dst, err := utils.SecureJoin(s.uploadDir, newFilename)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer func() { _ = src.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer func() { _ = out.Close() }()

	if _, err = io.Copy(out, src); err != nil {
		_ = os.Remove(dst)
		return "", err
	}

	return newFilename, nil
}
