package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/user/sinema/internal/catalog"
	"github.com/user/sinema/internal/model"
	"go.uber.org/zap"
)

var (
	// ErrUnsavedRecord 记录还没保存（没有 ID）就尝试上传，本地直接拒绝
	ErrUnsavedRecord = errors.New("movie must be saved before uploading media")
	// ErrNoFile 没有选择文件
	ErrNoFile = errors.New("no file selected")
)

// Uploader 单文件上传。文件选择和拖拽走同一个入口。
type Uploader struct {
	catalog Catalog
	logger  *zap.Logger

	// Refresh 上传成功后调用
	Refresh RefreshFunc
}

// NewUploader 创建上传控制器
func NewUploader(cat Catalog, logger *zap.Logger) *Uploader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Uploader{catalog: cat, logger: logger.Named("uploader")}
}

// Upload 把文件作为 multipart 提交到某条记录的某个槽位。
// 记录没有 ID 时不发任何请求，返回 ErrUnsavedRecord。
func (u *Uploader) Upload(ctx context.Context, token, movieID string, slot catalog.Slot, filename string, content io.Reader) (*model.Movie, error) {
	if movieID == "" {
		return nil, ErrUnsavedRecord
	}
	if content == nil || filename == "" {
		return nil, ErrNoFile
	}

	updated, err := u.catalog.Upload(ctx, token, movieID, slot, filename, content)
	if err != nil {
		u.logger.Warn("上传失败",
			zap.String("id", movieID),
			zap.String("slot", string(slot)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("上传 %s 失败: %w", slot, err)
	}

	u.logger.Info("上传完成", zap.String("id", movieID), zap.String("slot", string(slot)), zap.String("file", filename))
	if u.Refresh != nil {
		u.Refresh(ctx)
	}
	return updated, nil
}
