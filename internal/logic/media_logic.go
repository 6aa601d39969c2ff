package logic

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kelvinlyk2002/final-backend/internal/logger"
	"github.com/kelvinlyk2002/final-backend/internal/model"
	"gorm.io/gorm"
)

// 上传目录（相对媒体根目录）
const uploadSubdir = "user_upload"

// 允许的图片扩展名
var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// MediaLogic 项目图片业务逻辑
type MediaLogic struct {
	db       *gorm.DB
	mediaDir string
}

// NewMediaLogic 创建项目图片业务逻辑
func NewMediaLogic(db *gorm.DB, mediaDir string) *MediaLogic {
	return &MediaLogic{db: db, mediaDir: mediaDir}
}

// SaveProjectImages 保存项目图片，单张校验失败时静默跳过，项目本身不受影响
func (m *MediaLogic) SaveProjectImages(projectId int64, images []*multipart.FileHeader) int {
	saved := 0
	for _, image := range images {
		if err := m.saveImage(projectId, image); err != nil {
			logger.Warn("Skipping image %s for project %d: %v", image.Filename, projectId, err)
			continue
		}
		saved++
	}
	return saved
}

// saveImage 校验并落盘单张图片，写入对应的媒体行
func (m *MediaLogic) saveImage(projectId int64, image *multipart.FileHeader) error {
	if image.Size == 0 {
		return errors.New("empty file")
	}

	ext := strings.ToLower(filepath.Ext(image.Filename))
	if !allowedImageExts[ext] {
		return errors.New("unsupported image type " + ext)
	}

	filename := uuid.NewString() + ext
	relPath := filepath.ToSlash(filepath.Join(uploadSubdir, filename))
	dstDir := filepath.Join(m.mediaDir, uploadSubdir)
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return err
	}

	if err := writeMultipartFile(image, filepath.Join(dstDir, filename)); err != nil {
		return err
	}

	media := model.MediaModel{
		ProjectId: projectId,
		Image:     relPath,
	}
	return m.db.Create(&media).Error
}

// ResolveMediaFile 按文件名定位已登记的图片，返回磁盘绝对路径
func (m *MediaLogic) ResolveMediaFile(filename string) (string, error) {
	// 只接受纯文件名，拒绝路径穿越
	if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		return "", ErrMediaNotFound
	}

	relPath := uploadSubdir + "/" + filename

	var media model.MediaModel
	if err := m.db.Where("image = ?", relPath).First(&media).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrMediaNotFound
		}
		return "", err
	}

	fullPath := filepath.Join(m.mediaDir, uploadSubdir, filename)
	if _, err := os.Stat(fullPath); err != nil {
		return "", ErrMediaNotFound
	}
	return fullPath, nil
}

// writeMultipartFile 将上传文件内容写入目标路径
func writeMultipartFile(image *multipart.FileHeader, dst string) error {
	src, err := image.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(src); err != nil {
		return err
	}
	return nil
}
