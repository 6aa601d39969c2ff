package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kelvinlyk2002/final-backend/internal/logic"
	"gorm.io/gorm"
)

// MediaHandler 项目图片处理器
type MediaHandler struct {
	mediaLogic *logic.MediaLogic
}

// NewMediaHandler 创建项目图片处理器
func NewMediaHandler(db *gorm.DB, mediaDir string) *MediaHandler {
	return &MediaHandler{
		mediaLogic: logic.NewMediaLogic(db, mediaDir),
	}
}

// GetMedia 按文件名返回已登记的项目图片
func (h *MediaHandler) GetMedia(c *gin.Context) {
	filename := c.Param("filename")

	path, err := h.mediaLogic.ResolveMediaFile(filename)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	c.File(path)
}
