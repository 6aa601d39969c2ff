package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kelvinlyk2002/final-backend/internal/logic"
	"gorm.io/gorm"
)

// CommentHandler 评论处理器
type CommentHandler struct {
	commentLogic *logic.CommentLogic
}

// NewCommentHandler 创建评论处理器
func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{
		commentLogic: logic.NewCommentLogic(db),
	}
}

// AddProjectComment 为项目添加评论
func (h *CommentHandler) AddProjectComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.commentLogic.CreateComment(req.ProjectAddress, req.User, req.Details)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, newCommentData(*comment))
}

// UpdateComment 按ID部分更新评论
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid comment id")
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Details != nil {
		updates["details"] = *req.Details
	}

	comment, err := h.commentLogic.UpdateComment(id, updates)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, newCommentData(*comment))
}

// DeleteComment 按ID删除评论
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid comment id")
		return
	}

	if err := h.commentLogic.DeleteComment(id); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
