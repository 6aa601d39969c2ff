package logic

import (
	"errors"
)

// 资源未找到类错误，handler 层映射为 404
var (
	ErrProjectNotFound  = errors.New("Project not found")
	ErrUserNotFound     = errors.New("User is not a fundraiser or contributor")
	ErrCurrencyNotFound = errors.New("Currency not found")
	ErrCommentNotFound  = errors.New("Comment not found")
	ErrProposalNotFound = errors.New("Proposal not found")
	ErrMediaNotFound    = errors.New("Image not found")
)

// 请求内容非法类错误，handler 层映射为 400
var (
	ErrUnknownSearchField = errors.New("Unknown search field")
	ErrEmptyComment       = errors.New("Empty comments not allowed")
	ErrInvalidAmount      = errors.New("Invalid token amount")
	ErrNothingToUpdate    = errors.New("No fields to update")
)

// IsNotFound 是否为未找到类错误
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProjectNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCurrencyNotFound) ||
		errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrProposalNotFound) ||
		errors.Is(err, ErrMediaNotFound)
}
