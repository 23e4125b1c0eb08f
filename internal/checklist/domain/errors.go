package domain

import "errors"

var (
	ErrTemplateNotFound = errors.New("checklist template not found")
	ErrItemNotFound     = errors.New("checklist item not found")
	ErrFieldNotFound    = errors.New("checklist field not found")
)
