package community

import "errors"

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrGroupNotFound = errors.New("group not found")
)
