package service

import "errors"

// Sentinel errors the handlers translate into HTTP status codes.
var (
	ErrBookNotFound     = errors.New("book not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrNotInReadingList = errors.New("book not in reading list")
	ErrForbidden        = errors.New("cannot modify another user's data")
	ErrEmptyUpdate      = errors.New("no fields to update")
)
