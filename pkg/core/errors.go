package core

import "errors"

// Common errors.
var (
	ErrLessonNotFound = errors.New("lesson not found")
	ErrNoMatch        = errors.New("no lessons match pattern")
)
