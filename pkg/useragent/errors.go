package useragent

import "errors"

var (
	ErrInvalidTables  = errors.New("invalid detection tables")
	ErrReadingTables  = errors.New("failed to read detection tables")
	ErrEmptyTableName = errors.New("table entry has an empty name")
	ErrEmptyTableKey  = errors.New("table entry has an empty match key")
)
