package gradebook

import "errors"

var (
	ErrEmptyColumnName  = errors.New("column name is empty")
	ErrDuplicateColumn  = errors.New("column name already exists")
	ErrColumnNotFound   = errors.New("column not found")
	ErrEmptyStudentName = errors.New("student name is empty")
)
