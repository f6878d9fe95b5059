package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrManagerNotFound  = errors.New("reporting manager not found")
	ErrManagerRole      = errors.New("reporting manager must have the manager role")
)
