package storage

import "errors"

var (
	ErrCourierNotFound = errors.New("courier details not found")
	ErrCourierExists   = errors.New("courier details already exist for sales order")
)
