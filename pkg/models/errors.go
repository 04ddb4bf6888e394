package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrValidation       = errors.New("invalid value")
)

// Category errors
var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrCategoryInUse         = errors.New("cannot delete category because it is associated with existing movements")
	ErrCategoryDoesNotExist  = errors.New("the referenced category does not exist")
)
