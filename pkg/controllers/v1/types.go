package v1

import (
	taya_uuid "github.com/taya-finance/backend/internal/uuid"
)

type URIID struct {
	ID taya_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type URICategoryID struct {
	ID uint `uri:"id" binding:"required" minimum:"1"` // The ID of the category
}

type URICategoryName struct {
	Name string `uri:"name" binding:"required"` // The name of the category, compared case-insensitively
}
