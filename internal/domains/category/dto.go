package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateRequest is the payload for POST /categories.
type CreateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255).Error("name must be 1-255 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, 500).Error("description must be at most 500 characters"),
		),
	)
}
