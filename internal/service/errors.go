package service

import "errors"

var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrIngredientExists   = errors.New("ingredient already exists")
	ErrTitleRequired      = errors.New("recipe title is required")
	ErrNameRequired       = errors.New("ingredient name is required")
	ErrInvalidUnitType    = errors.New("unit_type must be volume, count or both")
	ErrInvalidImageType   = errors.New("image must be png, jpg, jpeg, gif or webp")
	ErrImageStoreDisabled = errors.New("image storage is not configured")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
