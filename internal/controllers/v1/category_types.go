package v1

import (
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name  string `json:"name" example:"Groceries" default:""` // Name of the category, unique per user
	Color string `json:"color" example:"#ff6b6b" default:""`  // Hex color used when the category is displayed
}

// model returns the database resource for the API representation
func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID: userID,
		Name:   editable.Name,
		Color:  editable.Color,
	}
}

// Category is the representation of a Category in API v1.
type Category struct {
	models.DefaultModel
	CategoryEditable
}

// newCategory returns the API v1 representation of the resource
func newCategory(model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:  model.Name,
			Color: model.Color,
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                      // List of Categories
	Error *string    `json:"error" example:"there is no category matching your query"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                      // Data for the Category
	Error *string   `json:"error" example:"there is no category matching your query"` // The error, if any occurred
}
