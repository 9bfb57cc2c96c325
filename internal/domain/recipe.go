package domain

import "gorm.io/gorm" // GORM ORM library

// Recipe Model
type Recipe struct {
	ID                uint   `gorm:"primaryKey"`         // Primary key
	Title             string `gorm:"size:255;not null"`  // Recipe title
	Instructions      string `gorm:"type:text;not null"` // Cooking instructions
	MinutesToComplete *int   // Optional preparation time in minutes
	UserID            uint   `gorm:"index;not null"`    // Foreign key to the owning User
	User              *User  `gorm:"foreignKey:UserID"` // Owner, loaded with Preload
}

// BeforeCreate rejects invalid recipes on every insert path
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	return ValidateRecipe(r)
}

// RecipeResponse is the client view of a recipe with its owner embedded
type RecipeResponse struct {
	ID                uint       `json:"id"`                  // Recipe ID
	Title             string     `json:"title"`               // Recipe title
	Instructions      string     `json:"instructions"`        // Cooking instructions
	MinutesToComplete *int       `json:"minutes_to_complete"` // Minutes, null when unknown
	User              PublicUser `json:"user"`                // Owner public fields
}

// Response returns the client view of the recipe. The owner must be loaded.
func (r *Recipe) Response() RecipeResponse {
	resp := RecipeResponse{
		ID:                r.ID,
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
	}
	if r.User != nil {
		resp.User = r.User.Public()
	}
	return resp
}
