package api

import (
	"errors"                         // Error classification
	"net/http"                       // HTTP status codes
	"recipe_hub/internal/db"         // Database error helpers
	"recipe_hub/internal/domain"     // Importing domain models
	"recipe_hub/internal/middleware" // Session context accessors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// errOwnerMissing means the session user no longer exists
var errOwnerMissing = errors.New("recipe owner not found")

// CreateRecipeRequest is the body of POST /recipes. All three keys must be present.
type CreateRecipeRequest struct {
	Title             *string `json:"title" binding:"required"`               // Recipe title
	Instructions      *string `json:"instructions" binding:"required"`        // Cooking instructions
	MinutesToComplete *int    `json:"minutes_to_complete" binding:"required"` // Preparation time
}

// ListRecipesHandler returns every recipe with its owner
func ListRecipesHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var recipes []domain.Recipe // Slice to hold recipes
		// Preload owners, no filtering or pagination
		if err := gdb.WithContext(c.Request.Context()).Preload("User").Order("id").Find(&recipes).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to fetch recipes")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
			return
		}
		resp := make([]domain.RecipeResponse, len(recipes))
		// Map recipes to response format
		for i := range recipes {
			resp[i] = recipes[i].Response()
		}
		c.JSON(http.StatusOK, resp)
	}
}

// CreateRecipeHandler creates a recipe owned by the logged-in user
func CreateRecipeHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(middleware.UserIDKey).(uint) // Set by the session middleware
		var req CreateRecipeRequest                      // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Missing key or malformed body
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{msgRecipeFailed}})
			return
		}
		recipe := domain.Recipe{
			Title:             *req.Title,            // Recipe title
			Instructions:      *req.Instructions,     // Cooking instructions
			MinutesToComplete: req.MinutesToComplete, // Preparation time
			UserID:            userID,                // Owner is always the caller
		}
		// Validate before touching the database
		if err := domain.ValidateRecipe(&recipe); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{msgRecipeFailed}})
			return
		}
		var owner domain.User // Owner, embedded in the response
		err := gdb.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&owner, userID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errOwnerMissing // Return error to rollback
				}
				return err // Return error to rollback
			}
			return tx.Create(&recipe).Error // Commit on success
		})
		if err != nil {
			if errors.Is(err, domain.ErrValidation) || errors.Is(err, errOwnerMissing) || db.IsForeignKeyViolation(err) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{msgRecipeFailed}})
				return
			}
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Owner user ID
				"error":   err.Error(), // Error message
			}).Error("Recipe creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
			return
		}
		recipe.User = &owner // Attach after insert so GORM does not upsert the owner
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"user_id":   userID,    // Owner user ID
			"recipe_id": recipe.ID, // New recipe ID
		}).Info("Recipe created")
		c.JSON(http.StatusCreated, recipe.Response())
	}
}
