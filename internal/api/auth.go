package api

import (
	"errors"                         // Error classification
	"net/http"                       // HTTP status codes
	"recipe_hub/internal/db"         // Database error helpers
	"recipe_hub/internal/domain"     // Importing domain models
	"recipe_hub/internal/middleware" // Session context accessors
	"recipe_hub/internal/session"    // Session manager
	"sync"                           // Lazy decoy hash

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// SignupRequest is the body of POST /signup. Pointers tell a missing key from an empty value.
type SignupRequest struct {
	Username *string `json:"username" binding:"required"` // Username must be provided
	Password *string `json:"password" binding:"required"` // Password must be provided
	ImageURL string  `json:"image_url"`                   // Optional avatar URL
	Bio      string  `json:"bio"`                         // Optional bio
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Username string `json:"username"` // Username
	Password string `json:"password"` // Plaintext password
}

// decoyHash is compared against when a login names an unknown user, so both
// failure paths spend the same bcrypt time.
var decoyHash = sync.OnceValue(func() domain.PasswordHash {
	var h domain.PasswordHash
	_ = h.SetPassword("decoy password")
	return h
})

// SignupHandler creates a user and logs them in
func SignupHandler(gdb *gorm.DB, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Missing key or malformed body
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{msgSignupFailed}})
			return
		}
		user := domain.User{
			Username: *req.Username, // Username as given
			ImageURL: req.ImageURL,  // Optional avatar
			Bio:      req.Bio,       // Optional bio
		}
		// Hash the password, then validate the whole user
		err := user.SetPassword(*req.Password)
		if err == nil {
			err = domain.ValidateUser(&user)
		}
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{msgSignupFailed}})
			return
		}
		// Insert and log the new user in atomically, rejecting taken usernames
		var sess *session.Session // Session issued inside the transaction
		err = gdb.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&domain.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
				return err // Return error to rollback
			}
			if count > 0 {
				return domain.ErrUsernameTaken // Return error to rollback
			}
			if err := tx.Create(&user).Error; err != nil {
				return err // Unique index still guards concurrent signups
			}
			var err error
			sess, err = sessions.Start(c, user.ID)
			return err // A session failure rolls the user back
		})
		if err != nil {
			if sess != nil {
				// Commit failed after the session was issued
				_ = sessions.End(c, sess)
			}
			if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrUsernameTaken) || db.IsDuplicateKey(err) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{msgSignupFailed}})
				return
			}
			logrus.WithFields(logrus.Fields{
				"username": user.Username, // Requested username
				"error":    err.Error(),   // Error message
			}).Error("Signup failed") // Log signup failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
			return
		}
		logrus.WithField("user_id", user.ID).Info("User signed up") // Log signup success
		c.JSON(http.StatusCreated, user.Public())
	}
}

// CheckSessionHandler returns the logged-in user
func CheckSessionHandler(gdb *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(middleware.UserIDKey) // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
			return
		}
		var user domain.User // Fetch user from database
		if err := gdb.WithContext(c.Request.Context()).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Session outlived its user
				c.JSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to load user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
			return
		}
		c.JSON(http.StatusOK, user.Public())
	}
}

// LoginHandler authenticates a user and starts a session
func LoginHandler(gdb *gorm.DB, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Malformed bodies get the same answer as bad credentials
			c.JSON(http.StatusUnauthorized, gin.H{"error": msgInvalidCredentials})
			return
		}
		var user domain.User // Fetch user from database
		err := gdb.WithContext(c.Request.Context()).Where("username = ?", req.Username).First(&user).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithField("error", err.Error()).Error("Failed to look up user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
			return
		}
		if err != nil {
			decoyHash().Authenticate(req.Password) // Spend the same time as a real check
			c.JSON(http.StatusUnauthorized, gin.H{"error": msgInvalidCredentials})
			return
		}
		// Compare provided password with stored hash
		if !user.Authenticate(req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msgInvalidCredentials})
			return
		}
		if _, err := sessions.Start(c, user.ID); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to start session")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
			return
		}
		logrus.WithField("user_id", user.ID).Info("User logged in") // Log login success
		c.JSON(http.StatusOK, user.Public())
	}
}

// LogoutHandler ends the caller's session
func LogoutHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.CurrentSession(c) // Session loaded by middleware
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
			return
		}
		if err := sessions.End(c, sess); err != nil {
			if session.IsNotFound(err) {
				// Expired or ended by a concurrent request
				c.JSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id": sess.UserID, // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to end session")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
			return
		}
		logrus.WithField("user_id", sess.UserID).Info("User logged out") // Log logout
		c.Status(http.StatusNoContent)
	}
}
