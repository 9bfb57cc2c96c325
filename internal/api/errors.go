package api

// Client-facing error messages. Internals are logged, never returned.
const (
	msgSignupFailed       = "Invalid data or username already taken."
	msgRecipeFailed       = "Recipe creation failed. Make sure all fields are valid."
	msgInvalidCredentials = "Invalid username or password."
	msgUnauthorized       = "Unauthorized"
	msgInternal           = "Internal server error"
)
