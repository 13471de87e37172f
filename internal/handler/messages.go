package handler

const (
	msgCredentialsRequired = "Username and password are required."
	msgInternalError       = "Internal server error."
)
