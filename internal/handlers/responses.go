package handlers

// ErrorResponse is the error payload shared by every failing endpoint.
// Error carries the raw validation detail and is omitted otherwise.
type ErrorResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

const (
	postNotFoundMessage    = "Post not found."
	commentNotFoundMessage = "Comment not found."
	postSaveFailedMessage  = "Unable to save post data"
	commentSaveFailed      = "Unable to save comment data"
	internalErrorMessage   = "Something went wrong, please contact administrator"
	notPostAuthorMessage   = "You are not authorized to delete this post"
	invalidLoginMessage    = "Invalid username/password"
)

func notFoundResponse(message string) ErrorResponse {
	return ErrorResponse{Title: "Error", Message: message}
}

func validationErrorResponse(message string, err error) ErrorResponse {
	return ErrorResponse{Title: "Error", Message: message, Error: err.Error()}
}
