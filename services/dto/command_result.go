package dto

// CommandResult is the uniform outcome of a mutating catalog operation.
// Business-rule violations surface here, never as errors; on failure the ID
// is zero and the message carries the reason.
type CommandResult struct {
	IsSuccessful bool   `json:"is_successful"`
	Message      string `json:"message"`
	ID           uint   `json:"id"`
}

// Success builds a successful result carrying the affected entity's identifier.
func Success(message string, id uint) *CommandResult {
	return &CommandResult{
		IsSuccessful: true,
		Message:      message,
		ID:           id,
	}
}

// Failure builds a failed result carrying the human-readable reason.
func Failure(message string) *CommandResult {
	return &CommandResult{
		IsSuccessful: false,
		Message:      message,
	}
}
