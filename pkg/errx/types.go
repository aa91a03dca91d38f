package errx

// Type categorizes errors across modules
type Type string

const (
	// TypeValidation for invalid input or preconditions
	TypeValidation Type = "VALIDATION"
	// TypeTimeout for deadline-exceeded failures
	TypeTimeout Type = "TIMEOUT"
	// TypeInternal for unexpected internal errors
	TypeInternal Type = "INTERNAL"
	// TypeExternal for failures in external collaborators
	TypeExternal Type = "EXTERNAL"
)
