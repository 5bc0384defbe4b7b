package constants

const (
	StatusOK        = "ok"
	StatusQueued    = "queued"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// DestroyResultOK is the provider's "result" value for a successful delete.
const DestroyResultOK = "ok"

// LocalURLPrefix is the public URL prefix of the local fallback tree.
const LocalURLPrefix = "/uploads/"
