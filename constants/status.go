package constants

// SessionStatus is the canonical status for rows in analysis_session.
type SessionStatus string

// Stable values (store these exact strings in DB).
const (
	SessionProcessing SessionStatus = "PROCESSING"
	SessionCompleted  SessionStatus = "COMPLETED"
	SessionFailed     SessionStatus = "FAILED"
)
