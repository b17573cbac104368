package domain

// RunStatus is the lifecycle of a review run (session or revision).
// Transitions: pending -> processing -> completed|failed. The move to processing
// is a conditional update so concurrent triggers serialize on the row. Completed
// and failed are terminal; reprocessing resets to pending after deleting the old
// results.
type RunStatus string

const (
	RunStatusPending    RunStatus = "pending"
	RunStatusProcessing RunStatus = "processing"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusFailed     RunStatus = "failed"
)

// SettingGeminiAPIKey is the only settings key the service interprets. Other keys
// round-trip through the settings endpoints untouched.
const SettingGeminiAPIKey = "gemini_api_key"
