package domain

import (
	"time"

	"github.com/google/uuid"
)

// Section is a reusable named document-subsection definition, e.g. "Commercial
// Invoice" or "Export Permit".
type Section struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Description    string    `db:"description" json:"description"`
	ExampleContent string    `db:"example_content" json:"example_content"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Ruleset is an ordered list of sections with per-section review instructions.
type Ruleset struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	EntryCount  int       `db:"entry_count" json:"entry_count,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// RulesetEntry binds a section into a ruleset at a position. SequenceOrder is
// contiguous starting at 1 within a ruleset; the builder reassigns it on every save.
type RulesetEntry struct {
	ID             uuid.UUID `db:"id" json:"id"`
	RulesetID      uuid.UUID `db:"ruleset_id" json:"ruleset_id"`
	SectionID      uuid.UUID `db:"section_id" json:"section_id"`
	SequenceOrder  int       `db:"sequence_order" json:"sequence_order"`
	AIInstructions string    `db:"ai_instructions" json:"ai_instructions"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`

	// Resolved from the sections table on read.
	SectionName    string `db:"section_name" json:"section_name,omitempty"`
	Description    string `db:"description" json:"description,omitempty"`
	ExampleContent string `db:"example_content" json:"example_content,omitempty"`
}

// ReviewSession is one review run for a named document against a ruleset.
type ReviewSession struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	RulesetID    uuid.UUID  `db:"ruleset_id" json:"ruleset_id"`
	DocumentName string     `db:"document_name" json:"document_name"`
	Status       RunStatus  `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	CompletedAt  *time.Time `db:"completed_at" json:"completed_at"`

	// Resolved from the rulesets table on read.
	RulesetName string `db:"ruleset_name" json:"ruleset_name,omitempty"`
}

// Upload is one PDF uploaded for a section within a session. DocumentData holds
// the base64-encoded PDF bytes; at most one upload per section per session.
type Upload struct {
	ID           uuid.UUID `db:"id" json:"id"`
	SessionID    uuid.UUID `db:"session_id" json:"session_id"`
	SectionID    uuid.UUID `db:"section_id" json:"section_id"`
	DocumentData string    `db:"document_data" json:"document_data"`
	FileName     string    `db:"file_name" json:"file_name"`
	FileSize     int64     `db:"file_size" json:"file_size"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Revision is a numbered re-upload/re-review cycle attached to a session. It has
// its own upload set and its own status machine mirroring the session's.
type Revision struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	SessionID      uuid.UUID  `db:"session_id" json:"session_id"`
	RevisionNumber int        `db:"revision_number" json:"revision_number"`
	Status         RunStatus  `db:"status" json:"status"`
	Note           string     `db:"note" json:"note"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	CompletedAt    *time.Time `db:"completed_at" json:"completed_at"`
}

// RevisionDocument is one PDF uploaded for a section within a revision. The
// (revision_id, section_id) pair is an upsert key: resubmitting overwrites.
type RevisionDocument struct {
	ID           uuid.UUID `db:"id" json:"id"`
	RevisionID   uuid.UUID `db:"revision_id" json:"revision_id"`
	SectionID    uuid.UUID `db:"section_id" json:"section_id"`
	DocumentData string    `db:"document_data" json:"document_data"`
	FileName     string    `db:"file_name" json:"file_name"`
	FileSize     int64     `db:"file_size" json:"file_size"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ReviewResult is the persisted per-section feedback text from a run. RevisionID
// is nil for base-session runs. Rows are deleted and recreated on reprocessing.
type ReviewResult struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	SessionID     uuid.UUID  `db:"session_id" json:"session_id"`
	RevisionID    *uuid.UUID `db:"revision_id" json:"revision_id"`
	SectionID     uuid.UUID  `db:"section_id" json:"section_id"`
	SectionName   string     `db:"section_name" json:"section_name"`
	AIFeedback    string     `db:"ai_feedback" json:"ai_feedback"`
	SequenceOrder int        `db:"sequence_order" json:"sequence_order"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// Setting is a single key-value configuration row.
type Setting struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
