package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrSectionNotFound   = errors.New("section not found")
	ErrRulesetNotFound   = errors.New("ruleset not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrRevisionNotFound  = errors.New("revision not found")
	ErrAlreadyProcessing = errors.New("review already in progress or finished")
	ErrMissingAPIKey     = errors.New("gemini api key not configured")
	ErrDuplicateUpload   = errors.New("section already has an upload for this session")
	ErrNoUploads         = errors.New("at least one upload is required")
	ErrQueueFull         = errors.New("review queue is full")
)
