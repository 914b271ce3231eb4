// Package briefs persists analyzed client briefs.
//
// A saved brief is a flat named record: the original text, its analysis and
// a creation timestamp, keyed by an opaque id. Store is the boundary the rest
// of the application talks to; SQLiteStore is the durable implementation and
// MemoryStore backs tests and ephemeral sessions.
package briefs

import (
	"errors"
	"time"

	"github.com/HendryAvila/briefcheck/internal/analyzer"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no brief has the requested id.
var ErrNotFound = errors.New("brief not found")

// SavedBrief is one persisted brief with its analysis.
type SavedBrief struct {
	ID        string                   `json:"id"`
	Title     string                   `json:"title"`
	Content   string                   `json:"content"`
	Analysis  analyzer.ProjectAnalysis `json:"analysis"`
	CreatedAt time.Time                `json:"createdAt"`
}

// Store is the persistence contract for saved briefs.
type Store interface {
	// Save inserts the brief or replaces the one with the same id.
	// The saved brief becomes the newest entry.
	Save(b SavedBrief) error
	// List returns every brief, newest first.
	List() ([]SavedBrief, error)
	Get(id string) (*SavedBrief, error)
	Delete(id string) error
	// Search matches query words against title and content.
	Search(query string, limit int) ([]SavedBrief, error)
}

// NewID returns a time-ordered unique id (UUID v7, v4 as fallback).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}

// DefaultTitle is the title used when the caller does not supply one.
func DefaultTitle(now time.Time) string {
	return "Brief " + now.Format("02/01/2006")
}

// NewSavedBrief builds a record ready to Save. An empty title becomes
// DefaultTitle(now).
func NewSavedBrief(title, content string, analysis analyzer.ProjectAnalysis, now time.Time) SavedBrief {
	if title == "" {
		title = DefaultTitle(now)
	}
	return SavedBrief{
		ID:        NewID(),
		Title:     title,
		Content:   content,
		Analysis:  analysis,
		CreatedAt: now.UTC(),
	}
}
