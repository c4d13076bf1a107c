// Package store persists saved word clouds.
//
// Three backends implement [Store]:
//   - [MemoryStore]: in-process map for development and tests
//   - [FileStore]: one JSON file per cloud, used by the CLI
//   - [MongoStore]: the "clouds" collection of a MongoDB database, used by
//     the HTTP server
//
// Clouds are identified by a random UUID assigned by [New].
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/wordstorm/pkg/wordcloud"
)

// ErrNotFound is returned when a cloud does not exist.
var ErrNotFound = errors.New("cloud not found")

// DefaultListLimit caps List when no limit is given.
const DefaultListLimit = 50

// Cloud is a saved word cloud: the input words and the computed layout.
type Cloud struct {
	ID        string           `json:"id" bson:"_id"`
	Title     string           `json:"title,omitempty" bson:"title,omitempty"`
	Words     []wordcloud.Word `json:"words" bson:"words"`
	Layout    wordcloud.Layout `json:"layout" bson:"layout"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
}

// New creates a cloud with a fresh ID and creation time.
func New(title string, words []wordcloud.Word, layout wordcloud.Layout) *Cloud {
	return &Cloud{
		ID:        uuid.NewString(),
		Title:     title,
		Words:     words,
		Layout:    layout,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

// Summary is a cloud without its words and layout, as returned by List.
type Summary struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title,omitempty" bson:"title,omitempty"`
	Words     int       `json:"words" bson:"-"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Summarize returns the list view of c.
func (c *Cloud) Summarize() Summary {
	return Summary{ID: c.ID, Title: c.Title, Words: len(c.Layout.Words), CreatedAt: c.CreatedAt}
}

// Store is the interface for cloud storage backends.
type Store interface {
	// Save inserts or replaces a cloud.
	Save(ctx context.Context, c *Cloud) error

	// Get retrieves a cloud by ID. Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*Cloud, error)

	// List returns up to limit clouds, newest first. A limit <= 0 means
	// DefaultListLimit.
	List(ctx context.Context, limit int) ([]Summary, error)

	// Delete removes a cloud. Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// ValidID reports whether id has the UUID form assigned by New.
func ValidID(id string) bool {
	return uuid.Validate(id) == nil
}

func listLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
