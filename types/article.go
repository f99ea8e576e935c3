package types

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Article is the title and body text extracted from a single news page
type Article struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	FetchedAt time.Time `json:"fetched_at"`
}

// ID returns a short, stable identifier derived from the article URL
func (a *Article) ID() string {
	return GenerateID(a.URL)
}

// VideoFilename is the upload name of the rendered video: the title with
// spaces replaced by underscores, plus the .mp4 extension.
func (a *Article) VideoFilename() string {
	return strings.ReplaceAll(a.Title, " ", "_") + ".mp4"
}

// GenerateID creates a unique ID from URL
func GenerateID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])[:16]
}
