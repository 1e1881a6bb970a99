package norm

import (
	"strings"
	"time"
)

// Lifecycle states of a norm.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
	StatusArchived  = "archived"
)

// Norm is a versioned governance document. Area is a loose reference by name;
// a norm whose area no longer exists in the catalog stays readable.
type Norm struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Title       string    `json:"title"`
	Code        string    `json:"code"`
	Version     string    `json:"version"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	FileURL     string    `gorm:"column:file_url" json:"fileUrl"`
	Area        string    `json:"area"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CreatedBy   string    `json:"createdBy"`
}

func (Norm) TableName() string {
	return "documents"
}

// normalize applies wire-record defaults after a remote read: missing tags
// become an empty list, a missing status means published, and a missing
// timestamp is filled with the current time.
func (n *Norm) normalize() {
	if n.Tags == nil {
		n.Tags = []string{}
	}
	if n.Status == "" {
		n.Status = StatusPublished
	}
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = time.Now().UTC()
	}
}

// MatchesQuery reports whether the norm matches a free-text filter over
// title, code, tags, and description.
func (n *Norm) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Code), q) ||
		strings.Contains(strings.ToLower(n.Description), q) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
