package domain

import "time"

// RawRecord is a document as returned by the document store: its identifier
// plus whatever fields it happens to carry.
type RawRecord struct {
	ID     string
	Fields map[string]interface{}
}

// Project is the canonical card shown in the portfolio grid.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	TechStack   []string `json:"tech_stack"`
}

// Certificate is the canonical certificate tile.
type Certificate struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageRef string `json:"image_ref"`
}

// ProjectDetail is the richer record rendered on /projects/{id}.
type ProjectDetail struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	GithubLink       string   `json:"github_link"`
	TechStack        []string `json:"tech_stack"`
	Responsibilities []string `json:"responsibilities"`
}

// Collections is the result of one load cycle.
type Collections struct {
	Projects     []Project     `json:"projects"`
	Certificates []Certificate `json:"certificates"`
}

// Snapshot is the mirrored copy of a successful load.
type Snapshot struct {
	ID           string        `json:"id"`
	SavedAt      time.Time     `json:"saved_at"`
	Projects     []Project     `json:"projects"`
	Certificates []Certificate `json:"certificates"`
}

// ListKind names one of the two windowed lists.
type ListKind string

const (
	KindProjects     ListKind = "projects"
	KindCertificates ListKind = "certificates"
)

// Valid reports whether k names a known list.
func (k ListKind) Valid() bool {
	return k == KindProjects || k == KindCertificates
}
