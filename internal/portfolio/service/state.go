package service

import (
	"sync"
	"time"

	"github.com/portfolio-showcase/portfolio-api/internal/portfolio/domain"
)

// State is the process-local container for the last load cycle. It is
// mutated only through its named actions and read through View.
type State struct {
	mu sync.RWMutex

	projects     []domain.Project
	certificates []domain.Certificate
	loading      bool
	err          error
	loadedAt     time.Time
	expanded     map[domain.ListKind]bool
}

func NewState() *State {
	return &State{expanded: make(map[domain.ListKind]bool)}
}

// StartLoad marks a load as in flight and clears the previous error.
func (s *State) StartLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = nil
}

// LoadSucceeded replaces both lists.
func (s *State) LoadSucceeded(c domain.Collections, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = c.Projects
	s.certificates = c.Certificates
	s.loading = false
	s.err = nil
	s.loadedAt = at
}

// LoadFailed records err and leaves the previously loaded lists in place.
func (s *State) LoadFailed(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = err
}

// ToggleWindow flips the expanded flag of one list and returns the new value.
func (s *State) ToggleWindow(kind domain.ListKind) (bool, error) {
	if !kind.Valid() {
		return false, domain.ErrUnknownList
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expanded[kind] = !s.expanded[kind]
	return s.expanded[kind], nil
}

// ListView is the windowed, read-only rendering of one list.
type ListView[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`
	Threshold  int  `json:"threshold"`
	Expanded   bool `json:"expanded"`
	ShowToggle bool `json:"show_toggle"`
}

// View is a copy of the state suitable for presentation.
type View struct {
	Loading      bool                         `json:"loading"`
	Error        string                       `json:"error,omitempty"`
	LoadedAt     time.Time                    `json:"loaded_at"`
	Compact      bool                         `json:"compact"`
	Projects     ListView[domain.Project]     `json:"projects"`
	Certificates ListView[domain.Certificate] `json:"certificates"`
}

// View renders the current lists using the stored expanded flags.
func (s *State) View(compact bool) View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.render(compact, s.expanded[domain.KindProjects], s.expanded[domain.KindCertificates])
}

// ViewWith renders the current lists with caller-supplied expanded flags,
// leaving the stored flags untouched.
func (s *State) ViewWith(compact, projectsExpanded, certificatesExpanded bool) View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.render(compact, projectsExpanded, certificatesExpanded)
}

func (s *State) render(compact, projectsExpanded, certificatesExpanded bool) View {
	v := Render(domain.Collections{Projects: s.projects, Certificates: s.certificates}, compact, projectsExpanded, certificatesExpanded)
	v.Loading = s.loading
	v.LoadedAt = s.loadedAt
	if s.err != nil {
		v.Error = s.err.Error()
	}
	return v
}

// Render windows a freshly loaded pair of lists.
func Render(c domain.Collections, compact, projectsExpanded, certificatesExpanded bool) View {
	return View{
		Compact:      compact,
		Projects:     newListView(c.Projects, compact, projectsExpanded),
		Certificates: newListView(c.Certificates, compact, certificatesExpanded),
	}
}

func newListView[T any](items []T, compact, expanded bool) ListView[T] {
	visible := Window(items, compact, expanded)
	return ListView[T]{
		Items:      append(make([]T, 0, len(visible)), visible...),
		Total:      len(items),
		Threshold:  Threshold(compact),
		Expanded:   expanded,
		ShowToggle: ShowToggle(len(items), compact),
	}
}
