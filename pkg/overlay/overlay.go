// Package overlay tracks the client-asserted interaction state shown between
// refetches: liked/saved/favorited flags and the user's own rating. The
// overlay is never authoritative; Reconcile overwrites it wholesale from
// every Directory Service snapshot. Flags flip only after a toggle request
// succeeds, so a failed request leaves the overlay untouched.
package overlay

import (
	"sync"

	"github.com/devnest/cli/pkg/api"
)

// Kind names one interaction set on a project.
type Kind string

const (
	KindLike     Kind = "like"
	KindSave     Kind = "save"
	KindFavorite Kind = "favorite"
	KindRate     Kind = "rate"
)

// Overlay holds shadow interaction state for one view instance. A single
// client has no multi-writer contention, but toggles settle on goroutines
// driven by the HTTP client, so access is guarded anyway.
type Overlay struct {
	mu        sync.Mutex
	liked     map[string]bool
	saved     map[string]bool
	favorited map[string]bool
	myRating  map[string]int
	inflight  map[string]bool
}

// New creates an empty overlay.
func New() *Overlay {
	return &Overlay{
		liked:     make(map[string]bool),
		saved:     make(map[string]bool),
		favorited: make(map[string]bool),
		myRating:  make(map[string]int),
		inflight:  make(map[string]bool),
	}
}

// Reconcile overwrites the overlay from an authoritative snapshot. Server
// state always wins; client-asserted values are dropped, never merged.
func (o *Overlay) Reconcile(records []api.Project, userID string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.liked = make(map[string]bool, len(records))
	o.saved = make(map[string]bool, len(records))
	o.favorited = make(map[string]bool, len(records))
	o.myRating = make(map[string]int, len(records))

	for i := range records {
		p := &records[i]
		o.liked[p.ID] = p.HasLike(userID)
		o.saved[p.ID] = p.HasSave(userID)
		o.favorited[p.ID] = p.HasFavorite(userID)
		if stars := p.RatingBy(userID); stars > 0 {
			o.myRating[p.ID] = stars
		}
	}
}

// Liked reports the shadow liked-by-me flag for a project.
func (o *Overlay) Liked(projectID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.liked[projectID]
}

// Saved reports the shadow saved-by-me flag for a project.
func (o *Overlay) Saved(projectID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.saved[projectID]
}

// Favorited reports the shadow favorited-by-me flag for a project.
func (o *Overlay) Favorited(projectID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.favorited[projectID]
}

// MyRating returns the stars the user last submitted for a project, or 0.
func (o *Overlay) MyRating(projectID string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.myRating[projectID]
}

// Flip inverts a shadow membership flag after the server confirmed the
// toggle, and returns the new value.
func (o *Overlay) Flip(projectID string, kind Kind) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	m := o.setFor(kind)
	if m == nil {
		return false
	}
	m[projectID] = !m[projectID]
	return m[projectID]
}

// SetRating records the rating the server accepted.
func (o *Overlay) SetRating(projectID string, stars int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.myRating[projectID] = stars
}

// Begin marks a (projectID, kind) request as in flight. It returns false if
// one is already pending, so re-entrant triggers (a double-clicked toggle)
// are dropped instead of racing.
func (o *Overlay) Begin(projectID string, kind Kind) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	key := projectID + "/" + string(kind)
	if o.inflight[key] {
		return false
	}
	o.inflight[key] = true
	return true
}

// End marks a (projectID, kind) request as settled.
func (o *Overlay) End(projectID string, kind Kind) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.inflight, projectID+"/"+string(kind))
}

func (o *Overlay) setFor(kind Kind) map[string]bool {
	switch kind {
	case KindLike:
		return o.liked
	case KindSave:
		return o.saved
	case KindFavorite:
		return o.favorited
	}
	return nil
}
