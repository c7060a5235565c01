package api

// Rating is one user's star rating for a project. A user holds at most one
// active rating; the Directory Service replaces rather than appends on
// re-rating.
type Rating struct {
	UserID string `json:"userId"`
	Stars  int    `json:"stars"`
}

// Comment is one entry in a project's append-only comment list
type Comment struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

// Project is the Directory Service's record for a shared project. The client
// holds a read-only copy per fetch; every mutation goes through the service.
type Project struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	GithubLink  string    `json:"githubLink"`
	LiveDemo    string    `json:"liveDemo,omitempty"`
	UserName    string    `json:"userName"`
	OwnerID     string    `json:"ownerId,omitempty"`
	Likes       []string  `json:"likes"`
	Saves       []string  `json:"saves"`
	Ratings     []Rating  `json:"ratings"`
	FavoritedBy []string  `json:"favoritedBy"`
	Comments    []Comment `json:"comments"`
}

// HasLike reports whether userID is in the project's like set
func (p *Project) HasLike(userID string) bool {
	return containsID(p.Likes, userID)
}

// HasSave reports whether userID is in the project's save set
func (p *Project) HasSave(userID string) bool {
	return containsID(p.Saves, userID)
}

// HasFavorite reports whether userID is in the project's favorite set
func (p *Project) HasFavorite(userID string) bool {
	return containsID(p.FavoritedBy, userID)
}

// RatingBy returns the stars userID gave this project, or 0 if unrated
func (p *Project) RatingBy(userID string) int {
	for _, r := range p.Ratings {
		if r.UserID == userID {
			return r.Stars
		}
	}
	return 0
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// CreateProjectRequest is the body for posting a new project
type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	GithubLink  string   `json:"githubLink"`
	LiveDemo    string   `json:"liveDemo,omitempty"`
	UserName    string   `json:"userName"`
}

// UpdateProjectRequest is the body for editing an existing project
type UpdateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	GithubLink  string   `json:"githubLink"`
	LiveDemo    string   `json:"liveDemo,omitempty"`
}

// ToggleRequest is the body for membership flips (like/save/favorite)
type ToggleRequest struct {
	UserID string `json:"userId"`
}

// RateRequest is the body for submitting a star rating
type RateRequest struct {
	UserID string `json:"userId"`
	Stars  int    `json:"stars"`
}

// CommentRequest is the body for submitting a comment
type CommentRequest struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}
