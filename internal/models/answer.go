package models

// Source is a single web reference retrieved for a question. The snippet is
// used only to build the grounding context; it is stripped before the source
// list is returned to the caller.
type Source struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"-"`
}

// Public returns the caller-facing form of the source (id, title, url only).
func (s Source) Public() Source {
	return Source{ID: s.ID, Title: s.Title, URL: s.URL}
}

// Bullet is one citation-bearing line within a section.
type Bullet struct {
	Text      string `json:"text"`
	Citations []int  `json:"citations"`
}

// Section groups bullets under one of the mode's fixed titles.
type Section struct {
	Title   string   `json:"title"`
	Bullets []Bullet `json:"bullets"`
}

// AskRequest is the JSON body for POST /api/ask.
type AskRequest struct {
	Question string `json:"question"`
	Mode     string `json:"mode"`
}

// AskResponse is the terminal artifact returned to the presentation shell.
// Answer is an HTML fragment; Sources carries only public fields.
type AskResponse struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources"`
	Mode    string   `json:"mode"`
}

// FeedbackRequest is the JSON body for POST /api/feedback.
type FeedbackRequest struct {
	Question string   `json:"question"`
	Mode     string   `json:"mode"`
	Answer   string   `json:"answer"`
	Sources  []Source `json:"sources"`
	Rating   string   `json:"rating"`
}
