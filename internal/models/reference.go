package models

// Reference is one bibliography entry on the References page.
type Reference struct {
	Authors string `json:"authors"`
	Year    string `json:"year"`
	Title   string `json:"title"`
	Journal string `json:"journal,omitempty"`
	Volume  string `json:"volume,omitempty"`
	Pages   string `json:"pages,omitempty"`
}
