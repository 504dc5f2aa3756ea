package photos

import "skycast/internal/providers/unsplash"

// CandidateURLs carries the provider's renditions of one photo.
type CandidateURLs struct {
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Full    string `json:"full"`
}

// Photographer is the attribution target required by the photo provider's
// guidelines.
type Photographer struct {
	Name       string `json:"name"`
	ProfileURL string `json:"profileUrl"`
}

// Candidate is one photo returned by a search, not yet selected. Missing
// optional fields (likes, dimensions) stay zero and contribute zero score.
type Candidate struct {
	ID             string        `json:"id"`
	URLs           CandidateURLs `json:"urls"`
	Photographer   Photographer  `json:"photographer"`
	Description    string        `json:"description,omitempty"`
	AltDescription string        `json:"altDescription,omitempty"`
	Likes          int           `json:"likes,omitempty"`
	WidthPx        int           `json:"widthPx,omitempty"`
	HeightPx       int           `json:"heightPx,omitempty"`
}

// Result is the merged, annotated outcome of one city search.
type Result struct {
	City       string      `json:"city"`
	Candidates []Candidate `json:"results"`
	Total      int         `json:"total"`
	Best       Candidate   `json:"best"`
}

func newCandidate(p unsplash.Photo) Candidate {
	return Candidate{
		ID: p.ID,
		URLs: CandidateURLs{
			Regular: p.URLs.Regular,
			Small:   p.URLs.Small,
			Full:    p.URLs.Full,
		},
		Photographer: Photographer{
			Name:       p.User.Name,
			ProfileURL: p.User.Links.HTML,
		},
		Description:    p.Description,
		AltDescription: p.AltDescription,
		Likes:          p.Likes,
		WidthPx:        p.Width,
		HeightPx:       p.Height,
	}
}
