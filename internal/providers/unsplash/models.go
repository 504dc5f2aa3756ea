package unsplash

type SearchAPIResponse struct {
	Results    []Photo `json:"results"`
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
}

type Photo struct {
	ID             string     `json:"id"`
	URLs           PhotoURLs  `json:"urls"`
	User           PhotoUser  `json:"user"`
	Links          PhotoLinks `json:"links"`
	Description    string     `json:"description"`
	AltDescription string     `json:"alt_description"`
	Likes          int        `json:"likes"`
	Width          int        `json:"width"`
	Height         int        `json:"height"`
}

type PhotoURLs struct {
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Full    string `json:"full"`
}

type PhotoUser struct {
	Name     string     `json:"name"`
	Username string     `json:"username"`
	Links    PhotoLinks `json:"links"`
}

type PhotoLinks struct {
	HTML string `json:"html"`
}
