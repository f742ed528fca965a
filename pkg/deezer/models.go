package deezer

type Album struct {
	Title       string `json:"title"`
	CoverSmall  string `json:"cover_small"`
	CoverMedium string `json:"cover_medium"`
}

type Artist struct {
	Name string `json:"name"`
}

type Track struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Preview string `json:"preview"`
	Artist  Artist `json:"artist"`
	Album   Album  `json:"album"`
}

// Cover returns the medium album cover, falling back to the small one.
func (t Track) Cover() string {
	if t.Album.CoverMedium != "" {
		return t.Album.CoverMedium
	}

	return t.Album.CoverSmall
}

type searchResponse struct {
	Data  []Track `json:"data"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}
