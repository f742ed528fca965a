package domain

import "slices"

type Page string

const (
	PageRoom          Page = "room"
	PagePlaylistName  Page = "playlist-name"
	PagePlaylistColor Page = "playlist-color"
	PagePlaylistSongs Page = "playlist-songs"
	PageBgPicker      Page = "bg-picker"
	PageRadioPicker   Page = "radio-picker"
	PageFramePicker   Page = "frame-picker"
	PageShelfPicker   Page = "shelf-picker"
)

var pages = []Page{
	PageRoom,
	PagePlaylistName,
	PagePlaylistColor,
	PagePlaylistSongs,
	PageBgPicker,
	PageRadioPicker,
	PageFramePicker,
	PageShelfPicker,
}

// SanitizePage maps anything that is not a known page to the room page.
func SanitizePage(p string) Page {
	if slices.Contains(pages, Page(p)) {
		return Page(p)
	}

	return PageRoom
}
