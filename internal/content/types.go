package content

import "time"

// Kind classifies a library item.
type Kind string

const (
	KindSong         Kind = "song"
	KindJingle       Kind = "jingle"
	KindShow         Kind = "show"
	KindCommercial   Kind = "commercial"
	KindAnnouncement Kind = "announcement"
)

// Known reports whether k is a recognized content kind.
func (k Kind) Known() bool {
	switch k {
	case KindSong, KindJingle, KindShow, KindCommercial, KindAnnouncement:
		return true
	}
	return false
}

// Item is one entry of the station's content library. Only metadata lives
// here; the audio itself is stored and synced elsewhere.
type Item struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	TitleHe         string    `json:"title_he,omitempty"`
	Kind            Kind      `json:"kind"`
	Genre           string    `json:"genre,omitempty"`
	Artist          string    `json:"artist,omitempty"`
	DurationSeconds int       `json:"duration_seconds"`
	FilePath        string    `json:"file_path,omitempty"`
	Tags            []string  `json:"tags"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	Query string
	Kind  Kind
	Genre string
}
