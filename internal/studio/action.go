package studio

// ActionType identifies one kind of flow step. The set is closed: the
// validator and estimator switch exhaustively over it, so a new kind must be
// handled in both before it can be authored.
type ActionType string

const (
	ActionPlayGenre       ActionType = "play_genre"
	ActionPlayContent     ActionType = "play_content"
	ActionPlayShow        ActionType = "play_show"
	ActionPlayCommercials ActionType = "play_commercials"
	ActionWait            ActionType = "wait"
	ActionSetVolume       ActionType = "set_volume"
	ActionAnnouncement    ActionType = "announcement"
)

// ActionTypes lists every known action type, in menu order.
var ActionTypes = []ActionType{
	ActionPlayGenre,
	ActionPlayContent,
	ActionPlayShow,
	ActionPlayCommercials,
	ActionWait,
	ActionSetVolume,
	ActionAnnouncement,
}

// Known reports whether t is a recognized action type.
func (t ActionType) Known() bool {
	switch t {
	case ActionPlayGenre, ActionPlayContent, ActionPlayShow,
		ActionPlayCommercials, ActionWait, ActionSetVolume, ActionAnnouncement:
		return true
	}
	return false
}

// ActionParams holds the type-specific fields of an action. Numeric fields
// are pointers so "not set" is distinguishable from zero.
type ActionParams struct {
	Genre            string `json:"genre,omitempty"`
	ContentID        string `json:"content_id,omitempty"`
	ContentTitle     string `json:"content_title,omitempty"`
	DurationMinutes  *int   `json:"duration_minutes,omitempty"`
	SongCount        *int   `json:"song_count,omitempty"`
	CommercialCount  *int   `json:"commercial_count,omitempty"`
	VolumeLevel      *int   `json:"volume_level,omitempty"`
	AnnouncementText string `json:"announcement_text,omitempty"`
}

// WireAction is the backend-facing shape of a flow step: the action type plus
// its parameters, with nothing editor-local attached.
type WireAction struct {
	Type ActionType `json:"action_type"`
	ActionParams
}

// Action is one step of a flow draft as held by the editor. ID is assigned
// client-side for reordering and removal and is never persisted. Valid and
// Errors are derived; every mutation path recomputes them via Validate.
type Action struct {
	ID string `json:"id"`
	WireAction
	Valid  bool     `json:"is_valid"`
	Errors []string `json:"validation_errors,omitempty"`
}

// ActionPatch is a partial update to an action. Nil fields are left
// untouched, mirroring how the editor submits only the fields it changed.
type ActionPatch struct {
	Type             *ActionType
	Genre            *string
	ContentID        *string
	ContentTitle     *string
	DurationMinutes  *int
	SongCount        *int
	CommercialCount  *int
	VolumeLevel      *int
	AnnouncementText *string
}

func (a *Action) apply(p ActionPatch) {
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Genre != nil {
		a.Genre = *p.Genre
	}
	if p.ContentID != nil {
		a.ContentID = *p.ContentID
	}
	if p.ContentTitle != nil {
		a.ContentTitle = *p.ContentTitle
	}
	if p.DurationMinutes != nil {
		a.DurationMinutes = p.DurationMinutes
	}
	if p.SongCount != nil {
		a.SongCount = p.SongCount
	}
	if p.CommercialCount != nil {
		a.CommercialCount = p.CommercialCount
	}
	if p.VolumeLevel != nil {
		a.VolumeLevel = p.VolumeLevel
	}
	if p.AnnouncementText != nil {
		a.AnnouncementText = *p.AnnouncementText
	}
}

// revalidate recomputes the derived validity fields from the current params.
func (a *Action) revalidate() {
	a.Valid, a.Errors = Validate(a.WireAction)
}

// Int returns a pointer to v, for filling optional numeric params.
func Int(v int) *int { return &v }
