package studio

import (
	"fmt"
	"strings"
)

// Validate checks a single action's required fields and returns whether it is
// playable along with human-readable reasons when it is not. It is pure and
// total over the action-type enumeration; an unrecognized type is itself a
// validation error rather than a silent pass.
func Validate(a WireAction) (bool, []string) {
	var errs []string

	switch a.Type {
	case ActionPlayGenre:
		if a.Genre == "" {
			errs = append(errs, "genre is required")
		}
		if a.DurationMinutes == nil && a.SongCount == nil {
			errs = append(errs, "either duration or song count is required")
		}
	case ActionPlayContent, ActionPlayShow:
		if a.ContentID == "" && a.ContentTitle == "" {
			errs = append(errs, "content selection is required")
		}
	case ActionPlayCommercials:
		if a.CommercialCount == nil || *a.CommercialCount < 1 {
			errs = append(errs, "commercial count must be at least 1")
		}
	case ActionWait:
		if a.DurationMinutes == nil || *a.DurationMinutes < 1 {
			errs = append(errs, "wait duration must be at least 1 minute")
		}
	case ActionSetVolume:
		if a.VolumeLevel == nil || *a.VolumeLevel < 0 || *a.VolumeLevel > 100 {
			errs = append(errs, "volume level must be between 0 and 100")
		}
	case ActionAnnouncement:
		if strings.TrimSpace(a.AnnouncementText) == "" {
			errs = append(errs, "announcement text is required")
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown action type: %s", a.Type))
	}

	return len(errs) == 0, errs
}
