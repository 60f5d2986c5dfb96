package studio

// secondsPerSong is the pacing heuristic for genre blocks sized by song count.
const secondsPerSong = 210

// EstimateSeconds maps an action to an estimated playback duration in
// seconds. The estimate drives simulation pacing only; it is never persisted
// and is not authoritative for real playback.
func EstimateSeconds(a WireAction) int {
	switch a.Type {
	case ActionPlayGenre:
		if a.DurationMinutes != nil {
			return *a.DurationMinutes * 60
		}
		if a.SongCount != nil {
			return *a.SongCount * secondsPerSong
		}
		return 0
	case ActionPlayContent, ActionPlayShow:
		return 180
	case ActionPlayCommercials:
		count := 1
		if a.CommercialCount != nil {
			count = *a.CommercialCount
		}
		return count * 30
	case ActionWait:
		if a.DurationMinutes != nil {
			return *a.DurationMinutes * 60
		}
		return 0
	case ActionSetVolume:
		return 0
	case ActionAnnouncement:
		// Roughly ten seconds of speech per hundred characters, never
		// shorter than a station-ID beat.
		secs := len(a.AnnouncementText) / 10
		if secs < 10 {
			secs = 10
		}
		return secs
	default:
		return 0
	}
}
