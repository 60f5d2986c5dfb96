package studio

import (
	"strings"
	"testing"
)

func TestValidatePlayGenre(t *testing.T) {
	cases := []struct {
		name  string
		a     WireAction
		valid bool
	}{
		{"missing everything", WireAction{Type: ActionPlayGenre}, false},
		{"genre only", WireAction{Type: ActionPlayGenre, ActionParams: ActionParams{Genre: "mizrahi"}}, false},
		{"genre with duration", WireAction{Type: ActionPlayGenre, ActionParams: ActionParams{Genre: "mizrahi", DurationMinutes: Int(30)}}, true},
		{"genre with song count", WireAction{Type: ActionPlayGenre, ActionParams: ActionParams{Genre: "rock", SongCount: Int(5)}}, true},
		{"duration without genre", WireAction{Type: ActionPlayGenre, ActionParams: ActionParams{DurationMinutes: Int(30)}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			valid, errs := Validate(tc.a)
			if valid != tc.valid {
				t.Errorf("valid = %v, want %v (errors: %v)", valid, tc.valid, errs)
			}
			if valid && len(errs) != 0 {
				t.Errorf("valid action carries errors: %v", errs)
			}
			if !valid && len(errs) == 0 {
				t.Error("invalid action carries no errors")
			}
		})
	}
}

func TestValidateContentActions(t *testing.T) {
	for _, typ := range []ActionType{ActionPlayContent, ActionPlayShow} {
		if ok, _ := Validate(WireAction{Type: typ}); ok {
			t.Errorf("%s with no content reference should be invalid", typ)
		}
		if ok, _ := Validate(WireAction{Type: typ, ActionParams: ActionParams{ContentID: "abc"}}); !ok {
			t.Errorf("%s with content_id should be valid", typ)
		}
		if ok, _ := Validate(WireAction{Type: typ, ActionParams: ActionParams{ContentTitle: "Morning Show"}}); !ok {
			t.Errorf("%s with content_title should be valid", typ)
		}
	}
}

func TestValidateCommercialCountBoundary(t *testing.T) {
	if ok, _ := Validate(WireAction{Type: ActionPlayCommercials}); ok {
		t.Error("absent commercial_count should be invalid")
	}
	if ok, _ := Validate(WireAction{Type: ActionPlayCommercials, ActionParams: ActionParams{CommercialCount: Int(0)}}); ok {
		t.Error("commercial_count = 0 should be invalid")
	}
	if ok, _ := Validate(WireAction{Type: ActionPlayCommercials, ActionParams: ActionParams{CommercialCount: Int(1)}}); !ok {
		t.Error("commercial_count = 1 should be valid")
	}
}

func TestValidateWait(t *testing.T) {
	if ok, _ := Validate(WireAction{Type: ActionWait}); ok {
		t.Error("wait without duration should be invalid")
	}
	if ok, _ := Validate(WireAction{Type: ActionWait, ActionParams: ActionParams{DurationMinutes: Int(0)}}); ok {
		t.Error("wait with zero duration should be invalid")
	}
	if ok, _ := Validate(WireAction{Type: ActionWait, ActionParams: ActionParams{DurationMinutes: Int(1)}}); !ok {
		t.Error("wait with one minute should be valid")
	}
}

func TestValidateVolumeBoundary(t *testing.T) {
	cases := map[int]bool{-1: false, 0: true, 50: true, 100: true, 101: false}
	for level, want := range cases {
		ok, _ := Validate(WireAction{Type: ActionSetVolume, ActionParams: ActionParams{VolumeLevel: Int(level)}})
		if ok != want {
			t.Errorf("volume_level %d: valid = %v, want %v", level, ok, want)
		}
	}
	if ok, _ := Validate(WireAction{Type: ActionSetVolume}); ok {
		t.Error("absent volume_level should be invalid")
	}
}

func TestValidateAnnouncement(t *testing.T) {
	if ok, _ := Validate(WireAction{Type: ActionAnnouncement}); ok {
		t.Error("empty announcement should be invalid")
	}
	if ok, _ := Validate(WireAction{Type: ActionAnnouncement, ActionParams: ActionParams{AnnouncementText: "   \t "}}); ok {
		t.Error("whitespace-only announcement should be invalid")
	}
	if ok, _ := Validate(WireAction{Type: ActionAnnouncement, ActionParams: ActionParams{AnnouncementText: "שלום לכולם"}}); !ok {
		t.Error("non-empty announcement should be valid")
	}
}

func TestValidateUnknownType(t *testing.T) {
	ok, errs := Validate(WireAction{Type: "teleport"})
	if ok {
		t.Error("unknown action type should be invalid")
	}
	if len(errs) != 1 || !strings.Contains(errs[0], "unknown action type") {
		t.Errorf("errors = %v, want a single unknown-type error", errs)
	}
}

func TestKnownCoversEnum(t *testing.T) {
	for _, typ := range ActionTypes {
		if !typ.Known() {
			t.Errorf("%s not reported as known", typ)
		}
	}
	if ActionType("teleport").Known() {
		t.Error("unexpected type reported as known")
	}
}
