package match

import (
	"reflect"
	"testing"

	"github.com/planweave/planweave/core/model"
)

func TestBuildPatternsFallback(t *testing.T) {
	filters := map[string][]string{"JCB UK": {"JCB", "Fastrac"}}
	if got := BuildPatterns("JCB UK", filters); !reflect.DeepEqual(got, []string{"JCB", "Fastrac"}) {
		t.Fatalf("configured patterns = %v", got)
	}
	if got := BuildPatterns("Goupil", filters); !reflect.DeepEqual(got, []string{"Goupil"}) {
		t.Fatalf("fallback = %v, want the customer name", got)
	}
}

func TestMatchesCaseInsensitiveSubstring(t *testing.T) {
	patterns := []string{"JCB"}
	for _, title := range []string{"Weekly sync with jcb team", "JCB UK / roadmap", "PreJCBreview"} {
		if !Matches(title, patterns) {
			t.Fatalf("title %q should match", title)
		}
	}
	if Matches("Standup", patterns) {
		t.Fatalf("unrelated title matched")
	}
	if Matches("anything", nil) {
		t.Fatalf("empty pattern list matched")
	}
}

func TestMatchEvents(t *testing.T) {
	set := BuildPatternSet([]string{"JCB UK", "Goupil"}, map[string][]string{
		"JCB UK": {"JCB"},
	})
	events := []model.CalendarEvent{
		{Title: "JCB quarterly review"},
		{Title: "goupil onboarding"},
		{Title: "Team retro"},
		{Title: "No Title"},
	}
	got := MatchEvents(events, set)
	if len(got) != 2 || got[0].Title != "JCB quarterly review" || got[1].Title != "goupil onboarding" {
		t.Fatalf("matched = %+v", got)
	}
}

func TestMatchEventsEmptySet(t *testing.T) {
	events := []model.CalendarEvent{{Title: "Anything"}}
	if got := MatchEvents(events, nil); len(got) != 0 {
		t.Fatalf("empty set must match nothing, got %+v", got)
	}
}
