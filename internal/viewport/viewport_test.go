package viewport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func page() []Extent {
	return []Extent{
		{ID: "home", Top: 0, Height: 800},
		{ID: "services", Top: 800, Height: 600},
		{ID: "about", Top: 1400, Height: 700},
		{ID: "portfolio", Top: 2100, Height: 900},
		{ID: "contact", Top: 3000, Height: 1000},
	}
}

func TestActive(t *testing.T) {
	tests := []struct {
		name    string
		scrollY float64
		current string
		want    string
	}{
		{"top of page", 0, "home", "home"},
		{"lookahead reaches services", 700, "home", "services"},
		{"just before lookahead boundary", 699, "home", "home"},
		{"middle of about", 1600, "services", "about"},
		{"last section", 3500, "portfolio", "contact"},
		{"past the end keeps current", 5000, "contact", "contact"},
		{"negative overscroll keeps current", -500, "services", "services"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Active(page(), tt.scrollY, tt.current); got != tt.want {
				t.Errorf("Active(%v) = %q, want %q", tt.scrollY, got, tt.want)
			}
		})
	}
}

func TestActiveLastOverlapWins(t *testing.T) {
	sections := []Extent{
		{ID: "a", Top: 0, Height: 1000},
		{ID: "b", Top: 200, Height: 500},
	}
	if got := Active(sections, 200, "a"); got != "b" {
		t.Errorf("expected later overlapping section to win, got %q", got)
	}

	sections[0], sections[1] = sections[1], sections[0]
	if got := Active(sections, 200, "b"); got != "a" {
		t.Errorf("expected iteration order to decide, got %q", got)
	}
}

func TestActiveEndIsExclusive(t *testing.T) {
	sections := []Extent{{ID: "only", Top: 0, Height: 100}}
	if got := Active(sections, 0, "none"); got != "none" {
		t.Errorf("offset at section end should not match, got %q", got)
	}
}

func TestRevealed(t *testing.T) {
	if !Revealed(100, 800) {
		t.Error("element well inside viewport should be revealed")
	}
	if Revealed(650, 800) {
		t.Error("element exactly at threshold should not be revealed")
	}
	if !Revealed(649.5, 800) {
		t.Error("element just past threshold should be revealed")
	}
	if Revealed(2000, 800) {
		t.Error("element below the fold should not be revealed")
	}
}

func TestTrackerStartsAtHome(t *testing.T) {
	tr := NewTracker()
	if tr.Active() != DefaultSection {
		t.Errorf("expected %q, got %q", DefaultSection, tr.Active())
	}
}

func TestTrackerUpdate(t *testing.T) {
	tr := NewTracker()

	change := tr.Update(Frame{
		ScrollY:        900,
		ViewportHeight: 800,
		Sections:       page(),
		Elements: []Element{
			{Key: "0", Top: 100},
			{Key: "1", Top: 700},
			{Key: "2", Top: 1200},
		},
	})

	want := Change{Active: "services", ActiveChanged: true, Revealed: []string{"0"}}
	if diff := cmp.Diff(want, change); diff != "" {
		t.Errorf("Update() mismatch (-want +got):\n%s", diff)
	}

	change = tr.Update(Frame{
		ScrollY:        1000,
		ViewportHeight: 800,
		Sections:       page(),
		Elements: []Element{
			{Key: "0", Top: 0},
			{Key: "1", Top: 600},
			{Key: "2", Top: 1100},
		},
	})

	want = Change{Active: "services", ActiveChanged: false, Revealed: []string{"1"}}
	if diff := cmp.Diff(want, change); diff != "" {
		t.Errorf("second Update() mismatch (-want +got):\n%s", diff)
	}
}

func TestTrackerRevealIsMonotonic(t *testing.T) {
	tr := NewTracker()
	tr.Update(Frame{ViewportHeight: 800, Elements: []Element{{Key: "card", Top: 10}}})
	if !tr.IsRevealed("card") {
		t.Fatal("card should be revealed")
	}

	// Scroll back up so the card is far below the viewport again.
	change := tr.Update(Frame{ViewportHeight: 800, Elements: []Element{{Key: "card", Top: 5000}}})
	if !tr.IsRevealed("card") {
		t.Error("revealed element must stay revealed")
	}
	if len(change.Revealed) != 0 {
		t.Errorf("already revealed element reported again: %v", change.Revealed)
	}
}

func TestTrackerSingleActive(t *testing.T) {
	tr := NewTracker()
	for y := 0.0; y < 4500; y += 37 {
		change := tr.Update(Frame{ScrollY: y, ViewportHeight: 800, Sections: page()})
		found := false
		for _, s := range page() {
			if s.ID == change.Active {
				found = true
			}
		}
		if !found {
			t.Fatalf("scrollY %v: active %q is not a known section", y, change.Active)
		}
	}
}
