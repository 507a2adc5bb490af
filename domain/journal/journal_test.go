package journal

import (
	"image"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) (*Journal, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return j, path
}

func TestJournalRecordsClicksPerSession(t *testing.T) {
	j, path := openTemp(t)
	if j.SessionID() == "" {
		t.Fatalf("expected a session id")
	}
	mustClick := func(tick uint64, screen string, delivered bool) {
		if err := j.RecordClick(tick, screen, "slot 1", image.Pt(10, 20), delivered); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	mustClick(1, "ColoCombat", true)
	mustClick(7, "ColoCombat", false)
	mustClick(9, "MessageBox", true)

	sum, err := j.ClickSummary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(sum) != 2 || sum[0] != (ScreenCount{"ColoCombat", 2, 1}) || sum[1] != (ScreenCount{"MessageBox", 1, 1}) {
		t.Fatalf("unexpected summary %+v", sum)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// a second run on the same file starts empty
	j2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer j2.Close()
	if j2.SessionID() == j.SessionID() {
		t.Fatalf("session ids must differ")
	}
	if sum, _ := j2.ClickSummary(); len(sum) != 0 {
		t.Fatalf("expected no clicks for new session, got %+v", sum)
	}
}

func TestJournalTransitions(t *testing.T) {
	j, _ := openTemp(t)
	defer j.Close()
	if err := j.RecordTransition(1, "Unknown", "Title"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := j.RecordTransition(40, "Title", "MessageBox"); err != nil {
		t.Fatalf("record: %v", err)
	}
	got, err := j.Transitions()
	if err != nil {
		t.Fatalf("transitions: %v", err)
	}
	if len(got) != 2 || got[1] != [2]string{"Title", "MessageBox"} {
		t.Fatalf("unexpected transitions %v", got)
	}
}
