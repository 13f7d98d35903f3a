package previewview

import (
	"testing"
	"time"
)

func TestMarkPendingAndShouldTriggerDebounce(t *testing.T) {
	v := New()
	t0 := time.Unix(0, 0)
	v.MarkPending(t0)

	if v.ShouldTrigger(t0.Add(50 * time.Millisecond)) {
		t.Fatal("expected no trigger before the debounce window elapses")
	}
	if !v.ShouldTrigger(t0.Add(76 * time.Millisecond)) {
		t.Fatal("expected trigger once the debounce window has elapsed")
	}
}

// S5: rapid re-selection within the debounce window must not fire, but the
// request eventually does once input goes quiet.
func TestDebounceRapidReselection(t *testing.T) {
	v := New()
	base := time.Unix(0, 0)
	for i := 0; i < 10; i++ {
		now := base.Add(time.Duration(i) * 10 * time.Millisecond)
		v.MarkPending(now)
		if v.ShouldTrigger(now) {
			t.Fatalf("iteration %d: should not trigger immediately after marking pending", i)
		}
	}
	last := base.Add(9 * 10 * time.Millisecond)
	if v.ShouldTrigger(last.Add(76 * time.Millisecond)) == false {
		t.Fatal("expected trigger once input has been quiet past the debounce window")
	}
}

func TestPrepareNewRequestClearsPending(t *testing.T) {
	v := New()
	now := time.Unix(100, 0)
	v.MarkPending(now)
	v.PrepareNewRequest("/file.txt")
	if v.ShouldTrigger(now.Add(time.Second)) {
		t.Fatal("expected pending to be cleared by PrepareNewRequest")
	}
}

func TestUpdateContentDropsStaleRequestID(t *testing.T) {
	v := New()
	v.PrepareNewRequest("/a.txt")
	staleID := v.RequestID()
	newID := v.PrepareNewRequest("/b.txt")

	v.UpdateContent([]string{"stale"}, nil, staleID)
	if v.Data().Kind != KindEmpty {
		t.Fatalf("expected stale update to be dropped, got %+v", v.Data())
	}

	v.UpdateContent([]string{"fresh"}, nil, newID)
	if v.Data().Kind != KindFile || len(v.Data().Lines) != 1 || v.Data().Lines[0] != "fresh" {
		t.Fatalf("expected fresh content installed, got %+v", v.Data())
	}
}

func TestUpdateFromEntriesResetsSelection(t *testing.T) {
	v := New()
	id := v.PrepareNewRequest("/dir")
	v.SetSelectedIdx(5)
	v.UpdateFromEntries([]DirEntryView{{Name: "a"}, {Name: "b"}}, id)

	if v.Data().Kind != KindDirectory || len(v.Data().Entries) != 2 {
		t.Fatalf("expected directory data installed, got %+v", v.Data())
	}
	if v.SelectedIdx() != 0 {
		t.Fatalf("expected selection reset to 0, got %d", v.SelectedIdx())
	}
}

func TestSetSelectedIdxClampsToContentLength(t *testing.T) {
	v := New()
	id := v.PrepareNewRequest("/dir")
	v.UpdateFromEntries([]DirEntryView{{Name: "a"}, {Name: "b"}}, id)

	v.SetSelectedIdx(100)
	if v.SelectedIdx() != 1 {
		t.Fatalf("expected clamp to 1, got %d", v.SelectedIdx())
	}
	v.SetSelectedIdx(-5)
	if v.SelectedIdx() != 0 {
		t.Fatalf("expected clamp to 0, got %d", v.SelectedIdx())
	}
}

func TestSetErrorAlwaysApplies(t *testing.T) {
	v := New()
	v.PrepareNewRequest("/a.txt")
	v.SetError("permission denied")
	if v.Data().Kind != KindFile || v.Data().Lines[0] != "permission denied" {
		t.Fatalf("expected error message installed, got %+v", v.Data())
	}
}

func TestClearResetsToEmpty(t *testing.T) {
	v := New()
	id := v.PrepareNewRequest("/dir")
	v.UpdateFromEntries([]DirEntryView{{Name: "a"}}, id)
	v.Clear()
	if v.Data().Kind != KindEmpty || !v.Data().IsEmpty() {
		t.Fatalf("expected empty data after Clear, got %+v", v.Data())
	}
}
