package todo

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sandeepkv93/dayplan/internal/model"
)

func newTestList(seed bool) *List {
	return New(Options{IDs: &model.SequenceSource{Prefix: "todo"}, Seed: seed})
}

func ids(items []model.TodoItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestBuyMilkScenario(t *testing.T) {
	l := newTestList(false)
	item, err := l.Add(Draft{Title: "Buy milk", Priority: model.PriorityLow})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	all := l.Items()
	if len(all) != 1 || all[0].Title != "Buy milk" || all[0].Completed {
		t.Fatalf("unexpected items: %+v", all)
	}

	l.SetFilter(FilterCompleted)
	if got := l.Visible(); len(got) != 0 {
		t.Fatalf("expected empty completed view, got %+v", got)
	}
	l.SetFilter(FilterActive)
	got := l.Visible()
	if len(got) != 1 || got[0].ID != item.ID {
		t.Fatalf("expected the new item in active view, got %+v", got)
	}
}

func TestAddAppendsWithoutReordering(t *testing.T) {
	l := newTestList(true)
	if _, err := l.Add(Draft{Title: "A later item", Priority: model.PriorityHigh}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if got := ids(l.Items()); !reflect.DeepEqual(got, []string{"1", "2", "3", "todo-1"}) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestAddRejectsBlankTitle(t *testing.T) {
	l := newTestList(true)
	l.Draft = Draft{Title: "  ", DueDate: "Friday", Priority: model.PriorityHigh}
	for _, title := range []string{"", "   "} {
		if _, err := l.Add(Draft{Title: title, Priority: model.PriorityLow}); !errors.Is(err, model.ErrEmptyTitle) {
			t.Fatalf("expected ErrEmptyTitle for %q, got %v", title, err)
		}
	}
	if _, err := l.Submit(); !errors.Is(err, model.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle from submit, got %v", err)
	}
	if len(l.Items()) != 3 {
		t.Fatalf("expected 3 items, got %d", len(l.Items()))
	}
	if l.Draft.DueDate != "Friday" {
		t.Fatalf("draft should survive rejection: %+v", l.Draft)
	}
}

func TestSubmitResetsDraft(t *testing.T) {
	l := newTestList(false)
	l.Draft = Draft{Title: "Pay rent", DueDate: "2026-03-01", Priority: model.PriorityHigh}
	item, err := l.Submit()
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if item.DueDate != "2026-03-01" || item.Priority != model.PriorityHigh {
		t.Fatalf("unexpected item: %+v", item)
	}
	if l.Draft != NewDraft() {
		t.Fatalf("expected reset draft, got %+v", l.Draft)
	}
}

func TestToggleInvolutionAndUnknownIDs(t *testing.T) {
	l := newTestList(true)
	l.Toggle("2")
	l.Toggle("2")
	if !l.Items()[1].Completed {
		t.Fatal("expected completed=true again after double toggle")
	}

	before := l.Items()
	if l.Toggle("nope") || l.Delete("nope") {
		t.Fatal("expected unknown id operations to report false")
	}
	if !reflect.DeepEqual(before, l.Items()) {
		t.Fatalf("collection changed: %+v", l.Items())
	}
}

func TestDelete(t *testing.T) {
	l := newTestList(true)
	if !l.Delete("1") {
		t.Fatal("expected delete to succeed")
	}
	if got := ids(l.Items()); !reflect.DeepEqual(got, []string{"2", "3"}) {
		t.Fatalf("unexpected ids: %v", got)
	}
}

func TestFilterPartition(t *testing.T) {
	l := newTestList(true)
	l.Add(Draft{Title: "extra", Priority: model.PriorityLow})
	l.Toggle("3")

	all := ids(l.Select(FilterAll))
	active := ids(l.Select(FilterActive))
	completed := ids(l.Select(FilterCompleted))

	seen := make(map[string]int)
	for _, id := range active {
		seen[id]++
	}
	for _, id := range completed {
		seen[id]++
	}
	if len(seen) != len(all) {
		t.Fatalf("union %v does not cover all %v", seen, all)
	}
	for _, id := range all {
		if seen[id] != 1 {
			t.Fatalf("id %s appears %d times across active/completed", id, seen[id])
		}
	}

	counts := l.Counts()
	if counts[FilterAll] != 4 || counts[FilterActive] != len(active) || counts[FilterCompleted] != len(completed) {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	l := newTestList(true)
	before := l.Items()
	l.SetFilter(FilterCompleted)
	_ = l.Visible()
	if !reflect.DeepEqual(before, l.Items()) {
		t.Fatal("filtering mutated the collection")
	}
	if l.SetFilter(Filter("bogus")) {
		t.Fatal("expected unknown filter to be rejected")
	}
	if l.Filter() != FilterCompleted {
		t.Fatalf("filter changed on rejection: %q", l.Filter())
	}
}

func TestFilterCycleAndLabels(t *testing.T) {
	if FilterAll.Next() != FilterActive || FilterCompleted.Next() != FilterAll {
		t.Fatal("unexpected next cycle")
	}
	if FilterAll.Prev() != FilterCompleted || FilterActive.Prev() != FilterAll {
		t.Fatal("unexpected prev cycle")
	}
	if FilterActive.Label() != "Active" {
		t.Fatalf("unexpected label: %q", FilterActive.Label())
	}
	if FilterActive.EmptyMessage() != "No active tasks. All caught up!" {
		t.Fatalf("unexpected empty message: %q", FilterActive.EmptyMessage())
	}
}
