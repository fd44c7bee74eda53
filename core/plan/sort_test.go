package plan

import (
	"reflect"
	"testing"

	"github.com/planweave/planweave/core/model"
)

func TestSortByStartDateMissingLast(t *testing.T) {
	tasks := []model.Task{
		mkTask("c", "r", "", ""),
		mkTask("b", "r", "2024-01-05", "2024-01-06"),
		mkTask("a", "r", "2024-01-01", "2024-01-02"),
	}
	got, err := Sort(tasks, []string{KeyStartDate})
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("order = %v, want %v", ids(got), want)
	}
}

func TestSortByPriorityRank(t *testing.T) {
	low := mkTask("low", "r", "2024-01-01", "2024-01-02")
	low.Priority = "Lowest"
	high := mkTask("high", "r", "2024-01-01", "2024-01-02")
	high.Priority = "P0"
	mid := mkTask("mid", "r", "2024-01-01", "2024-01-02")
	mid.Priority = "medium"
	odd := mkTask("odd", "r", "2024-01-01", "2024-01-02")
	odd.Priority = "Blocker"

	got, err := Sort([]model.Task{low, odd, mid, high}, []string{KeyPriority})
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if want := []string{"high", "mid", "low", "odd"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("order = %v, want %v", ids(got), want)
	}
}

func TestSortMultiKeyWithIDTiebreak(t *testing.T) {
	a := mkTask("z-9", "Bob", "2024-01-01", "2024-01-02")
	b := mkTask("a-1", "bob", "2024-01-01", "2024-01-02")
	c := mkTask("m-5", "Alice", "2024-01-01", "2024-01-02")

	got, err := Sort([]model.Task{a, b, c}, []string{KeyResource, KeyStartDate})
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	// Alice first; the two Bobs tie on every key and fall back to id order.
	if want := []string{"m-5", "a-1", "z-9"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("order = %v, want %v", ids(got), want)
	}
}

func TestSortDefaultsToStartDate(t *testing.T) {
	tasks := []model.Task{
		mkTask("b", "r", "2024-02-01", "2024-02-02"),
		mkTask("a", "r", "2024-01-01", "2024-01-02"),
	}
	got, err := Sort(tasks, nil)
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if got[0].ID != "a" {
		t.Fatalf("default sort order = %v", ids(got))
	}
}

func TestSortRejectsUnknownKey(t *testing.T) {
	if _, err := Sort(nil, []string{"startdate"}); err == nil {
		t.Fatalf("expected error for unknown sort key")
	}
	if err := ValidateSortKeys([]string{KeyEndDate, "urgency"}); err == nil {
		t.Fatalf("expected error for unknown key in list")
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{
		mkTask("b", "r", "2024-02-01", "2024-02-02"),
		mkTask("a", "r", "2024-01-01", "2024-01-02"),
	}
	if _, err := Sort(tasks, []string{KeyStartDate}); err != nil {
		t.Fatalf("sort: %v", err)
	}
	if tasks[0].ID != "b" {
		t.Fatalf("input slice reordered")
	}
}
