package snapshot

import (
	"reflect"
	"testing"
)

func TestReplaceReturnsArrivals(t *testing.T) {
	s := NewStore()

	if got := s.Replace(tickets("a", "b")); got != nil {
		t.Errorf("baseline replace reported %v", got)
	}
	got := s.Replace(tickets("a", "b", "c"))
	if len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("arrivals = %v, want [c]", got)
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d", s.Len())
	}
}

func TestRemove(t *testing.T) {
	s := NewStore()
	s.Replace(tickets("a", "b", "c", "d"))

	if !s.Remove("b") {
		t.Fatal("Remove(b) = false")
	}
	want := []string{"a", "c", "d"}
	var got []string
	for _, tk := range s.Tickets() {
		got = append(got, tk.ID)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("after remove: %v, want %v (relative order kept)", got, want)
	}

	if s.Remove("zz") {
		t.Error("Remove(zz) = true for unknown id")
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d after failed remove", s.Len())
	}
}

func TestFind(t *testing.T) {
	s := NewStore()
	s.Replace(tickets("a", "b"))
	if _, ok := s.Find("b"); !ok {
		t.Error("Find(b) = false")
	}
	if _, ok := s.Find("x"); ok {
		t.Error("Find(x) = true")
	}
}

func TestTicketsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Replace(tickets("a", "b"))
	view := s.Tickets()
	view[0].ID = "mutated"
	if got, _ := s.Find("a"); got.ID != "a" {
		t.Error("mutating the returned slice leaked into the store")
	}
}
