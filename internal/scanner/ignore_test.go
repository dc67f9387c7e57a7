package scanner

import "testing"

func TestNewIgnoreList(t *testing.T) {
	list := NewIgnoreList([]string{"AEC", " NID ", "", "  "})

	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if !list.Contains("AEC") {
		t.Error("expected AEC to be ignored")
	}
	if !list.Contains("NID") {
		t.Error("expected whitespace-trimmed NID to be ignored")
	}
	if list.Contains("session") {
		t.Error("did not expect session to be ignored")
	}
}

func TestIgnoreList_Empty(t *testing.T) {
	var list IgnoreList
	if list.Contains("anything") {
		t.Fatal("nil ignore list must never match")
	}

	if got := NewIgnoreList(nil); len(got) != 0 {
		t.Fatalf("expected empty list from nil config, got %d entries", len(got))
	}
}

func TestIgnoreList_ExactMatch(t *testing.T) {
	list := NewIgnoreList([]string{"SessionID"})
	if list.Contains("sessionid") {
		t.Fatal("ignore list lookup is exact, not case-insensitive")
	}
}
