package palette

import (
	"errors"
	"testing"
)

func TestNewEntryParsesCSS(t *testing.T) {
	e, err := NewEntry("red", "#ff4136")
	if err != nil {
		t.Fatalf("NewEntry() error = %v", err)
	}
	if e.ID == "" {
		t.Error("entry has empty id")
	}
	if got := e.CSS(); got != "#ff4136" {
		t.Errorf("CSS() = %q, want %q", got, "#ff4136")
	}
}

func TestNewEntryRejectsBadCSS(t *testing.T) {
	if _, err := NewEntry("bad", "not-a-color"); err == nil {
		t.Error("NewEntry() = nil error, want parse failure")
	}
}

func TestTextColorContrast(t *testing.T) {
	tests := []struct {
		css      string
		expected string
	}{
		{"#ffffff", "#000000"},
		{"#ffdc00", "#000000"},
		{"#111111", "#ffffff"},
		{"#0074d9", "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			e, err := NewEntry("c", tt.css)
			if err != nil {
				t.Fatal(err)
			}
			if got := e.TextColor(); got != tt.expected {
				t.Errorf("TextColor(%s) = %q, want %q", tt.css, got, tt.expected)
			}
		})
	}
}

func TestStoreCRUD(t *testing.T) {
	s := NewStore()
	e, err := NewEntry("teal", "#39cccc")
	if err != nil {
		t.Fatal(err)
	}

	s.Add(e)

	got, err := s.Get(e.ID)
	if err != nil || got.Name != "teal" {
		t.Fatalf("Get() = (%+v, %v), want teal", got, err)
	}

	got.Name = "cyan"
	if err := s.Update(got); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if updated, _ := s.Get(e.ID); updated.Name != "cyan" {
		t.Errorf("name after update = %q, want cyan", updated.Name)
	}

	if err := s.Remove(e.ID); err != nil {
		t.Fatalf("Remove() = %v", err)
	}
	if _, err := s.Get(e.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("Get(removed) = %v, want ErrEntryNotFound", err)
	}
	if err := s.Update(e); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("Update(removed) = %v, want ErrEntryNotFound", err)
	}
}

func TestDefaultStoreSeedsStockColors(t *testing.T) {
	s := DefaultStore()

	entries := s.List()
	if len(entries) != 8 {
		t.Fatalf("List() = %d entries, want 8", len(entries))
	}
	// Sorted by name.
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Name > entries[i].Name {
			t.Fatalf("List() not sorted: %q before %q", entries[i-1].Name, entries[i].Name)
		}
	}

	e, err := s.FindByName("blue")
	if err != nil {
		t.Fatalf("FindByName(blue) = %v", err)
	}
	if e.CSS() != "#0074d9" {
		t.Errorf("blue = %q, want #0074d9", e.CSS())
	}
}
