package service

import (
	"errors"
	"sync"
	"testing"
)

func TestBoardAddAndList(t *testing.T) {
	board := NewBoard()

	first, err := board.Add("chat", "  Ada Lovelace ", "Analytical Engines", "great dashboard")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if first.ID == "" {
		t.Error("comment has no id")
	}
	if first.FullName != "Ada Lovelace" {
		t.Errorf("full name = %q, want trimmed", first.FullName)
	}
	if first.CreatedAt.IsZero() {
		t.Error("comment has no timestamp")
	}

	second, err := board.Add("chat", "Grace Hopper", "", "found a broken link")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	list := board.List()
	if len(list) != 2 {
		t.Fatalf("list = %d entries, want 2", len(list))
	}
	// Newest first.
	if list[0].ID != second.ID {
		t.Errorf("list[0] = %q, want the newest comment", list[0].ID)
	}
}

func TestBoardRejectsMissingFields(t *testing.T) {
	board := NewBoard()

	if _, err := board.Add("chat", "", "", "message"); !errors.Is(err, ErrMissingFields) {
		t.Errorf("missing name err = %v, want ErrMissingFields", err)
	}
	if _, err := board.Add("chat", "name", "", "   "); !errors.Is(err, ErrMissingFields) {
		t.Errorf("missing message err = %v, want ErrMissingFields", err)
	}
	if got := board.List(); len(got) != 0 {
		t.Errorf("rejected comments were stored: %d", len(got))
	}
}

func TestBoardConcurrentAdds(t *testing.T) {
	board := NewBoard()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := board.Add("chat", "visitor", "", "hello"); err != nil {
				t.Errorf("Add: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := board.List(); len(got) != 50 {
		t.Errorf("list = %d entries, want 50", len(got))
	}
}
