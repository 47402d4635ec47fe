package listview

import "testing"

func TestNewState_Defaults(t *testing.T) {
	s := NewState(FilterState{View: FilterAll}, 0)
	if s.Sort != SortDesc || s.Page != 0 || s.PageSize != 10 {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestState_ResetsPage(t *testing.T) {
	tests := []struct {
		name   string
		change func(*State)
		reset  bool
	}{
		{"view change", func(s *State) { s.SetView(FilterFees) }, true},
		{"same view", func(s *State) { s.SetView(FilterAll) }, false},
		{"category toggle", func(s *State) { s.ToggleCategory(4) }, true},
		{"same categories in other order", func(s *State) { s.SetFilter(FilterState{View: FilterAll, CategoryIDs: []uint{2, 1}}) }, false},
		{"sort change", func(s *State) { s.SetSort(SortAsc) }, true},
		{"same sort", func(s *State) { s.SetSort(SortDesc) }, false},
		{"page size change", func(s *State) { s.SetPageSize(50) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(FilterState{View: FilterAll, CategoryIDs: []uint{1, 2}}, 10)
			s.Page = 3
			tt.change(&s)
			if tt.reset && s.Page != 0 {
				t.Errorf("expected page reset, got %d", s.Page)
			}
			if !tt.reset && s.Page != 3 {
				t.Errorf("expected page kept, got %d", s.Page)
			}
		})
	}
}

func TestState_Navigation(t *testing.T) {
	s := NewState(FilterState{}, 10)

	s.Prev()
	if s.Page != 0 {
		t.Errorf("prev on first page should stay at 0, got %d", s.Page)
	}

	s.Next(3)
	s.Next(3)
	s.Next(3)
	if s.Page != 2 {
		t.Errorf("next should stop at last page 2, got %d", s.Page)
	}

	if err := s.JumpTo("1", 3); err != nil || s.Page != 0 {
		t.Errorf("jump to 1 failed: page=%d err=%v", s.Page, err)
	}
	for _, bad := range []string{"0", "4", "two", ""} {
		if err := s.JumpTo(bad, 3); err == nil {
			t.Errorf("JumpTo(%q) should fail", bad)
		}
	}
	if s.Page != 0 {
		t.Errorf("failed jumps must not move the page, got %d", s.Page)
	}
}

func TestState_ShowAll(t *testing.T) {
	s := NewState(FilterState{}, 10)
	s.Page = 2
	s.ShowAll(37)
	if s.PageSize != 37 || s.Page != 0 {
		t.Errorf("expected one page of 37, got %+v", s)
	}
	s.ShowAll(0)
	if s.PageSize != 1 {
		t.Errorf("empty list should still use a positive page size, got %d", s.PageSize)
	}
}

func TestParsePageSize(t *testing.T) {
	if n, err := ParsePageSize("ALL"); err != nil || n != 0 {
		t.Errorf("expected all -> 0, got %d %v", n, err)
	}
	if n, err := ParsePageSize("20"); err != nil || n != 20 {
		t.Errorf("expected 20, got %d %v", n, err)
	}
	if _, err := ParsePageSize("-1"); err == nil {
		t.Error("negative size should fail")
	}
}
