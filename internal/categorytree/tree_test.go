package categorytree

import (
	"testing"

	"financebook/internal/models"
)

func TestForestAndFlatten(t *testing.T) {
	ix := New(sample())

	forest := ix.Forest(1)
	if len(forest) != 3 {
		t.Fatalf("expected 3 roots (Home, Travel, UNCLASSIFIED), got %d", len(forest))
	}

	home := forest[0]
	if home.Name != "Home" || len(home.Children) != 2 {
		t.Fatalf("expected Home with 2 children, got %s with %d", home.Name, len(home.Children))
	}

	flat := Flatten(forest)
	if len(flat) != 8 {
		t.Errorf("expected 8 flattened categories of type 1, got %d", len(flat))
	}
	for _, c := range flat {
		if c.Children != nil {
			t.Errorf("flattened category %s still has children", c.Name)
		}
	}
}

func TestTree_DanglingParentBecomesRoot(t *testing.T) {
	ix := New([]models.Category{cat(1, "Orphan", 1, id(99), "")})

	forest := ix.Forest(1)
	if len(forest) != 1 || forest[0].ID != 1 {
		t.Errorf("expected orphan as root, got %+v", forest)
	}
}

func TestSearchPrefix(t *testing.T) {
	cats := sample()

	tests := []struct {
		query string
		want  int
	}{
		{"", 8},
		{"u", 2},
		{"UT", 1},
		{"unc", 0},
		{"zzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := SearchPrefix(cats, tt.query); len(got) != tt.want {
				t.Errorf("SearchPrefix(%q) returned %d, want %d", tt.query, len(got), tt.want)
			}
		})
	}
}

func TestStandardType(t *testing.T) {
	tests := []struct {
		name   string
		types  []models.CategoryType
		wantID uint
		wantOK bool
	}{
		{"named standard", []models.CategoryType{{Base: models.Base{ID: 1}, Name: "projects"}, {Base: models.Base{ID: 2}, Name: "Standard"}}, 2, true},
		{"falls back to first", []models.CategoryType{{Base: models.Base{ID: 3}, Name: "projects"}}, 3, true},
		{"empty", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StandardType(tt.types)
			if got.ID != tt.wantID || ok != tt.wantOK {
				t.Errorf("StandardType = (%d, %v), want (%d, %v)", got.ID, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}
