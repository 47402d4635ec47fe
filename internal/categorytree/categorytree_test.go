package categorytree

import (
	"sort"
	"testing"

	"financebook/internal/models"
)

func cat(id uint, name string, typeID uint, parent *uint, icon string) models.Category {
	c := models.Category{Base: models.Base{ID: id}, Name: name, TypeID: typeID, ParentID: parent}
	if icon != "" {
		c.IconFile = &icon
	}
	return c
}

func id(v uint) *uint { return &v }

// 1 Home (house.png)
// ├── 2 Rent
// └── 3 Utilities
//     └── 4 Power
// 5 Travel
// └── 6 Flights (plane.png)
//     └── 7 Upgrades
func sample() []models.Category {
	return []models.Category{
		cat(4, "Power", 1, id(3), ""),
		cat(1, "Home", 1, nil, "house.png"),
		cat(7, "Upgrades", 1, id(6), ""),
		cat(2, "Rent", 1, id(1), ""),
		cat(5, "Travel", 1, nil, ""),
		cat(3, "Utilities", 1, id(1), ""),
		cat(6, "Flights", 1, id(5), "plane.png"),
		cat(8, models.UnclassifiedCategoryName, 1, nil, ""),
		cat(9, "Work", 2, nil, ""),
	}
}

func sorted(ids []uint) []uint {
	out := append([]uint(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func equalIDs(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDescendants(t *testing.T) {
	ix := New(sample())

	tests := []struct {
		name string
		id   uint
		want []uint
	}{
		{"root with grandchildren", 1, []uint{2, 3, 4}},
		{"middle node", 3, []uint{4}},
		{"leaf", 4, nil},
		{"other root", 5, []uint{6, 7}},
		{"unknown id", 42, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sorted(ix.Descendants(tt.id))
			if !equalIDs(got, tt.want) {
				t.Errorf("Descendants(%d) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestDescendants_IndependentOfInputOrder(t *testing.T) {
	forward := sample()
	reversed := make([]models.Category, len(forward))
	for i, c := range forward {
		reversed[len(forward)-1-i] = c
	}

	a := sorted(New(forward).Descendants(1))
	b := sorted(New(reversed).Descendants(1))
	if !equalIDs(a, b) {
		t.Errorf("descendants differ by input order: %v vs %v", a, b)
	}
}

func TestDescendants_CycleNeverIncludesSelf(t *testing.T) {
	// 1 -> 2 -> 3 -> 1
	ix := New([]models.Category{
		cat(1, "A", 1, id(3), ""),
		cat(2, "B", 1, id(1), ""),
		cat(3, "C", 1, id(2), ""),
	})

	got := sorted(ix.Descendants(1))
	if !equalIDs(got, []uint{2, 3}) {
		t.Errorf("expected [2 3], got %v", got)
	}
}

func TestResolveIcon(t *testing.T) {
	ix := New(sample())

	tests := []struct {
		name   string
		cat    models.Category
		want   string
		wantOK bool
	}{
		{"own icon", cat(1, "Home", 1, nil, "house.png"), "house.png", true},
		{"inherits from parent", cat(2, "Rent", 1, id(1), ""), "house.png", true},
		{"inherits from grandparent", cat(4, "Power", 1, id(3), ""), "house.png", true},
		{"nearest ancestor wins", cat(7, "Upgrades", 1, id(6), ""), "plane.png", true},
		{"root without icon", cat(5, "Travel", 1, nil, ""), "", false},
		{"dangling parent", cat(10, "Orphan", 1, id(99), ""), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ix.ResolveIcon(tt.cat)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ResolveIcon = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveIcon_ParentWithIcon(t *testing.T) {
	b := cat(2, "B", 1, nil, "b.png")
	a := cat(1, "A", 1, id(2), "")
	ix := New([]models.Category{a, b})

	url, ok := ix.ResolveIconURL("http://localhost:8000/api/", a)
	if !ok {
		t.Fatal("expected an icon")
	}
	if url != "http://localhost:8000/api/download_static/b.png" {
		t.Errorf("unexpected URL %q", url)
	}
}

func TestResolveIcon_CycleTerminates(t *testing.T) {
	ix := New([]models.Category{
		cat(1, "A", 1, id(2), ""),
		cat(2, "B", 1, id(1), ""),
	})

	if _, ok := ix.ResolveIcon(cat(1, "A", 1, id(2), "")); ok {
		t.Error("expected no icon in an icon-less cycle")
	}
}

func TestPath(t *testing.T) {
	ix := New(sample())
	power, _ := ix.Get(4)

	path := ix.Path(power)
	var names []string
	for _, c := range path {
		names = append(names, c.Name)
	}
	want := []string{"Home", "Utilities", "Power"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
			break
		}
	}
}

func TestValidParents(t *testing.T) {
	ix := New(sample())
	home, _ := ix.Get(1)

	var got []uint
	for _, c := range ix.ValidParents(home) {
		got = append(got, c.ID)
	}
	// Excludes itself, descendants 2/3/4, UNCLASSIFIED (8) and type 2 (9).
	if !equalIDs(sorted(got), []uint{5, 6, 7}) {
		t.Errorf("expected [5 6 7], got %v", sorted(got))
	}

	if ix.CanReparent(home, id(4)) {
		t.Error("a descendant must not become the parent")
	}
	if !ix.CanReparent(home, id(6)) {
		t.Error("Flights should be an allowed parent")
	}
	if !ix.CanReparent(home, nil) {
		t.Error("clearing the parent is always allowed")
	}
}

func TestFindByName(t *testing.T) {
	ix := New(sample())

	if c, ok := ix.FindByName(1, "Rent"); !ok || c.ID != 2 {
		t.Errorf("expected Rent (2), got %v %v", c.ID, ok)
	}
	if _, ok := ix.FindByName(1, "rent"); ok {
		t.Error("lookup is case-sensitive")
	}
	if _, ok := ix.FindByName(2, "Rent"); ok {
		t.Error("lookup is scoped to the type")
	}
}

func TestExpandWithDescendants(t *testing.T) {
	ix := New(sample())

	got := ix.ExpandWithDescendants([]uint{3, 1})
	if !equalIDs(sorted(got), []uint{1, 2, 3, 4}) {
		t.Errorf("expected [1 2 3 4], got %v", sorted(got))
	}
	if got[0] != 3 {
		t.Errorf("expected requested ids first, got %v", got)
	}
}
