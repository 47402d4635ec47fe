// Package categorytree computes ancestry, descendants and inherited icons
// over a flat category list.
//
// An Index is a snapshot: it is built once from whatever the API returned
// and never patched. After a mutation the caller refetches and builds a
// new Index. Every walk keeps a visited set, so cycles or dangling
// parent_id references in the data end the walk instead of looping.
package categorytree

import (
	"net/url"
	"strings"

	"financebook/internal/models"
)

// Index is an immutable view over a flat list of categories.
type Index struct {
	byID     map[uint]models.Category
	children map[uint][]uint
	order    []uint
}

// New builds an Index. Later duplicates of an id replace earlier ones.
func New(categories []models.Category) *Index {
	ix := &Index{
		byID:     make(map[uint]models.Category, len(categories)),
		children: make(map[uint][]uint),
		order:    make([]uint, 0, len(categories)),
	}

	for _, c := range categories {
		if _, seen := ix.byID[c.ID]; !seen {
			ix.order = append(ix.order, c.ID)
		}
		ix.byID[c.ID] = c
	}
	for _, id := range ix.order {
		c := ix.byID[id]
		if c.ParentID != nil {
			ix.children[*c.ParentID] = append(ix.children[*c.ParentID], id)
		}
	}
	return ix
}

// Len returns the number of categories in the snapshot.
func (ix *Index) Len() int { return len(ix.order) }

// Get returns the category with the given id.
func (ix *Index) Get(id uint) (models.Category, bool) {
	c, ok := ix.byID[id]
	return c, ok
}

// All returns the categories in input order.
func (ix *Index) All() []models.Category {
	out := make([]models.Category, 0, len(ix.order))
	for _, id := range ix.order {
		out = append(out, ix.byID[id])
	}
	return out
}

// Children returns the direct children of id in input order.
func (ix *Index) Children(id uint) []uint {
	return append([]uint(nil), ix.children[id]...)
}

// Descendants returns every id reachable below id, without id itself and
// without duplicates.
func (ix *Index) Descendants(id uint) []uint {
	visited := map[uint]bool{id: true}
	var out []uint

	stack := append([]uint(nil), ix.children[id]...)
	for len(stack) > 0 {
		n := len(stack) - 1
		current := stack[n]
		stack = stack[:n]

		if visited[current] {
			continue
		}
		visited[current] = true
		out = append(out, current)
		stack = append(stack, ix.children[current]...)
	}
	return out
}

// DescendantSet returns Descendants as a set.
func (ix *Index) DescendantSet(id uint) map[uint]bool {
	ids := ix.Descendants(id)
	set := make(map[uint]bool, len(ids))
	for _, d := range ids {
		set[d] = true
	}
	return set
}

// ExpandWithDescendants returns ids followed by all their descendants,
// deduplicated, keeping first-seen order.
func (ix *Index) ExpandWithDescendants(ids []uint) []uint {
	seen := make(map[uint]bool)
	var out []uint
	add := func(id uint) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range ids {
		add(id)
		for _, d := range ix.Descendants(id) {
			add(d)
		}
	}
	return out
}

// Ancestors returns the parent chain of c, nearest first. The walk stops
// at a root, at a parent missing from the snapshot, or on a cycle.
func (ix *Index) Ancestors(c models.Category) []models.Category {
	visited := map[uint]bool{c.ID: true}
	var out []models.Category

	current := c
	for current.ParentID != nil {
		parentID := *current.ParentID
		if visited[parentID] {
			break
		}
		parent, ok := ix.byID[parentID]
		if !ok {
			break
		}
		visited[parentID] = true
		out = append(out, parent)
		current = parent
	}
	return out
}

// Path returns the root-first chain ending at c, for breadcrumbs.
func (ix *Index) Path(c models.Category) []models.Category {
	ancestors := ix.Ancestors(c)
	out := make([]models.Category, 0, len(ancestors)+1)
	for i := len(ancestors) - 1; i >= 0; i-- {
		out = append(out, ancestors[i])
	}
	return append(out, c)
}

// ResolveIcon returns the icon file of c, or of its nearest ancestor that
// has one. ok is false when no icon exists up to the root or up to a
// dangling parent reference.
func (ix *Index) ResolveIcon(c models.Category) (iconFile string, ok bool) {
	if c.HasIcon() {
		return *c.IconFile, true
	}
	for _, a := range ix.Ancestors(c) {
		if a.HasIcon() {
			return *a.IconFile, true
		}
	}
	return "", false
}

// ResolveIconURL is ResolveIcon rendered as a static-asset URL.
func (ix *Index) ResolveIconURL(baseURL string, c models.Category) (string, bool) {
	icon, ok := ix.ResolveIcon(c)
	if !ok {
		return "", false
	}
	return IconURL(baseURL, icon), true
}

// IconURL builds the download URL of a static icon file.
func IconURL(baseURL, iconFile string) string {
	return strings.TrimRight(baseURL, "/") + "/download_static/" + url.PathEscape(iconFile)
}

// ValidParents lists the categories that c may be re-parented under: same
// type, not c itself, not one of its descendants, not UNCLASSIFIED.
func (ix *Index) ValidParents(c models.Category) []models.Category {
	excluded := ix.DescendantSet(c.ID)
	excluded[c.ID] = true

	var out []models.Category
	for _, id := range ix.order {
		candidate := ix.byID[id]
		if candidate.TypeID != c.TypeID || excluded[id] || candidate.IsUnclassified() {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

// CanReparent reports whether parentID is an allowed parent for c.
// A nil parent (making c a root) is always allowed.
func (ix *Index) CanReparent(c models.Category, parentID *uint) bool {
	if parentID == nil {
		return true
	}
	for _, p := range ix.ValidParents(c) {
		if p.ID == *parentID {
			return true
		}
	}
	return false
}

// FindByName looks up a category by exact name within a type.
func (ix *Index) FindByName(typeID uint, name string) (models.Category, bool) {
	for _, id := range ix.order {
		c := ix.byID[id]
		if c.TypeID == typeID && c.Name == name {
			return c, true
		}
	}
	return models.Category{}, false
}

// ByType returns the categories of one type in input order.
func (ix *Index) ByType(typeID uint) []models.Category {
	var out []models.Category
	for _, id := range ix.order {
		if c := ix.byID[id]; c.TypeID == typeID {
			out = append(out, c)
		}
	}
	return out
}

// Selectable returns the categories offered in pickers.
func (ix *Index) Selectable() []models.Category {
	return Selectable(ix.All())
}

// NameMap maps category ids to names, for display lookups.
func (ix *Index) NameMap() map[uint]string {
	out := make(map[uint]string, len(ix.byID))
	for id, c := range ix.byID {
		out[id] = c.Name
	}
	return out
}
