package categorytree

import (
	"strings"

	"financebook/internal/models"
)

// Tree returns the category id with its subtree nested in Children.
func (ix *Index) Tree(id uint) (models.Category, bool) {
	c, ok := ix.byID[id]
	if !ok {
		return models.Category{}, false
	}
	return ix.nest(c, map[uint]bool{}), true
}

// Forest returns the nested trees of one type. A category is a root when
// it has no parent or its parent is not part of the snapshot.
func (ix *Index) Forest(typeID uint) []models.Category {
	var out []models.Category
	visited := map[uint]bool{}
	for _, id := range ix.order {
		c := ix.byID[id]
		if c.TypeID != typeID || !ix.isRoot(c) {
			continue
		}
		out = append(out, ix.nest(c, visited))
	}
	return out
}

func (ix *Index) isRoot(c models.Category) bool {
	if c.ParentID == nil {
		return true
	}
	_, ok := ix.byID[*c.ParentID]
	return !ok
}

func (ix *Index) nest(c models.Category, visited map[uint]bool) models.Category {
	visited[c.ID] = true
	c.Children = nil
	for _, childID := range ix.children[c.ID] {
		if visited[childID] {
			continue
		}
		c.Children = append(c.Children, ix.nest(ix.byID[childID], visited))
	}
	return c
}

// Flatten walks nested trees depth-first and returns every node once, with
// Children cleared.
func Flatten(trees []models.Category) []models.Category {
	var out []models.Category
	seen := map[uint]bool{}

	var walk func(nodes []models.Category)
	walk = func(nodes []models.Category) {
		for _, n := range nodes {
			if seen[n.ID] {
				continue
			}
			seen[n.ID] = true
			children := n.Children
			n.Children = nil
			out = append(out, n)
			walk(children)
		}
	}
	walk(trees)
	return out
}

// Selectable drops the reserved UNCLASSIFIED category.
func Selectable(categories []models.Category) []models.Category {
	out := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if !c.IsUnclassified() {
			out = append(out, c)
		}
	}
	return out
}

// SearchPrefix returns selectable categories whose name starts with query,
// ignoring case. An empty query matches everything.
func SearchPrefix(categories []models.Category, query string) []models.Category {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.Category
	for _, c := range Selectable(categories) {
		if strings.HasPrefix(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

// StandardType picks the type named "standard" (any case), falling back
// to the first type. ok is false only when types is empty.
func StandardType(types []models.CategoryType) (models.CategoryType, bool) {
	for _, t := range types {
		if t.IsStandard() {
			return t, true
		}
	}
	if len(types) > 0 {
		return types[0], true
	}
	return models.CategoryType{}, false
}
