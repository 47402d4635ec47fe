package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"financebook/internal/categorytree"
	"financebook/internal/models"
)

// Categories renders each category type as a tree of its categories.
// Every node shows its resolved icon, marked when inherited from an
// ancestor.
func (r *Renderer) Categories(types []models.CategoryType, categories []models.Category) string {
	ix := categorytree.New(categories)

	var out []string
	for _, t := range types {
		root := tree.Root(r.styles.TreeRoot.Render(r.title.String(t.Name))).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(r.styles.Border)
		forest := ix.Forest(t.ID)
		if len(forest) == 0 {
			root.Child(r.styles.Muted.Render("(empty)"))
		}
		for _, c := range forest {
			root.Child(r.categoryNode(ix, c))
		}
		out = append(out, root.String())
	}
	if len(out) == 0 {
		return r.styles.Muted.Render("No category types.")
	}
	return strings.Join(out, "\n\n")
}

func (r *Renderer) categoryNode(ix *categorytree.Index, c models.Category) any {
	label := r.categoryLabel(ix, c)
	if len(c.Children) == 0 {
		return label
	}
	node := tree.Root(label)
	for _, child := range c.Children {
		node.Child(r.categoryNode(ix, child))
	}
	return node
}

func (r *Renderer) categoryLabel(ix *categorytree.Index, c models.Category) string {
	label := c.Name
	if c.IsUnclassified() {
		label = r.styles.Muted.Render(label)
	}
	icon, ok := ix.ResolveIcon(c)
	if !ok {
		return label
	}
	ref := icon
	if r.iconURL != "" {
		ref = categorytree.IconURL(r.iconURL, icon)
	}
	if !c.HasIcon() {
		ref += ", inherited"
	}
	return label + " " + r.styles.Icon.Render("["+ref+"]")
}
