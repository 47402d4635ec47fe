package models

import "strings"

const (
	// UnclassifiedCategoryName is reserved and never offered in pickers.
	UnclassifiedCategoryName = "UNCLASSIFIED"

	// StandardCategoryTypeName names the default classification axis.
	StandardCategoryTypeName = "standard"
)

// CategoryType groups categories into an independent classification axis.
type CategoryType struct {
	Base
	UserID      uint    `gorm:"not null;index" json:"user_id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description *string `json:"description"`
}

// IsStandard reports whether the type is the "standard" type (case-insensitive).
func (t CategoryType) IsStandard() bool {
	return strings.EqualFold(t.Name, StandardCategoryTypeName)
}

// Category is a node in a per-type category forest.
type Category struct {
	Base
	UserID   uint    `gorm:"not null;index" json:"user_id"`
	Name     string  `gorm:"size:255;not null" json:"name"`
	TypeID   uint    `gorm:"not null;index" json:"type_id"`
	ParentID *uint   `gorm:"index" json:"parent_id"`
	IconFile *string `gorm:"size:255" json:"icon_file"`

	// Children is only populated by tree endpoints.
	Children []Category `gorm:"-" json:"children,omitempty"`
}

// IsUnclassified reports whether c carries the reserved UNCLASSIFIED name.
func (c Category) IsUnclassified() bool {
	return c.Name == UnclassifiedCategoryName
}

// HasIcon reports whether the category has its own icon file.
func (c Category) HasIcon() bool {
	return c.IconFile != nil && *c.IconFile != ""
}
