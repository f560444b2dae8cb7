package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" bson:"_id" json:"id"`
	Name        string    `gorm:"not null" bson:"name" json:"name"`
	Description string    `gorm:"not null;default:''" bson:"description" json:"description"`
	CreatedAt   time.Time `gorm:"index" bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (category *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	return
}

// CategoryInput is the write shape of a Category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`

	fields fieldSet
}

func (in *CategoryInput) UnmarshalJSON(data []byte) error {
	type plain CategoryInput
	fields, err := decodeTracked(data, (*plain)(in))
	if err != nil {
		return err
	}
	in.fields = fields
	return nil
}

// Normalize trims surrounding whitespace from every string field.
func (in *CategoryInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
}

// Has reports whether the named JSON key was present in the decoded body.
// Inputs built in Go rather than decoded report every field as present.
func (in *CategoryInput) Has(field string) bool {
	return in.fields.has(field)
}

// NewCategory builds an unsaved Category from a validated input.
func (in *CategoryInput) NewCategory() *Category {
	return &Category{
		Name:        in.Name,
		Description: in.Description,
	}
}

// ApplyTo replaces the fields of category named by the input. The name is
// always replaced; the description only when it was supplied.
func (in *CategoryInput) ApplyTo(category *Category) {
	category.Name = in.Name
	if in.Has("description") {
		category.Description = in.Description
	}
}
