package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Position is a single placing inside a Podium. It has no identity of its own.
type Position struct {
	Name    string `json:"name" bson:"name" validate:"required"`
	Details string `json:"details,omitempty" bson:"details,omitempty"`
}

// Podium holds the first three placings of one bracket.
type Podium struct {
	First  *Position `json:"first,omitempty" bson:"first,omitempty"`
	Second *Position `json:"second,omitempty" bson:"second,omitempty"`
	Third  *Position `json:"third,omitempty" bson:"third,omitempty"`
}

// Places returns the recorded placings in podium order, labelled.
func (p *Podium) Places() []Place {
	if p == nil {
		return nil
	}
	var places []Place
	for _, place := range []Place{{"1st", p.First}, {"2nd", p.Second}, {"3rd", p.Third}} {
		if place.Position != nil {
			places = append(places, place)
		}
	}
	return places
}

type Place struct {
	Label    string
	Position *Position
}

func (p *Podium) normalize() {
	if p == nil {
		return
	}
	for _, pos := range []*Position{p.First, p.Second, p.Third} {
		if pos != nil {
			pos.Name = strings.TrimSpace(pos.Name)
			pos.Details = strings.TrimSpace(pos.Details)
		}
	}
}

type Result struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" bson:"_id" json:"id"`
	CategoryID string    `gorm:"type:varchar(36);not null;index" bson:"category" json:"categoryId"`
	Category   *Category `gorm:"-" bson:"-" json:"category"`
	EventName  string    `gorm:"not null" bson:"eventName" json:"eventName"`
	EventDate  time.Time `gorm:"not null" bson:"eventDate" json:"eventDate"`
	Individual *Podium   `gorm:"column:individual_podium;type:text;serializer:json" bson:"individual" json:"individual"`
	Group      *Podium   `gorm:"column:group_podium;type:text;serializer:json" bson:"group" json:"group"`
	CreatedAt  time.Time `gorm:"index" bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (result *Result) BeforeCreate(tx *gorm.DB) (err error) {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	return
}

// CategoryName is the display name of the resolved category, or a placeholder
// when the reference is dangling.
func (result *Result) CategoryName() string {
	if result.Category == nil {
		return "Unknown category"
	}
	return result.Category.Name
}

// ResultInput is the write shape of a Result. Create and update share it, so
// every required field is required on update as well.
type ResultInput struct {
	Category   string  `json:"category" validate:"required,uuid"`
	EventName  string  `json:"eventName" validate:"required"`
	EventDate  string  `json:"eventDate" validate:"required,eventdate"`
	Individual *Podium `json:"individual"`
	Group      *Podium `json:"group"`

	fields fieldSet
}

func (in *ResultInput) UnmarshalJSON(data []byte) error {
	type plain ResultInput
	fields, err := decodeTracked(data, (*plain)(in))
	if err != nil {
		return err
	}
	in.fields = fields
	return nil
}

func (in *ResultInput) Normalize() {
	in.Category = strings.TrimSpace(in.Category)
	in.EventName = strings.TrimSpace(in.EventName)
	in.EventDate = strings.TrimSpace(in.EventDate)
	in.Individual.normalize()
	in.Group.normalize()
}

func (in *ResultInput) Has(field string) bool {
	return in.fields.has(field)
}

func (in *ResultInput) NewResult() (*Result, error) {
	result := &Result{}
	if err := in.ApplyTo(result); err != nil {
		return nil, err
	}
	result.Individual = in.Individual
	result.Group = in.Group
	return result, nil
}

// ApplyTo replaces the required fields of result and, when supplied, the
// individual and group brackets. An explicit null bracket clears it.
func (in *ResultInput) ApplyTo(result *Result) error {
	eventDate, err := ParseEventDate(in.EventDate)
	if err != nil {
		return err
	}

	result.CategoryID = in.Category
	result.EventName = in.EventName
	result.EventDate = eventDate
	if in.Has("individual") {
		result.Individual = in.Individual
	}
	if in.Has("group") {
		result.Group = in.Group
	}
	return nil
}
