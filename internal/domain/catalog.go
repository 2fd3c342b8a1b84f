package domain

import "time"

// Space is a rentable studio room. Priced per hour or per day depending on
// the booking mode.
type Space struct {
	ID           string    `json:"id" gorm:"primaryKey" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Description  string    `json:"description,omitempty"`
	AreaSqm      int       `json:"area_sqm,omitempty"`
	PricePerHour int64     `json:"price_per_hour" validate:"gte=0"`
	PricePerDay  int64     `json:"price_per_day" validate:"gte=0"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Equipment is an add-on item (lighting, backdrops, cameras) metered the same
// way as spaces.
type Equipment struct {
	ID           string    `json:"id" gorm:"primaryKey" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Category     string    `json:"category,omitempty"`
	PricePerHour int64     `json:"price_per_hour" validate:"gte=0"`
	PricePerDay  int64     `json:"price_per_day" validate:"gte=0"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Prop is an add-on item with a flat daily rate only. Props are not
// time-metered.
type Prop struct {
	ID          string    `json:"id" gorm:"primaryKey" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Category    string    `json:"category,omitempty"`
	PricePerDay int64     `json:"price_per_day" validate:"gte=0"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Catalog is the read-only snapshot a wizard session works against. It is
// loaded once at session creation and never mutated afterwards. Currency is
// one code for the whole system, not per item.
type Catalog struct {
	Spaces    []Space     `json:"spaces"`
	Equipment []Equipment `json:"equipment"`
	Props     []Prop      `json:"props"`
	Currency  string      `json:"currency"`

	spaceByID     map[string]*Space
	equipmentByID map[string]*Equipment
	propByID      map[string]*Prop
}

// NewCatalog builds the lookup maps once so per-keystroke price recomputation
// stays O(selection size).
func NewCatalog(spaces []Space, equipment []Equipment, props []Prop, currency string) *Catalog {
	c := &Catalog{
		Spaces:        spaces,
		Equipment:     equipment,
		Props:         props,
		Currency:      currency,
		spaceByID:     make(map[string]*Space, len(spaces)),
		equipmentByID: make(map[string]*Equipment, len(equipment)),
		propByID:      make(map[string]*Prop, len(props)),
	}
	for i := range c.Spaces {
		c.spaceByID[c.Spaces[i].ID] = &c.Spaces[i]
	}
	for i := range c.Equipment {
		c.equipmentByID[c.Equipment[i].ID] = &c.Equipment[i]
	}
	for i := range c.Props {
		c.propByID[c.Props[i].ID] = &c.Props[i]
	}
	return c
}

func (c *Catalog) Space(id string) (*Space, bool) {
	s, ok := c.spaceByID[id]
	return s, ok
}

func (c *Catalog) EquipmentItem(id string) (*Equipment, bool) {
	e, ok := c.equipmentByID[id]
	return e, ok
}

func (c *Catalog) Prop(id string) (*Prop, bool) {
	p, ok := c.propByID[id]
	return p, ok
}
