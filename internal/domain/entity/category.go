package entity

import "time"

// Category agrupa productos dentro de un negocio.
type Category struct {
	ID         string    `json:"-"`
	BusinessID string    `json:"-"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
	IsActive   bool      `json:"-"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ColorCode   string `json:"color_code,omitempty"` // color para la UI del POS
	SortOrder   int    `json:"sort_order"`
	ParentID    string `json:"parent_id,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}
