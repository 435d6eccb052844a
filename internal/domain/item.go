package domain

import "time"

type ItemType string

const (
	ItemTop       ItemType = "top"
	ItemBottom    ItemType = "bottom"
	ItemFootwear  ItemType = "footwear"
	ItemOuterwear ItemType = "outerwear"
	ItemAccessory ItemType = "accessory"
	ItemHeadwear  ItemType = "headwear"
)

type DressCode string

const (
	DressCasual         DressCode = "casual"
	DressBusinessCasual DressCode = "business_casual"
	DressFormal         DressCode = "formal"
	DressAthletic       DressCode = "athletic"
	DressLoungewear     DressCode = "loungewear"
)

type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "low"
	ActivityMedium ActivityLevel = "medium"
	ActivityHigh   ActivityLevel = "high"
)

// ClothingItem is a read-only wardrobe entry. Insulation is nil until the
// resolver derives a value; the engine never writes back to the item.
type ClothingItem struct {
	ID         int64       `json:"id"`
	UserID     int64       `json:"user_id"`
	Type       ItemType    `json:"type"`
	Category   string      `json:"category"`
	Material   string      `json:"material"`
	Color      string      `json:"color"`
	Insulation *float64    `json:"insulation,omitempty"`
	StyleTags  []string    `json:"style_tags"`
	DressCodes []DressCode `json:"dress_codes"`
	SeasonTags []string    `json:"season_tags"`
	LastWorn   *time.Time  `json:"last_worn,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// HasDressCode reports whether any of the item's dress-code tags matches code.
func (c ClothingItem) HasDressCode(code DressCode) bool {
	for _, dc := range c.DressCodes {
		if dc == code {
			return true
		}
	}
	return false
}
