package domain

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Listing is one designer entry of the catalog as the client sees it.
// JSON names match the public API (/api/designers) and the cached payloads.
type Listing struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Rating      float64  `json:"rating"`
	Projects    int      `json:"projects"`
	Clients     int      `json:"clients"`
	Price       string   `json:"price"`
	PriceUnit   string   `json:"priceUnit"`
	Avatar      string   `json:"avatar"`
}

// Contact is the designer's public contact block.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Designer is the full API representation: the listing plus server-only details.
type Designer struct {
	Listing
	Portfolio []string  `json:"portfolio"`
	Contact   Contact   `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// DesignerRecord is the persisted designer row.
type DesignerRecord struct {
	ID           int64          `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name         string         `gorm:"column:name;not null"`
	Title        string         `gorm:"column:title;not null"`
	Location     string         `gorm:"column:location;not null"`
	Description  string         `gorm:"column:description;not null"`
	Tags         datatypes.JSON `gorm:"column:tags;type:json"`
	Rating       float64        `gorm:"column:rating;not null"`
	Projects     int            `gorm:"column:projects;not null"`
	Clients      int            `gorm:"column:clients;not null"`
	Price        string         `gorm:"column:price;not null"`
	PriceUnit    string         `gorm:"column:price_unit;not null"`
	Avatar       string         `gorm:"column:avatar;not null"`
	Portfolio    datatypes.JSON `gorm:"column:portfolio;type:json"`
	ContactEmail string         `gorm:"column:contact_email"`
	ContactPhone string         `gorm:"column:contact_phone"`
	IsActive     bool           `gorm:"column:is_active;not null"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
}

func (DesignerRecord) TableName() string {
	return "designers"
}

// BeforeCreate fills JSON columns that would otherwise be stored as NULL.
func (r *DesignerRecord) BeforeCreate(tx *gorm.DB) error {
	if len(r.Tags) == 0 {
		r.Tags = datatypes.JSON("[]")
	}
	if len(r.Portfolio) == 0 {
		r.Portfolio = datatypes.JSON("[]")
	}
	return nil
}

// NewDesignerRecord converts the API shape into a row.
func NewDesignerRecord(d Designer) DesignerRecord {
	return DesignerRecord{
		ID:           d.ID,
		Name:         d.Name,
		Title:        d.Title,
		Location:     d.Location,
		Description:  d.Description,
		Tags:         jsonStrings(d.Tags),
		Rating:       d.Rating,
		Projects:     d.Projects,
		Clients:      d.Clients,
		Price:        d.Price,
		PriceUnit:    d.PriceUnit,
		Avatar:       d.Avatar,
		Portfolio:    jsonStrings(d.Portfolio),
		ContactEmail: d.Contact.Email,
		ContactPhone: d.Contact.Phone,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
	}
}

// Designer converts a row into the API shape. Undecodable JSON columns read as empty.
func (r DesignerRecord) Designer() Designer {
	return Designer{
		Listing: Listing{
			ID:          r.ID,
			Name:        r.Name,
			Title:       r.Title,
			Location:    r.Location,
			Description: r.Description,
			Tags:        decodeStrings(r.Tags),
			Rating:      r.Rating,
			Projects:    r.Projects,
			Clients:     r.Clients,
			Price:       r.Price,
			PriceUnit:   r.PriceUnit,
			Avatar:      r.Avatar,
		},
		Portfolio: decodeStrings(r.Portfolio),
		Contact:   Contact{Email: r.ContactEmail, Phone: r.ContactPhone},
		CreatedAt: r.CreatedAt,
		IsActive:  r.IsActive,
	}
}

// PriceValue extracts the numeric part of a display price ("₹2,500" -> 2500).
// Returns false when the string carries no digits.
func PriceValue(price string) (int, bool) {
	n, seen := 0, false
	for _, r := range price {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			seen = true
		}
	}
	return n, seen
}

// Country returns the last comma-separated part of a location ("Mumbai, India" -> "India").
func Country(location string) string {
	parts := strings.Split(location, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}

func jsonStrings(s []string) datatypes.JSON {
	if s == nil {
		s = []string{}
	}
	b, _ := json.Marshal(s)
	return datatypes.JSON(b)
}

func decodeStrings(raw datatypes.JSON) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	_ = json.Unmarshal(raw, &out)
	if out == nil {
		out = []string{}
	}
	return out
}
