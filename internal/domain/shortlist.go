package domain

import (
	"time"
)

// ShortlistAction is the mutation requested on POST /api/shortlist.
type ShortlistAction string

const (
	ActionAdd    ShortlistAction = "add"
	ActionRemove ShortlistAction = "remove"
)

// Valid reports whether a is one of the supported actions.
func (a ShortlistAction) Valid() bool {
	return a == ActionAdd || a == ActionRemove
}

// DefaultUserID is used when a shortlist request names no user.
const DefaultUserID = "default_user"

// ShortlistEntry is one (user, designer) shortlist membership.
type ShortlistEntry struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	UserID     string    `gorm:"column:user_id;not null;uniqueIndex:idx_user_designer"`
	DesignerID int64     `gorm:"column:designer_id;not null;index;uniqueIndex:idx_user_designer"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (ShortlistEntry) TableName() string {
	return "shortlist_entries"
}
