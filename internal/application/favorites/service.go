package favorites

import (
	"context"
	"errors"
	"fmt"

	"designer-shortlist/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDesignerNotFound = errors.New("designer not found")
	ErrInvalidAction    = errors.New("invalid action")
)

type Service struct {
	DB *gorm.DB
}

// Result is what POST /api/shortlist reports back.
type Result struct {
	Message          string `json:"message"`
	DesignerID       int64  `json:"designer_id"`
	UserID           string `json:"user_id"`
	ShortlistedCount int64  `json:"shortlisted_count"`
}

// Manage adds or removes designerID from the user's shortlist. Adding twice and removing an
// absent entry both succeed. The designer must exist (active or not); it is checked before the action.
func (s *Service) Manage(ctx context.Context, designerID int64, action domain.ShortlistAction, userID string) (*Result, error) {
	if userID == "" {
		userID = domain.DefaultUserID
	}
	db := s.DB.WithContext(ctx)

	var exists int64
	if err := db.Model(&domain.DesignerRecord{}).Where("id = ?", designerID).Count(&exists).Error; err != nil {
		return nil, fmt.Errorf("check designer %d: %w", designerID, err)
	}
	if exists == 0 {
		return nil, ErrDesignerNotFound
	}

	var message string
	switch action {
	case domain.ActionAdd:
		entry := domain.ShortlistEntry{UserID: userID, DesignerID: designerID}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
			return nil, fmt.Errorf("add to shortlist: %w", err)
		}
		message = "Designer added to shortlist"
	case domain.ActionRemove:
		if err := db.Where("user_id = ? AND designer_id = ?", userID, designerID).Delete(&domain.ShortlistEntry{}).Error; err != nil {
			return nil, fmt.Errorf("remove from shortlist: %w", err)
		}
		message = "Designer removed from shortlist"
	default:
		return nil, ErrInvalidAction
	}

	count, err := s.Count(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Result{
		Message:          message,
		DesignerID:       designerID,
		UserID:           userID,
		ShortlistedCount: count,
	}, nil
}

// Count returns the number of shortlist entries of userID.
func (s *Service) Count(ctx context.Context, userID string) (int64, error) {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&domain.ShortlistEntry{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count shortlist: %w", err)
	}
	return n, nil
}

// List returns the active designers shortlisted by userID, in designer id order.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Designer, error) {
	var rows []domain.DesignerRecord
	err := s.DB.WithContext(ctx).
		Joins("JOIN shortlist_entries ON shortlist_entries.designer_id = designers.id").
		Where("shortlist_entries.user_id = ? AND designers.is_active = ?", userID, true).
		Order("designers.id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load shortlist of %s: %w", userID, err)
	}
	out := make([]domain.Designer, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Designer())
	}
	return out, nil
}
