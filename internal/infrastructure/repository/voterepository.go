package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pulseboard/internal/domain/vote"
	"pulseboard/internal/infrastructure/persistence/mappers"
	"pulseboard/internal/infrastructure/persistence/models"
	"pulseboard/internal/shared/db"
	apperrors "pulseboard/internal/shared/errors"
)

// VoteRepository is the store half of the vote ledger. Every counter change
// is a relative UPDATE in the transaction that inserted or deleted the row.
type VoteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

func (r *VoteRepository) Add(ctx context.Context, v *vote.Vote) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mappers.VoteToModel(v)).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return vote.ErrAlreadyVoted
			}
			return fmt.Errorf("failed to insert vote: %w", err)
		}

		result := tx.Model(&models.TicketModel{}).
			Where("id = ?", v.TicketID()).
			UpdateColumn("votes", gorm.Expr("votes + ?", 1))
		if result.Error != nil {
			return fmt.Errorf("failed to increment votes: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("ticket not found")
		}
		return nil
	})
}

func (r *VoteRepository) Remove(ctx context.Context, userID, ticketID string) (bool, error) {
	removed := false
	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND ticket_id = ?", userID, ticketID).Delete(&models.VoteModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete vote: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			// a concurrent toggle already removed it
			return nil
		}
		removed = true

		if err := tx.Model(&models.TicketModel{}).
			Where("id = ? AND votes > 0", ticketID).
			UpdateColumn("votes", gorm.Expr("votes - ?", 1)).Error; err != nil {
			return fmt.Errorf("failed to decrement votes: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (r *VoteRepository) Exists(ctx context.Context, userID, ticketID string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.VoteModel{}).
		Where("user_id = ? AND ticket_id = ?", userID, ticketID).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check vote: %w", err)
	}
	return count > 0, nil
}

func (r *VoteRepository) VotedTicketIDs(ctx context.Context, userID string, ticketIDs []string) (map[string]bool, error) {
	voted := make(map[string]bool, len(ticketIDs))
	if userID == "" || len(ticketIDs) == 0 {
		return voted, nil
	}

	var ids []string
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.VoteModel{}).
		Where("user_id = ? AND ticket_id IN ?", userID, ticketIDs).
		Pluck("ticket_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list voted tickets: %w", err)
	}
	for _, id := range ids {
		voted[id] = true
	}
	return voted, nil
}

func (r *VoteRepository) CountByTicket(ctx context.Context, ticketID string) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.VoteModel{}).Where("ticket_id = ?", ticketID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}
