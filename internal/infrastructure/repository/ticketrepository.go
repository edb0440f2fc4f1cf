package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"pulseboard/internal/domain/ticket"
	vo "pulseboard/internal/domain/ticket/valueobjects"
	"pulseboard/internal/infrastructure/persistence/mappers"
	"pulseboard/internal/infrastructure/persistence/models"
	"pulseboard/internal/shared/db"
)

// priorityRankExpr orders priorities high > medium > low > none in SQL.
const priorityRankExpr = "CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END"

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(r.mapper.ToModel(t)).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) UpdateContent(ctx context.Context, t *ticket.Ticket) error {
	return r.updateColumns(ctx, t.ID(), map[string]any{
		"title":       t.Title(),
		"description": t.Description(),
		"image":       t.Image(),
		"updated_at":  t.UpdatedAt(),
	})
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, t *ticket.Ticket) error {
	return r.updateColumns(ctx, t.ID(), map[string]any{
		"status":     t.Status().String(),
		"updated_at": t.UpdatedAt(),
	})
}

// updateColumns never touches votes, which only the vote ledger changes.
func (r *TicketRepository) updateColumns(ctx context.Context, id string, columns map[string]any) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.TicketModel{}).Where("id = ?", id).Updates(columns).Error; err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id string) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&models.VoteModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket votes: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&models.TicketModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket: %w", err)
		}
		return nil
	})
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id = ?", id).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// GetVotes reads the counter column directly.
func (r *TicketRepository) GetVotes(ctx context.Context, id string) (int, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Select("id", "votes").Where("id = ?", id).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read ticket votes: %w", err)
	}
	return model.Votes, nil
}

func (r *TicketRepository) GetImage(ctx context.Context, id string) ([]byte, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Select("id", "image").Where("id = ?", id).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket image: %w", err)
	}
	return model.Image, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.OrganizationID != "" {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}
	if filter.ReportedBy != "" {
		query = query.Where("reported_by = ?", filter.ReportedBy)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Tag != nil {
		query = query.Where("tag = ?", filter.Tag.String())
	}
	if strings.TrimSpace(filter.Search) != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where(
			"LOWER(title) LIKE ? ESCAPE '"+likeEscape+"' OR LOWER(description) LIKE ? ESCAPE '"+likeEscape+"'",
			pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	switch filter.Sort {
	case vo.SortMostVoted:
		query = query.Order("votes DESC")
	case vo.SortPriority:
		query = query.Order(priorityRankExpr + " DESC")
	}
	query = query.Order("created_at DESC").Order("id DESC")

	var list []*models.TicketModel
	if err := query.
		Scopes(db.Omit("image"), db.Paginate(filter.Page, filter.PageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *TicketRepository) ListForTriage(ctx context.Context, organizationID string, includeTriaged bool, limit int) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{}).
		Where("organization_id = ?", organizationID).
		Where("status <> ?", vo.StatusClosed.String())
	if !includeTriaged {
		query = query.Where("(triage_status IS NULL OR triage_status <> ?)", vo.TriageTriaged.String())
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.findInPromptOrder(query)
}

func (r *TicketRepository) ListByOrganization(ctx context.Context, organizationID string) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	return r.findInPromptOrder(tx.Model(&models.TicketModel{}).Where("organization_id = ?", organizationID))
}

func (r *TicketRepository) findInPromptOrder(query *gorm.DB) ([]*ticket.Ticket, error) {
	var list []*models.TicketModel
	if err := query.
		Scopes(db.Omit("image")).
		Order("created_at ASC").
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return r.mapper.ToDomainList(list)
}

// ApplyTriage scopes every update to the organization so a stray id from
// another organization cannot be touched.
func (r *TicketRepository) ApplyTriage(ctx context.Context, organizationID string, items []ticket.TriageUpdate, at time.Time) ([]ticket.TriageUpdate, error) {
	if len(items) == 0 {
		return nil, nil
	}

	at = at.UTC()
	var applied []ticket.TriageUpdate
	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			result := tx.Model(&models.TicketModel{}).
				Where("id = ? AND organization_id = ?", item.TicketID, organizationID).
				Updates(map[string]any{
					"priority":        item.Priority.String(),
					"tag":             item.Tag.String(),
					"triage_status":   vo.TriageTriaged.String(),
					"last_triaged_at": at,
					"updated_at":      at,
				})
			if result.Error != nil {
				return fmt.Errorf("failed to apply triage to %s: %w", item.TicketID, result.Error)
			}
			if result.RowsAffected > 0 {
				applied = append(applied, item)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return applied, nil
}
