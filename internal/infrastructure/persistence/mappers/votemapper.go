package mappers

import (
	"pulseboard/internal/domain/vote"
	"pulseboard/internal/infrastructure/persistence/models"
)

func VoteToModel(v *vote.Vote) *models.VoteModel {
	return &models.VoteModel{
		ID:        v.ID(),
		UserID:    v.UserID(),
		TicketID:  v.TicketID(),
		CreatedAt: v.CreatedAt(),
		UpdatedAt: v.UpdatedAt(),
	}
}

func VoteToDomain(m *models.VoteModel) *vote.Vote {
	return vote.ReconstructVote(m.ID, m.UserID, m.TicketID, m.CreatedAt.UTC(), m.UpdatedAt.UTC())
}
