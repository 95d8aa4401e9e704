package services

import (
	"context"
	"fmt"

	"github.com/recallkit/recallkit/ent"
	"github.com/recallkit/recallkit/ent/sessionmessage"
	"github.com/recallkit/recallkit/pkg/engine"
	"github.com/recallkit/recallkit/pkg/llm"
)

// MessageRepo implements engine.MessageRepo over Ent.
type MessageRepo struct {
	client *ent.Client
}

// NewMessageRepo creates a MessageRepo.
func NewMessageRepo(client *ent.Client) *MessageRepo {
	return &MessageRepo{client: client}
}

func (r *MessageRepo) Create(ctx context.Context, m *engine.Message) error {
	create := r.client.SessionMessage.Create().
		SetID(m.ID).
		SetSessionID(m.SessionID).
		SetSequenceNumber(m.Index).
		SetRole(sessionmessage.Role(m.Role)).
		SetContent(m.Content).
		SetCreatedAt(m.CreatedAt)
	if m.TokenCount != nil {
		create = create.SetTokenCount(*m.TokenCount)
	}
	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *MessageRepo) ListBySession(ctx context.Context, sessionID string) ([]*engine.Message, error) {
	rows, err := r.client.SessionMessage.Query().
		Where(sessionmessage.SessionID(sessionID)).
		Order(ent.Asc(sessionmessage.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	out := make([]*engine.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, &engine.Message{
			ID:         row.ID,
			SessionID:  row.SessionID,
			Index:      row.SequenceNumber,
			Role:       llm.Role(row.Role),
			Content:    row.Content,
			TokenCount: row.TokenCount,
			CreatedAt:  row.CreatedAt,
		})
	}
	return out, nil
}
