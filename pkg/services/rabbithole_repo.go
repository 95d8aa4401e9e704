package services

import (
	"context"
	"fmt"

	"github.com/recallkit/recallkit/ent"
	"github.com/recallkit/recallkit/ent/rabbitholeevent"
	"github.com/recallkit/recallkit/pkg/engine"
)

// RabbitholeRepo implements engine.RabbitholeRepo over Ent.
type RabbitholeRepo struct {
	client *ent.Client
}

// NewRabbitholeRepo creates a RabbitholeRepo.
func NewRabbitholeRepo(client *ent.Client) *RabbitholeRepo {
	return &RabbitholeRepo{client: client}
}

func (r *RabbitholeRepo) Create(ctx context.Context, rh *engine.Rabbithole) error {
	create := r.client.RabbitholeEvent.Create().
		SetID(rh.ID).
		SetSessionID(rh.SessionID).
		SetTopic(rh.Topic).
		SetTriggerMessageIndex(rh.TriggerMessageIndex).
		SetDepth(rh.Depth).
		SetRelatedPointIds(rh.RelatedPointIDs).
		SetUserInitiated(rh.UserInitiated).
		SetStatus(rabbitholeevent.Status(rh.Status)).
		SetCreatedAt(rh.CreatedAt)
	if rh.ReturnMessageIndex != nil {
		create = create.SetReturnMessageIndex(*rh.ReturnMessageIndex)
	}
	if len(rh.Conversation) > 0 {
		create = create.SetConversation(conversationToJSON(rh.Conversation))
	}
	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create rabbithole event: %w", err)
	}
	return nil
}

func (r *RabbitholeRepo) UpdateStatus(ctx context.Context, eventID string, status engine.RabbitholeStatus, returnMessageIndex *int) error {
	update := r.client.RabbitholeEvent.UpdateOneID(eventID).
		SetStatus(rabbitholeevent.Status(status))
	if returnMessageIndex != nil {
		update = update.SetReturnMessageIndex(*returnMessageIndex)
	}
	err := update.Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func (r *RabbitholeRepo) UpdateConversation(ctx context.Context, eventID string, conversation []engine.AgentTurn) error {
	err := r.client.RabbitholeEvent.UpdateOneID(eventID).
		SetConversation(conversationToJSON(conversation)).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func conversationToJSON(turns []engine.AgentTurn) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(turns))
	for _, turn := range turns {
		out = append(out, map[string]interface{}{
			"role":    string(turn.Role),
			"content": turn.Content,
		})
	}
	return out
}
