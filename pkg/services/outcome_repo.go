package services

import (
	"context"
	"fmt"

	"github.com/recallkit/recallkit/ent"
	"github.com/recallkit/recallkit/ent/recalloutcome"
	"github.com/recallkit/recallkit/pkg/engine"
)

// OutcomeRepo implements engine.OutcomeRepo over Ent.
type OutcomeRepo struct {
	client *ent.Client
}

// NewOutcomeRepo creates an OutcomeRepo.
func NewOutcomeRepo(client *ent.Client) *OutcomeRepo {
	return &OutcomeRepo{client: client}
}

func (r *OutcomeRepo) Create(ctx context.Context, o *engine.Outcome) error {
	create := r.client.RecallOutcome.Create().
		SetID(o.ID).
		SetSessionID(o.SessionID).
		SetRecallPointID(o.RecallPointID).
		SetSuccess(o.Success).
		SetConfidence(o.Confidence).
		SetMessageIndexStart(o.MessageIndexStart).
		SetMessageIndexEnd(o.MessageIndexEnd).
		SetTimeSpentMs(o.TimeSpentMS).
		SetCreatedAt(o.CreatedAt)
	if o.Rating != nil {
		create = create.SetRating(recalloutcome.Rating(*o.Rating))
	}
	if o.Reasoning != "" {
		create = create.SetReasoning(o.Reasoning)
	}
	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create recall outcome: %w", err)
	}
	return nil
}

// CreateMany writes a batch of outcomes in one statement.
func (r *OutcomeRepo) CreateMany(ctx context.Context, outcomes []*engine.Outcome) error {
	if len(outcomes) == 0 {
		return nil
	}
	builders := make([]*ent.RecallOutcomeCreate, 0, len(outcomes))
	for _, o := range outcomes {
		create := r.client.RecallOutcome.Create().
			SetID(o.ID).
			SetSessionID(o.SessionID).
			SetRecallPointID(o.RecallPointID).
			SetSuccess(o.Success).
			SetConfidence(o.Confidence).
			SetMessageIndexStart(o.MessageIndexStart).
			SetMessageIndexEnd(o.MessageIndexEnd).
			SetTimeSpentMs(o.TimeSpentMS).
			SetCreatedAt(o.CreatedAt)
		if o.Rating != nil {
			create = create.SetRating(recalloutcome.Rating(*o.Rating))
		}
		if o.Reasoning != "" {
			create = create.SetReasoning(o.Reasoning)
		}
		builders = append(builders, create)
	}
	if err := r.client.RecallOutcome.CreateBulk(builders...).Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create recall outcomes: %w", err)
	}
	return nil
}
