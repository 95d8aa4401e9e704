package services

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"

	"github.com/recallkit/recallkit/ent"
	"github.com/recallkit/recallkit/ent/predicate"
	"github.com/recallkit/recallkit/ent/recallpoint"
	"github.com/recallkit/recallkit/ent/sessionmessage"
	"github.com/recallkit/recallkit/ent/studysession"
)

// SearchService runs full-text content search over recall points and the
// persisted session dialog, backed by the GIN indexes created in
// CreateGINIndexes.
type SearchService struct {
	client *ent.Client
}

// NewSearchService creates a SearchService.
func NewSearchService(client *ent.Client) *SearchService {
	return &SearchService{client: client}
}

// PointHit is one recall point matching a search query.
type PointHit struct {
	ID      string `json:"id"`
	SetID   string `json:"set_id"`
	Content string `json:"content"`
	Context string `json:"context,omitempty"`
}

// MessageHit is one main-dialog message matching a search query.
type MessageHit struct {
	SessionID string `json:"session_id"`
	Index     int    `json:"index"`
	Role      string `json:"role"`
	Content   string `json:"content"`
}

// SearchResults groups hits by kind.
type SearchResults struct {
	Points   []*PointHit   `json:"points"`
	Messages []*MessageHit `json:"messages"`
}

const defaultSearchLimit = 20

// Search matches query against point content and session transcripts.
// setID, when non-empty, restricts both to one recall set.
func (s *SearchService) Search(ctx context.Context, query, setID string, limit int) (*SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, NewValidationError("query", "cannot be empty")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	points, err := s.searchPoints(ctx, query, setID, limit)
	if err != nil {
		return nil, err
	}
	messages, err := s.searchMessages(ctx, query, setID, limit)
	if err != nil {
		return nil, err
	}
	return &SearchResults{Points: points, Messages: messages}, nil
}

func (s *SearchService) searchPoints(ctx context.Context, query, setID string, limit int) ([]*PointHit, error) {
	q := s.client.RecallPoint.Query().
		Where(predicate.RecallPoint(tsMatch(recallpoint.FieldContent, query))).
		Order(ent.Asc(recallpoint.FieldCreatedAt)).
		Limit(limit)
	if setID != "" {
		q = q.Where(recallpoint.RecallSetID(setID))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search recall points: %w", err)
	}
	out := make([]*PointHit, 0, len(rows))
	for _, row := range rows {
		out = append(out, &PointHit{
			ID:      row.ID,
			SetID:   row.RecallSetID,
			Content: row.Content,
			Context: row.Context,
		})
	}
	return out, nil
}

func (s *SearchService) searchMessages(ctx context.Context, query, setID string, limit int) ([]*MessageHit, error) {
	q := s.client.SessionMessage.Query().
		Where(predicate.SessionMessage(tsMatch(sessionmessage.FieldContent, query))).
		Order(ent.Desc(sessionmessage.FieldCreatedAt)).
		Limit(limit)
	if setID != "" {
		q = q.Where(sessionmessage.HasSessionWith(studysession.RecallSetID(setID)))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search session messages: %w", err)
	}
	out := make([]*MessageHit, 0, len(rows))
	for _, row := range rows {
		out = append(out, &MessageHit{
			SessionID: row.SessionID,
			Index:     row.SequenceNumber,
			Role:      string(row.Role),
			Content:   row.Content,
		})
	}
	return out, nil
}

// tsMatch builds a to_tsvector @@ plainto_tsquery predicate against a
// text column. The expression matches the GIN index definitions so
// PostgreSQL can use them.
func tsMatch(column, query string) func(*sql.Selector) {
	return func(s *sql.Selector) {
		s.Where(sql.P(func(b *sql.Builder) {
			b.WriteString("to_tsvector('english', ")
			b.Ident(s.C(column))
			b.WriteString(") @@ plainto_tsquery('english', ")
			b.Arg(query)
			b.WriteString(")")
		}))
	}
}
