package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RabbitholeEvent holds the schema definition for the RabbitholeEvent entity.
// A detected conversational tangent with its own agent and conversation.
// At most one event per session may be active at a time (sequential, never
// nested); the engine enforces this and a partial unique index on
// (session_id) WHERE status = 'active', created outside Ent by
// database.CreatePartialUniqueIndexes, backs it up.
type RabbitholeEvent struct {
	ent.Schema
}

// Fields of the RabbitholeEvent.
func (RabbitholeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rabbithole_event_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("topic").
			Comment("Normalized tangent topic, used for per-session dedupe"),
		field.Int("trigger_message_index").
			Comment("Index into the persisted main dialog where the tangent began"),
		field.Int("return_message_index").
			Optional().
			Nillable(),
		field.Int("depth").
			Default(1).
			Comment("1 (1-2 exchanges), 2 (3-5), 3 (>=6)"),
		field.JSON("related_point_ids", []string{}).
			Optional(),
		field.Bool("user_initiated").
			Default(false),
		field.Enum("status").
			Values("active", "returned", "abandoned").
			Default("active"),
		field.JSON("conversation", []map[string]interface{}{}).
			Optional().
			Comment("Dedicated agent dialog: [{role, content}]; never mixed into session_messages"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RabbitholeEvent.
func (RabbitholeEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", StudySession.Type).
			Ref("rabbithole_events").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RabbitholeEvent.
func (RabbitholeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "status"),
	}
}
