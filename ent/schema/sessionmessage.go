package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionMessage holds the schema definition for the SessionMessage entity.
// The persisted main dialog. Immutable after insert. Messages produced
// inside a rabbit hole are NOT stored here; they live in the rabbit-hole
// event's conversation column.
type SessionMessage struct {
	ent.Schema
}

// Fields of the SessionMessage.
func (SessionMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("sequence_number").
			Immutable().
			Comment("Session-scoped order; message indices in outcomes refer to this"),
		field.Enum("role").
			Values("user", "assistant", "system").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.Int("token_count").
			Optional().
			Nillable().
			Immutable().
			Comment("Total tokens for assistant turns, when the provider reports usage"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SessionMessage.
func (SessionMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", StudySession.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SessionMessage.
func (SessionMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Main-dialog order
		index.Fields("session_id", "sequence_number").
			Unique(),
	}
}
