// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// RabbitholeEventsColumns holds the columns for the "rabbithole_events" table.
	RabbitholeEventsColumns = []*schema.Column{
		{Name: "rabbithole_event_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "trigger_message_index", Type: field.TypeInt},
		{Name: "return_message_index", Type: field.TypeInt, Nullable: true},
		{Name: "depth", Type: field.TypeInt, Default: 1},
		{Name: "related_point_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "user_initiated", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "returned", "abandoned"}, Default: "active"},
		{Name: "conversation", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// RabbitholeEventsTable holds the schema information for the "rabbithole_events" table.
	RabbitholeEventsTable = &schema.Table{
		Name:       "rabbithole_events",
		Columns:    RabbitholeEventsColumns,
		PrimaryKey: []*schema.Column{RabbitholeEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "rabbithole_events_study_sessions_rabbithole_events",
				Columns:    []*schema.Column{RabbitholeEventsColumns[10]},
				RefColumns: []*schema.Column{StudySessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "rabbitholeevent_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{RabbitholeEventsColumns[10], RabbitholeEventsColumns[7]},
			},
		},
	}
	// RecallOutcomesColumns holds the columns for the "recall_outcomes" table.
	RecallOutcomesColumns = []*schema.Column{
		{Name: "recall_outcome_id", Type: field.TypeString, Unique: true},
		{Name: "success", Type: field.TypeBool},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "rating", Type: field.TypeEnum, Nullable: true, Enums: []string{"forgot", "hard", "good", "easy"}},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "message_index_start", Type: field.TypeInt},
		{Name: "message_index_end", Type: field.TypeInt},
		{Name: "time_spent_ms", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "recall_point_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// RecallOutcomesTable holds the schema information for the "recall_outcomes" table.
	RecallOutcomesTable = &schema.Table{
		Name:       "recall_outcomes",
		Columns:    RecallOutcomesColumns,
		PrimaryKey: []*schema.Column{RecallOutcomesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recall_outcomes_recall_points_outcomes",
				Columns:    []*schema.Column{RecallOutcomesColumns[9]},
				RefColumns: []*schema.Column{RecallPointsColumns[0]},
				OnDelete:   schema.Restrict,
			},
			{
				Symbol:     "recall_outcomes_study_sessions_outcomes",
				Columns:    []*schema.Column{RecallOutcomesColumns[10]},
				RefColumns: []*schema.Column{StudySessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "recalloutcome_session_id",
				Unique:  false,
				Columns: []*schema.Column{RecallOutcomesColumns[10]},
			},
			{
				Name:    "recalloutcome_recall_point_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RecallOutcomesColumns[9], RecallOutcomesColumns[8]},
			},
		},
	}
	// RecallPointsColumns holds the columns for the "recall_points" table.
	RecallPointsColumns = []*schema.Column{
		{Name: "recall_point_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "context", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "difficulty", Type: field.TypeFloat64, Default: 5},
		{Name: "stability", Type: field.TypeFloat64, Default: 1},
		{Name: "due", Type: field.TypeTime},
		{Name: "last_review", Type: field.TypeTime, Nullable: true},
		{Name: "reps", Type: field.TypeInt, Default: 0},
		{Name: "lapses", Type: field.TypeInt, Default: 0},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"new", "learning", "review", "relearning"}, Default: "new"},
		{Name: "recall_history", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "recall_set_id", Type: field.TypeString},
	}
	// RecallPointsTable holds the schema information for the "recall_points" table.
	RecallPointsTable = &schema.Table{
		Name:       "recall_points",
		Columns:    RecallPointsColumns,
		PrimaryKey: []*schema.Column{RecallPointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recall_points_recall_sets_points",
				Columns:    []*schema.Column{RecallPointsColumns[13]},
				RefColumns: []*schema.Column{RecallSetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "recallpoint_recall_set_id",
				Unique:  false,
				Columns: []*schema.Column{RecallPointsColumns[13]},
			},
			{
				Name:    "recallpoint_recall_set_id_due",
				Unique:  false,
				Columns: []*schema.Column{RecallPointsColumns[13], RecallPointsColumns[5]},
			},
		},
	}
	// RecallSetsColumns holds the columns for the "recall_sets" table.
	RecallSetsColumns = []*schema.Column{
		{Name: "recall_set_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "archived"}, Default: "active"},
		{Name: "discussion_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RecallSetsTable holds the schema information for the "recall_sets" table.
	RecallSetsTable = &schema.Table{
		Name:       "recall_sets",
		Columns:    RecallSetsColumns,
		PrimaryKey: []*schema.Column{RecallSetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recallset_status",
				Unique:  false,
				Columns: []*schema.Column{RecallSetsColumns[3]},
			},
		},
	}
	// SessionMessagesColumns holds the columns for the "session_messages" table.
	SessionMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "token_count", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// SessionMessagesTable holds the schema information for the "session_messages" table.
	SessionMessagesTable = &schema.Table{
		Name:       "session_messages",
		Columns:    SessionMessagesColumns,
		PrimaryKey: []*schema.Column{SessionMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_messages_study_sessions_messages",
				Columns:    []*schema.Column{SessionMessagesColumns[6]},
				RefColumns: []*schema.Column{StudySessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessionmessage_session_id_sequence_number",
				Unique:  true,
				Columns: []*schema.Column{SessionMessagesColumns[6], SessionMessagesColumns[1]},
			},
		},
	}
	// SessionMetricsColumns holds the columns for the "session_metrics" table.
	SessionMetricsColumns = []*schema.Column{
		{Name: "session_metrics_id", Type: field.TypeString, Unique: true},
		{Name: "total_duration_ms", Type: field.TypeInt64},
		{Name: "active_duration_ms", Type: field.TypeInt64},
		{Name: "avg_user_response_ms", Type: field.TypeInt64, Default: 0},
		{Name: "avg_assistant_response_ms", Type: field.TypeInt64, Default: 0},
		{Name: "points_attempted", Type: field.TypeInt},
		{Name: "points_successful", Type: field.TypeInt},
		{Name: "points_failed", Type: field.TypeInt},
		{Name: "recall_rate", Type: field.TypeFloat64},
		{Name: "avg_confidence", Type: field.TypeFloat64},
		{Name: "user_messages", Type: field.TypeInt},
		{Name: "assistant_messages", Type: field.TypeInt},
		{Name: "total_messages", Type: field.TypeInt},
		{Name: "rabbithole_count", Type: field.TypeInt, Default: 0},
		{Name: "rabbithole_duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "rabbithole_avg_depth", Type: field.TypeFloat64, Default: 0},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "estimated_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "engagement_score", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
	}
	// SessionMetricsTable holds the schema information for the "session_metrics" table.
	SessionMetricsTable = &schema.Table{
		Name:       "session_metrics",
		Columns:    SessionMetricsColumns,
		PrimaryKey: []*schema.Column{SessionMetricsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_metrics_study_sessions_metrics",
				Columns:    []*schema.Column{SessionMetricsColumns[21]},
				RefColumns: []*schema.Column{StudySessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessionmetrics_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionMetricsColumns[20]},
			},
		},
	}
	// StudySessionsColumns holds the columns for the "study_sessions" table.
	StudySessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "paused", "completed", "abandoned"}, Default: "in_progress"},
		{Name: "target_point_ids", Type: field.TypeJSON},
		{Name: "recalled_point_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "resumed_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "recall_set_id", Type: field.TypeString},
	}
	// StudySessionsTable holds the schema information for the "study_sessions" table.
	StudySessionsTable = &schema.Table{
		Name:       "study_sessions",
		Columns:    StudySessionsColumns,
		PrimaryKey: []*schema.Column{StudySessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "study_sessions_recall_sets_sessions",
				Columns:    []*schema.Column{StudySessionsColumns[7]},
				RefColumns: []*schema.Column{RecallSetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "studysession_status",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[1]},
			},
			{
				Name:    "studysession_recall_set_id_status",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[7], StudySessionsColumns[1]},
			},
			{
				Name:    "studysession_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[1], StudySessionsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		RabbitholeEventsTable,
		RecallOutcomesTable,
		RecallPointsTable,
		RecallSetsTable,
		SessionMessagesTable,
		SessionMetricsTable,
		StudySessionsTable,
	}
)

func init() {
	RabbitholeEventsTable.ForeignKeys[0].RefTable = StudySessionsTable
	RecallOutcomesTable.ForeignKeys[0].RefTable = RecallPointsTable
	RecallOutcomesTable.ForeignKeys[1].RefTable = StudySessionsTable
	RecallPointsTable.ForeignKeys[0].RefTable = RecallSetsTable
	SessionMessagesTable.ForeignKeys[0].RefTable = StudySessionsTable
	SessionMetricsTable.ForeignKeys[0].RefTable = StudySessionsTable
	StudySessionsTable.ForeignKeys[0].RefTable = RecallSetsTable
}
