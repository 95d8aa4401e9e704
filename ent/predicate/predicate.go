// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// RabbitholeEvent is the predicate function for rabbitholeevent builders.
type RabbitholeEvent func(*sql.Selector)

// RecallOutcome is the predicate function for recalloutcome builders.
type RecallOutcome func(*sql.Selector)

// RecallPoint is the predicate function for recallpoint builders.
type RecallPoint func(*sql.Selector)

// RecallSet is the predicate function for recallset builders.
type RecallSet func(*sql.Selector)

// SessionMessage is the predicate function for sessionmessage builders.
type SessionMessage func(*sql.Selector)

// SessionMetrics is the predicate function for sessionmetrics builders.
type SessionMetrics func(*sql.Selector)

// StudySession is the predicate function for studysession builders.
type StudySession func(*sql.Selector)
