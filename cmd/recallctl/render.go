package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/recallkit/recallkit/pkg/engine"
	"github.com/recallkit/recallkit/pkg/services"
)

// renderReplay formats a full session transcript: the main dialog in
// order, tangent blocks anchored at their trigger message, and the
// metrics summary when the session was finalized.
func renderReplay(d *services.SessionDetail) string {
	var b strings.Builder
	s := d.Session
	fmt.Fprintf(&b, "session %s  set %s  %s\n", s.ID, s.SetID, s.Status)
	fmt.Fprintf(&b, "recalled %d/%d  started %s\n\n",
		s.RecalledPoints, s.TargetPoints, s.StartedAt.Format(time.RFC3339))

	byTrigger := make(map[int][]*engine.Rabbithole)
	for _, rh := range d.Rabbitholes {
		byTrigger[rh.TriggerMessageIndex] = append(byTrigger[rh.TriggerMessageIndex], rh)
	}

	for _, m := range d.Messages {
		fmt.Fprintf(&b, "[%3d] %s: %s\n", m.Index, m.Role, m.Content)
		for _, rh := range byTrigger[m.Index] {
			fmt.Fprintf(&b, "      -- tangent %q (%s, depth %d)\n", rh.Topic, rh.Status, rh.Depth)
			for _, turn := range rh.Conversation {
				fmt.Fprintf(&b, "      |  %s: %s\n", turn.Role, turn.Content)
			}
		}
	}

	if d.Metrics != nil {
		m := d.Metrics
		fmt.Fprintf(&b, "\nrecall %d/%d (%.0f%%)  messages %d  cost $%.4f\n",
			m.PointsSuccessful, m.PointsAttempted, m.RecallRate*100,
			m.TotalMessages, m.EstimatedCostUSD)
	}
	return b.String()
}

// renderSearch formats search hits, points first, transcripts second.
func renderSearch(r *services.SearchResults) string {
	var b strings.Builder

	fmt.Fprintf(&b, "points (%d):\n", len(r.Points))
	for _, p := range r.Points {
		fmt.Fprintf(&b, "  %s  [set %s]  %s\n", p.ID, p.SetID, p.Content)
	}

	fmt.Fprintf(&b, "messages (%d):\n", len(r.Messages))
	for _, m := range r.Messages {
		fmt.Fprintf(&b, "  %s#%d  %s: %s\n", m.SessionID, m.Index, m.Role, m.Content)
	}
	return b.String()
}
