package engine

// checklist tracks per-session recall progress in target order and carries
// the probe index. The probe index is a hint for the tutor; the evaluator
// may mark any point recalled regardless of it.
type checklist struct {
	order    []string
	recalled map[string]bool
	probe    int
}

func newChecklist(targetIDs []string, recalledIDs []string) *checklist {
	c := &checklist{
		order:    append([]string(nil), targetIDs...),
		recalled: make(map[string]bool, len(targetIDs)),
	}
	for _, id := range targetIDs {
		c.recalled[id] = false
	}
	for _, id := range recalledIDs {
		if _, ok := c.recalled[id]; ok {
			c.recalled[id] = true
		}
	}
	c.probe = c.firstPendingFrom(0)
	return c
}

// unchecked returns pending point ids in target order.
func (c *checklist) unchecked() []string {
	var out []string
	for _, id := range c.order {
		if !c.recalled[id] {
			out = append(out, id)
		}
	}
	return out
}

// nextProbe returns the first pending id reached by circular scan from the
// probe index. ok is false when every point is recalled.
func (c *checklist) nextProbe() (id string, ok bool) {
	n := len(c.order)
	if n == 0 {
		return "", false
	}
	for i := 0; i < n; i++ {
		idx := (c.probe + i) % n
		if !c.recalled[c.order[idx]] {
			return c.order[idx], true
		}
	}
	return "", false
}

// markRecalled flips a point to recalled. Idempotent: returns true only on
// the first transition. Advances the probe index past the point when it
// was the current probe target.
func (c *checklist) markRecalled(id string) bool {
	done, known := c.recalled[id]
	if !known || done {
		return false
	}
	probeID, hadProbe := c.nextProbe()
	c.recalled[id] = true
	if hadProbe && probeID == id {
		c.probe = c.firstPendingFrom(c.indexOf(id) + 1)
	}
	return true
}

func (c *checklist) indexOf(id string) int {
	for i, v := range c.order {
		if v == id {
			return i
		}
	}
	return -1
}

// firstPendingFrom returns the index of the first pending point scanning
// circularly from start, or start normalized when all are recalled.
func (c *checklist) firstPendingFrom(start int) int {
	n := len(c.order)
	if n == 0 {
		return 0
	}
	start = ((start % n) + n) % n
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if !c.recalled[c.order[idx]] {
			return idx
		}
	}
	return start
}

func (c *checklist) complete() bool {
	for _, id := range c.order {
		if !c.recalled[id] {
			return false
		}
	}
	return len(c.order) > 0
}

func (c *checklist) recalledCount() int {
	n := 0
	for _, id := range c.order {
		if c.recalled[id] {
			n++
		}
	}
	return n
}

// recalledIDs returns recalled ids in target order (the persisted layout).
func (c *checklist) recalledIDs() []string {
	out := make([]string, 0, len(c.order))
	for _, id := range c.order {
		if c.recalled[id] {
			out = append(out, id)
		}
	}
	return out
}

func (c *checklist) total() int { return len(c.order) }
