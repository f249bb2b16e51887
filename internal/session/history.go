package session

import "sort"

// RecentActivityIDs flattens all attempts across all logs, orders them newest
// first, and returns the first k activity ids. k <= 0 yields nil. Timestamp
// ties keep flatten order (the sort is stable).
func RecentActivityIDs(history []SessionLog, k int) []string {
	if k <= 0 {
		return nil
	}

	var all []ActivityAttempt
	for _, log := range history {
		all = append(all, log.Attempts...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp.After(all[j].Timestamp)
	})

	if k > len(all) {
		k = len(all)
	}
	ids := make([]string, 0, k)
	for _, att := range all[:k] {
		ids = append(ids, att.ActivityID)
	}
	return ids
}

// AppendAttempt returns a new history with the attempt appended to the first
// log whose child id matches, or to a newly created log if none exists. The
// input history and its logs are never mutated.
func AppendAttempt(history []SessionLog, childID string, attempt ActivityAttempt) []SessionLog {
	updated := make([]SessionLog, len(history))
	copy(updated, history)

	for i := range updated {
		if updated[i].ChildID != childID {
			continue
		}
		attempts := make([]ActivityAttempt, len(updated[i].Attempts), len(updated[i].Attempts)+1)
		copy(attempts, updated[i].Attempts)
		updated[i].Attempts = append(attempts, attempt)
		return updated
	}

	return append(updated, SessionLog{
		ChildID:  childID,
		Attempts: []ActivityAttempt{attempt},
	})
}

// AttemptsFor returns all attempts for a child across logs, in insertion order.
func AttemptsFor(history []SessionLog, childID string) []ActivityAttempt {
	var out []ActivityAttempt
	for _, log := range history {
		if log.ChildID == childID {
			out = append(out, log.Attempts...)
		}
	}
	return out
}
