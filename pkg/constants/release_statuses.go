package constants

// --- RELEASE STATUSES (match the names in the backend status table) ---
const (
	StatusNotAssigned = "Not Assigned"
	StatusAssigned    = "Assigned"
	StatusCompleted   = "Completed"
)

// ChecklistItemPending / ChecklistItemCompleted are the per-item states.
const (
	ChecklistItemPending   = "pending"
	ChecklistItemCompleted = "completed"
)

// The lifecycle is forward-only: Not Assigned -> Assigned -> Completed.
var statusRank = map[string]int{
	StatusNotAssigned: 0,
	StatusAssigned:    1,
	StatusCompleted:   2,
}

// IsForwardTransition reports whether moving from one status to another
// advances the lifecycle. Unknown statuses never advance.
func IsForwardTransition(from, to string) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}
