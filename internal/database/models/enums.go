package models

// AllocationPriority represents the priority of a project allocation
type AllocationPriority string

const (
	PriorityLow    AllocationPriority = "low"
	PriorityMedium AllocationPriority = "medium"
	PriorityHigh   AllocationPriority = "high"
	PriorityUrgent AllocationPriority = "urgent"
)

// AllocationStatus represents the lifecycle state of a project allocation.
// The set is the union of the assignment board columns and the project
// planning states of the legacy dashboards.
type AllocationStatus string

const (
	StatusPlanning   AllocationStatus = "planning"
	StatusTodo       AllocationStatus = "todo"
	StatusInProgress AllocationStatus = "in-progress"
	StatusReview     AllocationStatus = "review"
	StatusOnHold     AllocationStatus = "on-hold"
	StatusCompleted  AllocationStatus = "completed"
)

// ValidPriorities lists the accepted priority values for validation messages
func ValidPriorities() []AllocationPriority {
	return []AllocationPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// ValidStatuses lists the accepted status values for validation messages
func ValidStatuses() []AllocationStatus {
	return []AllocationStatus{StatusPlanning, StatusTodo, StatusInProgress, StatusReview, StatusOnHold, StatusCompleted}
}

// IsValid reports whether the priority is one of the known values
func (p AllocationPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// IsValid reports whether the status is one of the known values
func (s AllocationStatus) IsValid() bool {
	switch s {
	case StatusPlanning, StatusTodo, StatusInProgress, StatusReview, StatusOnHold, StatusCompleted:
		return true
	}
	return false
}
