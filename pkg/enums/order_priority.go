package enums

import "fmt"

// OrderPriority ranks how urgently a procurement order is needed.
type OrderPriority string

const (
	OrderPriorityLow    OrderPriority = "Low"
	OrderPriorityMedium OrderPriority = "Medium"
	OrderPriorityHigh   OrderPriority = "High"
	OrderPriorityUrgent OrderPriority = "Urgent"
)

var validOrderPriorities = []OrderPriority{
	OrderPriorityLow,
	OrderPriorityMedium,
	OrderPriorityHigh,
	OrderPriorityUrgent,
}

// String implements fmt.Stringer.
func (p OrderPriority) String() string {
	return string(p)
}

// IsValid reports whether the value is a known OrderPriority.
func (p OrderPriority) IsValid() bool {
	for _, candidate := range validOrderPriorities {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseOrderPriority converts raw input into an OrderPriority.
func ParseOrderPriority(value string) (OrderPriority, error) {
	for _, candidate := range validOrderPriorities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order priority %q", value)
}
