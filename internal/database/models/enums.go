package models

// StageType defines the phases of a rental's production lifecycle
type StageType string

const (
	StageTypeProspecting         StageType = "prospecting"
	StageTypeSiteVisit           StageType = "site_visit"
	StageTypeTechnicalEvaluation StageType = "technical_evaluation"
	StageTypeClientApproval      StageType = "client_approval"
	StageTypeNegotiation         StageType = "negotiation"
	StageTypeContracting         StageType = "contracting"
	StageTypePreparation         StageType = "preparation"
	StageTypeSetup               StageType = "setup"
	StageTypeFilming             StageType = "filming"
	StageTypeTeardown            StageType = "teardown"
	StageTypeDelivery            StageType = "delivery"
)

// stageTypeOrder is the lifecycle order of stage types
var stageTypeOrder = []StageType{
	StageTypeProspecting,
	StageTypeSiteVisit,
	StageTypeTechnicalEvaluation,
	StageTypeClientApproval,
	StageTypeNegotiation,
	StageTypeContracting,
	StageTypePreparation,
	StageTypeSetup,
	StageTypeFilming,
	StageTypeTeardown,
	StageTypeDelivery,
}

// StageTypes returns all stage types in lifecycle order
func StageTypes() []StageType {
	out := make([]StageType, len(stageTypeOrder))
	copy(out, stageTypeOrder)
	return out
}

// IsValid checks if the StageType is valid
func (t StageType) IsValid() bool {
	return t.SortOrder() > 0
}

// SortOrder returns the 1-based lifecycle position of the stage type, 0 if unknown
func (t StageType) SortOrder() int {
	for i, st := range stageTypeOrder {
		if st == t {
			return i + 1
		}
	}
	return 0
}

// Label returns a human-readable label for the stage type
func (t StageType) Label() string {
	switch t {
	case StageTypeProspecting:
		return "Prospecting"
	case StageTypeSiteVisit:
		return "Site visit"
	case StageTypeTechnicalEvaluation:
		return "Technical evaluation"
	case StageTypeClientApproval:
		return "Client approval"
	case StageTypeNegotiation:
		return "Negotiation"
	case StageTypeContracting:
		return "Contracting"
	case StageTypePreparation:
		return "Preparation"
	case StageTypeSetup:
		return "Setup"
	case StageTypeFilming:
		return "Filming"
	case StageTypeTeardown:
		return "Teardown"
	case StageTypeDelivery:
		return "Delivery"
	default:
		return string(t)
	}
}

// StageStatus defines the status of a rental stage
type StageStatus string

const (
	StageStatusPending    StageStatus = "pending"
	StageStatusInProgress StageStatus = "in_progress"
	StageStatusCompleted  StageStatus = "completed"
	StageStatusCancelled  StageStatus = "cancelled"
	StageStatusOnHold     StageStatus = "on_hold"
)

// StageStatuses returns all stage statuses
func StageStatuses() []StageStatus {
	return []StageStatus{
		StageStatusPending,
		StageStatusInProgress,
		StageStatusCompleted,
		StageStatusCancelled,
		StageStatusOnHold,
	}
}

// IsValid checks if the StageStatus is valid
func (s StageStatus) IsValid() bool {
	switch s {
	case StageStatusPending, StageStatusInProgress, StageStatusCompleted, StageStatusCancelled, StageStatusOnHold:
		return true
	}
	return false
}

// Ptr returns a pointer to a copy of the status
func (s StageStatus) Ptr() *StageStatus {
	return &s
}

// CalendarEventType defines the kinds of calendar events derived from rentals
type CalendarEventType string

const (
	CalendarEventTypeVisit          CalendarEventType = "visit"
	CalendarEventTypeTechnicalVisit CalendarEventType = "technical_visit"
	CalendarEventTypeFilmingStart   CalendarEventType = "filming_start"
	CalendarEventTypeFilmingEnd     CalendarEventType = "filming_end"
	CalendarEventTypeFilmingPeriod  CalendarEventType = "filming_period"
	CalendarEventTypeDelivery       CalendarEventType = "delivery"
	CalendarEventTypeRentalPeriod   CalendarEventType = "rental_period"
)

// IsValid checks if the CalendarEventType is one of the rental-derived types
func (t CalendarEventType) IsValid() bool {
	switch t {
	case CalendarEventTypeVisit, CalendarEventTypeTechnicalVisit, CalendarEventTypeFilmingStart,
		CalendarEventTypeFilmingEnd, CalendarEventTypeFilmingPeriod, CalendarEventTypeDelivery,
		CalendarEventTypeRentalPeriod:
		return true
	}
	return false
}

// EventPriority defines calendar event priorities
type EventPriority string

const (
	EventPriorityLow    EventPriority = "low"
	EventPriorityMedium EventPriority = "medium"
	EventPriorityHigh   EventPriority = "high"
)

// IsValid checks if the EventPriority is valid
func (p EventPriority) IsValid() bool {
	switch p {
	case EventPriorityLow, EventPriorityMedium, EventPriorityHigh:
		return true
	}
	return false
}
