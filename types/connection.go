package types

type ScheduleTimeUnit string

const (
	TimeUnitMinutes ScheduleTimeUnit = "minutes"
	TimeUnitHours   ScheduleTimeUnit = "hours"
	TimeUnitDays    ScheduleTimeUnit = "days"
	TimeUnitWeeks   ScheduleTimeUnit = "weeks"
	TimeUnitMonths  ScheduleTimeUnit = "months"
)

// ScheduleInterval is how often a configured sync runs
type ScheduleInterval struct {
	Units    int64            `json:"units"`
	TimeUnit ScheduleTimeUnit `json:"time_unit" validate:"omitempty,oneof=minutes hours days weeks months"`
}

// Schedule is never left unset on a submittable configuration: it is either
// an explicit manual sentinel or a fully populated interval.
type Schedule struct {
	Manual   bool              `json:"manual"`
	Interval *ScheduleInterval `json:"interval,omitempty"`
}

// NamespaceDefinition selects where synced data lands in the destination
type NamespaceDefinition string

const (
	NamespaceSource       NamespaceDefinition = "source"
	NamespaceDestination  NamespaceDefinition = "destination"
	NamespaceCustomFormat NamespaceDefinition = "customformat"
)

// ConnectionConfiguration is the engine's externally produced aggregate: the
// live state bound to the editing surface and, once validated, the document
// handed to the persistence collaborator.
//
// Normalization distinguishes "explicitly absent" (nil) from the raw
// sentinel; an edit of an existing connection with normalization absent must
// stay absent.
type ConnectionConfiguration struct {
	Schedule            *Schedule            `json:"schedule"`
	Prefix              string               `json:"prefix"`
	NamespaceDefinition NamespaceDefinition  `json:"namespace_definition" validate:"omitempty,oneof=source destination customformat"`
	NamespaceFormat     string               `json:"namespace_format,omitempty"`
	Schema              SyncSchema           `json:"schema"`
	Normalization       *NormalizationOption `json:"normalization,omitempty" validate:"omitempty,oneof=raw basic"`
	Transformations     []Operation          `json:"transformations,omitempty"`
}
