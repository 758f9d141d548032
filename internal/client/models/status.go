package models

import "time"

// StatusType is the machine quality variant (low/medium/high) used by the
// telemetry dataset the backend is trained on.
type StatusType string

const (
	StatusTypeLow    StatusType = "L"
	StatusTypeMedium StatusType = "M"
	StatusTypeHigh   StatusType = "H"
)

// Target values for a status reading.
const (
	TargetNormal  = 0
	TargetFailure = 1
)

// MachineStatus is one telemetry reading for a machine. A machine has many
// readings; "the latest" is whichever the backend returns first (the series
// is served most-recent-first, see store.StatusStore.LatestByMachine).
type MachineStatus struct {
	ID                 string     `json:"id"`
	MachineID          string     `json:"machineId"`
	Type               StatusType `json:"type"`
	AirTemperature     float64    `json:"airTemperature"`
	ProcessTemperature float64    `json:"processTemperature"`
	RotationalSpeed    int        `json:"rotationalSpeed"`
	Torque             float64    `json:"torque"`
	ToolWear           int        `json:"toolWear"`
	Target             int        `json:"target"`
	FailureType        string     `json:"failureType,omitempty"`
	RecordedAt         time.Time  `json:"recordedAt"`
	CreatedAt          time.Time  `json:"createdAt"`
}

func (s MachineStatus) EntityID() string { return s.ID }

// Failing reports whether this reading indicates a failure.
func (s MachineStatus) Failing() bool { return s.Target == TargetFailure }
