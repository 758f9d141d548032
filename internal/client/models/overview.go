package models

// Overview carries the pre-aggregated dashboard counters served by
// GET /overview. These are computed server-side; the client displays them
// as-is and never tries to reconcile them with its cached collections.
type Overview struct {
	TotalMachines   int `json:"totalMachines"`
	TotalTickets    int `json:"totalTickets"`
	OpenTickets     int `json:"openTickets"`
	ResolvedTickets int `json:"resolvedTickets"`
	TotalUsers      int `json:"totalUsers"`
	VerifiedUsers   int `json:"verifiedUsers"`
	HealthyMachines int `json:"healthyMachines"`
	FailingMachines int `json:"failingMachines"`
}
