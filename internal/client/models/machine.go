package models

import "time"

// Machine is a registered piece of equipment. ProductID is the external
// identifier operators use on the shop floor; tickets reference machines
// by it.
type Machine struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m Machine) EntityID() string { return m.ID }
