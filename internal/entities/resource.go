package entities

import "github.com/aarondl/null/v8"

// Reference data served by the general-services backend. The gateway
// never persists these; they are re-fetched (through a short cache) on
// every screen load.

type Venue struct {
	ID        uint64      `json:"id"`
	Name      string      `json:"name"`
	Occupancy uint64      `json:"occupancy"`
	Location  null.String `json:"location,omitempty"`
}

type Vehicle struct {
	ID      uint64      `json:"id"`
	License string      `json:"license"`
	Model   string      `json:"model"`
	Make    null.String `json:"make,omitempty"`
}

type Equipment struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	// Quantity is the advertised available count; selections may never
	// exceed it.
	Quantity uint64 `json:"quantity"`
}

type Personnel struct {
	ID       uint64      `json:"id"`
	FullName string      `json:"full_name"`
	Position null.String `json:"position,omitempty"`
}

type User struct {
	ID         uint64      `json:"id"`
	FullName   string      `json:"full_name"`
	Department null.String `json:"department,omitempty"`
}
