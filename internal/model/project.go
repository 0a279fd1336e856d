package model

import "time"

// Project is one automotive program/line being tracked for simulation
// readiness.
type Project struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"` // customer program code, e.g. "J11-UB"
	Name      string    `json:"name"`
	Customer  string    `json:"customer"`
	Plant     string    `json:"plant"`
	CreatedAt time.Time `json:"createdAt"`
}
