package model

import "time"

// Picker is a pickup-service agent. Its regular and emergency queues are
// not stored as lists: they are derived from pickup_requests rows keyed by
// (pickup_by, is_emergency, status), so a request can never sit in both.
type Picker struct {
	ID        int64     `json:"id"`
	Login     string    `json:"login"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterPickerDTO struct {
	Login     string `json:"login"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	State     string `json:"state"`
}
