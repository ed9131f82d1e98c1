package model

import "time"

type Role string

const (
	RoleUser   Role = "user"
	RolePicker Role = "picker"
)

type User struct {
	ID        int64     `json:"id"`
	Login     string    `json:"login"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenInfo struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Role  Role   `json:"role"`
}

type LoginDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RegisterDTO struct {
	Login     string `json:"login"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	Phone     string `json:"phone"`
}

// Balance is the fold of a credit ledger account.
type Balance struct {
	CreditPoints int64 `json:"credit_points"`
}

type CreditAccountType string

const (
	CreditAccountUser   CreditAccountType = "user"
	CreditAccountPicker CreditAccountType = "picker"
)

const (
	CreditReasonPickupCompleted    = "pickup_completed"
	CreditReasonPickupBonus        = "pickup_bonus"
	CreditReasonCancelCompensation = "cancel_compensation"
	CreditReasonCancelPenalty      = "cancel_penalty"
)
