package model

import (
	"time"

	"github.com/google/uuid"
)

type PickupStatus string

const (
	PickupStatusProcessing PickupStatus = "processing"
	PickupStatusAssigned   PickupStatus = "assigned"
	PickupStatusInProgress PickupStatus = "in_progress"
	PickupStatusCompleted  PickupStatus = "completed"
	PickupStatusCancelled  PickupStatus = "cancelled"
)

type WasteType string

const (
	WastePlastic   WasteType = "plastic"
	WasteMetal     WasteType = "metal"
	WasteOrganic   WasteType = "organic"
	WasteEWaste    WasteType = "e_waste"
	WasteGlass     WasteType = "glass"
	WastePaper     WasteType = "paper"
	WasteTextile   WasteType = "textile"
	WasteHazardous WasteType = "hazardous"
	WasteMixed     WasteType = "mixed"
	WasteOthers    WasteType = "others"
)

func (w WasteType) IsValid() bool {
	switch w {
	case WastePlastic, WasteMetal, WasteOrganic, WasteEWaste, WasteGlass,
		WastePaper, WasteTextile, WasteHazardous, WasteMixed, WasteOthers:
		return true
	default:
		return false
	}
}

type QualityRating string

const (
	QualityLow    QualityRating = "low"
	QualityMedium QualityRating = "medium"
	QualityHigh   QualityRating = "high"
)

func (q QualityRating) IsValid() bool {
	switch q {
	case QualityLow, QualityMedium, QualityHigh:
		return true
	default:
		return false
	}
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	PinCode string `json:"pin_code"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PickupRequest tracks one waste submission through its status lifecycle.
// VerifiedQuantity, QualityRating, CreditPoints and PickupDate stay nil
// until the request is completed; PickupBy stays nil until it is assigned.
type PickupRequest struct {
	ID               uuid.UUID      `json:"id"`
	UserID           int64          `json:"user_id"`
	WasteType        WasteType      `json:"waste_type"`
	ImageURL         string         `json:"image_url"`
	UserQuantity     float64        `json:"user_quantity"`
	VerifiedQuantity *float64       `json:"verified_quantity"`
	QualityRating    *QualityRating `json:"quality_rating"`
	Location         Location       `json:"location"`
	Address          Address        `json:"address"`
	CreditPoints     *int64         `json:"credit_points"`
	PickupBy         *int64         `json:"pickup_by"`
	Status           PickupStatus   `json:"pickup_status"`
	IsEmergency      bool           `json:"is_emergency"`
	PickupDate       *time.Time     `json:"pickup_date"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type UploadWasteDTO struct {
	WasteType   WasteType `json:"waste_type"`
	Quantity    float64   `json:"quantity"`
	Location    Location  `json:"location"`
	Address     Address   `json:"address"`
	IsEmergency bool      `json:"is_emergency"`
	Image       []byte    `json:"-"`
	ImageType   string    `json:"-"`
}

type UploadWasteResponse struct {
	PickerAssign bool           `json:"pickerAssign"`
	Message      string         `json:"message"`
	Waste        *PickupRequest `json:"waste"`
	Picker       *Picker        `json:"nearestPicker,omitempty"`
}

// PickupResponse wraps a mutated request the way UploadWasteResponse
// does: every success body carries a message alongside the entity.
type PickupResponse struct {
	Message string         `json:"message"`
	Request *PickupRequest `json:"request"`
}

type PickupListResponse struct {
	Message  string          `json:"message"`
	Requests []PickupRequest `json:"requests"`
}

type CancelPickupDTO struct {
	RequestID uuid.UUID `json:"requestId"`
}

type StartPickupDTO struct {
	RequestID uuid.UUID `json:"requestId"`
}

type CompletePickupDTO struct {
	RequestID        uuid.UUID     `json:"requestId"`
	VerifiedQuantity float64       `json:"verifiedQuantity"`
	QualityRating    QualityRating `json:"qualityRating"`
}
