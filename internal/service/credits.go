package service

import (
	"math"

	"github.com/enviromat/enviromat/internal/model"
)

const (
	cancelUserPenalty       = 5
	cancelPickerCompensaton = 5
	completePickerBase      = 10
	completePickerPerFiveKg = 5
)

// baseRate returns credit points per kilogram for a waste type.
func baseRate(w model.WasteType) float64 {
	switch w {
	case model.WasteHazardous:
		return 8
	case model.WasteEWaste:
		return 6
	case model.WasteMetal:
		return 5
	case model.WastePlastic:
		return 3
	case model.WasteOrganic, model.WasteGlass, model.WasteTextile:
		return 2
	case model.WastePaper:
		return 1.5
	default:
		return 1
	}
}

func qualityMultiplier(rating *model.QualityRating) float64 {
	if rating == nil {
		return 1.0
	}
	switch *rating {
	case model.QualityHigh:
		return 1.5
	case model.QualityLow:
		return 0.8
	default:
		return 1.0
	}
}

// computeCredits converts a verified quantity into user credit points,
// rounding down.
func computeCredits(wasteType model.WasteType, quantity float64, rating *model.QualityRating) int64 {
	if quantity <= 0 {
		return 0
	}
	return int64(math.Floor(baseRate(wasteType) * quantity * qualityMultiplier(rating)))
}

// pickerReward is the picker's cut for a completed pickup.
func pickerReward(verifiedQuantity float64) int64 {
	return completePickerBase + int64(math.Floor(verifiedQuantity/completePickerPerFiveKg))
}
