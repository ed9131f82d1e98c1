// Package selector decides which picker should serve a pickup request.
// The distance/suitability judgment itself is delegated to an external
// inference service; this package only owns the call contract.
package selector

import (
	"context"

	"github.com/enviromat/enviromat/internal/model"
)

// PickerSelector picks one candidate for the requester's location, or none.
// "None" is a valid, non-error outcome: the request stays unassigned.
type PickerSelector interface {
	SelectNearest(ctx context.Context, candidates []model.Picker, location model.Location, address model.Address) (*model.Picker, error)
}
