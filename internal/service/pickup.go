package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/enviromat/enviromat/internal/events"
	"github.com/enviromat/enviromat/internal/model"
	"github.com/enviromat/enviromat/internal/notify"
)

// candidateLimit caps how many pickers are sent to the nearest-picker
// inference service per request.
const candidateLimit = 10

// UploadWaste registers a pickup request and tries to hand it to the
// nearest picker. Assignment is best effort: when no picker can be
// found the request stays in processing and the response says so.
func (s *Service) UploadWaste(ctx context.Context, userID int64, input model.UploadWasteDTO) (*model.UploadWasteResponse, *model.APIError) {
	if err := validateUploadWasteDTO(input); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	imageURL, err := s.media.Upload(ctx, input.Image, input.ImageType)
	if err != nil {
		s.lg.Errorf("upload waste image: %s", err)
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: "failed to store waste image",
		}
	}

	pickup := &model.PickupRequest{
		ID:           uuid.New(),
		UserID:       userID,
		WasteType:    input.WasteType,
		ImageURL:     imageURL,
		UserQuantity: input.Quantity,
		Location:     input.Location,
		Address:      input.Address,
		Status:       model.PickupStatusProcessing,
		IsEmergency:  input.IsEmergency,
	}

	if err := s.storage.CreatePickup(ctx, pickup); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	s.publishEvent(ctx, pickup)

	picker := s.findNearestPicker(ctx, pickup)
	if picker == nil {
		return &model.UploadWasteResponse{
			PickerAssign: false,
			Message:      "Request received, we are searching for a picker in your area",
			Waste:        pickup,
		}, nil
	}

	assigned, err := s.storage.AssignPickup(ctx, pickup.ID, picker.ID)
	if err != nil {
		s.lg.Errorf("assign pickup %s to picker %d: %s", pickup.ID, picker.ID, err)
		return &model.UploadWasteResponse{
			PickerAssign: false,
			Message:      "Request received, we are searching for a picker in your area",
			Waste:        pickup,
		}, nil
	}

	s.publishEvent(ctx, assigned)
	s.notifyPicker(ctx, user, picker, assigned)

	return &model.UploadWasteResponse{
		PickerAssign: true,
		Message:      "Your waste pickup request was sent to the nearest picker",
		Waste:        assigned,
		Picker:       picker,
	}, nil
}

// findNearestPicker gathers candidates by city, widens to state, and
// asks the inference service to choose. Any failure means no picker.
func (s *Service) findNearestPicker(ctx context.Context, pickup *model.PickupRequest) *model.Picker {
	candidates, err := s.storage.FindPickersByCity(ctx, pickup.Address.City, candidateLimit)
	if err != nil {
		s.lg.Errorf("find pickers by city %q: %s", pickup.Address.City, err)
		return nil
	}
	if len(candidates) == 0 {
		candidates, err = s.storage.FindPickersByState(ctx, pickup.Address.State, candidateLimit)
		if err != nil {
			s.lg.Errorf("find pickers by state %q: %s", pickup.Address.State, err)
			return nil
		}
	}

	picker, err := s.selector.SelectNearest(ctx, candidates, pickup.Location, pickup.Address)
	if err != nil {
		s.lg.Errorf("select nearest picker for %s: %s", pickup.ID, err)
		return nil
	}

	return picker
}

func (s *Service) notifyPicker(ctx context.Context, user *model.User, picker *model.Picker, pickup *model.PickupRequest) {
	if s.sms == nil || picker.Phone == "" {
		return
	}

	addr := fmt.Sprintf("%s, %s, %s %s",
		pickup.Address.Street, pickup.Address.City, pickup.Address.State, pickup.Address.PinCode)

	_, err := s.sms.SendPickupSMS(ctx, picker.Phone, notify.PickupNotification{
		PickupID:     pickup.ID.String(),
		CustomerName: user.FirstName,
		WasteType:    string(pickup.WasteType),
		Quantity:     pickup.UserQuantity,
		Address:      addr,
	})
	if err != nil {
		s.lg.Errorf("send pickup sms for %s: %s", pickup.ID, err)
	}
}

func (s *Service) publishEvent(ctx context.Context, p *model.PickupRequest) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, events.PickupEvent{
		PickupID:  p.ID.String(),
		UserID:    p.UserID,
		PickerID:  p.PickupBy,
		Status:    string(p.Status),
		WasteType: string(p.WasteType),
		At:        p.UpdatedAt,
	})
}

// CancelPickup lets the requesting user abort a pickup that has not
// been started. An assigned picker is compensated, the user pays a
// small penalty.
func (s *Service) CancelPickup(ctx context.Context, userID int64, input model.CancelPickupDTO) (*model.PickupRequest, *model.APIError) {
	pickup, err := s.storage.GetPickupByID(ctx, input.RequestID)
	if err != nil {
		if errors.Is(err, model.ErrPickupNotFound) {
			return nil, &model.APIError{
				Code:    http.StatusNotFound,
				Message: model.ErrPickupNotFoundMessage,
			}
		}
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	if pickup.UserID != userID {
		return nil, &model.APIError{
			Code:    http.StatusForbidden,
			Message: model.ErrPickupNotOwnerMessage,
		}
	}

	// The repository books the compensation only when the row it cancels
	// is assigned, so a picker assigned after this read is still paid.
	cancelled, err := s.storage.CancelPickup(ctx, input.RequestID, cancelUserPenalty, cancelPickerCompensaton)
	if err != nil {
		if errors.Is(err, model.ErrPickupWrongStatus) {
			return nil, &model.APIError{
				Code:    http.StatusBadRequest,
				Message: fmt.Sprintf("cannot cancel a request in status %q", pickup.Status),
			}
		}
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	s.publishEvent(ctx, cancelled)

	return cancelled, nil
}

// StartPickup moves an assigned request to in_progress. Only the
// assigned picker may start it.
func (s *Service) StartPickup(ctx context.Context, pickerID int64, input model.StartPickupDTO) (*model.PickupRequest, *model.APIError) {
	started, err := s.storage.StartPickup(ctx, input.RequestID, pickerID)
	if err != nil {
		return nil, s.classifyTransitionError(ctx, input.RequestID, pickerID, err)
	}

	s.publishEvent(ctx, started)

	return started, nil
}

// CompletePickup records the picker's verified weighing, credits the
// user per the waste-type table and pays the picker a base reward plus
// a per-weight bonus. Repeating the call is rejected, not paid twice.
func (s *Service) CompletePickup(ctx context.Context, pickerID int64, input model.CompletePickupDTO) (*model.PickupRequest, *model.APIError) {
	if err := validateCompletePickupDTO(input); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	pickup, err := s.storage.GetPickupByID(ctx, input.RequestID)
	if err != nil {
		if errors.Is(err, model.ErrPickupNotFound) {
			return nil, &model.APIError{
				Code:    http.StatusNotFound,
				Message: model.ErrPickupNotFoundMessage,
			}
		}
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	userCredits := computeCredits(pickup.WasteType, input.VerifiedQuantity, &input.QualityRating)
	pickerCredits := pickerReward(input.VerifiedQuantity)

	completed, err := s.storage.CompletePickup(ctx, input.RequestID, pickerID,
		input.VerifiedQuantity, input.QualityRating, userCredits, pickerCredits)
	if err != nil {
		return nil, s.classifyTransitionError(ctx, input.RequestID, pickerID, err)
	}

	s.publishEvent(ctx, completed)

	return completed, nil
}

// classifyTransitionError maps a failed guarded transition to an HTTP
// error: missing row is 404, someone else's row is 403, wrong state is
// 400.
func (s *Service) classifyTransitionError(ctx context.Context, id uuid.UUID, pickerID int64, err error) *model.APIError {
	if !errors.Is(err, model.ErrPickupWrongStatus) {
		return &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	pickup, getErr := s.storage.GetPickupByID(ctx, id)
	if getErr != nil {
		return &model.APIError{
			Code:    http.StatusNotFound,
			Message: model.ErrPickupNotFoundMessage,
		}
	}
	if pickup.PickupBy == nil || *pickup.PickupBy != pickerID {
		return &model.APIError{
			Code:    http.StatusForbidden,
			Message: model.ErrPickupNotAssigneeMessage,
		}
	}
	return &model.APIError{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("request is in status %q", pickup.Status),
	}
}

func (s *Service) GetMyRequests(ctx context.Context, userID int64) ([]model.PickupRequest, *model.APIError) {
	requests, err := s.storage.GetPickupsByUserID(ctx, userID)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return requests, nil
}

func (s *Service) GetPickerQueue(ctx context.Context, pickerID int64, emergency bool) ([]model.PickupRequest, *model.APIError) {
	queue, err := s.storage.GetPickerQueue(ctx, pickerID, emergency)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return queue, nil
}
