package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/enviromat/enviromat/internal/model"
)

// CreateOrder publishes a seller listing on the marketplace.
func (s *Service) CreateOrder(ctx context.Context, sellerID int64, input model.CreateOrderDTO) (*model.Order, *model.APIError) {
	if err := validateCreateOrderDTO(input); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	imageURL, err := s.media.Upload(ctx, input.Image, input.ImageType)
	if err != nil {
		s.lg.Errorf("upload order image: %s", err)
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: "failed to store product image",
		}
	}

	order := &model.Order{
		SellerID:    sellerID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Quantity:    input.Quantity,
		Price:       input.Price,
		Address:     input.Address,
		ImageURL:    imageURL,
	}

	if err := s.storage.CreateOrder(ctx, order); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return order, nil
}

// GetItems lists orders that still have stock to sell.
func (s *Service) GetItems(ctx context.Context) ([]model.Order, *model.APIError) {
	orders, err := s.storage.GetAvailableOrders(ctx)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return orders, nil
}

// RequestOrder places a buy request against a listing. The buyer's
// total price must match quantity times the listing price exactly.
func (s *Service) RequestOrder(ctx context.Context, buyerID int64, input model.RequestOrderDTO) (*model.Order, *model.APIError) {
	if input.Quantity < 1 {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: "quantity must be at least 1",
		}
	}
	if input.Address == "" {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: "delivery address is required",
		}
	}

	order, err := s.storage.RequestOrder(ctx, buyerID, input)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrOrderNotFound):
			return nil, &model.APIError{
				Code:    http.StatusNotFound,
				Message: model.ErrOrderNotFoundMessage,
			}
		case errors.Is(err, model.ErrOrderPriceBad):
			return nil, &model.APIError{
				Code:    http.StatusBadRequest,
				Message: model.ErrOrderPriceMismatchMessage,
			}
		case errors.Is(err, model.ErrOrderOutOfStock):
			return nil, &model.APIError{
				Code:    http.StatusBadRequest,
				Message: model.ErrOrderOutOfStockMessage,
			}
		default:
			return nil, &model.APIError{
				Code:    http.StatusInternalServerError,
				Message: model.ErrInternalServerMessage,
			}
		}
	}

	return order, nil
}

// CancelOrderRequest withdraws the buyer's oldest open request for the
// order and returns the units to stock.
func (s *Service) CancelOrderRequest(ctx context.Context, buyerID int64, input model.CancelOrderDTO) (*model.Order, *model.APIError) {
	order, err := s.storage.CancelOrderRequest(ctx, buyerID, input.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrOrderNotFound):
			return nil, &model.APIError{
				Code:    http.StatusNotFound,
				Message: model.ErrOrderNotFoundMessage,
			}
		case errors.Is(err, model.ErrOrderNotRequested):
			return nil, &model.APIError{
				Code:    http.StatusBadRequest,
				Message: model.ErrOrderNotRequestedMessage,
			}
		default:
			return nil, &model.APIError{
				Code:    http.StatusInternalServerError,
				Message: model.ErrInternalServerMessage,
			}
		}
	}

	return order, nil
}

func (s *Service) GetOrdersByBuyer(ctx context.Context, buyerID int64) ([]model.Order, *model.APIError) {
	orders, err := s.storage.GetOrdersByBuyer(ctx, buyerID)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return orders, nil
}

// AddToCart saves a listing for later. A listing with an open buy
// request from the same user cannot also sit in their cart.
func (s *Service) AddToCart(ctx context.Context, userID int64, input model.CartDTO) (*model.Order, *model.APIError) {
	order, err := s.storage.AddToCart(ctx, userID, input.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrOrderNotFound):
			return nil, &model.APIError{
				Code:    http.StatusNotFound,
				Message: model.ErrOrderNotFoundMessage,
			}
		case errors.Is(err, model.ErrOrderCartConflict):
			return nil, &model.APIError{
				Code:    http.StatusBadRequest,
				Message: model.ErrOrderCartConflictMessage,
			}
		default:
			return nil, &model.APIError{
				Code:    http.StatusInternalServerError,
				Message: model.ErrInternalServerMessage,
			}
		}
	}

	return order, nil
}

func (s *Service) RemoveFromCart(ctx context.Context, userID int64, input model.CartDTO) (*model.Order, *model.APIError) {
	order, err := s.storage.RemoveFromCart(ctx, userID, input.OrderID)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			return nil, &model.APIError{
				Code:    http.StatusNotFound,
				Message: model.ErrOrderNotFoundMessage,
			}
		}
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return order, nil
}

func (s *Service) GetCart(ctx context.Context, userID int64) ([]model.Order, *model.APIError) {
	orders, err := s.storage.GetCartByUser(ctx, userID)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return orders, nil
}

// MarkDelivered records that a picker handed an order over to a buyer.
func (s *Service) MarkDelivered(ctx context.Context, pickerID, orderID, buyerID int64) *model.APIError {
	err := s.storage.MarkOrderDelivered(ctx, orderID, buyerID, pickerID, time.Now())
	if err != nil {
		if errors.Is(err, model.ErrOrderNotRequested) {
			return &model.APIError{
				Code:    http.StatusBadRequest,
				Message: model.ErrOrderNotRequestedMessage,
			}
		}
		return &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return nil
}
