package http

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/enviromat/enviromat/internal/model"
	"github.com/enviromat/enviromat/pgk/auth"
)

type Service interface {
	Register(ctx context.Context, input model.RegisterDTO) (string, *model.APIError)
	Login(ctx context.Context, input model.LoginDTO) (string, *model.APIError)
	RegisterPicker(ctx context.Context, input model.RegisterPickerDTO) (string, *model.APIError)
	LoginPicker(ctx context.Context, input model.LoginDTO) (string, *model.APIError)
	GetBalance(ctx context.Context, info model.TokenInfo) (*model.Balance, *model.APIError)

	UploadWaste(ctx context.Context, userID int64, input model.UploadWasteDTO) (*model.UploadWasteResponse, *model.APIError)
	CancelPickup(ctx context.Context, userID int64, input model.CancelPickupDTO) (*model.PickupRequest, *model.APIError)
	StartPickup(ctx context.Context, pickerID int64, input model.StartPickupDTO) (*model.PickupRequest, *model.APIError)
	CompletePickup(ctx context.Context, pickerID int64, input model.CompletePickupDTO) (*model.PickupRequest, *model.APIError)
	GetMyRequests(ctx context.Context, userID int64) ([]model.PickupRequest, *model.APIError)
	GetPickerQueue(ctx context.Context, pickerID int64, emergency bool) ([]model.PickupRequest, *model.APIError)

	CreateOrder(ctx context.Context, sellerID int64, input model.CreateOrderDTO) (*model.Order, *model.APIError)
	GetItems(ctx context.Context) ([]model.Order, *model.APIError)
	RequestOrder(ctx context.Context, buyerID int64, input model.RequestOrderDTO) (*model.Order, *model.APIError)
	CancelOrderRequest(ctx context.Context, buyerID int64, input model.CancelOrderDTO) (*model.Order, *model.APIError)
	GetOrdersByBuyer(ctx context.Context, buyerID int64) ([]model.Order, *model.APIError)
	AddToCart(ctx context.Context, userID int64, input model.CartDTO) (*model.Order, *model.APIError)
	RemoveFromCart(ctx context.Context, userID int64, input model.CartDTO) (*model.Order, *model.APIError)
	GetCart(ctx context.Context, userID int64) ([]model.Order, *model.APIError)
	MarkDelivered(ctx context.Context, pickerID, orderID, buyerID int64) *model.APIError
}

// Pinger reports storage liveness for the health endpoint.
type Pinger interface {
	Ping() error
}

type Controller struct {
	service Service
	pinger  Pinger
	lg      *zap.SugaredLogger
}

func New(s Service, pinger Pinger, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		service: s,
		pinger:  pinger,
		lg:      lg,
	}
}

func (c *Controller) Register(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.RegisterDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	bearerToken, apiErr := c.service.Register(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.Header().Set("Authorization", bearerToken)
	w.WriteHeader(http.StatusOK)
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.LoginDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	bearerToken, apiErr := c.service.Login(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.Header().Set("Authorization", bearerToken)
	w.WriteHeader(http.StatusOK)
}

func (c *Controller) RegisterPicker(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.RegisterPickerDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	bearerToken, apiErr := c.service.RegisterPicker(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.Header().Set("Authorization", bearerToken)
	w.WriteHeader(http.StatusOK)
}

func (c *Controller) LoginPicker(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.LoginDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	bearerToken, apiErr := c.service.LoginPicker(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.Header().Set("Authorization", bearerToken)
	w.WriteHeader(http.StatusOK)
}

func (c *Controller) GetBalance(w http.ResponseWriter, r *http.Request) {
	info := auth.GetTokenInfo[model.TokenInfo](r)

	balance, apiErr := c.service.GetBalance(r.Context(), *info)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, balance, http.StatusOK)
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	if c.pinger == nil {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	if err := c.pinger.Ping(); err != nil {
		c.lg.Errorf("storage ping: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
