package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/enviromat/enviromat/internal/model"
	"github.com/enviromat/enviromat/pgk/auth"
)

func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	input, err := parseOrderForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, apiErr := c.service.CreateOrder(r.Context(), auth.GetTokenInfo[model.TokenInfo](r).ID, *input)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, model.OrderResponse{
		Message: "Order created",
		Order:   order,
	}, http.StatusCreated)
}

func parseOrderForm(r *http.Request) (*model.CreateOrderDTO, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, err
	}

	quantity, err := strconv.ParseInt(r.FormValue("quantity"), 10, 64)
	if err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(r.FormValue("price"))
	if err != nil {
		return nil, err
	}

	image, imageType, err := readFormImage(r, "image")
	if err != nil {
		return nil, err
	}

	return &model.CreateOrderDTO{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    model.ProductCategory(r.FormValue("category")),
		Quantity:    quantity,
		Price:       price,
		Address:     r.FormValue("address"),
		Image:       image,
		ImageType:   imageType,
	}, nil
}

func (c *Controller) GetItems(w http.ResponseWriter, r *http.Request) {
	items, apiErr := c.service.GetItems(r.Context())
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}
	if len(items) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, model.OrderListResponse{
		Message: "Available items",
		Orders:  items,
	}, http.StatusOK)
}

func (c *Controller) RequestOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.RequestOrderDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	order, apiErr := c.service.RequestOrder(r.Context(), auth.GetTokenInfo[model.TokenInfo](r).ID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, model.OrderResponse{
		Message: "Order requested",
		Order:   order,
	}, http.StatusOK)
}

func (c *Controller) CancelOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CancelOrderDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	order, apiErr := c.service.CancelOrderRequest(r.Context(), auth.GetTokenInfo[model.TokenInfo](r).ID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, model.OrderResponse{
		Message: "Order request cancelled",
		Order:   order,
	}, http.StatusOK)
}

// GetOrdersByUser serves a user's buy-requested listings. Callers may
// only read their own.
func (c *Controller) GetOrdersByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if userID != auth.GetTokenInfo[model.TokenInfo](r).ID {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	orders, apiErr := c.service.GetOrdersByBuyer(r.Context(), userID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}
	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, model.OrderListResponse{
		Message: "Your requested orders",
		Orders:  orders,
	}, http.StatusOK)
}

func (c *Controller) AddToCart(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CartDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	order, apiErr := c.service.AddToCart(r.Context(), auth.GetTokenInfo[model.TokenInfo](r).ID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, model.OrderResponse{
		Message: "Added to cart",
		Order:   order,
	}, http.StatusOK)
}

func (c *Controller) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CartDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	order, apiErr := c.service.RemoveFromCart(r.Context(), auth.GetTokenInfo[model.TokenInfo](r).ID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, model.OrderResponse{
		Message: "Removed from cart",
		Order:   order,
	}, http.StatusOK)
}

func (c *Controller) GetCart(w http.ResponseWriter, r *http.Request) {
	orders, apiErr := c.service.GetCart(r.Context(), auth.GetTokenInfo[model.TokenInfo](r).ID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}
	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, model.OrderListResponse{
		Message: "Your cart",
		Orders:  orders,
	}, http.StatusOK)
}

type completeTaskDTO struct {
	OrderID int64 `json:"orderId"`
	BuyerID int64 `json:"buyerId"`
}

// CompleteTask records a marketplace delivery handover by a picker.
func (c *Controller) CompleteTask(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[completeTaskDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	apiErr := c.service.MarkDelivered(r.Context(), auth.GetTokenInfo[model.TokenInfo](r).ID, body.OrderID, body.BuyerID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, model.MessageResponse{Message: "Delivery recorded"}, http.StatusOK)
}
