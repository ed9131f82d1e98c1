package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/enviromat/enviromat/internal/model"
	"github.com/enviromat/enviromat/pgk/auth"
)

// maxUploadSize bounds multipart memory for waste and product images.
const maxUploadSize = 10 << 20

func (c *Controller) UploadWaste(w http.ResponseWriter, r *http.Request) {
	input, err := parseWasteForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, apiErr := c.service.UploadWaste(r.Context(), auth.GetTokenInfo[model.TokenInfo](r).ID, *input)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, resp, http.StatusCreated)
}

func parseWasteForm(r *http.Request) (*model.UploadWasteDTO, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, err
	}

	quantity, err := strconv.ParseFloat(r.FormValue("quantity"), 64)
	if err != nil {
		return nil, err
	}

	lat, err := strconv.ParseFloat(r.FormValue("lat"), 64)
	if err != nil {
		return nil, err
	}
	lng, err := strconv.ParseFloat(r.FormValue("lng"), 64)
	if err != nil {
		return nil, err
	}

	isEmergency, _ := strconv.ParseBool(r.FormValue("is_emergency"))

	image, imageType, err := readFormImage(r, "image")
	if err != nil {
		return nil, err
	}

	return &model.UploadWasteDTO{
		WasteType:   model.WasteType(r.FormValue("waste_type")),
		Quantity:    quantity,
		Location:    model.Location{Lat: lat, Lng: lng},
		Address: model.Address{
			Street:  r.FormValue("street"),
			City:    r.FormValue("city"),
			State:   r.FormValue("state"),
			PinCode: r.FormValue("pin_code"),
		},
		IsEmergency: isEmergency,
		Image:       image,
		ImageType:   imageType,
	}, nil
}

func readFormImage(r *http.Request, field string) ([]byte, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return data, contentType, nil
}

func (c *Controller) CancelPickup(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CancelPickupDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	pickup, apiErr := c.service.CancelPickup(r.Context(), auth.GetTokenInfo[model.TokenInfo](r).ID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, model.PickupResponse{
		Message: "Pickup request cancelled",
		Request: pickup,
	}, http.StatusOK)
}

func (c *Controller) StartPickup(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.StartPickupDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	pickup, apiErr := c.service.StartPickup(r.Context(), auth.GetTokenInfo[model.TokenInfo](r).ID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, model.PickupResponse{
		Message: "Pickup is now in progress",
		Request: pickup,
	}, http.StatusOK)
}

func (c *Controller) CompletePickup(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CompletePickupDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	pickup, apiErr := c.service.CompletePickup(r.Context(), auth.GetTokenInfo[model.TokenInfo](r).ID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, model.PickupResponse{
		Message: "Pickup completed, credits awarded",
		Request: pickup,
	}, http.StatusOK)
}

func (c *Controller) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	requests, apiErr := c.service.GetMyRequests(r.Context(), auth.GetTokenInfo[model.TokenInfo](r).ID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}
	if len(requests) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, model.PickupListResponse{
		Message:  "Your pickup requests",
		Requests: requests,
	}, http.StatusOK)
}

func (c *Controller) GetAssignedPickups(w http.ResponseWriter, r *http.Request) {
	c.writePickerQueue(w, r, false, "Your assigned pickups")
}

func (c *Controller) GetEmergencyPickups(w http.ResponseWriter, r *http.Request) {
	c.writePickerQueue(w, r, true, "Your emergency pickups")
}

func (c *Controller) writePickerQueue(w http.ResponseWriter, r *http.Request, emergency bool, message string) {
	queue, apiErr := c.service.GetPickerQueue(r.Context(), auth.GetTokenInfo[model.TokenInfo](r).ID, emergency)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}
	if len(queue) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, model.PickupListResponse{
		Message:  message,
		Requests: queue,
	}, http.StatusOK)
}
