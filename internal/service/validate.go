package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/enviromat/enviromat/internal/model"
)

const (
	minPassLen  = 4
	maxPassLen  = 64
	minLoginLen = 3
	maxLoginLen = 64

	minTitleLen = 5
	maxTitleLen = 20
	minDescLen  = 25
	maxDescLen  = 50

	maxQuantityKg = 1000
)

var minOrderPrice = decimal.NewFromInt(50)

func validateLoginDTO(input model.LoginDTO) error {
	if err := validateLogin(input.Login); err != nil {
		return err
	}

	return validatePassword(input.Password)
}

func validateRegisterDTO(input model.RegisterDTO) error {
	if err := validateLogin(input.Login); err != nil {
		return err
	}

	if err := validatePassword(input.Password); err != nil {
		return err
	}

	if input.FirstName == "" {
		return errors.New("first name is required")
	}

	return nil
}

func validateRegisterPickerDTO(input model.RegisterPickerDTO) error {
	if err := validateLogin(input.Login); err != nil {
		return err
	}

	if err := validatePassword(input.Password); err != nil {
		return err
	}

	if input.FirstName == "" {
		return errors.New("first name is required")
	}
	if input.City == "" || input.State == "" {
		return errors.New("city and state are required")
	}

	return nil
}

func validateLogin(login string) error {
	if len(login) < minLoginLen || len(login) > maxLoginLen {
		return errors.New(model.ErrInvalidLoginOrPasswordMessage)
	}

	return nil
}

func validatePassword(password string) error {
	if len(password) < minPassLen || len(password) > maxPassLen {
		return errors.New(model.ErrInvalidLoginOrPasswordMessage)
	}

	return nil
}

func validateUploadWasteDTO(input model.UploadWasteDTO) error {
	if !input.WasteType.IsValid() {
		return fmt.Errorf("unknown waste type %q", input.WasteType)
	}
	if input.Quantity <= 0 || input.Quantity > maxQuantityKg {
		return errors.New("quantity must be between 0 and 1000 kg")
	}
	if len(input.Image) == 0 {
		return errors.New("waste image is required")
	}
	if input.Address.City == "" || input.Address.State == "" {
		return errors.New("address city and state are required")
	}

	return nil
}

func validateCompletePickupDTO(input model.CompletePickupDTO) error {
	if input.VerifiedQuantity <= 0 || input.VerifiedQuantity > maxQuantityKg {
		return errors.New("verified quantity must be between 0 and 1000 kg")
	}
	if !input.QualityRating.IsValid() {
		return fmt.Errorf("unknown quality rating %q", input.QualityRating)
	}

	return nil
}

func validateCreateOrderDTO(input model.CreateOrderDTO) error {
	if len(input.Title) < minTitleLen || len(input.Title) > maxTitleLen {
		return errors.New("title must be 5 to 20 characters")
	}
	if len(input.Description) < minDescLen || len(input.Description) > maxDescLen {
		return errors.New("description must be 25 to 50 characters")
	}
	if !input.Category.IsValid() {
		return fmt.Errorf("unknown category %q", input.Category)
	}
	if input.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	if input.Price.LessThan(minOrderPrice) {
		return errors.New("price must be at least 50")
	}
	if input.Address == "" {
		return errors.New("address is required")
	}
	if len(input.Image) == 0 {
		return errors.New("product image is required")
	}

	return nil
}
