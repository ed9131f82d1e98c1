package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/enviromat/enviromat/internal/model"
)

func TestValidateLoginDTO_Valid(t *testing.T) {
	err := validateLoginDTO(model.LoginDTO{
		Login:    "user123",
		Password: "pass1234",
	})
	require.NoError(t, err)
}

func TestValidateRegisterDTO_Valid(t *testing.T) {
	err := validateRegisterDTO(model.RegisterDTO{
		Login:     "user123",
		Password:  "pass1234",
		FirstName: "Ravi",
	})
	require.NoError(t, err)
}

func TestValidateRegisterDTO_MissingFirstName(t *testing.T) {
	err := validateRegisterDTO(model.RegisterDTO{
		Login:    "user123",
		Password: "pass1234",
	})
	require.Error(t, err)
}

func TestValidateLogin(t *testing.T) {
	valid := []string{
		"abc",
		"user123",
		strings.Repeat("a", 64),
	}
	for _, login := range valid {
		t.Run("valid/"+login, func(t *testing.T) {
			require.NoError(t, validateLogin(login))
		})
	}

	invalid := []string{
		"",
		"ab",
		strings.Repeat("a", 65),
	}
	for _, login := range invalid {
		t.Run("invalid/"+login, func(t *testing.T) {
			require.Error(t, validateLogin(login))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	require.NoError(t, validatePassword("pass"))
	require.NoError(t, validatePassword(strings.Repeat("p", 64)))
	require.Error(t, validatePassword("abc"))
	require.Error(t, validatePassword(strings.Repeat("p", 65)))
}

func TestValidateUploadWasteDTO(t *testing.T) {
	base := model.UploadWasteDTO{
		WasteType: model.WastePlastic,
		Quantity:  5,
		Address:   model.Address{City: "Kolkata", State: "West Bengal"},
		Image:     []byte{1},
	}
	require.NoError(t, validateUploadWasteDTO(base))

	tooMuch := base
	tooMuch.Quantity = 1001
	require.Error(t, validateUploadWasteDTO(tooMuch))

	noCity := base
	noCity.Address.City = ""
	require.Error(t, validateUploadWasteDTO(noCity))

	noImage := base
	noImage.Image = nil
	require.Error(t, validateUploadWasteDTO(noImage))
}

func TestValidateCompletePickupDTO(t *testing.T) {
	require.NoError(t, validateCompletePickupDTO(model.CompletePickupDTO{
		VerifiedQuantity: 8,
		QualityRating:    model.QualityMedium,
	}))
	require.Error(t, validateCompletePickupDTO(model.CompletePickupDTO{
		VerifiedQuantity: 0,
		QualityRating:    model.QualityMedium,
	}))
	require.Error(t, validateCompletePickupDTO(model.CompletePickupDTO{
		VerifiedQuantity: 8,
		QualityRating:    "pristine",
	}))
}
