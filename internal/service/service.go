package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/enviromat/enviromat/internal/events"
	"github.com/enviromat/enviromat/internal/media"
	"github.com/enviromat/enviromat/internal/model"
	"github.com/enviromat/enviromat/internal/notify"
	"github.com/enviromat/enviromat/internal/repository/pg"
	"github.com/enviromat/enviromat/internal/selector"
	"github.com/enviromat/enviromat/pgk/auth"
	"github.com/enviromat/enviromat/pgk/password"
)

type StorageRepo interface {
	CreateUser(ctx context.Context, user model.User) (int64, error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	CreatePicker(ctx context.Context, picker model.Picker) (int64, error)
	GetPickerByLogin(ctx context.Context, login string) (*model.Picker, error)
	GetPickerByID(ctx context.Context, id int64) (*model.Picker, error)
	FindPickersByCity(ctx context.Context, city string, limit int) ([]model.Picker, error)
	FindPickersByState(ctx context.Context, state string, limit int) ([]model.Picker, error)

	CreatePickup(ctx context.Context, p *model.PickupRequest) error
	GetPickupByID(ctx context.Context, id uuid.UUID) (*model.PickupRequest, error)
	GetPickupsByUserID(ctx context.Context, userID int64) ([]model.PickupRequest, error)
	GetPickerQueue(ctx context.Context, pickerID int64, emergency bool) ([]model.PickupRequest, error)
	AssignPickup(ctx context.Context, id uuid.UUID, pickerID int64) (*model.PickupRequest, error)
	StartPickup(ctx context.Context, id uuid.UUID, pickerID int64) (*model.PickupRequest, error)
	CancelPickup(ctx context.Context, id uuid.UUID, userPenalty, pickerCompensation int64) (*model.PickupRequest, error)
	CompletePickup(ctx context.Context, id uuid.UUID, pickerID int64,
		verifiedQuantity float64, qualityRating model.QualityRating,
		userCredits, pickerCredits int64) (*model.PickupRequest, error)

	GetBalance(ctx context.Context, accountType model.CreditAccountType, accountID int64) (*model.Balance, error)

	CreateOrder(ctx context.Context, o *model.Order) error
	GetOrderByID(ctx context.Context, id int64) (*model.Order, error)
	GetAvailableOrders(ctx context.Context) ([]model.Order, error)
	GetOrdersByBuyer(ctx context.Context, buyerID int64) ([]model.Order, error)
	GetCartByUser(ctx context.Context, userID int64) ([]model.Order, error)
	RequestOrder(ctx context.Context, buyerID int64, dto model.RequestOrderDTO) (*model.Order, error)
	CancelOrderRequest(ctx context.Context, buyerID, orderID int64) (*model.Order, error)
	AddToCart(ctx context.Context, userID, orderID int64) (*model.Order, error)
	RemoveFromCart(ctx context.Context, userID, orderID int64) (*model.Order, error)
	MarkOrderDelivered(ctx context.Context, orderID, buyerID, pickerID int64, at time.Time) error
}

// SMSSender mirrors notify.GatewayClient so tests can stub the gateway.
type SMSSender interface {
	SendPickupSMS(ctx context.Context, to string, n notify.PickupNotification) (string, error)
}

type Service struct {
	storage  StorageRepo
	selector selector.PickerSelector
	sms      SMSSender
	events   events.Publisher
	media    media.Uploader
	lg       *zap.SugaredLogger

	passCost    int
	tokenSecret string
	tokenExp    time.Duration
}

func New(
	storage StorageRepo,
	sel selector.PickerSelector,
	sms SMSSender,
	pub events.Publisher,
	uploader media.Uploader,
	lg *zap.SugaredLogger,
	passCost int,
	tokenExp time.Duration,
	tokenSecret string,
) *Service {
	return &Service{
		storage:  storage,
		selector: sel,
		sms:      sms,
		events:   pub,
		media:    uploader,
		lg:       lg,

		passCost:    passCost,
		tokenExp:    tokenExp,
		tokenSecret: tokenSecret,
	}
}

func (s *Service) Login(ctx context.Context, input model.LoginDTO) (string, *model.APIError) {
	if err := validateLoginDTO(input); err != nil {
		return "", &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	user, err := s.storage.GetUserByLogin(ctx, input.Login)
	if err != nil {
		return "", &model.APIError{
			Code:    http.StatusUnauthorized,
			Message: model.ErrInvalidLoginOrPasswordMessage,
		}
	}

	if !password.CheckPasswordHash(input.Password, user.Password) {
		return "", &model.APIError{
			Code:    http.StatusUnauthorized,
			Message: model.ErrInvalidLoginOrPasswordMessage,
		}
	}

	return s.issueToken(user.ID, user.Login, model.RoleUser)
}

func (s *Service) Register(ctx context.Context, input model.RegisterDTO) (string, *model.APIError) {
	if err := validateRegisterDTO(input); err != nil {
		return "", &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	passwordHash, err := password.HashPassword(input.Password, s.passCost)
	if err != nil {
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	id, err := s.storage.CreateUser(ctx, model.User{
		Login:     input.Login,
		Password:  passwordHash,
		FirstName: input.FirstName,
		Phone:     input.Phone,
	})
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return "", &model.APIError{
				Code:    http.StatusConflict,
				Message: model.ErrUserAlreadyExistMessage,
			}
		}
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return s.issueToken(id, input.Login, model.RoleUser)
}

func (s *Service) LoginPicker(ctx context.Context, input model.LoginDTO) (string, *model.APIError) {
	if err := validateLoginDTO(input); err != nil {
		return "", &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	picker, err := s.storage.GetPickerByLogin(ctx, input.Login)
	if err != nil {
		return "", &model.APIError{
			Code:    http.StatusUnauthorized,
			Message: model.ErrInvalidLoginOrPasswordMessage,
		}
	}

	if !password.CheckPasswordHash(input.Password, picker.Password) {
		return "", &model.APIError{
			Code:    http.StatusUnauthorized,
			Message: model.ErrInvalidLoginOrPasswordMessage,
		}
	}

	return s.issueToken(picker.ID, picker.Login, model.RolePicker)
}

func (s *Service) RegisterPicker(ctx context.Context, input model.RegisterPickerDTO) (string, *model.APIError) {
	if err := validateRegisterPickerDTO(input); err != nil {
		return "", &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	passwordHash, err := password.HashPassword(input.Password, s.passCost)
	if err != nil {
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	id, err := s.storage.CreatePicker(ctx, model.Picker{
		Login:     input.Login,
		Password:  passwordHash,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		City:      input.City,
		State:     input.State,
	})
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return "", &model.APIError{
				Code:    http.StatusConflict,
				Message: model.ErrUserAlreadyExistMessage,
			}
		}
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return s.issueToken(id, input.Login, model.RolePicker)
}

func (s *Service) GetBalance(ctx context.Context, info model.TokenInfo) (*model.Balance, *model.APIError) {
	accountType := model.CreditAccountUser
	if info.Role == model.RolePicker {
		accountType = model.CreditAccountPicker
	}

	balance, err := s.storage.GetBalance(ctx, accountType, info.ID)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return balance, nil
}

func (s *Service) issueToken(id int64, login string, role model.Role) (string, *model.APIError) {
	token, err := auth.GenerateBearerToken(model.TokenInfo{
		ID:    id,
		Login: login,
		Role:  role,
	}, s.tokenExp, s.tokenSecret)
	if err != nil {
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return token, nil
}
