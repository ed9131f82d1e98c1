package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/enviromat/enviromat/internal/events"
	"github.com/enviromat/enviromat/internal/model"
	"github.com/enviromat/enviromat/internal/notify"
	"github.com/enviromat/enviromat/pgk/auth"
	"github.com/enviromat/enviromat/pgk/password"

	mockPG "github.com/enviromat/enviromat/internal/repository/pg/mocks"
)

type fakeSelector struct {
	picker *model.Picker
	err    error
}

func (f *fakeSelector) SelectNearest(ctx context.Context, candidates []model.Picker, location model.Location, address model.Address) (*model.Picker, error) {
	return f.picker, f.err
}

type fakeSMS struct {
	to   []string
	sent []notify.PickupNotification
	err  error
}

func (f *fakeSMS) SendPickupSMS(ctx context.Context, to string, n notify.PickupNotification) (string, error) {
	f.to = append(f.to, to)
	f.sent = append(f.sent, n)
	return "msg-1", f.err
}

type recordingPublisher struct {
	published []events.PickupEvent
}

func (r *recordingPublisher) Publish(ctx context.Context, event events.PickupEvent) {
	r.published = append(r.published, event)
}

func (r *recordingPublisher) Close() error { return nil }

type fakeUploader struct {
	url string
	err error
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	return f.url, f.err
}

type testEnv struct {
	storage  *mockPG.MockStorageRepo
	selector *fakeSelector
	sms      *fakeSMS
	events   *recordingPublisher
	uploader *fakeUploader
	svc      *Service
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	env := &testEnv{
		storage:  mockPG.NewMockStorageRepo(ctrl),
		selector: &fakeSelector{},
		sms:      &fakeSMS{},
		events:   &recordingPublisher{},
		uploader: &fakeUploader{url: "https://cdn.enviromat.in/img.jpg"},
	}
	env.svc = New(env.storage, env.selector, env.sms, env.events, env.uploader,
		zap.NewNop().Sugar(), 3, 1*time.Hour, "secret")

	return env
}

func TestService_Register_Success(t *testing.T) {
	env := newTestEnv(t)

	input := model.RegisterDTO{
		Login:     "testuser",
		Password:  "testpass123",
		FirstName: "Ravi",
		Phone:     "+919000000001",
	}

	env.storage.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(int64(123), nil).
		Times(1)

	token, apiErr := env.svc.Register(context.Background(), input)

	assert.Nil(t, apiErr)
	assert.NotEmpty(t, token)

	info, err := auth.VerifyJWTBearerToken[model.TokenInfo](token, "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(123), info.ID)
	assert.Equal(t, model.RoleUser, info.Role)
}

func TestService_Register_Conflict(t *testing.T) {
	env := newTestEnv(t)

	env.storage.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(int64(0), &pq.Error{Code: "23505"})

	token, apiErr := env.svc.Register(context.Background(), model.RegisterDTO{
		Login:     "testuser",
		Password:  "testpass123",
		FirstName: "Ravi",
	})

	assert.Empty(t, token)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Code)
	assert.Equal(t, model.ErrUserAlreadyExistMessage, apiErr.Message)
}

func TestService_Register_InvalidInput(t *testing.T) {
	env := newTestEnv(t)

	token, apiErr := env.svc.Register(context.Background(), model.RegisterDTO{
		Login:    "ab",
		Password: "testpass123",
	})

	assert.Empty(t, token)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
}

func TestService_Login_Success(t *testing.T) {
	env := newTestEnv(t)

	hash, err := password.HashPassword("testpass123", 3)
	require.NoError(t, err)

	env.storage.EXPECT().
		GetUserByLogin(gomock.Any(), "testuser").
		Return(&model.User{ID: 7, Login: "testuser", Password: hash}, nil)

	token, apiErr := env.svc.Login(context.Background(), model.LoginDTO{
		Login:    "testuser",
		Password: "testpass123",
	})

	assert.Nil(t, apiErr)
	assert.NotEmpty(t, token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	env := newTestEnv(t)

	hash, err := password.HashPassword("rightpass", 3)
	require.NoError(t, err)

	env.storage.EXPECT().
		GetUserByLogin(gomock.Any(), "testuser").
		Return(&model.User{ID: 7, Login: "testuser", Password: hash}, nil)

	token, apiErr := env.svc.Login(context.Background(), model.LoginDTO{
		Login:    "testuser",
		Password: "wrongpass",
	})

	assert.Empty(t, token)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Code)
}

func TestService_Login_UnknownUser(t *testing.T) {
	env := newTestEnv(t)

	env.storage.EXPECT().
		GetUserByLogin(gomock.Any(), "ghost").
		Return(nil, model.ErrUserNotFound)

	token, apiErr := env.svc.Login(context.Background(), model.LoginDTO{
		Login:    "ghost",
		Password: "testpass123",
	})

	assert.Empty(t, token)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Code)
}

func TestService_RegisterPicker_Success(t *testing.T) {
	env := newTestEnv(t)

	env.storage.EXPECT().
		CreatePicker(gomock.Any(), gomock.Any()).
		Return(int64(42), nil)

	token, apiErr := env.svc.RegisterPicker(context.Background(), model.RegisterPickerDTO{
		Login:     "picker1",
		Password:  "pickerpass",
		FirstName: "Amit",
		City:      "Kolkata",
		State:     "West Bengal",
	})

	assert.Nil(t, apiErr)

	info, err := auth.VerifyJWTBearerToken[model.TokenInfo](token, "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(42), info.ID)
	assert.Equal(t, model.RolePicker, info.Role)
}

func TestService_RegisterPicker_MissingCity(t *testing.T) {
	env := newTestEnv(t)

	_, apiErr := env.svc.RegisterPicker(context.Background(), model.RegisterPickerDTO{
		Login:     "picker1",
		Password:  "pickerpass",
		FirstName: "Amit",
	})

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
}

func TestService_GetBalance_User(t *testing.T) {
	env := newTestEnv(t)

	env.storage.EXPECT().
		GetBalance(gomock.Any(), model.CreditAccountUser, int64(7)).
		Return(&model.Balance{CreditPoints: 120}, nil)

	balance, apiErr := env.svc.GetBalance(context.Background(), model.TokenInfo{ID: 7, Role: model.RoleUser})

	assert.Nil(t, apiErr)
	assert.Equal(t, int64(120), balance.CreditPoints)
}

func TestService_GetBalance_PickerAccount(t *testing.T) {
	env := newTestEnv(t)

	env.storage.EXPECT().
		GetBalance(gomock.Any(), model.CreditAccountPicker, int64(42)).
		Return(&model.Balance{CreditPoints: 35}, nil)

	balance, apiErr := env.svc.GetBalance(context.Background(), model.TokenInfo{ID: 42, Role: model.RolePicker})

	assert.Nil(t, apiErr)
	assert.Equal(t, int64(35), balance.CreditPoints)
}

func TestService_GetBalance_StorageError(t *testing.T) {
	env := newTestEnv(t)

	env.storage.EXPECT().
		GetBalance(gomock.Any(), model.CreditAccountUser, int64(7)).
		Return(nil, errors.New("database connection failed"))

	balance, apiErr := env.svc.GetBalance(context.Background(), model.TokenInfo{ID: 7, Role: model.RoleUser})

	assert.Nil(t, balance)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
}
