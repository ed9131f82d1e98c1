package pg

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/enviromat/enviromat/internal/model"
)

func newTestRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &Repository{
		db:         db,
		lg:         zap.NewNop().Sugar(),
		classifier: NewPostgresErrorClassifier(),
	}
	return repo, mock
}

var pickupTestColumns = []string{
	"id", "user_id", "waste_type", "image_url", "user_quantity", "verified_quantity",
	"quality_rating", "lat", "lng", "street", "city", "state", "pin_code", "credit_points",
	"pickup_by", "status", "is_emergency", "pickup_date", "created_at", "updated_at",
}

func pickupRow(id uuid.UUID, userID int64, status model.PickupStatus, pickupBy any) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(pickupTestColumns).
		AddRow(id.String(), userID, "metal", "https://cdn.enviromat.in/img.jpg", 10.0, nil,
			nil, 22.57, 88.36, "12 Park Street", "Kolkata", "West Bengal", "700016", nil,
			pickupBy, string(status), false, nil, now, now)
}

func TestRepository_GetUserByLogin_Found(t *testing.T) {
	repo, mock := newTestRepo(t)

	createdAt := time.Now()
	rows := sqlmock.NewRows([]string{"id", "login", "password", "first_name", "phone", "created_at"}).
		AddRow(123, "testuser", "hashed", "Ravi", "+919000000007", createdAt)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login, password, first_name, phone, created_at FROM users WHERE login = $1`)).
		WithArgs("testuser").
		WillReturnRows(rows)

	user, err := repo.GetUserByLogin(context.Background(), "testuser")

	require.NoError(t, err)
	assert.Equal(t, int64(123), user.ID)
	assert.Equal(t, "Ravi", user.FirstName)
	assert.WithinDuration(t, createdAt, user.CreatedAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetUserByLogin_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login, password, first_name, phone, created_at FROM users WHERE login = $1`)).
		WithArgs("nonexistent").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByLogin(context.Background(), "nonexistent")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateUser_Success(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (login, password, first_name, phone) VALUES ($1, $2, $3, $4) RETURNING id`)).
		WithArgs("testuser", "hashed", "Ravi", "+919000000007").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(123)))

	userID, err := repo.CreateUser(context.Background(), model.User{
		Login:     "testuser",
		Password:  "hashed",
		FirstName: "Ravi",
		Phone:     "+919000000007",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(123), userID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindPickersByCity(t *testing.T) {
	repo, mock := newTestRepo(t)

	rows := sqlmock.NewRows([]string{"id", "login", "password", "first_name", "last_name", "phone", "city", "state", "created_at"}).
		AddRow(42, "picker1", "hashed", "Amit", "Das", "+919000000042", "Kolkata", "West Bengal", time.Now())

	mock.ExpectQuery(`FROM pickers WHERE city = \$1 ORDER BY id LIMIT \$2`).
		WithArgs("Kolkata", 20).
		WillReturnRows(rows)

	pickers, err := repo.FindPickersByCity(context.Background(), "Kolkata", 20)

	require.NoError(t, err)
	require.Len(t, pickers, 1)
	assert.Equal(t, int64(42), pickers[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AssignPickup_Success(t *testing.T) {
	repo, mock := newTestRepo(t)

	id := uuid.New()
	mock.ExpectQuery(`UPDATE pickup_requests\s+SET pickup_by = \$2, status = 'assigned'`).
		WithArgs(id, int64(42)).
		WillReturnRows(pickupRow(id, 7, model.PickupStatusAssigned, int64(42)))

	pickup, err := repo.AssignPickup(context.Background(), id, 42)

	require.NoError(t, err)
	assert.Equal(t, model.PickupStatusAssigned, pickup.Status)
	require.NotNil(t, pickup.PickupBy)
	assert.Equal(t, int64(42), *pickup.PickupBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AssignPickup_WrongStatus(t *testing.T) {
	repo, mock := newTestRepo(t)

	id := uuid.New()
	mock.ExpectQuery(`UPDATE pickup_requests\s+SET pickup_by = \$2, status = 'assigned'`).
		WithArgs(id, int64(42)).
		WillReturnError(sql.ErrNoRows)

	pickup, err := repo.AssignPickup(context.Background(), id, 42)

	assert.Nil(t, pickup)
	assert.ErrorIs(t, err, model.ErrPickupWrongStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_StartPickup_GuardsAssignee(t *testing.T) {
	repo, mock := newTestRepo(t)

	id := uuid.New()
	mock.ExpectQuery(`UPDATE pickup_requests\s+SET status = 'in_progress'`).
		WithArgs(id, int64(99)).
		WillReturnError(sql.ErrNoRows)

	pickup, err := repo.StartPickup(context.Background(), id, 99)

	assert.Nil(t, pickup)
	assert.ErrorIs(t, err, model.ErrPickupWrongStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CancelPickup_AssignedWritesBothLedgerRows(t *testing.T) {
	repo, mock := newTestRepo(t)

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE pickup_requests\s+SET status = 'cancelled'`).
		WithArgs(id).
		WillReturnRows(pickupRow(id, 7, model.PickupStatusCancelled, int64(42)))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO credit_entries`)).
		WithArgs(model.CreditAccountPicker, int64(42), &id, nil, int64(5), model.CreditReasonCancelCompensation).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO credit_entries`)).
		WithArgs(model.CreditAccountUser, int64(7), &id, nil, int64(-5), model.CreditReasonCancelPenalty).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	pickup, err := repo.CancelPickup(context.Background(), id, 5, 5)

	require.NoError(t, err)
	assert.Equal(t, model.PickupStatusCancelled, pickup.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The caller always supplies the compensation amount. Whether it is
// booked depends on the assignee of the row the transaction cancels.
func TestRepository_CancelPickup_UnassignedSkipsCompensation(t *testing.T) {
	repo, mock := newTestRepo(t)

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE pickup_requests\s+SET status = 'cancelled'`).
		WithArgs(id).
		WillReturnRows(pickupRow(id, 7, model.PickupStatusCancelled, nil))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO credit_entries`)).
		WithArgs(model.CreditAccountUser, int64(7), &id, nil, int64(-5), model.CreditReasonCancelPenalty).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	_, err := repo.CancelPickup(context.Background(), id, 5, 5)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CancelPickup_CompletedRollsBack(t *testing.T) {
	repo, mock := newTestRepo(t)

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE pickup_requests\s+SET status = 'cancelled'`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	pickup, err := repo.CancelPickup(context.Background(), id, 5, 5)

	assert.Nil(t, pickup)
	assert.ErrorIs(t, err, model.ErrPickupWrongStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CompletePickup_AwardsCredits(t *testing.T) {
	repo, mock := newTestRepo(t)

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE pickup_requests\s+SET status = 'completed'`).
		WithArgs(id, int64(42), 10.0, model.QualityHigh, int64(75)).
		WillReturnRows(pickupRow(id, 7, model.PickupStatusCompleted, int64(42)))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO credit_entries`)).
		WithArgs(model.CreditAccountUser, int64(7), &id, nil, int64(75), model.CreditReasonPickupCompleted).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO credit_entries`)).
		WithArgs(model.CreditAccountPicker, int64(42), &id, nil, int64(12), model.CreditReasonPickupBonus).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	pickup, err := repo.CompletePickup(context.Background(), id, 42, 10, model.QualityHigh, 75, 12)

	require.NoError(t, err)
	assert.Equal(t, model.PickupStatusCompleted, pickup.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CompletePickup_Duplicate(t *testing.T) {
	repo, mock := newTestRepo(t)

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE pickup_requests\s+SET status = 'completed'`).
		WithArgs(id, int64(42), 10.0, model.QualityHigh, int64(75)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	pickup, err := repo.CompletePickup(context.Background(), id, 42, 10, model.QualityHigh, 75, 12)

	assert.Nil(t, pickup)
	assert.ErrorIs(t, err, model.ErrPickupWrongStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetPickerQueue_FiltersEmergency(t *testing.T) {
	repo, mock := newTestRepo(t)

	id := uuid.New()
	mock.ExpectQuery(`FROM pickup_requests\s+WHERE pickup_by = \$1 AND is_emergency = \$2 AND status IN \('assigned', 'in_progress'\)`).
		WithArgs(int64(42), true).
		WillReturnRows(pickupRow(id, 7, model.PickupStatusAssigned, int64(42)))

	queue, err := repo.GetPickerQueue(context.Background(), 42, true)

	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, id, queue[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetBalance_FoldsLedger(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount), 0) FROM credit_entries WHERE account_type = $1 AND account_id = $2`)).
		WithArgs(model.CreditAccountUser, int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(70)))

	balance, err := repo.GetBalance(context.Background(), model.CreditAccountUser, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(70), balance.CreditPoints)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetBalance_EmptyLedgerIsZero(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount), 0) FROM credit_entries WHERE account_type = $1 AND account_id = $2`)).
		WithArgs(model.CreditAccountPicker, int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(0)))

	balance, err := repo.GetBalance(context.Background(), model.CreditAccountPicker, 404)

	require.NoError(t, err)
	assert.Equal(t, int64(0), balance.CreditPoints)
	assert.NoError(t, mock.ExpectationsWereMet())
}
