package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bankqueue/queue-service/internal/auth"
	"github.com/bankqueue/queue-service/internal/domain"
)

type userFixture struct {
	svc   *UserService
	users *memUserRepo
	logs  *memLogRepo
	tx    *recordingTxRunner
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	users := newMemUserRepo()
	logs := newMemLogRepo()
	tx := &recordingTxRunner{}
	svc := NewUserService(UserDependencies{
		UserRepo:   users,
		Audit:      NewLogService(users, logs),
		Tx:         tx,
		BcryptCost: bcrypt.MinCost,
	})
	return &userFixture{svc: svc, users: users, logs: logs, tx: tx}
}

func TestRegisterCreatesUserAndLogs(t *testing.T) {
	f := newUserFixture(t)

	user, err := f.svc.Register(context.Background(), UserRegisterInput{
		Name:        "Ivan",
		Login:       "ivan",
		Email:       "ivan@example.com",
		PhoneNumber: "+79990000000",
		Password:    "secret",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NoError(t, auth.VerifyPassword(user.PasswordHash, "secret"))

	require.Len(t, f.logs.logs, 1)
	require.Equal(t, domain.EventUserRegistered, f.logs.logs[0].EventType)
	require.Equal(t, user.ID, f.logs.logs[0].UserID)
}

func TestRegisterDuplicateLogin(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.svc.Register(context.Background(), UserRegisterInput{
		Login: "ivan", Email: "ivan@example.com", Password: "secret",
	})
	require.NoError(t, err)

	_, err = f.svc.Register(context.Background(), UserRegisterInput{
		Login: "ivan", Email: "other@example.com", Password: "secret",
	})
	require.Error(t, err)
	require.Equal(t, "CONFLICT", domainCode(t, err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.svc.Register(context.Background(), UserRegisterInput{
		Login: "ivan", Email: "ivan@example.com", Password: "secret",
	})
	require.NoError(t, err)

	_, err = f.svc.Register(context.Background(), UserRegisterInput{
		Login: "ivan2", Email: "ivan@example.com", Password: "secret",
	})
	require.Error(t, err)
	require.Equal(t, "CONFLICT", domainCode(t, err))
}

func TestUpdateProfile(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.svc.Register(context.Background(), UserRegisterInput{
		Login: "ivan", Email: "ivan@example.com", Password: "secret",
	})
	require.NoError(t, err)

	name := "Ivan Petrov"
	phone := "+79991112233"
	updated, err := f.svc.Update(context.Background(), "ivan", UserUpdateInput{
		Name: &name, PhoneNumber: &phone,
	})
	require.NoError(t, err)
	require.Equal(t, name, updated.Name)
	require.Equal(t, phone, updated.PhoneNumber)
	require.Equal(t, domain.EventUserUpdated, f.logs.logs[len(f.logs.logs)-1].EventType)
}

func TestUpdateEmailConflict(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.svc.Register(context.Background(), UserRegisterInput{
		Login: "ivan", Email: "ivan@example.com", Password: "secret",
	})
	require.NoError(t, err)
	_, err = f.svc.Register(context.Background(), UserRegisterInput{
		Login: "olga", Email: "olga@example.com", Password: "secret",
	})
	require.NoError(t, err)

	taken := "olga@example.com"
	_, err = f.svc.Update(context.Background(), "ivan", UserUpdateInput{Email: &taken})
	require.Error(t, err)
	require.Equal(t, "CONFLICT", domainCode(t, err))
}

func TestUpdateUnknownUser(t *testing.T) {
	f := newUserFixture(t)

	name := "Ghost"
	_, err := f.svc.Update(context.Background(), "ghost", UserUpdateInput{Name: &name})
	require.Error(t, err)
	require.Equal(t, "USER_NOT_FOUND", domainCode(t, err))
}

func TestChangePassword(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.svc.Register(context.Background(), UserRegisterInput{
		Login: "ivan", Email: "ivan@example.com", Password: "secret",
	})
	require.NoError(t, err)

	err = f.svc.ChangePassword(context.Background(), "ivan", ChangePasswordInput{
		CurrentPassword: "secret",
		NewPassword:     "rotated",
		ConfirmPassword: "rotated",
	})
	require.NoError(t, err)

	user, err := f.users.GetByLogin(context.Background(), "ivan")
	require.NoError(t, err)
	require.NoError(t, auth.VerifyPassword(user.PasswordHash, "rotated"))
	require.Equal(t, domain.EventUserPasswordUpdated, f.logs.logs[len(f.logs.logs)-1].EventType)
}

func TestChangePasswordConfirmMismatch(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.svc.Register(context.Background(), UserRegisterInput{
		Login: "ivan", Email: "ivan@example.com", Password: "secret",
	})
	require.NoError(t, err)

	err = f.svc.ChangePassword(context.Background(), "ivan", ChangePasswordInput{
		CurrentPassword: "secret",
		NewPassword:     "rotated",
		ConfirmPassword: "different",
	})
	require.Error(t, err)
	require.Equal(t, "VALIDATION_FAILED", domainCode(t, err))
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.svc.Register(context.Background(), UserRegisterInput{
		Login: "ivan", Email: "ivan@example.com", Password: "secret",
	})
	require.NoError(t, err)

	err = f.svc.ChangePassword(context.Background(), "ivan", ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "rotated",
		ConfirmPassword: "rotated",
	})
	require.Error(t, err)
	require.Equal(t, "UNAUTHORIZED", domainCode(t, err))
}

func TestDeleteUser(t *testing.T) {
	f := newUserFixture(t)

	user, err := f.svc.Register(context.Background(), UserRegisterInput{
		Login: "ivan", Email: "ivan@example.com", Password: "secret",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), "ivan"))
	_, err = f.users.GetByLogin(context.Background(), "ivan")
	require.Error(t, err)

	// The deletion record is written before the row goes away.
	require.Equal(t, domain.EventUserDeleted, f.logs.logs[len(f.logs.logs)-1].EventType)
	require.Equal(t, user.ID, f.logs.logs[len(f.logs.logs)-1].UserID)
}

func TestDeleteUnknownUser(t *testing.T) {
	f := newUserFixture(t)

	err := f.svc.Delete(context.Background(), "ghost")
	require.Error(t, err)
	require.Equal(t, "USER_NOT_FOUND", domainCode(t, err))
}
