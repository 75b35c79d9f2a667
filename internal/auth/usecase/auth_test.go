package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"student-id-card-generation/internal/auth"
	repo "student-id-card-generation/internal/auth/repository"
	"student-id-card-generation/internal/model"
	"student-id-card-generation/pkg/log"
	"student-id-card-generation/pkg/session"
)

type fakeRepo struct {
	users  []auth.User
	counts auth.Counts
	err    error
}

func (f *fakeRepo) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (auth.User, error) {
	u := auth.User{ID: opt.ID, Name: opt.Name, Email: opt.Email, PasswordHash: opt.PasswordHash, Role: opt.Role}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeRepo) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (auth.User, error) {
	if f.err != nil {
		return auth.User{}, f.err
	}
	for _, u := range f.users {
		if opt.Email != "" && !strings.EqualFold(u.Email, opt.Email) {
			continue
		}
		if opt.Role != "" && u.Role != opt.Role {
			continue
		}
		return u, nil
	}
	return auth.User{}, nil
}

func (f *fakeRepo) CountRecords(ctx context.Context) (auth.Counts, error) {
	return f.counts, f.err
}

func newUseCase(t *testing.T, r *fakeRepo) (*implUseCase, session.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := session.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 0)
	uc := New(log.NewNop(), r, store).(*implUseCase)
	uc.bcryptCost = bcrypt.MinCost
	uc.newID = func() string { return "admin-1" }
	return uc, store
}

func TestCreateAdmin(t *testing.T) {
	ctx := context.Background()
	r := &fakeRepo{}
	uc, _ := newUseCase(t, r)

	exists, err := uc.AdminExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = uc.CreateAdmin(ctx, auth.CreateAdminInput{Name: "Admin", Email: " "})
	assert.ErrorIs(t, err, auth.ErrFieldsRequired)

	out, err := uc.CreateAdmin(ctx, auth.CreateAdminInput{Name: " Admin ", Email: " Admin@Uni.EDU ", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "admin-1", out.User.ID)
	assert.Equal(t, "admin@uni.edu", out.User.Email)
	assert.Equal(t, model.RoleAdmin, out.User.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(out.User.PasswordHash), []byte("s3cret")))

	exists, err = uc.AdminExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = uc.CreateAdmin(ctx, auth.CreateAdminInput{Name: "Other", Email: "o@uni.edu", Password: "x"})
	assert.ErrorIs(t, err, auth.ErrAdminExists)
}

func TestLoginLogout(t *testing.T) {
	ctx := context.Background()
	r := &fakeRepo{}
	uc, store := newUseCase(t, r)
	_, err := uc.CreateAdmin(ctx, auth.CreateAdminInput{Name: "Admin", Email: "admin@uni.edu", Password: "s3cret"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   auth.LoginInput
		wantErr error
	}{
		{"empty", auth.LoginInput{Email: "admin@uni.edu"}, auth.ErrCredentialsMissing},
		{"unknown email", auth.LoginInput{Email: "nobody@uni.edu", Password: "s3cret"}, auth.ErrInvalidCredentials},
		{"wrong password", auth.LoginInput{Email: "admin@uni.edu", Password: "nope"}, auth.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	out, err := uc.Login(ctx, auth.LoginInput{Email: "  ADMIN@uni.edu ", Password: "s3cret"})
	require.NoError(t, err)
	require.NotEmpty(t, out.SessionID)

	data, err := store.Get(ctx, out.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", data.UserID)
	assert.Equal(t, "admin", data.Role)

	require.NoError(t, uc.Logout(ctx, out.SessionID))
	_, err = store.Get(ctx, out.SessionID)
	assert.ErrorIs(t, err, session.ErrNotFound)

	assert.NoError(t, uc.Logout(ctx, ""))
}

func TestDashboard(t *testing.T) {
	uc, _ := newUseCase(t, &fakeRepo{counts: auth.Counts{Students: 3, Batches: 2, Departments: 1}})
	out, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, auth.Counts{Students: 3, Batches: 2, Departments: 1}, out.Counts)

	boom := errors.New("db down")
	uc, _ = newUseCase(t, &fakeRepo{err: boom})
	_, err = uc.Dashboard(context.Background())
	assert.ErrorIs(t, err, boom)
}
