package authService

import (
	"context"
	"errors"
	"testing"
	"time"

	"SmartObjectAI/internal/api/auth"
	authRepository "SmartObjectAI/internal/api/auth/repository"
	"SmartObjectAI/internal/entity"
	"SmartObjectAI/pkg/bcrypt"

	"github.com/sirupsen/logrus"
)

type fakeAuthRepo struct {
	users map[string]entity.User
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{users: make(map[string]entity.User)}
}

func (f *fakeAuthRepo) NewClient(tx bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    &fakeUserStore{repo: f},
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeUserStore struct {
	repo *fakeAuthRepo
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user entity.User) error {
	if _, ok := f.repo.users[user.Email]; ok {
		return auth.ErrEmailAlreadyExists
	}
	f.repo.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (entity.User, error) {
	for _, user := range f.repo.users {
		if user.ID == id {
			return user, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	user, ok := f.repo.users[email]
	if !ok {
		return entity.User{}, auth.ErrUserWithEmailNotFound
	}
	return user, nil
}

func (f *fakeUserStore) UpdateProfile(ctx context.Context, id string, fullName string) error {
	for email, user := range f.repo.users {
		if user.ID == id {
			user.FullName = fullName
			f.repo.users[email] = user
			return nil
		}
	}
	return auth.ErrUserNotFound
}

func (f *fakeUserStore) UpdateUserPassword(ctx context.Context, email string, password string) error {
	user, ok := f.repo.users[email]
	if !ok {
		return auth.ErrUserWithEmailNotFound
	}
	user.Password = password
	f.repo.users[email] = user
	return nil
}

func (f *fakeUserStore) ConfirmEmail(ctx context.Context, id string) error {
	for email, user := range f.repo.users {
		if user.ID == id {
			user.EmailConfirmedAt = time.Now()
			f.repo.users[email] = user
			return nil
		}
	}
	return auth.ErrUserNotFound
}

func (f *fakeUserStore) DeleteUser(ctx context.Context, id string) error {
	for email, user := range f.repo.users {
		if user.ID == id {
			delete(f.repo.users, email)
			return nil
		}
	}
	return auth.ErrUserNotFound
}

func newAuthTestService(repo authRepository.Repository) AuthService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return New(logger, repo, nil, nil, nil, bcrypt.NewWithCost(4), nil)
}

func seedUser(t *testing.T, repo *fakeAuthRepo, email, password string, confirmed bool) {
	t.Helper()

	hashed, err := bcrypt.NewWithCost(4).HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := entity.User{
		ID:       "user-" + email,
		Email:    email,
		FullName: "Test User",
		Password: hashed,
	}
	if confirmed {
		user.EmailConfirmedAt = time.Now()
	}
	repo.users[email] = user
}

func TestLoginSuccess(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	repo := newFakeAuthRepo()
	seedUser(t, repo, "a@b.test", "password123", true)
	svc := newAuthTestService(repo)

	res, err := svc.Auth().Login(context.Background(), auth.LoginUserRequest{
		Email:    "a@b.test",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AccessToken == "" {
		t.Fatal("expected access token")
	}
	if res.ExpiresInMinutes <= 0 {
		t.Fatalf("expected positive expiry, got %v", res.ExpiresInMinutes)
	}
}

func TestLoginConfirmsUnconfirmedEmailAndProceeds(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	repo := newFakeAuthRepo()
	seedUser(t, repo, "new@b.test", "password123", false)
	svc := newAuthTestService(repo)

	res, err := svc.Auth().Login(context.Background(), auth.LoginUserRequest{
		Email:    "new@b.test",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("expected login to succeed after auto-confirmation, got %v", err)
	}
	if res.AccessToken == "" {
		t.Fatal("expected access token")
	}

	if repo.users["new@b.test"].EmailConfirmedAt.IsZero() {
		t.Fatal("expected email to be confirmed in place")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeAuthRepo()
	seedUser(t, repo, "a@b.test", "password123", true)
	svc := newAuthTestService(repo)

	_, err := svc.Auth().Login(context.Background(), auth.LoginUserRequest{
		Email:    "a@b.test",
		Password: "wrong-password",
	})
	if !errors.Is(err, auth.ErrInvalidEmailOrPassword) {
		t.Fatalf("expected ErrInvalidEmailOrPassword, got %v", err)
	}
}

func TestLoginUnknownEmailMapsToInvalidCredentials(t *testing.T) {
	svc := newAuthTestService(newFakeAuthRepo())

	_, err := svc.Auth().Login(context.Background(), auth.LoginUserRequest{
		Email:    "nobody@b.test",
		Password: "password123",
	})
	if !errors.Is(err, auth.ErrInvalidEmailOrPassword) {
		t.Fatalf("expected ErrInvalidEmailOrPassword, got %v", err)
	}
}

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newAuthTestService(repo)

	req := auth.CreateUserRequest{
		Email:    "dup@b.test",
		Password: "password123",
		FullName: "Dup User",
	}

	if err := svc.User().RegisterUser(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.User().RegisterUser(context.Background(), req); !errors.Is(err, auth.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}

	if repo.users["dup@b.test"].Password == "password123" {
		t.Fatal("password must be stored hashed")
	}
}
