package user

import (
	"context"
	"errors"
	"testing"

	"SnackStock-Backend/domain"
	"SnackStock-Backend/entities"
	"SnackStock-Backend/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type memoryUserRepository struct {
	byEmail map[string]*entities.User
	byID    map[string]*entities.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		byEmail: map[string]*entities.User{},
		byID:    map[string]*entities.User{},
	}
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID.String()] = user
	return nil
}

func (r *memoryUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *memoryUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *memoryUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID.String()] = user
	return nil
}

func newTestService(repo UserRepository) UserService {
	return NewUserService(repo, jwt.NewJWTService())
}

func TestRegisterValidatesCredentials(t *testing.T) {
	service := newTestService(newMemoryUserRepository())

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  string
	}{
		{
			name:     "malformed email",
			email:    "usuario@",
			password: "secreto123",
			wantErr:  domain.ErrInvalidEmailFormat.Error(),
		},
		{
			name:     "empty password",
			email:    "ana@example.com",
			password: "",
			wantErr:  "La contraseña es obligatoria",
		},
		{
			name:     "short password",
			email:    "ana@example.com",
			password: "corta",
			wantErr:  "La contraseña debe tener al menos 6 caracteres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), domain.RegisterRequest{
				Name:     "Ana",
				Email:    tt.email,
				Password: tt.password,
			})
			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("expected error %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	repo := newMemoryUserRepository()
	service := newTestService(repo)

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if res.Email != "ana@example.com" || res.Name != "Ana" || res.ID == "" {
		t.Fatalf("unexpected register response: %+v", res)
	}

	stored := repo.byEmail["ana@example.com"]
	if stored == nil {
		t.Fatal("expected user persisted")
	}
	if stored.Password == "secreto123" {
		t.Fatal("password must not be stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secreto123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service := newTestService(newMemoryUserRepository())
	req := domain.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreto123"}

	if _, err := service.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	if _, err := service.Register(context.Background(), req); !errors.Is(err, domain.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newMemoryUserRepository()
	service := newTestService(repo)

	if _, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secreto123",
	}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.Token == "" || res.Role != domain.RoleUser {
		t.Fatalf("unexpected login response: %+v", res)
	}

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "ana@example.com",
		Password: "incorrecta",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "nadie@example.com",
		Password: "secreto123",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestValidateCredentials(t *testing.T) {
	service := newTestService(newMemoryUserRepository())

	if _, err := service.ValidateCredentials("sin-arroba", "secreto123"); !errors.Is(err, domain.ErrInvalidEmailFormat) {
		t.Fatalf("expected ErrInvalidEmailFormat, got %v", err)
	}

	result, err := service.ValidateCredentials("ana@example.com", "corta")
	if err != nil {
		t.Fatalf("ValidateCredentials returned error: %v", err)
	}
	if result.Valid || result.Message != "La contraseña debe tener al menos 6 caracteres" {
		t.Fatalf("unexpected password result: %+v", result)
	}

	result, err = service.ValidateCredentials("ana@example.com", "secreto123")
	if err != nil {
		t.Fatalf("ValidateCredentials returned error: %v", err)
	}
	if !result.Valid || result.Message != "" {
		t.Fatalf("expected valid result, got %+v", result)
	}
}
