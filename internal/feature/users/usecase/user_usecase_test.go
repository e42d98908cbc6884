package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"user_backend/internal/feature/users/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	// CreateFunc is called when the Create method is invoked.
	CreateFunc func(ctx context.Context, user *entity.User) error
	// FindByIDFunc is called when the FindByID method is invoked.
	FindByIDFunc func(ctx context.Context, id uint) (*entity.User, error)
	// UpdateFieldsFunc is called when the UpdateFields method is invoked.
	UpdateFieldsFunc func(ctx context.Context, id uint, fields map[string]any) (*entity.User, error)
	// DeleteFunc is called when the Delete method is invoked.
	DeleteFunc func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*entity.User, error) {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockHasher is a mock implementation of the PasswordHasher interface.
type mockHasher struct {
	HashFunc func(plaintext string) (string, error)
}

func (m *mockHasher) Hash(plaintext string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(plaintext)
	}
	return "digest:" + plaintext, nil
}

// bcryptHasher runs real bcrypt at minimum cost for hashing assertions.
type bcryptHasher struct{}

func (bcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.MinCost)
	return string(digest), err
}

func createFields() map[string]string {
	return map[string]string{
		"name":        "alice",
		"password":    "longenough",
		"title":       "T1",
		"description": "D1",
	}
}

func TestUserUsecase_Create(t *testing.T) {
	t.Run("password is hashed before persistence", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				if user.Password == "" || user.Password == "longenough" {
					t.Errorf("password is not hashed")
				}
				// Verify that it's a valid bcrypt hash of the plaintext
				if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("longenough")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				if user.Name != "alice" || user.Title != "T1" || user.Description != "D1" {
					t.Errorf("unexpected entity fields: %+v", user)
				}
				return nil
			},
		}

		uc := NewUserUsecase(mockRepo, bcryptHasher{})
		user, err := uc.Create(context.Background(), createFields())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user == nil {
			t.Fatal("expected created user")
		}
	})

	t.Run("conflict from repository propagates", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrUserAlreadyExists
			},
		}

		uc := NewUserUsecase(mockRepo, &mockHasher{})
		_, err := uc.Create(context.Background(), createFields())

		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Errorf("expected ErrUserAlreadyExists, got: %v", err)
		}
	})

	t.Run("hasher failure is wrapped", func(t *testing.T) {
		hashErr := errors.New("cost out of range")
		hasher := &mockHasher{
			HashFunc: func(plaintext string) (string, error) { return "", hashErr },
		}
		created := false
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				created = true
				return nil
			},
		}

		uc := NewUserUsecase(mockRepo, hasher)
		_, err := uc.Create(context.Background(), createFields())

		if !errors.Is(err, hashErr) {
			t.Errorf("expected wrapped hasher error, got: %v", err)
		}
		if created {
			t.Error("nothing should be persisted when hashing fails")
		}
	})
}

func TestUserUsecase_Get(t *testing.T) {
	t.Run("found user is returned", func(t *testing.T) {
		want := &entity.User{ID: 7, Name: "alice"}
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				if id != 7 {
					t.Errorf("expected id 7, got %d", id)
				}
				return want, nil
			},
		}

		uc := NewUserUsecase(mockRepo, &mockHasher{})
		got, err := uc.Get(context.Background(), 7)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Error("expected the repository user to be returned")
		}
	})

	t.Run("not found propagates", func(t *testing.T) {
		uc := NewUserUsecase(&mockUserRepository{}, &mockHasher{})

		_, err := uc.Get(context.Background(), 999)

		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got: %v", err)
		}
	})
}

func TestUserUsecase_Update(t *testing.T) {
	t.Run("only provided fields reach the repository", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			UpdateFieldsFunc: func(ctx context.Context, id uint, fields map[string]any) (*entity.User, error) {
				if len(fields) != 1 {
					t.Errorf("expected 1 field, got %v", fields)
				}
				if fields["title"] != "new" {
					t.Errorf("expected title 'new', got %v", fields["title"])
				}
				return &entity.User{ID: id, Title: "new"}, nil
			},
		}

		uc := NewUserUsecase(mockRepo, &mockHasher{})
		user, err := uc.Update(context.Background(), 1, map[string]string{"title": "new"})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Title != "new" {
			t.Errorf("expected updated title, got %q", user.Title)
		}
	})

	t.Run("provided password is hashed", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			UpdateFieldsFunc: func(ctx context.Context, id uint, fields map[string]any) (*entity.User, error) {
				digest, ok := fields["password"].(string)
				if !ok || digest == "newpassword" {
					t.Errorf("password was not hashed: %v", fields["password"])
				}
				if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte("newpassword")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				return &entity.User{ID: id}, nil
			},
		}

		uc := NewUserUsecase(mockRepo, bcryptHasher{})
		_, err := uc.Update(context.Background(), 1, map[string]string{"password": "newpassword"})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty input still resolves the user", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			UpdateFieldsFunc: func(ctx context.Context, id uint, fields map[string]any) (*entity.User, error) {
				if len(fields) != 0 {
					t.Errorf("expected no fields, got %v", fields)
				}
				return &entity.User{ID: id, Name: "alice"}, nil
			},
		}

		uc := NewUserUsecase(mockRepo, &mockHasher{})
		user, err := uc.Update(context.Background(), 1, map[string]string{})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Name != "alice" {
			t.Errorf("expected unchanged user, got %+v", user)
		}
	})

	t.Run("conflict on new values propagates", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			UpdateFieldsFunc: func(ctx context.Context, id uint, fields map[string]any) (*entity.User, error) {
				return nil, ErrUserAlreadyExists
			},
		}

		uc := NewUserUsecase(mockRepo, &mockHasher{})
		_, err := uc.Update(context.Background(), 1, map[string]string{"name": "taken"})

		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Errorf("expected ErrUserAlreadyExists, got: %v", err)
		}
	})
}

func TestUserUsecase_Delete(t *testing.T) {
	t.Run("delete delegates to repository", func(t *testing.T) {
		var deletedID uint
		mockRepo := &mockUserRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				deletedID = id
				return nil
			},
		}

		uc := NewUserUsecase(mockRepo, &mockHasher{})
		err := uc.Delete(context.Background(), 42)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deletedID != 42 {
			t.Errorf("expected id 42, got %d", deletedID)
		}
	})

	t.Run("not found propagates", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				return ErrUserNotFound
			},
		}

		uc := NewUserUsecase(mockRepo, &mockHasher{})
		err := uc.Delete(context.Background(), 999)

		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got: %v", err)
		}
	})
}
