package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// fakeUserRepository serves users from memory.
type fakeUserRepository struct {
	users    map[uuid.UUID]*entity.User
	upserted *entity.User
	err      error
}

func newFakeUserRepository(users ...*entity.User) *fakeUserRepository {
	byID := make(map[uuid.UUID]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return &fakeUserRepository{users: byID}
}

func (f *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepository) FindByOpenID(_ context.Context, openID string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.OpenID == openID {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepository) Upsert(_ context.Context, u *entity.User) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = u
	return nil
}

func strPtr(s string) *string { return &s }

func TestSyncUserUseCase_Execute(t *testing.T) {
	t.Run("first sync creates a regular user", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := NewSyncUserUseCase(repo, "owner-open-id")

		userID := uuid.New()
		output, err := uc.Execute(context.Background(), SyncUserInput{
			UserID:      userID,
			OpenID:      "google-12345",
			Name:        strPtr("Ada"),
			Email:       strPtr("ada@example.com"),
			LoginMethod: strPtr("google"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.ID != userID {
			t.Error("user ID should come from the token")
		}
		if output.User.Role != entity.UserRoleUser {
			t.Errorf("expected role user, got %s", output.User.Role)
		}
		if output.User.Name != "Ada" {
			t.Errorf("expected name Ada, got %s", output.User.Name)
		}
		if output.User.LastSignedIn.IsZero() {
			t.Error("LastSignedIn should be set")
		}
		if repo.upserted == nil {
			t.Error("expected user to be persisted")
		}
	})

	t.Run("repeat sync refreshes the stored profile", func(t *testing.T) {
		existing := entity.NewUser("google-12345", "Ada", "ada@example.com", "google", entity.UserRoleUser)
		repo := newFakeUserRepository(existing)
		uc := NewSyncUserUseCase(repo, "")

		output, err := uc.Execute(context.Background(), SyncUserInput{
			UserID: existing.ID,
			OpenID: "google-12345",
			Email:  strPtr("ada.new@example.com"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Email != "ada.new@example.com" {
			t.Errorf("expected refreshed email, got %s", output.User.Email)
		}
		if output.User.Name != "Ada" {
			t.Errorf("omitted name should be untouched, got %s", output.User.Name)
		}
	})

	t.Run("owner OpenID is promoted to admin", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := NewSyncUserUseCase(repo, "owner-open-id")

		output, err := uc.Execute(context.Background(), SyncUserInput{
			UserID: uuid.New(),
			OpenID: "owner-open-id",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Role != entity.UserRoleAdmin {
			t.Errorf("expected role admin, got %s", output.User.Role)
		}
	})

	t.Run("empty owner config never promotes", func(t *testing.T) {
		repo := newFakeUserRepository()
		uc := NewSyncUserUseCase(repo, "")

		output, err := uc.Execute(context.Background(), SyncUserInput{
			UserID: uuid.New(),
			OpenID: "",
		})
		if err == nil {
			t.Fatalf("expected missing OpenID error, got user %+v", output.User)
		}

		output, err = uc.Execute(context.Background(), SyncUserInput{
			UserID: uuid.New(),
			OpenID: "some-open-id",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Role != entity.UserRoleUser {
			t.Errorf("expected role user, got %s", output.User.Role)
		}
	})

	t.Run("missing OpenID is rejected", func(t *testing.T) {
		uc := NewSyncUserUseCase(newFakeUserRepository(), "owner-open-id")

		_, err := uc.Execute(context.Background(), SyncUserInput{UserID: uuid.New()})

		var userErr *domainerror.UserError
		if !errors.As(err, &userErr) {
			t.Fatalf("expected UserError, got %v", err)
		}
		if userErr.Code != domainerror.ErrCodeMissingOpenID {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingOpenID, userErr.Code)
		}
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		repo := &fakeUserRepository{err: errors.New("connection refused")}
		uc := NewSyncUserUseCase(repo, "")

		if _, err := uc.Execute(context.Background(), SyncUserInput{
			UserID: uuid.New(),
			OpenID: "google-12345",
		}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestGetProfileUseCase_Execute(t *testing.T) {
	t.Run("returns the stored profile", func(t *testing.T) {
		existing := entity.NewUser("google-12345", "Ada", "ada@example.com", "google", entity.UserRoleUser)
		uc := NewGetProfileUseCase(newFakeUserRepository(existing))

		output, err := uc.Execute(context.Background(), GetProfileInput{UserID: existing.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.OpenID != "google-12345" {
			t.Errorf("expected OpenID google-12345, got %s", output.User.OpenID)
		}
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		uc := NewGetProfileUseCase(newFakeUserRepository())

		_, err := uc.Execute(context.Background(), GetProfileInput{UserID: uuid.New()})

		var userErr *domainerror.UserError
		if !errors.As(err, &userErr) {
			t.Fatalf("expected UserError, got %v", err)
		}
		if userErr.Code != domainerror.ErrCodeUserNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeUserNotFound, userErr.Code)
		}
	})
}
