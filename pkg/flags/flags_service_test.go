package flags

import (
	"context"
	"errors"
	"testing"

	"SnackStock-Backend/domain"
	"SnackStock-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memoryFlagsRepository struct {
	flags map[string]*entities.UserFlag
}

func newMemoryFlagsRepository() *memoryFlagsRepository {
	return &memoryFlagsRepository{flags: map[string]*entities.UserFlag{}}
}

func (r *memoryFlagsRepository) flagKey(userID, key string) string {
	return userID + "/" + key
}

func (r *memoryFlagsRepository) GetFlag(_ context.Context, userID, key string) (*entities.UserFlag, error) {
	flag, ok := r.flags[r.flagKey(userID, key)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return flag, nil
}

func (r *memoryFlagsRepository) UpsertFlag(_ context.Context, flag *entities.UserFlag) error {
	r.flags[r.flagKey(flag.UserID.String(), flag.Key)] = flag
	return nil
}

func (r *memoryFlagsRepository) RemoveFlag(_ context.Context, userID, key string) error {
	delete(r.flags, r.flagKey(userID, key))
	return nil
}

func TestGetFlagUnsetReadsAsNotSet(t *testing.T) {
	service := NewFlagsService(newMemoryFlagsRepository())

	res, err := service.GetFlag(context.Background(), "recipes_tip_shown", uuid.NewString())
	if err != nil {
		t.Fatalf("GetFlag returned error: %v", err)
	}
	if res.Set {
		t.Fatal("unset flag must read as Set=false, not an error")
	}
	if res.Key != "recipes_tip_shown" || res.Value != "" {
		t.Fatalf("unexpected unset response: %+v", res)
	}
}

func TestSetThenGetFlag(t *testing.T) {
	service := NewFlagsService(newMemoryFlagsRepository())
	userID := uuid.NewString()

	if err := service.SetFlag(context.Background(), "recipes_tip_shown", domain.SetFlagRequest{Value: "true"}, userID); err != nil {
		t.Fatalf("SetFlag returned error: %v", err)
	}

	res, err := service.GetFlag(context.Background(), "recipes_tip_shown", userID)
	if err != nil {
		t.Fatalf("GetFlag returned error: %v", err)
	}
	if !res.Set || res.Value != "true" {
		t.Fatalf("expected set flag with value true, got %+v", res)
	}
}

func TestSetFlagUpserts(t *testing.T) {
	repo := newMemoryFlagsRepository()
	service := NewFlagsService(repo)
	userID := uuid.NewString()

	if err := service.SetFlag(context.Background(), "theme", domain.SetFlagRequest{Value: "light"}, userID); err != nil {
		t.Fatalf("SetFlag returned error: %v", err)
	}
	if err := service.SetFlag(context.Background(), "theme", domain.SetFlagRequest{Value: "dark"}, userID); err != nil {
		t.Fatalf("SetFlag returned error: %v", err)
	}

	if len(repo.flags) != 1 {
		t.Fatalf("expected a single stored flag after upsert, got %d", len(repo.flags))
	}
	res, err := service.GetFlag(context.Background(), "theme", userID)
	if err != nil {
		t.Fatalf("GetFlag returned error: %v", err)
	}
	if res.Value != "dark" {
		t.Fatalf("expected last write to win, got %q", res.Value)
	}
}

func TestFlagsArePerUser(t *testing.T) {
	service := NewFlagsService(newMemoryFlagsRepository())
	first := uuid.NewString()
	second := uuid.NewString()

	if err := service.SetFlag(context.Background(), "tour_done", domain.SetFlagRequest{Value: "true"}, first); err != nil {
		t.Fatalf("SetFlag returned error: %v", err)
	}

	res, err := service.GetFlag(context.Background(), "tour_done", second)
	if err != nil {
		t.Fatalf("GetFlag returned error: %v", err)
	}
	if res.Set {
		t.Fatal("one user's flag must not leak to another")
	}
}

func TestRemoveFlag(t *testing.T) {
	service := NewFlagsService(newMemoryFlagsRepository())
	userID := uuid.NewString()

	if err := service.SetFlag(context.Background(), "tour_done", domain.SetFlagRequest{Value: "true"}, userID); err != nil {
		t.Fatalf("SetFlag returned error: %v", err)
	}
	if err := service.RemoveFlag(context.Background(), "tour_done", userID); err != nil {
		t.Fatalf("RemoveFlag returned error: %v", err)
	}

	res, err := service.GetFlag(context.Background(), "tour_done", userID)
	if err != nil {
		t.Fatalf("GetFlag returned error: %v", err)
	}
	if res.Set {
		t.Fatal("removed flag must read as unset")
	}
}

func TestFlagWritesRequireUser(t *testing.T) {
	service := NewFlagsService(newMemoryFlagsRepository())

	if err := service.SetFlag(context.Background(), "k", domain.SetFlagRequest{Value: "v"}, ""); !errors.Is(err, domain.ErrUserNotAllowed) {
		t.Fatalf("SetFlag without user: expected ErrUserNotAllowed, got %v", err)
	}
	if err := service.RemoveFlag(context.Background(), "k", ""); !errors.Is(err, domain.ErrUserNotAllowed) {
		t.Fatalf("RemoveFlag without user: expected ErrUserNotAllowed, got %v", err)
	}
	if err := service.SetFlag(context.Background(), "k", domain.SetFlagRequest{Value: "v"}, "not-a-uuid"); !errors.Is(err, domain.ErrParseUUID) {
		t.Fatalf("SetFlag with malformed user: expected ErrParseUUID, got %v", err)
	}
}
