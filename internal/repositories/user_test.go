package repositories

import (
	"sort"
	"testing"

	"ticket-tracker/internal/models"
)

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, repo, "jane", models.UserTypeCustomer)
	if user.ID == 0 {
		t.Error("expected an assigned id")
	}
	if user.Type != models.UserTypeCustomer {
		t.Errorf("expected customer type, got %s", user.Type)
	}

	t.Run("duplicate email", func(t *testing.T) {
		_, err := repo.Create(&models.UserCreateRequest{
			Name:  "other",
			Email: "jane@example.com",
			Type:  models.UserTypeCustomer,
		}, "hash")
		assertErrorType(t, err, models.ErrorTypeConflict)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	created := createTestUser(t, repo, "jane", models.UserTypeCustomer)

	user, err := repo.GetByEmail("jane@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("expected id %d, got %d", created.ID, user.ID)
	}

	_, err = repo.GetByEmail("nobody@example.com")
	assertErrorType(t, err, models.ErrorTypeNotFound)
}

func TestUserRepository_GetByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	a := createTestUser(t, repo, "a", models.UserTypeCustomer)
	b := createTestUser(t, repo, "b", models.UserTypeAdmin)

	t.Run("missing ids are omitted", func(t *testing.T) {
		users, err := repo.GetByIDs([]int{a.ID, 99999, b.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 2 {
			t.Fatalf("expected 2 users, got %d", len(users))
		}

		got := []int{users[0].ID, users[1].ID}
		sort.Ints(got)
		want := []int{a.ID, b.ID}
		sort.Ints(want)
		if got[0] != want[0] || got[1] != want[1] {
			t.Errorf("expected ids %v, got %v", want, got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		users, err := repo.GetByIDs(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 0 {
			t.Errorf("expected no users, got %d", len(users))
		}
	})
}
