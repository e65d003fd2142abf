package service

import (
	"errors"
	"testing"

	"careerready_backend/internal/model"
	"careerready_backend/internal/util"

	"gorm.io/gorm"
)

func TestMapUserLookup(t *testing.T) {
	user := &model.User{Name: "Ada"}

	t.Run("missing row becomes ErrUserNotFound", func(t *testing.T) {
		_, err := mapUserLookup(user, gorm.ErrRecordNotFound)
		if !errors.Is(err, util.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		dbDown := errors.New("dial tcp: connection refused")
		_, err := mapUserLookup(nil, dbDown)
		if !errors.Is(err, dbDown) {
			t.Errorf("expected the repository error back, got %v", err)
		}
		if errors.Is(err, util.ErrUserNotFound) {
			t.Error("an outage must not read as a missing user")
		}
	})

	t.Run("no error returns the user", func(t *testing.T) {
		got, err := mapUserLookup(user, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != user {
			t.Error("expected the looked-up user back")
		}
	})
}
