package repositories

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quizgen/internal/models/db_models"
	"quizgen/internal/models/response_models"
)

func newTestRepo(t *testing.T) QuizRepositoryInterface {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&db_models.SavedQuiz{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.Exec("DELETE FROM saved_quizzes")

	return NewQuizRepository(db)
}

func videoResult(source string) response_models.QuizResult {
	return response_models.QuizResult{
		Source: source,
		Origin: response_models.OriginVideo,
		Batch:  response_models.BatchSingle,
		Questions: []response_models.Question{
			{Kind: response_models.KindTrueFalse, Text: "Is the sky blue?", Answer: "True"},
		},
	}
}

func TestQuizRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("SaveAssignsMonotonicIDs", func(t *testing.T) {
		repo := newTestRepo(t)

		first, err := repo.Save(videoResult("v1"), ctx)
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		second, err := repo.Save(videoResult("v2"), ctx)
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		if first.ID == 0 || second.ID <= first.ID {
			t.Errorf("ids not monotonically assigned: %d then %d", first.ID, second.ID)
		}
	})

	t.Run("SaveRejectsFailedResults", func(t *testing.T) {
		repo := newTestRepo(t)

		failed := videoResult("v1")
		failed.Error = "timeout"
		if _, err := repo.Save(failed, ctx); err == nil {
			t.Fatal("expected Save to reject a result carrying an error")
		}

		quizzes, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("ListAll failed: %v", err)
		}
		if len(quizzes) != 0 {
			t.Errorf("failed result leaked into the store: %+v", quizzes)
		}
	})

	t.Run("ListAllMostRecentFirst", func(t *testing.T) {
		repo := newTestRepo(t)

		repo.Save(videoResult("older"), ctx)
		repo.Save(videoResult("newer"), ctx)

		quizzes, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("ListAll failed: %v", err)
		}
		if len(quizzes) != 2 || quizzes[0].Source != "newer" {
			t.Errorf("expected newest first, got %+v", quizzes)
		}
	})

	t.Run("DeleteByID", func(t *testing.T) {
		repo := newTestRepo(t)

		saved, _ := repo.Save(videoResult("v1"), ctx)
		if err := repo.DeleteByID(saved.ID, ctx); err != nil {
			t.Fatalf("DeleteByID failed: %v", err)
		}

		quiz, err := repo.GetByID(saved.ID, ctx)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if quiz != nil {
			t.Errorf("quiz still present after delete: %+v", quiz)
		}
	})

	t.Run("DeleteNonexistentIsNoOp", func(t *testing.T) {
		repo := newTestRepo(t)

		repo.Save(videoResult("v1"), ctx)
		if err := repo.DeleteByID(9999, ctx); err != nil {
			t.Fatalf("deleting a missing id should not error: %v", err)
		}

		quizzes, _ := repo.ListAll(ctx)
		if len(quizzes) != 1 {
			t.Errorf("store changed by a no-op delete: %+v", quizzes)
		}
	})

	t.Run("GetByIDMissingReturnsNil", func(t *testing.T) {
		repo := newTestRepo(t)

		quiz, err := repo.GetByID(42, ctx)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if quiz != nil {
			t.Errorf("expected nil for a missing id, got %+v", quiz)
		}
	})
}
