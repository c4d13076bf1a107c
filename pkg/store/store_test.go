package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/wordstorm/pkg/core/cloud"
	"github.com/matzehuels/wordstorm/pkg/wordcloud"
)

func newCloud(title string, created time.Time) *Cloud {
	words := []cloud.Word{{Text: "cats", Weight: 10}, {Text: "dogs", Weight: 2}}
	c := New(title, wordcloud.NewWords(words).Words, wordcloud.FromCloud(cloud.Build(words, 400, 400)))
	c.CreatedAt = created
	return c
}

// testStore runs the behavior every backend must share.
func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	older := newCloud("older", base)
	newer := newCloud("newer", base.Add(time.Hour))
	for _, c := range []*Cloud{older, newer} {
		if err := s.Save(ctx, c); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	got, err := s.Get(ctx, older.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(older, got); diff != "" {
		t.Errorf("Get mismatch (-want +got):\n%s", diff)
	}

	list, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != newer.ID || list[1].ID != older.ID {
		t.Errorf("List order = %+v", list)
	}
	if list[0].Words != 2 {
		t.Errorf("summary words = %d, want 2", list[0].Words)
	}

	if list, _ := s.List(ctx, 1); len(list) != 1 {
		t.Errorf("List(1) returned %d", len(list))
	}

	older.Title = "renamed"
	if err := s.Save(ctx, older); err != nil {
		t.Fatalf("Save replace: %v", err)
	}
	if got, _ := s.Get(ctx, older.ID); got.Title != "renamed" {
		t.Errorf("replace not stored: %q", got.Title)
	}

	if err := s.Delete(ctx, older.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, older.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete: %v", err)
	}
	if err := s.Delete(ctx, older.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete: %v", err)
	}
	if _, err := s.Get(ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get unknown: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	testStore(t, s)
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	c := newCloud("pets", time.Now())
	_ = s.Save(ctx, c)

	c.Layout.Words[0].Text = "changed"
	got, _ := s.Get(ctx, c.ID)
	if got.Layout.Words[0].Text != "cats" {
		t.Error("store shares memory with the caller")
	}
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer s.Close()
	testStore(t, s)
}

func TestFileStoreRejectsPathIDs(t *testing.T) {
	ctx := context.Background()
	s, _ := NewFileStore(t.TempDir())

	if _, err := s.Get(ctx, "../../etc/passwd"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get with path id: %v", err)
	}
	c := newCloud("x", time.Now())
	c.ID = "../escape"
	if err := s.Save(ctx, c); err == nil {
		t.Error("Save with path id should fail")
	}
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("WORDSTORM_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("WORDSTORM_TEST_MONGO_URI not set")
	}
	ctx := context.Background()
	s, err := NewMongoStore(ctx, MongoConfig{URI: uri, Database: "wordstorm_test_" + time.Now().Format("150405")})
	if err != nil {
		t.Fatalf("NewMongoStore: %v", err)
	}
	t.Cleanup(func() {
		_ = s.coll.Database().Drop(context.Background())
		_ = s.Close()
	})
	testStore(t, s)
}

func TestNew(t *testing.T) {
	c := New("t", nil, wordcloud.Layout{})
	if !ValidID(c.ID) {
		t.Errorf("ID %q is not a uuid", c.ID)
	}
	if c.CreatedAt.IsZero() || c.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt = %v", c.CreatedAt)
	}
	if ValidID("nope") {
		t.Error("ValidID accepted garbage")
	}
}
