package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"game-news/cmd/api/clients/storeclient"
)

type fakeUpvoteStore struct {
	rows map[string]bool
}

func newFakeUpvoteStore() *fakeUpvoteStore {
	return &fakeUpvoteStore{rows: map[string]bool{}}
}

func upvoteKey(postID, userID string) string {
	return fmt.Sprintf("%s/%s", userID, postID)
}

func (s *fakeUpvoteStore) InsertUpvote(_ context.Context, postID, userID string) error {
	key := upvoteKey(postID, userID)
	if s.rows[key] {
		return fmt.Errorf("store InsertUpvote: %w", storeclient.ErrConflict)
	}
	s.rows[key] = true
	return nil
}

func (s *fakeUpvoteStore) DeleteUpvote(_ context.Context, postID, userID string) error {
	key := upvoteKey(postID, userID)
	if !s.rows[key] {
		return fmt.Errorf("store DeleteUpvote: %w", storeclient.ErrNotFound)
	}
	delete(s.rows, key)
	return nil
}

func TestUpvoteAddAndRemove(t *testing.T) {
	store := newFakeUpvoteStore()
	svc := NewUpvoteService(store)

	if err := svc.Add(context.Background(), "post-1", "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Remove(context.Background(), "post-1", "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpvoteAddTwiceReturnsAlreadyUpvoted(t *testing.T) {
	store := newFakeUpvoteStore()
	svc := NewUpvoteService(store)

	if err := svc.Add(context.Background(), "post-1", "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := svc.Add(context.Background(), "post-1", "user-1")
	if !errors.Is(err, ErrAlreadyUpvoted) {
		t.Fatalf("expected ErrAlreadyUpvoted, got %v", err)
	}

	// 다른 사용자의 추천은 막히지 않는다.
	if err := svc.Add(context.Background(), "post-1", "user-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpvoteRemoveWithoutUpvoteReturnsNotFound(t *testing.T) {
	store := newFakeUpvoteStore()
	svc := NewUpvoteService(store)

	err := svc.Remove(context.Background(), "post-1", "user-1")
	if !errors.Is(err, ErrUpvoteNotFound) {
		t.Fatalf("expected ErrUpvoteNotFound, got %v", err)
	}
}
