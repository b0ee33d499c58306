package services

import (
	"context"
	"errors"

	"game-news/cmd/api/clients/storeclient"
)

// 이미 추천한 포스트를 다시 추천하면 반환된다. 스토어의 유니크 제약 위반을
// 핸들러가 409 로 변환할 수 있도록 구분한다.
var ErrAlreadyUpvoted = errors.New("already upvoted")

// 추천하지 않은 포스트의 추천을 취소하면 반환된다.
var ErrUpvoteNotFound = errors.New("upvote not found")

// UpvoteService 는 (user, post) 당 최대 한 건인 추천의 추가/취소를 담당한다.
type UpvoteService struct {
	store UpvoteStore
}

func NewUpvoteService(store UpvoteStore) *UpvoteService {
	return &UpvoteService{store: store}
}

// Add 는 viewer 의 추천을 기록한다. 중복 추천은 ErrAlreadyUpvoted 로 거절된다.
func (s *UpvoteService) Add(ctx context.Context, postID, userID string) error {
	if err := s.store.InsertUpvote(ctx, postID, userID); err != nil {
		if errors.Is(err, storeclient.ErrConflict) {
			return ErrAlreadyUpvoted
		}
		return err
	}
	return nil
}

// Remove 는 viewer 의 추천을 취소한다. 추천 이력이 없으면 ErrUpvoteNotFound.
func (s *UpvoteService) Remove(ctx context.Context, postID, userID string) error {
	if err := s.store.DeleteUpvote(ctx, postID, userID); err != nil {
		if errors.Is(err, storeclient.ErrNotFound) {
			return ErrUpvoteNotFound
		}
		return err
	}
	return nil
}
