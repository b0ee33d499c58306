package services

import (
	"context"

	"game-news/cmd/api/clients/notionclient"
	"game-news/cmd/api/clients/storeclient"
)

// 서비스가 실제로 사용하는 메서드만으로 좁힌 소비자 측 인터페이스.
// *storeclient.Client 가 모두 구현하며, 테스트에서는 페이크로 대체한다.

type ReviewStore interface {
	GetPending(ctx context.Context, pendingID string) (*storeclient.PendingPost, error)
	ListPending(ctx context.Context, status string) ([]storeclient.PendingPost, error)
	ListPendingByIDs(ctx context.Context, ids []string) ([]storeclient.PendingPost, error)
	UpdatePending(ctx context.Context, pendingID string, update any) (int, error)
	UpdatePendingByIDs(ctx context.Context, ids []string, update storeclient.ApproveUpdate) (int, error)
	InsertPosts(ctx context.Context, posts []storeclient.NewPost) error
	DeletePost(ctx context.Context, postID string) error
}

type FeedStore interface {
	ListPosts(ctx context.Context, category string) ([]storeclient.Post, error)
	ListPostCategories(ctx context.Context) ([]string, error)
	CountUpvotesByPost(ctx context.Context) ([]storeclient.UpvoteCount, error)
	ListUpvotedPostIDs(ctx context.Context, userID string) ([]string, error)
}

type UpvoteStore interface {
	InsertUpvote(ctx context.Context, postID, userID string) error
	DeleteUpvote(ctx context.Context, postID, userID string) error
}

type ContentSource interface {
	QueryPages(ctx context.Context) ([]notionclient.Page, error)
	GetPage(ctx context.Context, pageID string) (*notionclient.Page, error)
	ListBlocks(ctx context.Context, pageID string) ([]notionclient.Block, error)
}
