package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jessevdk/go-flags"

	"game-news/cmd/api/clients/storeclient"
	"game-news/internal/logger"
	"game-news/config"
)

// 오래된 포스트를 CSV 로 내리고 스토어에서 정리하는 운영 도구.
// 복원은 original_link 기준 upsert 라 몇 번을 다시 돌려도 중복이 생기지 않는다.
type options struct {
	Archive  bool   `long:"archive" description:"오래된 포스트를 CSV 파일로 내보낸다"`
	Cleanup  bool   `long:"cleanup" description:"오래된 포스트를 배치 단위로 삭제한다 (archive 와 함께 쓰면 내보낸 후 삭제)"`
	Restore  string `long:"restore" value-name:"FILE" description:"CSV 아카이브를 스토어로 복원한다"`
	Capacity bool   `long:"capacity" description:"테이블별 행 수를 출력한다"`

	Months    int    `long:"months" description:"아카이빙 기준 개월 수 (기본값은 config.yaml)"`
	BatchSize int    `long:"batch-size" description:"삭제 배치 크기 (기본값은 config.yaml)"`
	Dir       string `long:"dir" description:"CSV 저장 디렉토리 (기본값은 config.yaml)"`
	DryRun    bool   `long:"dry-run" description:"삭제 없이 대상만 출력한다"`
}

var csvHeader = []string{"id", "title", "summary", "original_link", "category", "created_at"}

func main() {
	config.InitApp()

	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	archiveCfg := config.GetConfig().Archive
	if opts.Months <= 0 {
		opts.Months = archiveCfg.Months
	}
	if opts.Months <= 0 {
		opts.Months = 6
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = archiveCfg.BatchSize
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 1000
	}
	if opts.Dir == "" {
		opts.Dir = archiveCfg.Dir
	}
	if opts.Dir == "" {
		opts.Dir = "archives"
	}

	store, err := storeclient.NewServiceFromEnv()
	if err != nil {
		logger.Log.Errorf("store client: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()

	switch {
	case opts.Restore != "":
		err = restore(ctx, store, opts.Restore)
	case opts.Capacity:
		err = capacity(ctx, store)
	case opts.Archive || opts.Cleanup:
		err = archiveAndCleanup(ctx, store, opts)
	default:
		parser.WriteHelp(os.Stdout)
		return
	}

	if err != nil {
		logger.Log.Errorf("archiver: %v", err)
		os.Exit(1)
	}
}

func cutoffTime(months int) time.Time {
	return time.Now().UTC().AddDate(0, -months, 0)
}

// archiveAndCleanup 은 기준 시각 이전의 포스트를 배치 단위로 내보내고 삭제한다.
// 아카이브만 요청하면 삭제 단계는 건너뛴다.
func archiveAndCleanup(ctx context.Context, store *storeclient.Client, opts options) error {
	cutoff := cutoffTime(opts.Months)
	logger.InfoWithFields("archiving posts", logger.Fields{
		"cutoff":     cutoff.Format(time.RFC3339),
		"months":     opts.Months,
		"batch_size": opts.BatchSize,
		"dry_run":    opts.DryRun,
	})

	var w *csv.Writer
	var f *os.File
	if opts.Archive && !opts.DryRun {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return err
		}
		name := filepath.Join(opts.Dir, fmt.Sprintf("posts_%s.csv", time.Now().UTC().Format("20060102_150405")))
		var err error
		f, err = os.Create(name)
		if err != nil {
			return err
		}
		defer f.Close()

		w = csv.NewWriter(f)
		if err := w.Write(csvHeader); err != nil {
			return err
		}
		logger.Log.Infof("writing archive to %s", name)
	}

	// 삭제가 진행될 때만 배치 크기로 끊어 읽는다. 삭제 없이는 같은 행이
	// 반복 조회되므로 limit 없이 전량을 한 번에 읽는다.
	limit := 0
	if opts.Cleanup && !opts.DryRun {
		limit = opts.BatchSize
	}

	archived := 0
	deleted := 0
	for {
		posts, err := store.ListPostsOlderThan(ctx, cutoff, limit)
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			break
		}

		if opts.DryRun {
			for _, p := range posts {
				logger.Log.Infof("would archive %s (%s, %s)", p.ID, p.Title, p.CreatedAt.Format(time.RFC3339))
			}
			archived += len(posts)
			break
		}

		if w != nil {
			for _, p := range posts {
				record := []string{p.ID, p.Title, p.Summary, p.OriginalLink, p.Category, p.CreatedAt.Format(time.RFC3339)}
				if err := w.Write(record); err != nil {
					return err
				}
			}
			w.Flush()
			if err := w.Error(); err != nil {
				return err
			}
			archived += len(posts)
		}

		if !opts.Cleanup {
			break
		}

		ids := make([]string, 0, len(posts))
		for _, p := range posts {
			ids = append(ids, p.ID)
		}
		n, err := store.DeletePostsByIDs(ctx, ids)
		if err != nil {
			return err
		}
		deleted += n

		// 스토어에 연속 배치 부하를 주지 않도록 잠시 쉰다.
		time.Sleep(1 * time.Second)
	}

	logger.InfoWithFields("archive complete", logger.Fields{"archived": archived, "deleted": deleted})
	return nil
}

// restore 는 CSV 아카이브를 읽어 original_link 기준으로 upsert 한다.
func restore(ctx context.Context, store *storeclient.Client, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)

	// 헤더 행은 버린다.
	if _, err := r.Read(); err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	batch := make([]storeclient.ArchivedPost, 0, 500)
	restored := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := store.UpsertPosts(ctx, batch); err != nil {
			return err
		}
		restored += len(batch)
		batch = batch[:0]
		return nil
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if len(record) < len(csvHeader) {
			return fmt.Errorf("malformed record: %v", record)
		}
		createdAt, err := time.Parse(time.RFC3339, record[5])
		if err != nil {
			return fmt.Errorf("malformed created_at in record %v: %w", record, err)
		}

		// id 와 created_at 을 보존해야 복원된 글이 피드에서 원래 자리로 돌아간다.
		batch = append(batch, storeclient.ArchivedPost{
			ID:           record[0],
			Title:        record[1],
			Summary:      record[2],
			OriginalLink: record[3],
			Category:     record[4],
			CreatedAt:    createdAt,
		})
		if len(batch) == cap(batch) {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}

	logger.InfoWithFields("restore complete", logger.Fields{"restored": restored, "file": path})
	return nil
}

// capacity 는 스토어 테이블별 행 수를 출력한다. 무료 티어 용량 점검용이다.
func capacity(ctx context.Context, store *storeclient.Client) error {
	posts, err := store.CountPosts(ctx)
	if err != nil {
		return err
	}
	pending, err := store.CountPendingPosts(ctx)
	if err != nil {
		return err
	}
	upvotes, err := store.CountUpvotes(ctx)
	if err != nil {
		return err
	}

	logger.InfoWithFields("store capacity", logger.Fields{
		"posts":         posts,
		"pending_posts": pending,
		"upvotes":       upvotes,
	})
	return nil
}
