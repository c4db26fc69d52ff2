package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"stayrooted/internal/models/db_models"
	"stayrooted/pkg/utils"
)

func TestGetTodayContent(t *testing.T) {
	repo := newFakeDailyContentRepo()
	svc := NewContentService(repo)
	ctx := context.Background()

	if _, err := svc.GetTodayContent(ctx); !errors.Is(err, utils.ErrContentNotFound) {
		t.Errorf("empty repo: got %v, want ErrContentNotFound", err)
	}

	yesterday := &db_models.DailyContent{
		Title:       "On patience",
		Content:     "A reflection",
		PublishDate: time.Now().Add(-24 * time.Hour),
		IsPublished: true,
	}
	today := &db_models.DailyContent{
		Title:              "On hope",
		Content:            "A reflection for today",
		TheologianName:     "Charles Spurgeon",
		ScriptureReference: "Romans 15:13",
		PublishDate:        time.Now(),
		IsPublished:        true,
	}
	unpublished := &db_models.DailyContent{
		Title:       "Draft",
		Content:     "Not yet released",
		PublishDate: time.Now(),
		IsPublished: false,
	}
	for _, c := range []*db_models.DailyContent{yesterday, unpublished, today} {
		if err := repo.Insert(ctx, c); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	resp, err := svc.GetTodayContent(ctx)
	if err != nil {
		t.Fatalf("GetTodayContent: %v", err)
	}
	if resp.Title != "On hope" {
		t.Errorf("Title = %q, want today's published entry", resp.Title)
	}
	if resp.TheologianName != "Charles Spurgeon" {
		t.Errorf("TheologianName = %q", resp.TheologianName)
	}
}

func TestListContentPagination(t *testing.T) {
	repo := newFakeDailyContentRepo()
	svc := NewContentService(repo)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.Insert(ctx, &db_models.DailyContent{
			Title:       fmt.Sprintf("Devotional %d", i),
			Content:     "...",
			PublishDate: time.Now().Add(-time.Duration(i) * 24 * time.Hour),
			IsPublished: true,
		}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	page, err := svc.ListContent(ctx, 2, 2)
	if err != nil {
		t.Fatalf("ListContent: %v", err)
	}
	if len(page.Items) != 2 {
		t.Errorf("items = %d, want 2", len(page.Items))
	}
	if page.TotalCount != 5 {
		t.Errorf("TotalCount = %d, want 5", page.TotalCount)
	}
	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.TotalPages)
	}
	if page.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, want 2", page.CurrentPage)
	}
}
