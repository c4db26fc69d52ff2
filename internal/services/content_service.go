package services

import (
	"context"
	"log"
	"time"

	"stayrooted/internal/models/db_models"
	"stayrooted/internal/models/response_models"
	"stayrooted/internal/repositories"
	"stayrooted/pkg/utils"
)

type ContentServiceInterface interface {
	GetTodayContent(ctx context.Context) (*response_models.DailyContentResponse, error)
	ListContent(ctx context.Context, page, pageSize int) (*response_models.DailyContentListResponse, error)
}

type ContentService struct {
	contentRepo repositories.DailyContentRepository
}

func NewContentService(contentRepo repositories.DailyContentRepository) ContentServiceInterface {
	return &ContentService{
		contentRepo: contentRepo,
	}
}

func (s *ContentService) GetTodayContent(ctx context.Context) (*response_models.DailyContentResponse, error) {
	content, err := s.contentRepo.FindByPublishDate(ctx, time.Now())
	if err != nil {
		log.Printf("Error fetching today's content: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if content == nil {
		return nil, utils.ErrContentNotFound
	}

	resp := toDailyContentResponse(content)
	return &resp, nil
}

func (s *ContentService) ListContent(ctx context.Context, page, pageSize int) (*response_models.DailyContentListResponse, error) {
	contents, err := s.contentRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing content: %v", err)
		return nil, utils.ErrDatabaseError
	}

	count, err := s.contentRepo.Count(ctx)
	if err != nil {
		log.Printf("Error counting content: %v", err)
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.DailyContentResponse, 0, len(contents))
	for i := range contents {
		items = append(items, toDailyContentResponse(&contents[i]))
	}

	totalPages := count / int64(pageSize)
	if count%int64(pageSize) != 0 {
		totalPages++
	}

	return &response_models.DailyContentListResponse{
		Items:       items,
		TotalCount:  count,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, nil
}

func toDailyContentResponse(content *db_models.DailyContent) response_models.DailyContentResponse {
	return response_models.DailyContentResponse{
		ID:                 content.ID.String(),
		Title:              content.Title,
		Content:            content.Content,
		TheologianName:     content.TheologianName,
		TheologianBio:      content.TheologianBio,
		ScriptureReference: content.ScriptureReference,
		ReflectionQuestion: content.ReflectionQuestion,
		Tags:               content.Tags,
		PublishDate:        content.PublishDate,
	}
}
