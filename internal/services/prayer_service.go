package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"stayrooted/internal/models/db_models"
	"stayrooted/internal/models/request_models"
	"stayrooted/internal/models/response_models"
	"stayrooted/internal/policy"
	"stayrooted/internal/repositories"
	"stayrooted/pkg/utils"
)

type PrayerServiceInterface interface {
	CreatePrayer(ctx context.Context, userID uuid.UUID, request request_models.CreatePrayerRequest) (*response_models.PrayerResponse, error)
	GetPrayerByID(ctx context.Context, prayerID, currentUserID uuid.UUID) (*response_models.PrayerResponse, error)
	GetMyPrayers(ctx context.Context, userID uuid.UUID) ([]response_models.PrayerResponse, error)
	GetCommunityPrayers(ctx context.Context, currentUserID uuid.UUID) ([]response_models.PrayerResponse, error)
	GetPraiseReports(ctx context.Context, currentUserID uuid.UUID) ([]response_models.PrayerResponse, error)
	GetPrayersImFollowing(ctx context.Context, userID uuid.UUID) ([]response_models.PrayerResponse, error)
	UpdatePrayer(ctx context.Context, prayerID, userID uuid.UUID, request request_models.UpdatePrayerRequest) (*response_models.PrayerResponse, error)
	DeletePrayer(ctx context.Context, prayerID, userID uuid.UUID) error
	MarkPrayerAsAnswered(ctx context.Context, prayerID, userID uuid.UUID, request request_models.MarkPrayerAnsweredRequest) (*response_models.PrayerResponse, error)
	FollowPrayer(ctx context.Context, prayerID, userID uuid.UUID) (*response_models.PrayerResponse, error)
	UnfollowPrayer(ctx context.Context, prayerID, userID uuid.UUID) (*response_models.PrayerResponse, error)
	AddPrayerUpdate(ctx context.Context, prayerID, userID uuid.UUID, request request_models.CreatePrayerUpdateRequest) (*response_models.PrayerUpdateResponse, error)
	GetPrayerUpdates(ctx context.Context, prayerID, currentUserID uuid.UUID) ([]response_models.PrayerUpdateResponse, error)
	GetPrayerFollowers(ctx context.Context, prayerID, currentUserID uuid.UUID) ([]response_models.PrayerFollowerResponse, error)
	GetPrayerStats(ctx context.Context, userID uuid.UUID) (*response_models.PrayerStatsResponse, error)
}

type PrayerService struct {
	prayerRepo   repositories.PrayerRepository
	followerRepo repositories.PrayerFollowerRepository
	updateRepo   repositories.PrayerUpdateRepository
	userRepo     repositories.UserRepository
}

func NewPrayerService(
	prayerRepo repositories.PrayerRepository,
	followerRepo repositories.PrayerFollowerRepository,
	updateRepo repositories.PrayerUpdateRepository,
	userRepo repositories.UserRepository) PrayerServiceInterface {
	return &PrayerService{
		prayerRepo:   prayerRepo,
		followerRepo: followerRepo,
		updateRepo:   updateRepo,
		userRepo:     userRepo,
	}
}

func (s *PrayerService) CreatePrayer(ctx context.Context, userID uuid.UUID, request request_models.CreatePrayerRequest) (*response_models.PrayerResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Printf("Error fetching user: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	visibility := request.Visibility
	if visibility == "" {
		visibility = db_models.PrayerVisibilityPrivate
	}

	prayer := &db_models.Prayer{
		UserID:             userID,
		Title:              request.Title,
		Content:            request.Content,
		ScriptureReference: request.ScriptureReference,
		ScriptureText:      request.ScriptureText,
		YoutubeMusicURL:    request.YoutubeMusicURL,
		Status:             db_models.PrayerStatusPending,
		Visibility:         visibility,
		IsShared:           visibility != db_models.PrayerVisibilityPrivate,
	}

	if err := s.prayerRepo.Insert(ctx, prayer); err != nil {
		log.Printf("Error creating prayer: %v", err)
		return nil, utils.ErrDatabaseError
	}

	prayer.User = *user
	return s.toPrayerResponse(ctx, prayer, userID)
}

func (s *PrayerService) GetPrayerByID(ctx context.Context, prayerID, currentUserID uuid.UUID) (*response_models.PrayerResponse, error) {
	prayer, err := s.loadPrayer(ctx, prayerID)
	if err != nil {
		return nil, err
	}

	if err := policy.ViewPrayer(prayer, currentUserID); err != nil {
		return nil, err
	}

	return s.toPrayerResponse(ctx, prayer, currentUserID)
}

func (s *PrayerService) GetMyPrayers(ctx context.Context, userID uuid.UUID) ([]response_models.PrayerResponse, error) {
	prayers, err := s.prayerRepo.ListByUserID(ctx, userID)
	if err != nil {
		log.Printf("Error listing prayers: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return s.toPrayerResponses(ctx, prayers, userID)
}

func (s *PrayerService) GetCommunityPrayers(ctx context.Context, currentUserID uuid.UUID) ([]response_models.PrayerResponse, error) {
	prayers, err := s.prayerRepo.ListShared(ctx)
	if err != nil {
		log.Printf("Error listing shared prayers: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return s.toPrayerResponses(ctx, prayers, currentUserID)
}

func (s *PrayerService) GetPraiseReports(ctx context.Context, currentUserID uuid.UUID) ([]response_models.PrayerResponse, error) {
	prayers, err := s.prayerRepo.ListAnsweredShared(ctx)
	if err != nil {
		log.Printf("Error listing praise reports: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return s.toPrayerResponses(ctx, prayers, currentUserID)
}

func (s *PrayerService) GetPrayersImFollowing(ctx context.Context, userID uuid.UUID) ([]response_models.PrayerResponse, error) {
	followers, err := s.followerRepo.ListByUserID(ctx, userID)
	if err != nil {
		log.Printf("Error listing followed prayers: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PrayerResponse, 0, len(followers))
	for i := range followers {
		resp, err := s.toPrayerResponse(ctx, &followers[i].Prayer, userID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *PrayerService) UpdatePrayer(ctx context.Context, prayerID, userID uuid.UUID, request request_models.UpdatePrayerRequest) (*response_models.PrayerResponse, error) {
	prayer, err := s.loadPrayer(ctx, prayerID)
	if err != nil {
		return nil, err
	}

	if err := policy.MutatePrayer(prayer, userID); err != nil {
		return nil, err
	}

	if request.Title != nil {
		prayer.Title = *request.Title
	}
	if request.Content != nil {
		prayer.Content = *request.Content
	}
	if request.ScriptureReference != nil {
		prayer.ScriptureReference = *request.ScriptureReference
	}
	if request.ScriptureText != nil {
		prayer.ScriptureText = *request.ScriptureText
	}
	if request.YoutubeMusicURL != nil {
		prayer.YoutubeMusicURL = *request.YoutubeMusicURL
	}
	if request.Visibility != nil {
		prayer.Visibility = *request.Visibility
		prayer.IsShared = prayer.Visibility != db_models.PrayerVisibilityPrivate
	}

	if err := s.prayerRepo.Update(ctx, prayer); err != nil {
		log.Printf("Error updating prayer: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return s.toPrayerResponse(ctx, prayer, userID)
}

func (s *PrayerService) DeletePrayer(ctx context.Context, prayerID, userID uuid.UUID) error {
	prayer, err := s.loadPrayer(ctx, prayerID)
	if err != nil {
		return err
	}

	if err := policy.MutatePrayer(prayer, userID); err != nil {
		return err
	}

	if err := s.prayerRepo.Delete(ctx, prayerID); err != nil {
		log.Printf("Error deleting prayer: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *PrayerService) MarkPrayerAsAnswered(ctx context.Context, prayerID, userID uuid.UUID, request request_models.MarkPrayerAnsweredRequest) (*response_models.PrayerResponse, error) {
	prayer, err := s.loadPrayer(ctx, prayerID)
	if err != nil {
		return nil, err
	}

	if err := policy.MutatePrayer(prayer, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	prayer.Status = db_models.PrayerStatusAnswered
	prayer.AnsweredAt = &now

	update := &db_models.PrayerUpdate{
		PrayerID: prayerID,
		Content:  request.Testimony,
	}
	// Status change and testimony land together or not at all.
	if err := s.prayerRepo.MarkAnswered(ctx, prayer, update); err != nil {
		log.Printf("Error marking prayer answered: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return s.toPrayerResponse(ctx, prayer, userID)
}

func (s *PrayerService) FollowPrayer(ctx context.Context, prayerID, userID uuid.UUID) (*response_models.PrayerResponse, error) {
	prayer, err := s.loadPrayer(ctx, prayerID)
	if err != nil {
		return nil, err
	}

	alreadyFollowing, err := s.followerRepo.Exists(ctx, prayerID, userID)
	if err != nil {
		log.Printf("Error checking follower: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if err := policy.FollowPrayer(prayer, userID, alreadyFollowing); err != nil {
		return nil, err
	}

	follower := &db_models.PrayerFollower{
		PrayerID: prayerID,
		UserID:   userID,
	}
	// Two concurrent follows race on the unique constraint; the loser gets
	// ErrAlreadyFollowing from the repository.
	if err := s.followerRepo.Insert(ctx, follower); err != nil {
		if errors.Is(err, utils.ErrAlreadyFollowing) {
			return nil, err
		}
		log.Printf("Error following prayer: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return s.toPrayerResponse(ctx, prayer, userID)
}

func (s *PrayerService) UnfollowPrayer(ctx context.Context, prayerID, userID uuid.UUID) (*response_models.PrayerResponse, error) {
	prayer, err := s.loadPrayer(ctx, prayerID)
	if err != nil {
		return nil, err
	}

	follower, err := s.followerRepo.FindByPrayerAndUser(ctx, prayerID, userID)
	if err != nil {
		log.Printf("Error fetching follower: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if follower == nil {
		return nil, utils.ErrNotFollowing
	}

	if err := s.followerRepo.Delete(ctx, follower.ID); err != nil {
		log.Printf("Error unfollowing prayer: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return s.toPrayerResponse(ctx, prayer, userID)
}

func (s *PrayerService) AddPrayerUpdate(ctx context.Context, prayerID, userID uuid.UUID, request request_models.CreatePrayerUpdateRequest) (*response_models.PrayerUpdateResponse, error) {
	prayer, err := s.loadPrayer(ctx, prayerID)
	if err != nil {
		return nil, err
	}

	if err := policy.MutatePrayer(prayer, userID); err != nil {
		return nil, err
	}

	update := &db_models.PrayerUpdate{
		PrayerID: prayerID,
		Content:  request.Content,
	}
	if err := s.updateRepo.Insert(ctx, update); err != nil {
		log.Printf("Error adding prayer update: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PrayerUpdateResponse{
		ID:        update.ID.String(),
		PrayerID:  prayerID.String(),
		Content:   update.Content,
		CreatedAt: update.CreatedAt,
	}, nil
}

func (s *PrayerService) GetPrayerUpdates(ctx context.Context, prayerID, currentUserID uuid.UUID) ([]response_models.PrayerUpdateResponse, error) {
	prayer, err := s.loadPrayer(ctx, prayerID)
	if err != nil {
		return nil, err
	}

	// Same visibility rule as the prayer body.
	if err := policy.ViewPrayer(prayer, currentUserID); err != nil {
		return nil, err
	}

	updates, err := s.updateRepo.ListByPrayerID(ctx, prayerID)
	if err != nil {
		log.Printf("Error listing prayer updates: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PrayerUpdateResponse, 0, len(updates))
	for _, u := range updates {
		responses = append(responses, response_models.PrayerUpdateResponse{
			ID:        u.ID.String(),
			PrayerID:  u.PrayerID.String(),
			Content:   u.Content,
			CreatedAt: u.CreatedAt,
		})
	}
	return responses, nil
}

func (s *PrayerService) GetPrayerFollowers(ctx context.Context, prayerID, currentUserID uuid.UUID) ([]response_models.PrayerFollowerResponse, error) {
	prayer, err := s.loadPrayer(ctx, prayerID)
	if err != nil {
		return nil, err
	}

	if err := policy.ViewPrayer(prayer, currentUserID); err != nil {
		return nil, err
	}

	followers, err := s.followerRepo.ListByPrayerID(ctx, prayerID)
	if err != nil {
		log.Printf("Error listing prayer followers: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PrayerFollowerResponse, 0, len(followers))
	for _, f := range followers {
		responses = append(responses, response_models.PrayerFollowerResponse{
			ID:        f.ID.String(),
			UserID:    f.UserID.String(),
			Username:  f.User.Username,
			FullName:  f.User.FullName,
			CreatedAt: f.CreatedAt,
		})
	}
	return responses, nil
}

func (s *PrayerService) GetPrayerStats(ctx context.Context, userID uuid.UUID) (*response_models.PrayerStatsResponse, error) {
	prayers, err := s.prayerRepo.ListByUserID(ctx, userID)
	if err != nil {
		log.Printf("Error listing prayers: %v", err)
		return nil, utils.ErrDatabaseError
	}

	following, err := s.followerRepo.ListByUserID(ctx, userID)
	if err != nil {
		log.Printf("Error listing followed prayers: %v", err)
		return nil, utils.ErrDatabaseError
	}

	stats := &response_models.PrayerStatsResponse{
		TotalPrayers:     int64(len(prayers)),
		PrayersFollowing: int64(len(following)),
	}
	for _, p := range prayers {
		switch p.Status {
		case db_models.PrayerStatusPending:
			stats.PendingPrayers++
		case db_models.PrayerStatusAnswered:
			stats.AnsweredPrayers++
		}
	}
	return stats, nil
}

func (s *PrayerService) loadPrayer(ctx context.Context, prayerID uuid.UUID) (*db_models.Prayer, error) {
	prayer, err := s.prayerRepo.FindByID(ctx, prayerID)
	if err != nil {
		log.Printf("Error fetching prayer: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if prayer == nil {
		return nil, utils.ErrPrayerNotFound
	}
	return prayer, nil
}

func (s *PrayerService) toPrayerResponses(ctx context.Context, prayers []db_models.Prayer, currentUserID uuid.UUID) ([]response_models.PrayerResponse, error) {
	responses := make([]response_models.PrayerResponse, 0, len(prayers))
	for i := range prayers {
		resp, err := s.toPrayerResponse(ctx, &prayers[i], currentUserID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *PrayerService) toPrayerResponse(ctx context.Context, prayer *db_models.Prayer, currentUserID uuid.UUID) (*response_models.PrayerResponse, error) {
	followerCount, err := s.followerRepo.CountByPrayerID(ctx, prayer.ID)
	if err != nil {
		log.Printf("Error counting followers: %v", err)
		return nil, utils.ErrDatabaseError
	}

	updateCount, err := s.updateRepo.CountByPrayerID(ctx, prayer.ID)
	if err != nil {
		log.Printf("Error counting updates: %v", err)
		return nil, utils.ErrDatabaseError
	}

	isFollowing, err := s.followerRepo.Exists(ctx, prayer.ID, currentUserID)
	if err != nil {
		log.Printf("Error checking follower: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PrayerResponse{
		ID:                 prayer.ID.String(),
		UserID:             prayer.UserID.String(),
		Username:           prayer.User.Username,
		UserFullName:       prayer.User.FullName,
		Title:              prayer.Title,
		Content:            prayer.Content,
		ScriptureReference: prayer.ScriptureReference,
		ScriptureText:      prayer.ScriptureText,
		YoutubeMusicURL:    prayer.YoutubeMusicURL,
		Status:             prayer.Status,
		AnsweredAt:         prayer.AnsweredAt,
		Visibility:         prayer.Visibility,
		IsShared:           prayer.IsShared,
		FollowerCount:      followerCount,
		UpdateCount:        updateCount,
		IsFollowing:        isFollowing,
		CreatedAt:          prayer.CreatedAt,
		UpdatedAt:          prayer.UpdatedAt,
	}, nil
}
