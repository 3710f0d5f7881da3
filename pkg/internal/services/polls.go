package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/solarvale/agora/pkg/internal/cache"
	"github.com/solarvale/agora/pkg/internal/database"
	"github.com/solarvale/agora/pkg/internal/models"
	"gorm.io/gorm"
)

func NewPoll(poll models.Poll) (models.Poll, error) {
	if len(poll.Title) == 0 {
		return poll, fmt.Errorf("the given title must be set")
	}
	if err := database.C.Create(&poll).Error; err != nil {
		return poll, err
	}
	return poll, nil
}

func UpdatePoll(poll models.Poll) (models.Poll, error) {
	if err := database.C.Save(&poll).Error; err != nil {
		return poll, err
	}
	return poll, nil
}

// FilterPollVisible narrows a query down to the polls that are not
// soft deleted.
func FilterPollVisible(tx *gorm.DB) *gorm.DB {
	return tx.Where("visibility = ?", true)
}

func ListPoll(take int, offset int) ([]models.Poll, error) {
	var polls []models.Poll
	err := FilterPollVisible(database.C).
		Preload("Categories").
		Preload("Options").
		Offset(offset).Limit(take).
		Order("created_at DESC").
		Find(&polls).Error

	return polls, err
}

func GetPoll(id uint) (models.Poll, error) {
	var poll models.Poll
	if err := FilterPollVisible(database.C).
		Preload("Categories").
		Preload("Options").
		Where("id = ?", id).
		First(&poll).Error; err != nil {
		return poll, err
	}
	return poll, nil
}

// GetPollWithID does not filter on visibility, reserved for the admin
// surface and the ledger internals.
func GetPollWithID(id uint) (models.Poll, error) {
	var poll models.Poll
	if err := database.C.
		Preload("Options").
		Where("id = ?", id).
		First(&poll).Error; err != nil {
		return poll, err
	}
	return poll, nil
}

// HidePoll is the deletion contract for questions: the row stays, only
// the visibility flag flips. Options and votes are left untouched.
func HidePoll(poll models.Poll) error {
	return database.C.Model(&poll).Update("visibility", false).Error
}

func AddPollOption(poll models.Poll, choiceText string) (models.PollOption, error) {
	option := models.PollOption{
		QuestionID: poll.ID,
		ChoiceText: choiceText,
	}
	if err := database.C.Create(&option).Error; err != nil {
		return option, err
	}
	return option, nil
}

func GetPollOptionWithID(id uint) (models.PollOption, error) {
	var option models.PollOption
	if err := database.C.Where("id = ?", id).First(&option).Error; err != nil {
		return option, err
	}
	return option, nil
}

func GetPollMetric(poll models.Poll) models.PollMetric {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	metricCacheKey := fmt.Sprintf("poll-metric#%d", poll.ID)
	if metricCache, err := marshal.Get(ctx, metricCacheKey, new(models.PollMetric)); err == nil {
		return *metricCache.(*models.PollMetric)
	}

	var options []models.PollOption
	if err := database.C.Where("question_id = ?", poll.ID).Find(&options).Error; err != nil {
		return models.PollMetric{}
	}

	metric := models.PollMetric{
		ByOptions: make(map[string]uint),
	}
	for _, option := range options {
		metric.ByOptions[option.ChoiceText] = option.Votes
		metric.TotalVote += int64(option.Votes)
	}

	_ = marshal.Set(
		ctx,
		metricCacheKey,
		metric,
		store.WithExpiration(5*time.Minute),
		store.WithTags([]string{fmt.Sprintf("poll#%d", poll.ID)}),
	)

	return metric
}

// FlushPollMetric invalidates the cached tally of a poll, called after
// every accepted vote.
func FlushPollMetric(poll models.Poll) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)

	_ = marshal.Invalidate(
		context.Background(),
		store.WithInvalidateTags([]string{fmt.Sprintf("poll#%d", poll.ID)}),
	)
}
