package services

import (
	"errors"

	"github.com/samber/lo"
	"github.com/solarvale/agora/pkg/internal/database"
	"github.com/solarvale/agora/pkg/internal/models"
	"gorm.io/gorm"
)

// CastVote records a vote of the voter on the poll and bumps the
// selected option's tally by one. The option must be a member of the
// poll's live option set, not merely an existing option id. Double
// voting is rejected by the unique (question, voter) index at insert
// time, there is no defensive pre-check; the increment shares the
// insert's transaction so a rejected vote leaves the tally untouched.
func CastVote(voter models.Account, poll models.Poll, option models.PollOption) (models.Vote, error) {
	var options []models.PollOption
	if err := database.C.Where("question_id = ?", poll.ID).Find(&options).Error; err != nil {
		return models.Vote{}, err
	}

	doesContains := lo.ContainsBy(options, func(item models.PollOption) bool {
		return item.ID == option.ID
	})
	if !doesContains {
		return models.Vote{}, ErrOptionNotInPoll
	}

	vote := models.Vote{
		VoterID:    voter.ID,
		QuestionID: poll.ID,
		OptionID:   option.ID,
	}

	err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PollOption{}).
			Where("id = ?", option.ID).
			Update("votes", gorm.Expr("votes + ?", 1)).Error; err != nil {
			return err
		}
		return tx.Create(&vote).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return vote, ErrAlreadyVoted
		}
		return vote, err
	}

	FlushPollMetric(poll)

	return vote, nil
}

func GetVoteWithVoter(voter models.Account, poll models.Poll) (models.Vote, error) {
	var vote models.Vote
	if err := database.C.Preload("Option").
		Where("question_id = ? AND voter_id = ?", poll.ID, voter.ID).
		First(&vote).Error; err != nil {
		return vote, err
	}
	return vote, nil
}

func CountPollVotes(poll models.Poll) int64 {
	var count int64
	if err := database.C.Model(&models.Vote{}).
		Where("question_id = ?", poll.ID).
		Count(&count).Error; err != nil {
		return 0
	}
	return count
}

// RetractVote deliberately does nothing: votes are permanent once cast
// and an option's tally is never decremented through this path.
func RetractVote(vote models.Vote) error {
	return nil
}
