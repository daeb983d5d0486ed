package services

import (
	"errors"

	"github.com/trypie/wanderly-backend/models"
	"github.com/trypie/wanderly-backend/utils"
)

// Split calculation errors
var (
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrNoParticipants       = errors.New("at least one participant is required")
	ErrUnknownSplitType     = errors.New("unknown split type")
	ErrPercentageOutOfRange = errors.New("percentage must be between 0 and 100")
	ErrNegativeShare        = errors.New("share cannot be negative")
)

// SplitService computes per-participant shares for an expense.
// It is pure: inputs are never mutated and no I/O is performed.
type SplitService struct{}

// NewSplitService creates a new split service
func NewSplitService() *SplitService {
	return &SplitService{}
}

// ComputeShares populates Share and SharePercentage for every participant
// according to the split type, then applies the rounding correction so that
// the shares sum to the amount exactly at 2 decimal places.
//
// The entire rounding drift goes to the first participant in the supplied
// order. That bias is intentional and pinned by tests; do not redistribute.
func (s *SplitService) ComputeShares(amount float64, splitType string, participants []models.Participant) ([]models.Participant, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	result := make([]models.Participant, len(participants))
	copy(result, participants)

	switch splitType {
	case utils.SplitTypeEqual:
		n := float64(len(result))
		share := utils.Round(amount / n)
		pct := utils.Round(100 / n)
		for i := range result {
			result[i].Share = share
			result[i].SharePercentage = pct
		}

	case utils.SplitTypePercentage:
		for i := range result {
			pct := result[i].SharePercentage
			if pct < 0 || pct > 100 {
				return nil, ErrPercentageOutOfRange
			}
			result[i].Share = utils.Round(pct * amount / 100)
		}

	case utils.SplitTypeExact:
		for i := range result {
			share := result[i].Share
			if share < 0 {
				return nil, ErrNegativeShare
			}
			result[i].Share = utils.Round(share)
			result[i].SharePercentage = s.percentageOf(result[i].Share, amount)
		}

	default:
		return nil, ErrUnknownSplitType
	}

	s.applyDriftCorrection(amount, result)

	return result, nil
}

// SetParticipantPercentage updates a single participant's percentage and
// recomputes only that participant's share. The other shares are left alone;
// the sum invariant is re-established on the next full recomputation.
// An unknown participant id is a no-op.
func (s *SplitService) SetParticipantPercentage(expense *models.Expense, participantID string, percentage float64) error {
	if percentage < 0 || percentage > 100 {
		return ErrPercentageOutOfRange
	}
	for i := range expense.Participants {
		if expense.Participants[i].ID == participantID {
			expense.Participants[i].SharePercentage = percentage
			expense.Participants[i].Share = utils.Round(percentage * expense.Amount / 100)
			return nil
		}
	}
	return nil
}

// SetParticipantShare updates a single participant's exact share and derives
// the matching percentage. An unknown participant id is a no-op.
func (s *SplitService) SetParticipantShare(expense *models.Expense, participantID string, share float64) error {
	if share < 0 {
		return ErrNegativeShare
	}
	for i := range expense.Participants {
		if expense.Participants[i].ID == participantID {
			expense.Participants[i].Share = utils.Round(share)
			expense.Participants[i].SharePercentage = s.percentageOf(expense.Participants[i].Share, expense.Amount)
			return nil
		}
	}
	return nil
}

// applyDriftCorrection adds the residual cents left over after rounding to
// the first participant so the shares sum to the amount exactly.
func (s *SplitService) applyDriftCorrection(amount float64, participants []models.Participant) {
	var sum float64
	for _, p := range participants {
		sum += p.Share
	}

	drift := utils.Round(amount - sum)
	if drift != 0 {
		participants[0].Share = utils.Round(participants[0].Share + drift)
	}
}

// percentageOf derives a share's percentage of the amount
func (s *SplitService) percentageOf(share, amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	return utils.Round(share / amount * 100)
}
