package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trypie/wanderly-backend/models"
	"github.com/trypie/wanderly-backend/utils"
)

func participantsNamed(names ...string) []models.Participant {
	participants := make([]models.Participant, len(names))
	for i, name := range names {
		participants[i] = models.Participant{ID: name + "-id", Name: name}
	}
	return participants
}

func shareSum(participants []models.Participant) float64 {
	var sum float64
	for _, p := range participants {
		sum += p.Share
	}
	return sum
}

func TestSplitService_EqualSplit_DriftGoesToFirstParticipant(t *testing.T) {
	service := NewSplitService()

	// 86.50 / 3 = 28.8333..., rounds to 28.83 each, leaving 0.01 for the
	// first participant in insertion order
	result, err := service.ComputeShares(86.50, utils.SplitTypeEqual, participantsNamed("ana", "ben", "cat"))

	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.Equal(t, 28.84, result[0].Share, "first participant absorbs the rounding drift")
	assert.Equal(t, 28.83, result[1].Share)
	assert.Equal(t, 28.83, result[2].Share)
	assert.InDelta(t, 86.50, shareSum(result), 0.0001, "shares must sum to the amount exactly")
}

func TestSplitService_EqualSplit_Fairness(t *testing.T) {
	service := NewSplitService()

	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	amounts := []float64{10, 99.99, 86.50, 100, 0.03, 1234.56}

	for n := 1; n <= len(names); n++ {
		for _, amount := range amounts {
			result, err := service.ComputeShares(amount, utils.SplitTypeEqual, participantsNamed(names[:n]...))
			require.NoError(t, err)

			assert.InDelta(t, amount, shareSum(result), 0.0001,
				"sum invariant for amount=%.2f n=%d", amount, n)

			perShare := utils.Round(amount / float64(n))
			for i, p := range result {
				if i == 0 {
					// The first participant may carry up to half a cent of
					// drift per participant
					assert.InDelta(t, perShare, p.Share, 0.005*float64(n)+0.0001,
						"first share for amount=%.2f n=%d", amount, n)
				} else {
					assert.Equal(t, perShare, p.Share,
						"share %d for amount=%.2f n=%d", i, amount, n)
				}
				assert.Equal(t, utils.Round(100/float64(n)), p.SharePercentage,
					"percentage %d for n=%d", i, n)
			}
		}
	}
}

func TestSplitService_PercentageSplit_RoundTrip(t *testing.T) {
	service := NewSplitService()

	// Percentages that sum to exactly 100 should produce shares that sum to
	// the amount without any drift correction kicking in
	participants := participantsNamed("ana", "ben", "cat")
	participants[0].SharePercentage = 50
	participants[1].SharePercentage = 30
	participants[2].SharePercentage = 20

	result, err := service.ComputeShares(250.00, utils.SplitTypePercentage, participants)

	require.NoError(t, err)
	assert.Equal(t, 125.00, result[0].Share, "no drift should land on the first participant")
	assert.Equal(t, 75.00, result[1].Share)
	assert.Equal(t, 50.00, result[2].Share)
	assert.InDelta(t, 250.00, shareSum(result), 0.0001)
}

func TestSplitService_PercentageSplit_UnderAllocationAbsorbedByDrift(t *testing.T) {
	service := NewSplitService()

	// Percentages summing to 80 under-allocate; the missing 20.00 is
	// absorbed by the first participant rather than rejected
	participants := participantsNamed("ana", "ben")
	participants[0].SharePercentage = 40
	participants[1].SharePercentage = 40

	result, err := service.ComputeShares(100.00, utils.SplitTypePercentage, participants)

	require.NoError(t, err)
	assert.Equal(t, 60.00, result[0].Share)
	assert.Equal(t, 40.00, result[1].Share)
	assert.InDelta(t, 100.00, shareSum(result), 0.0001)
}

func TestSplitService_ExactSplit_PercentagesDerived(t *testing.T) {
	service := NewSplitService()

	participants := participantsNamed("ana", "ben", "cat")
	participants[0].Share = 10.00
	participants[1].Share = 30.00
	participants[2].Share = 60.00

	result, err := service.ComputeShares(100.00, utils.SplitTypeExact, participants)

	require.NoError(t, err)
	assert.Equal(t, 10.00, result[0].Share)
	assert.Equal(t, 10.00, result[0].SharePercentage)
	assert.Equal(t, 30.00, result[1].SharePercentage)
	assert.Equal(t, 60.00, result[2].SharePercentage)

	var pctSum float64
	for _, p := range result {
		pctSum += p.SharePercentage
	}
	assert.InDelta(t, 100.00, pctSum, 0.011)
}

func TestSplitService_ExactSplit_UnderAllocationAbsorbedByDrift(t *testing.T) {
	service := NewSplitService()

	participants := participantsNamed("ana", "ben")
	participants[0].Share = 20.00
	participants[1].Share = 30.00

	result, err := service.ComputeShares(60.00, utils.SplitTypeExact, participants)

	require.NoError(t, err)
	assert.Equal(t, 30.00, result[0].Share, "first participant absorbs the missing 10.00")
	assert.Equal(t, 30.00, result[1].Share)
	assert.InDelta(t, 60.00, shareSum(result), 0.0001)
}

func TestSplitService_ComputeShares_DoesNotMutateInput(t *testing.T) {
	service := NewSplitService()

	participants := participantsNamed("ana", "ben", "cat")
	_, err := service.ComputeShares(86.50, utils.SplitTypeEqual, participants)

	require.NoError(t, err)
	for _, p := range participants {
		assert.Equal(t, 0.0, p.Share, "input participants must stay untouched")
	}
}

func TestSplitService_ComputeShares_Errors(t *testing.T) {
	service := NewSplitService()

	_, err := service.ComputeShares(0, utils.SplitTypeEqual, participantsNamed("ana"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = service.ComputeShares(-5, utils.SplitTypeEqual, participantsNamed("ana"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = service.ComputeShares(10, utils.SplitTypeEqual, nil)
	assert.ErrorIs(t, err, ErrNoParticipants)

	_, err = service.ComputeShares(10, "weighted", participantsNamed("ana"))
	assert.ErrorIs(t, err, ErrUnknownSplitType)

	badPct := participantsNamed("ana")
	badPct[0].SharePercentage = 120
	_, err = service.ComputeShares(10, utils.SplitTypePercentage, badPct)
	assert.ErrorIs(t, err, ErrPercentageOutOfRange)

	badShare := participantsNamed("ana")
	badShare[0].Share = -1
	_, err = service.ComputeShares(10, utils.SplitTypeExact, badShare)
	assert.ErrorIs(t, err, ErrNegativeShare)
}

func TestSplitService_SetParticipantPercentage_UpdatesOnlyThatParticipant(t *testing.T) {
	service := NewSplitService()

	participants := participantsNamed("ana", "ben")
	participants[0].SharePercentage = 50
	participants[1].SharePercentage = 50
	computed, err := service.ComputeShares(100.00, utils.SplitTypePercentage, participants)
	require.NoError(t, err)

	expense := models.NewExpense("e1", "t1", "dinner", 100.00, "ana", utils.SplitTypePercentage, computed)

	err = service.SetParticipantPercentage(expense, "ben-id", 30)
	require.NoError(t, err)

	assert.Equal(t, 50.00, expense.Participants[0].Share, "other participants stay untouched")
	assert.Equal(t, 30.00, expense.Participants[1].Share)
	assert.Equal(t, 30.00, expense.Participants[1].SharePercentage)
}

func TestSplitService_SetParticipantShare_DerivesPercentage(t *testing.T) {
	service := NewSplitService()

	participants := participantsNamed("ana", "ben")
	participants[0].Share = 60
	participants[1].Share = 40
	computed, err := service.ComputeShares(100.00, utils.SplitTypeExact, participants)
	require.NoError(t, err)

	expense := models.NewExpense("e1", "t1", "hotel", 100.00, "ana", utils.SplitTypeExact, computed)

	err = service.SetParticipantShare(expense, "ben-id", 25.00)
	require.NoError(t, err)

	assert.Equal(t, 25.00, expense.Participants[1].Share)
	assert.Equal(t, 25.00, expense.Participants[1].SharePercentage)
	assert.Equal(t, 60.00, expense.Participants[0].Share)
}

func TestSplitService_SetParticipant_UnknownIDIsNoOp(t *testing.T) {
	service := NewSplitService()

	computed, err := service.ComputeShares(100.00, utils.SplitTypeEqual, participantsNamed("ana", "ben"))
	require.NoError(t, err)

	expense := models.NewExpense("e1", "t1", "taxi", 100.00, "ana", utils.SplitTypeEqual, computed)

	require.NoError(t, service.SetParticipantPercentage(expense, "nobody", 10))
	require.NoError(t, service.SetParticipantShare(expense, "nobody", 10))

	assert.Equal(t, 50.00, expense.Participants[0].Share)
	assert.Equal(t, 50.00, expense.Participants[1].Share)
}
