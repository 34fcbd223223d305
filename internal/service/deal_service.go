package service

import (
	"context"
	"log"
	"time"

	"dreamtrip/internal/model"
	"dreamtrip/internal/repository"

	"github.com/google/uuid"
)

// DealService answers the deal recommendations endpoint
type DealService struct {
	calculator *DealCalculator
	journal    repository.Journal
	now        func() time.Time
}

// NewDealService creates a deal service; journal may be nil
func NewDealService(calculator *DealCalculator, journal repository.Journal) *DealService {
	return &DealService{calculator: calculator, journal: journal, now: time.Now}
}

// Recommendations computes the upsell/downsell offer for the journey. A nil
// journey behaves like an empty one.
func (s *DealService) Recommendations(ctx context.Context, journey *model.JourneyData) (*model.DealAdjustment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	adj, in := s.calculator.Compute(journey)

	if s.journal != nil {
		rec := model.AdjustmentRecord{
			ID:             uuid.NewString(),
			ModelID:        in.ModelID,
			TotalPrice:     in.TotalPrice,
			Budget:         in.Budget,
			MonthlyPayment: in.MonthlyPayment,
			ShouldUpsell:   adj.ShouldUpsell,
			ShouldDownsell: adj.ShouldDownsell,
			CreatedAt:      s.now().UTC(),
		}
		if err := s.journal.LogAdjustment(ctx, rec); err != nil {
			log.Printf("Warning: failed to journal deal adjustment: %v", err)
		}
	}

	return adj, nil
}
