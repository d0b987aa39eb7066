package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/fundflow/crowdfund-backend/internal/metrics"
	"github.com/fundflow/crowdfund-backend/internal/models"
	repo "github.com/fundflow/crowdfund-backend/internal/repository"
	"github.com/fundflow/crowdfund-backend/internal/store"
	"github.com/google/uuid"
)

type CampaignService struct {
	r repo.Campaigns
}

func NewCampaignService(r repo.Campaigns) *CampaignService { return &CampaignService{r: r} }

func newCampaign(in models.CampaignInput) models.Campaign {
	return models.Campaign{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		GoalAmount:  in.GoalAmount,
		CreatedAt:   time.Now().UTC(),
	}
}

func (s *CampaignService) Create(ctx context.Context, in models.CampaignInput) (models.Campaign, error) {
	if err := in.Validate(); err != nil {
		return models.Campaign{}, err
	}
	c, err := s.r.Create(ctx, newCampaign(in))
	if err != nil {
		return models.Campaign{}, err
	}
	metrics.CampaignsCreated.Inc()
	return c, nil
}

// CreateBatch persists the inputs in order; one bad input fails the whole
// batch before anything is written.
func (s *CampaignService) CreateBatch(ctx context.Context, ins []models.CampaignInput) ([]models.Campaign, error) {
	if len(ins) == 0 {
		return nil, store.Invalid("campaign list is empty")
	}
	cs := make([]models.Campaign, 0, len(ins))
	for i, in := range ins {
		if err := in.Validate(); err != nil {
			return nil, store.Invalid(fmt.Sprintf("campaign %d: %s", i, err))
		}
		cs = append(cs, newCampaign(in))
	}
	out, err := s.r.CreateBatch(ctx, cs)
	if err != nil {
		return nil, err
	}
	metrics.CampaignsCreated.Add(float64(len(out)))
	return out, nil
}

func (s *CampaignService) List(ctx context.Context) ([]models.Campaign, error) {
	return s.r.List(ctx)
}

func (s *CampaignService) GetByID(ctx context.Context, id string) (models.Campaign, error) {
	return s.r.GetByID(ctx, id)
}

// Donate applies a donation to the campaign. Amounts must be positive and
// finite; the original API applied any number it was handed, which let a
// donation shrink a campaign's total. Rejecting keeps currentAmount and
// backers monotonic.
func (s *CampaignService) Donate(ctx context.Context, id string, amount float64) (models.Campaign, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return models.Campaign{}, store.Invalid("amount must be a positive number")
	}
	c, err := s.r.AddDonation(ctx, id, amount)
	if err != nil {
		return models.Campaign{}, err
	}
	metrics.DonationsTotal.Inc()
	metrics.DonationsAmount.Add(amount)
	return c, nil
}

func (s *CampaignService) Update(ctx context.Context, id string, p models.CampaignPatch) (models.Campaign, error) {
	if err := p.Validate(); err != nil {
		return models.Campaign{}, err
	}
	return s.r.UpdateFields(ctx, id, p)
}

func (s *CampaignService) Delete(ctx context.Context, id string) error {
	return s.r.Delete(ctx, id)
}
