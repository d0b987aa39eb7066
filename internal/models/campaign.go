package models

import (
	"math"
	"strings"
	"time"

	"github.com/fundflow/crowdfund-backend/internal/store"
)

// Campaign is a fundraising record with a funding goal and running total.
// currentAmount and backers only ever grow, and only through a donation.
type Campaign struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	GoalAmount    float64   `json:"goalAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	Backers       int       `json:"backers"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CampaignInput is the creation payload for a campaign. All fields are
// required; defaults (currentAmount, backers, createdAt, id) are assigned
// by the store.
type CampaignInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	GoalAmount  float64 `json:"goalAmount"`
}

func (in *CampaignInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return store.Invalid("title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return store.Invalid("description is required")
	}
	if in.GoalAmount <= 0 || math.IsNaN(in.GoalAmount) || math.IsInf(in.GoalAmount, 0) {
		return store.Invalid("goalAmount must be a positive number")
	}
	return nil
}

// CampaignPatch is a partial update. A field is applied only when it is
// present and non-zero: "" and 0 mean "not supplied", so an update carrying
// goalAmount: 0 leaves the goal untouched. That falsy-skip rule is kept
// deliberately from the original API.
type CampaignPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	GoalAmount  *float64 `json:"goalAmount"`
}

// TitleValue returns the new title and whether it should be applied.
func (p *CampaignPatch) TitleValue() (string, bool) {
	if p.Title == nil || *p.Title == "" {
		return "", false
	}
	return *p.Title, true
}

func (p *CampaignPatch) DescriptionValue() (string, bool) {
	if p.Description == nil || *p.Description == "" {
		return "", false
	}
	return *p.Description, true
}

func (p *CampaignPatch) GoalAmountValue() (float64, bool) {
	if p.GoalAmount == nil || *p.GoalAmount == 0 {
		return 0, false
	}
	return *p.GoalAmount, true
}

func (p *CampaignPatch) Validate() error {
	if g, ok := p.GoalAmountValue(); ok {
		if g < 0 || math.IsNaN(g) || math.IsInf(g, 0) {
			return store.Invalid("goalAmount must be a positive number")
		}
	}
	return nil
}
