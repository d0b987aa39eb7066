package repository

import (
	"context"

	"github.com/fundflow/crowdfund-backend/internal/models"
)

type Campaigns interface {
	Create(ctx context.Context, c models.Campaign) (models.Campaign, error)
	// CreateBatch persists the records in order inside one transaction;
	// either all are stored or none.
	CreateBatch(ctx context.Context, cs []models.Campaign) ([]models.Campaign, error)
	List(ctx context.Context) ([]models.Campaign, error)
	GetByID(ctx context.Context, id string) (models.Campaign, error)
	// AddDonation applies current_amount += amount, backers += 1 as a
	// single atomic write and returns the updated record.
	AddDonation(ctx context.Context, id string, amount float64) (models.Campaign, error)
	// UpdateFields overwrites only the fields the patch marks as supplied.
	UpdateFields(ctx context.Context, id string, p models.CampaignPatch) (models.Campaign, error)
	Delete(ctx context.Context, id string) error
}

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}
