package services

import (
	"context"
	"errors"

	"github.com/fundflow/crowdfund-backend/internal/models"
	"github.com/fundflow/crowdfund-backend/internal/store"
	"github.com/google/uuid"
)

// In-memory stand-ins for the postgres repositories, mirroring their
// contracts: id well-formedness checks, not-found sentinels, atomic batch
// insert, falsy-skip field updates.

type fakeCampaigns struct {
	byID  map[string]models.Campaign
	order []string
	fail  error // when set, every call fails with it
}

func newFakeCampaigns() *fakeCampaigns {
	return &fakeCampaigns{byID: map[string]models.Campaign{}}
}

func (f *fakeCampaigns) Create(_ context.Context, c models.Campaign) (models.Campaign, error) {
	if f.fail != nil {
		return models.Campaign{}, f.fail
	}
	f.byID[c.ID] = c
	f.order = append(f.order, c.ID)
	return c, nil
}

func (f *fakeCampaigns) CreateBatch(ctx context.Context, cs []models.Campaign) ([]models.Campaign, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	out := make([]models.Campaign, 0, len(cs))
	for _, c := range cs {
		created, err := f.Create(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, created)
	}
	return out, nil
}

func (f *fakeCampaigns) List(context.Context) ([]models.Campaign, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	var out []models.Campaign
	for _, id := range f.order {
		out = append(out, f.byID[id])
	}
	return out, nil
}

func (f *fakeCampaigns) lookup(id string) (models.Campaign, error) {
	if f.fail != nil {
		return models.Campaign{}, f.fail
	}
	if _, err := uuid.Parse(id); err != nil {
		return models.Campaign{}, store.ErrInvalidID
	}
	c, ok := f.byID[id]
	if !ok {
		return models.Campaign{}, store.ErrNotFound
	}
	return c, nil
}

func (f *fakeCampaigns) GetByID(_ context.Context, id string) (models.Campaign, error) {
	return f.lookup(id)
}

func (f *fakeCampaigns) AddDonation(_ context.Context, id string, amount float64) (models.Campaign, error) {
	c, err := f.lookup(id)
	if err != nil {
		return models.Campaign{}, err
	}
	c.CurrentAmount += amount
	c.Backers++
	f.byID[id] = c
	return c, nil
}

func (f *fakeCampaigns) UpdateFields(_ context.Context, id string, p models.CampaignPatch) (models.Campaign, error) {
	c, err := f.lookup(id)
	if err != nil {
		return models.Campaign{}, err
	}
	if v, ok := p.TitleValue(); ok {
		c.Title = v
	}
	if v, ok := p.DescriptionValue(); ok {
		c.Description = v
	}
	if v, ok := p.GoalAmountValue(); ok {
		c.GoalAmount = v
	}
	f.byID[id] = c
	return c, nil
}

func (f *fakeCampaigns) Delete(_ context.Context, id string) error {
	if _, err := f.lookup(id); err != nil {
		return err
	}
	delete(f.byID, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeUsers struct {
	byEmail map[string]models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u models.User) (models.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return models.User{}, store.ErrDuplicateEmail
	}
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return u, nil
}

var errStoreDown = errors.New("connection refused")
