package postgres

import (
	"context"
	"errors"

	"github.com/fundflow/crowdfund-backend/internal/models"
	"github.com/fundflow/crowdfund-backend/internal/store"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type campaignsRepo struct{ pool *pgxpool.Pool }

const campaignCols = `id, title, description, goal_amount, current_amount, backers, created_at`

func scanCampaign(row pgx.Row) (models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.GoalAmount, &c.CurrentAmount, &c.Backers, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Campaign{}, store.ErrNotFound
	}
	return c, err
}

// checkID rejects ids that cannot be campaign identifiers before they hit
// the database, so a malformed path parameter reads as a missing record.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return store.ErrInvalidID
	}
	return nil
}

func (r *campaignsRepo) Create(ctx context.Context, c models.Campaign) (models.Campaign, error) {
	return scanCampaign(r.pool.QueryRow(ctx,
		`INSERT INTO campaigns(id, title, description, goal_amount, current_amount, backers, created_at)
		 VALUES($1,$2,$3,$4,$5,$6,$7)
		 RETURNING `+campaignCols,
		c.ID, c.Title, c.Description, c.GoalAmount, c.CurrentAmount, c.Backers, c.CreatedAt,
	))
}

func (r *campaignsRepo) CreateBatch(ctx context.Context, cs []models.Campaign) ([]models.Campaign, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadWrite})
	if err != nil {
		return nil, err
	}
	out := make([]models.Campaign, 0, len(cs))
	for _, c := range cs {
		created, err := scanCampaign(tx.QueryRow(ctx,
			`INSERT INTO campaigns(id, title, description, goal_amount, current_amount, backers, created_at)
			 VALUES($1,$2,$3,$4,$5,$6,$7)
			 RETURNING `+campaignCols,
			c.ID, c.Title, c.Description, c.GoalAmount, c.CurrentAmount, c.Backers, c.CreatedAt,
		))
		if err != nil {
			_ = tx.Rollback(ctx)
			return nil, err
		}
		out = append(out, created)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *campaignsRepo) List(ctx context.Context) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignCols+` FROM campaigns ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.GoalAmount, &c.CurrentAmount, &c.Backers, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *campaignsRepo) GetByID(ctx context.Context, id string) (models.Campaign, error) {
	if err := checkID(id); err != nil {
		return models.Campaign{}, err
	}
	return scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignCols+` FROM campaigns WHERE id=$1`, id))
}

func (r *campaignsRepo) AddDonation(ctx context.Context, id string, amount float64) (models.Campaign, error) {
	if err := checkID(id); err != nil {
		return models.Campaign{}, err
	}
	// Single statement so the read-modify-write is atomic at the store.
	return scanCampaign(r.pool.QueryRow(ctx,
		`UPDATE campaigns
		    SET current_amount = current_amount + $2,
		        backers = backers + 1
		  WHERE id = $1
		  RETURNING `+campaignCols,
		id, amount,
	))
}

func (r *campaignsRepo) UpdateFields(ctx context.Context, id string, p models.CampaignPatch) (models.Campaign, error) {
	if err := checkID(id); err != nil {
		return models.Campaign{}, err
	}
	title, _ := p.TitleValue()
	desc, _ := p.DescriptionValue()
	goal, _ := p.GoalAmountValue()
	// Unsupplied fields arrive as "" / 0 and fall through to the current
	// value, which is exactly the falsy-skip update contract.
	return scanCampaign(r.pool.QueryRow(ctx,
		`UPDATE campaigns
		    SET title       = COALESCE(NULLIF($2, ''), title),
		        description = COALESCE(NULLIF($3, ''), description),
		        goal_amount = CASE WHEN $4 > 0 THEN $4 ELSE goal_amount END
		  WHERE id = $1
		  RETURNING `+campaignCols,
		id, title, desc, goal,
	))
}

func (r *campaignsRepo) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
