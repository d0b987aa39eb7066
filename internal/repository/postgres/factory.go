package postgres

import (
	repo "github.com/fundflow/crowdfund-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Campaigns repo.Campaigns
	Users     repo.Users
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Campaigns: &campaignsRepo{pool},
		Users:     &usersRepo{pool},
	}
}
