package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homelib/server/internal/domain"
)

type favoritesRepository struct {
	db *pgxpool.Pool
}

// NewFavoritesRepository creates the PostgreSQL favorites repository.
// The singleton is modeled as one row per favorited id; the composite
// primary key (kind, entity_id) enforces the no-duplicates invariant.
func NewFavoritesRepository(db *pgxpool.Pool) FavoritesRepository {
	return &favoritesRepository{db: db}
}

func (r *favoritesRepository) Add(ctx context.Context, kind domain.FavoriteKind, id string) error {
	query := `
		INSERT INTO favorites (kind, entity_id)
		VALUES ($1, $2)
		ON CONFLICT (kind, entity_id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, kind, id)
	return err
}

func (r *favoritesRepository) Remove(ctx context.Context, kind domain.FavoriteKind, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM favorites WHERE kind = $1 AND entity_id = $2`, kind, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *favoritesRepository) ListIDs(ctx context.Context, kind domain.FavoriteKind) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT entity_id FROM favorites WHERE kind = $1 ORDER BY added_at`, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
