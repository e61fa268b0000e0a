package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homelib/server/internal/domain"
)

type artistRepository struct {
	db *pgxpool.Pool
}

// NewArtistRepository creates the PostgreSQL artist repository.
func NewArtistRepository(db *pgxpool.Pool) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	query := `INSERT INTO artists (id, name, grammy) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, artist.ID, artist.Name, artist.Grammy)
	return err
}

func (r *artistRepository) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	query := `SELECT id, name, grammy FROM artists WHERE id = $1`

	var artist domain.Artist
	err := r.db.QueryRow(ctx, query, id).Scan(&artist.ID, &artist.Name, &artist.Grammy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) List(ctx context.Context) ([]domain.Artist, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, grammy FROM artists`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artists := make([]domain.Artist, 0)
	for rows.Next() {
		var artist domain.Artist
		if err := rows.Scan(&artist.ID, &artist.Name, &artist.Grammy); err != nil {
			return nil, err
		}
		artists = append(artists, artist)
	}
	return artists, rows.Err()
}

func (r *artistRepository) Update(ctx context.Context, artist *domain.Artist) error {
	query := `UPDATE artists SET name = $2, grammy = $3 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, artist.ID, artist.Name, artist.Grammy)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArtistNotFound
	}
	return nil
}

func (r *artistRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArtistNotFound
	}
	return nil
}
