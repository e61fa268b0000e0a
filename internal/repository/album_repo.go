package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homelib/server/internal/domain"
)

type albumRepository struct {
	db *pgxpool.Pool
}

// NewAlbumRepository creates the PostgreSQL album repository.
func NewAlbumRepository(db *pgxpool.Pool) AlbumRepository {
	return &albumRepository{db: db}
}

func (r *albumRepository) Create(ctx context.Context, album *domain.Album) error {
	query := `INSERT INTO albums (id, name, year, artist_id) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, album.ID, album.Name, album.Year, album.ArtistID)
	return err
}

func (r *albumRepository) GetByID(ctx context.Context, id string) (*domain.Album, error) {
	query := `SELECT id, name, year, artist_id FROM albums WHERE id = $1`

	var album domain.Album
	err := r.db.QueryRow(ctx, query, id).Scan(&album.ID, &album.Name, &album.Year, &album.ArtistID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, err
	}
	return &album, nil
}

func (r *albumRepository) List(ctx context.Context) ([]domain.Album, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, year, artist_id FROM albums`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	albums := make([]domain.Album, 0)
	for rows.Next() {
		var album domain.Album
		if err := rows.Scan(&album.ID, &album.Name, &album.Year, &album.ArtistID); err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}
	return albums, rows.Err()
}

func (r *albumRepository) Update(ctx context.Context, album *domain.Album) error {
	query := `UPDATE albums SET name = $2, year = $3, artist_id = $4 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, album.ID, album.Name, album.Year, album.ArtistID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

func (r *albumRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

func (r *albumRepository) ClearArtist(ctx context.Context, artistID string) error {
	_, err := r.db.Exec(ctx, `UPDATE albums SET artist_id = NULL WHERE artist_id = $1`, artistID)
	return err
}
