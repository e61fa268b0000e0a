package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homelib/server/internal/domain"
)

type trackRepository struct {
	db *pgxpool.Pool
}

// NewTrackRepository creates the PostgreSQL track repository.
func NewTrackRepository(db *pgxpool.Pool) TrackRepository {
	return &trackRepository{db: db}
}

func (r *trackRepository) Create(ctx context.Context, track *domain.Track) error {
	query := `
		INSERT INTO tracks (id, name, artist_id, album_id, duration)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, track.ID, track.Name, track.ArtistID, track.AlbumID, track.Duration)
	return err
}

func (r *trackRepository) GetByID(ctx context.Context, id string) (*domain.Track, error) {
	query := `SELECT id, name, artist_id, album_id, duration FROM tracks WHERE id = $1`

	var track domain.Track
	err := r.db.QueryRow(ctx, query, id).Scan(
		&track.ID,
		&track.Name,
		&track.ArtistID,
		&track.AlbumID,
		&track.Duration,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTrackNotFound
		}
		return nil, err
	}
	return &track, nil
}

func (r *trackRepository) List(ctx context.Context) ([]domain.Track, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, artist_id, album_id, duration FROM tracks`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tracks := make([]domain.Track, 0)
	for rows.Next() {
		var track domain.Track
		err := rows.Scan(&track.ID, &track.Name, &track.ArtistID, &track.AlbumID, &track.Duration)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}
	return tracks, rows.Err()
}

func (r *trackRepository) Update(ctx context.Context, track *domain.Track) error {
	query := `
		UPDATE tracks
		SET name = $2, artist_id = $3, album_id = $4, duration = $5
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, track.ID, track.Name, track.ArtistID, track.AlbumID, track.Duration)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTrackNotFound
	}
	return nil
}

func (r *trackRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tracks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTrackNotFound
	}
	return nil
}

func (r *trackRepository) ClearArtist(ctx context.Context, artistID string) error {
	_, err := r.db.Exec(ctx, `UPDATE tracks SET artist_id = NULL WHERE artist_id = $1`, artistID)
	return err
}

func (r *trackRepository) ClearAlbum(ctx context.Context, albumID string) error {
	_, err := r.db.Exec(ctx, `UPDATE tracks SET album_id = NULL WHERE album_id = $1`, albumID)
	return err
}
