package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homelib/server/internal/domain"
)

func TestTrackRepository_ClearArtist(t *testing.T) {
	r := NewTrackRepository()
	ctx := context.Background()

	artistID := domain.NewID()
	otherID := domain.NewID()
	affected := &domain.Track{ID: domain.NewID(), Name: "A", ArtistID: &artistID, Duration: 10}
	unaffected := &domain.Track{ID: domain.NewID(), Name: "B", ArtistID: &otherID, Duration: 20}
	require.NoError(t, r.Create(ctx, affected))
	require.NoError(t, r.Create(ctx, unaffected))

	require.NoError(t, r.ClearArtist(ctx, artistID))

	got, err := r.GetByID(ctx, affected.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ArtistID)

	got, err = r.GetByID(ctx, unaffected.ID)
	require.NoError(t, err)
	assert.Equal(t, &otherID, got.ArtistID)
}

func TestAlbumRepository_ClearArtist(t *testing.T) {
	r := NewAlbumRepository()
	ctx := context.Background()

	artistID := domain.NewID()
	album := &domain.Album{ID: domain.NewID(), Name: "A", Year: 2000, ArtistID: &artistID}
	require.NoError(t, r.Create(ctx, album))

	require.NoError(t, r.ClearArtist(ctx, artistID))

	got, err := r.GetByID(ctx, album.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ArtistID)
}

func TestFavoritesRepository(t *testing.T) {
	r := NewFavoritesRepository()
	ctx := context.Background()

	first := domain.NewID()
	second := domain.NewID()
	require.NoError(t, r.Add(ctx, domain.FavoriteTrack, first))
	require.NoError(t, r.Add(ctx, domain.FavoriteTrack, second))
	// Re-adding a member does not duplicate it.
	require.NoError(t, r.Add(ctx, domain.FavoriteTrack, first))

	ids, err := r.ListIDs(ctx, domain.FavoriteTrack)
	require.NoError(t, err)
	assert.Equal(t, []string{first, second}, ids)

	removed, err := r.Remove(ctx, domain.FavoriteTrack, first)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = r.Remove(ctx, domain.FavoriteTrack, first)
	require.NoError(t, err)
	assert.False(t, removed)

	// Kinds are independent sets.
	ids, err = r.ListIDs(ctx, domain.FavoriteAlbum)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestUserRepository_UpdateMissing(t *testing.T) {
	r := NewUserRepository()

	err := r.Update(context.Background(), &domain.User{ID: domain.NewID(), Login: "ghost"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestArtistRepository_ListCopies(t *testing.T) {
	r := NewArtistRepository()
	ctx := context.Background()

	artist := &domain.Artist{ID: domain.NewID(), Name: "Original"}
	require.NoError(t, r.Create(ctx, artist))

	// Mutating the caller's struct after Create must not leak into storage.
	artist.Name = "Mutated"
	got, err := r.GetByID(ctx, artist.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Name)
}
