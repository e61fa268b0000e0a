package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homelib/server/internal/domain"
)

func TestArtistCreate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	artist := f.mustCreateArtist(t, "Freddie Mercury", true)
	assert.NoError(t, domain.ValidateID(artist.ID))
	assert.Equal(t, "Freddie Mercury", artist.Name)
	assert.True(t, artist.Grammy)

	got, err := f.artistService.Get(ctx, artist.ID)
	require.NoError(t, err)
	assert.Equal(t, artist, got)
}

func TestArtistCreate_MissingFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.artistService.Create(ctx, &CreateArtistInput{Name: "No Grammy Field"})
	assert.ErrorIs(t, err, domain.ErrMissingFields)

	grammy := false
	_, err = f.artistService.Create(ctx, &CreateArtistInput{Grammy: &grammy})
	assert.ErrorIs(t, err, domain.ErrMissingFields)

	// grammy: false is a value, not an omission.
	artist, err := f.artistService.Create(ctx, &CreateArtistInput{Name: "Newcomer", Grammy: &grammy})
	require.NoError(t, err)
	assert.False(t, artist.Grammy)
}

func TestArtistGet_InvalidID(t *testing.T) {
	f := newFixture()

	_, err := f.artistService.Get(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestArtistGet_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.artistService.Get(context.Background(), domain.NewID())
	assert.ErrorIs(t, err, domain.ErrArtistNotFound)
}

func TestArtistUpdate_Partial(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	artist := f.mustCreateArtist(t, "BTS", false)

	// Only grammy present; name must survive.
	updated, err := f.artistService.Update(ctx, artist.ID, &UpdateArtistInput{Grammy: optValue(true)})
	require.NoError(t, err)
	assert.Equal(t, "BTS", updated.Name)
	assert.True(t, updated.Grammy)

	updated, err = f.artistService.Update(ctx, artist.ID, &UpdateArtistInput{Name: optValue("Bangtan Boys")})
	require.NoError(t, err)
	assert.Equal(t, "Bangtan Boys", updated.Name)
	assert.True(t, updated.Grammy)
}

func TestArtistUpdate_NullRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	artist := f.mustCreateArtist(t, "BTS", false)

	_, err := f.artistService.Update(ctx, artist.ID, &UpdateArtistInput{Name: optNull[string]()})
	assert.ErrorIs(t, err, domain.ErrMissingFields)

	_, err = f.artistService.Update(ctx, artist.ID, &UpdateArtistInput{Grammy: optNull[bool]()})
	assert.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestArtistDelete_Cascade(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	artist := f.mustCreateArtist(t, "David Bowie", true)
	keeper := f.mustCreateArtist(t, "Brian Eno", true)
	album := f.mustCreateAlbum(t, "Low", 1977, &artist.ID)
	keeperAlbum := f.mustCreateAlbum(t, "Another Green World", 1975, &keeper.ID)
	track := f.mustCreateTrack(t, "Sound and Vision", 183, &artist.ID, &album.ID)
	require.NoError(t, f.favoritesService.AddArtist(ctx, artist.ID))
	require.NoError(t, f.favoritesService.AddArtist(ctx, keeper.ID))

	require.NoError(t, f.artistService.Delete(ctx, artist.ID))

	_, err := f.artistService.Get(ctx, artist.ID)
	assert.ErrorIs(t, err, domain.ErrArtistNotFound)

	// The album and track survive with artistId cleared.
	gotAlbum, err := f.albumService.Get(ctx, album.ID)
	require.NoError(t, err)
	assert.Nil(t, gotAlbum.ArtistID)

	gotTrack, err := f.trackService.Get(ctx, track.ID)
	require.NoError(t, err)
	assert.Nil(t, gotTrack.ArtistID)
	assert.Equal(t, &album.ID, gotTrack.AlbumID)

	// Unrelated references stay intact.
	gotKeeper, err := f.albumService.Get(ctx, keeperAlbum.ID)
	require.NoError(t, err)
	assert.Equal(t, &keeper.ID, gotKeeper.ArtistID)

	favs, err := f.favoritesService.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, favs.Artists, 1)
	assert.Equal(t, keeper.ID, favs.Artists[0].ID)
}

func TestArtistDelete_NotFavorited(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	artist := f.mustCreateArtist(t, "Unloved", false)

	// Deleting an artist nobody favorited must not error.
	assert.NoError(t, f.artistService.Delete(ctx, artist.ID))
}

func TestArtistDelete_NotFound(t *testing.T) {
	f := newFixture()

	err := f.artistService.Delete(context.Background(), domain.NewID())
	assert.ErrorIs(t, err, domain.ErrArtistNotFound)
}
