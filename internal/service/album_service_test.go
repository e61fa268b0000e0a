package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homelib/server/internal/domain"
	"github.com/homelib/server/pkg/apperr"
)

func TestAlbumCreate(t *testing.T) {
	f := newFixture()
	artist := f.mustCreateArtist(t, "Pink Floyd", true)

	album := f.mustCreateAlbum(t, "The Dark Side of the Moon", 1973, &artist.ID)
	assert.Equal(t, 1973, album.Year)
	require.NotNil(t, album.ArtistID)
	assert.Equal(t, artist.ID, *album.ArtistID)

	// artistId is nullable at creation.
	orphan := f.mustCreateAlbum(t, "Unknown Pleasures", 1979, nil)
	assert.Nil(t, orphan.ArtistID)
}

func TestAlbumCreate_MissingFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	year := 1973
	_, err := f.albumService.Create(ctx, &CreateAlbumInput{Year: &year})
	assert.ErrorIs(t, err, domain.ErrMissingFields)

	_, err = f.albumService.Create(ctx, &CreateAlbumInput{Name: "No Year"})
	assert.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestAlbumCreate_DanglingArtistRef(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	year := 1973
	missing := domain.NewID()
	_, err := f.albumService.Create(ctx, &CreateAlbumInput{Name: "Ghost", Year: &year, ArtistID: &missing})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	bad := "not-a-uuid"
	_, err = f.albumService.Create(ctx, &CreateAlbumInput{Name: "Ghost", Year: &year, ArtistID: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestAlbumUpdate_ClearArtist(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	artist := f.mustCreateArtist(t, "Pink Floyd", true)
	album := f.mustCreateAlbum(t, "Animals", 1977, &artist.ID)

	// Explicit null clears the reference.
	updated, err := f.albumService.Update(ctx, album.ID, &UpdateAlbumInput{ArtistID: optNull[string]()})
	require.NoError(t, err)
	assert.Nil(t, updated.ArtistID)
	assert.Equal(t, "Animals", updated.Name)

	// Absent field leaves it untouched.
	updated, err = f.albumService.Update(ctx, album.ID, &UpdateAlbumInput{Year: optValue(1978)})
	require.NoError(t, err)
	assert.Nil(t, updated.ArtistID)
	assert.Equal(t, 1978, updated.Year)
}

func TestAlbumUpdate_SetArtist(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	artist := f.mustCreateArtist(t, "Pink Floyd", true)
	album := f.mustCreateAlbum(t, "Animals", 1977, nil)

	updated, err := f.albumService.Update(ctx, album.ID, &UpdateAlbumInput{ArtistID: optValue(artist.ID)})
	require.NoError(t, err)
	require.NotNil(t, updated.ArtistID)
	assert.Equal(t, artist.ID, *updated.ArtistID)

	// Repointing at a nonexistent artist is rejected.
	_, err = f.albumService.Update(ctx, album.ID, &UpdateAlbumInput{ArtistID: optValue(domain.NewID())})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestAlbumDelete_Cascade(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	artist := f.mustCreateArtist(t, "Pink Floyd", true)
	album := f.mustCreateAlbum(t, "The Wall", 1979, &artist.ID)
	track := f.mustCreateTrack(t, "Comfortably Numb", 382, &artist.ID, &album.ID)
	require.NoError(t, f.favoritesService.AddAlbum(ctx, album.ID))

	require.NoError(t, f.albumService.Delete(ctx, album.ID))

	_, err := f.albumService.Get(ctx, album.ID)
	assert.ErrorIs(t, err, domain.ErrAlbumNotFound)

	// The track survives with albumId cleared and artistId intact.
	gotTrack, err := f.trackService.Get(ctx, track.ID)
	require.NoError(t, err)
	assert.Nil(t, gotTrack.AlbumID)
	assert.Equal(t, &artist.ID, gotTrack.ArtistID)

	favs, err := f.favoritesService.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, favs.Albums)
}
