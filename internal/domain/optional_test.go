package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_Absent(t *testing.T) {
	var target struct {
		Name Optional[string] `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &target))

	assert.False(t, target.Name.Set)
	assert.False(t, target.Name.Null)
}

func TestOptional_Null(t *testing.T) {
	var target struct {
		ArtistID Optional[string] `json:"artistId"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"artistId": null}`), &target))

	assert.True(t, target.ArtistID.Set)
	assert.True(t, target.ArtistID.Null)
}

func TestOptional_Value(t *testing.T) {
	var target struct {
		Year Optional[int] `json:"year"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"year": 1973}`), &target))

	assert.True(t, target.Year.Set)
	assert.False(t, target.Year.Null)
	assert.Equal(t, 1973, target.Year.Value)
}

func TestOptional_ZeroValue(t *testing.T) {
	var target struct {
		Grammy Optional[bool] `json:"grammy"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"grammy": false}`), &target))

	assert.True(t, target.Grammy.Set)
	assert.False(t, target.Grammy.Null)
	assert.False(t, target.Grammy.Value)
}

func TestOptional_TypeMismatch(t *testing.T) {
	var target struct {
		Year Optional[int] `json:"year"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"year": "nineteen"}`), &target))
}
