package dto_test

import (
	"testing"

	"bookhub/internal/http-api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookFilter_Rating(t *testing.T) {
	t.Run("MinimumRating", func(t *testing.T) {
		f := dto.ParseBookFilter("", "", "4+", "", "")
		require.NotNil(t, f.MinRating)
		assert.Equal(t, 4.0, *f.MinRating)
	})

	t.Run("FractionalRating", func(t *testing.T) {
		f := dto.ParseBookFilter("", "", "4.5+", "", "")
		require.NotNil(t, f.MinRating)
		assert.Equal(t, 4.5, *f.MinRating)
	})

	t.Run("WithoutPlusSuffix", func(t *testing.T) {
		f := dto.ParseBookFilter("", "", "3", "", "")
		require.NotNil(t, f.MinRating)
		assert.Equal(t, 3.0, *f.MinRating)
	})

	t.Run("MalformedRatingIsIgnored", func(t *testing.T) {
		f := dto.ParseBookFilter("", "", "great+", "", "")
		assert.Nil(t, f.MinRating)
	})

	t.Run("EmptyRatingIsIgnored", func(t *testing.T) {
		f := dto.ParseBookFilter("", "", "", "", "")
		assert.Nil(t, f.MinRating)
	})
}

func TestParseBookFilter_Year(t *testing.T) {
	t.Run("ExactYear", func(t *testing.T) {
		f := dto.ParseBookFilter("", "", "", "2023", "")
		require.NotNil(t, f.Year)
		assert.Equal(t, 2023, *f.Year)
		assert.False(t, f.OlderThan2022)
	})

	t.Run("Older", func(t *testing.T) {
		f := dto.ParseBookFilter("", "", "", "older", "")
		assert.Nil(t, f.Year)
		assert.True(t, f.OlderThan2022)
	})

	t.Run("MalformedYearIsIgnored", func(t *testing.T) {
		f := dto.ParseBookFilter("", "", "", "20x3", "")
		assert.Nil(t, f.Year)
		assert.False(t, f.OlderThan2022)
	})
}

func TestParseBookFilter_SearchAndGenre(t *testing.T) {
	f := dto.ParseBookFilter("  tolkien ", "Fantasy", "", "", "title")
	assert.Equal(t, "tolkien", f.Search)
	assert.Equal(t, "Fantasy", f.Genre)
	assert.Equal(t, "title", f.SortBy)
}

func TestParseBookFilter_Empty(t *testing.T) {
	f := dto.ParseBookFilter("", "", "", "", "")
	assert.Empty(t, f.Search)
	assert.Empty(t, f.Genre)
	assert.Nil(t, f.MinRating)
	assert.Nil(t, f.Year)
	assert.False(t, f.OlderThan2022)
}
