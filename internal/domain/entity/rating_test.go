package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidRatingValue(t *testing.T) {
	for _, v := range []int{1, 2, 3, 4, 5} {
		assert.True(t, ValidRatingValue(v), "value %d should be valid", v)
	}
	for _, v := range []int{0, 6, -3, 100} {
		assert.False(t, ValidRatingValue(v), "value %d should be invalid", v)
	}
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, NoRating, AverageRating(nil))
	assert.Equal(t, NoRating, AverageRating([]int{}))
	assert.Equal(t, "4.0", AverageRating([]int{4}))
	assert.Equal(t, "4.5", AverageRating([]int{4, 5}))
	assert.Equal(t, "3.7", AverageRating([]int{3, 4, 4}))
	assert.Equal(t, "1.0", AverageRating([]int{1, 1, 1}))
}

func TestStore_OverallRating(t *testing.T) {
	store := &Store{}
	assert.Equal(t, NoRating, store.OverallRating())

	store.Ratings = []*Rating{{Value: 2}, {Value: 5}}
	assert.Equal(t, "3.5", store.OverallRating())
}

func TestStore_RatingBy(t *testing.T) {
	userID := uuid.New()
	store := &Store{
		Ratings: []*Rating{
			{UserID: uuid.New(), Value: 1},
			{UserID: userID, Value: 4},
		},
	}

	rating := store.RatingBy(userID)
	assert.NotNil(t, rating)
	assert.Equal(t, 4, rating.Value)

	assert.Nil(t, store.RatingBy(uuid.New()))
}
