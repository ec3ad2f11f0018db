package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salintempel/dto"
	"salintempel/internal/repository/memory"
)

var ctx = context.Background()

func TestCreateSalinTempelCreatesUnknownTags(t *testing.T) {
	posts := memory.NewSalinTempelRepo()
	tags := memory.NewTagRepo()

	st, err := CreateSalinTempel(ctx, posts, tags, dto.CreateSalinTempelDTO{
		Title:   "t",
		Content: "c",
		Tags:    []string{"x", "y"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, st.Tags)
	assert.Equal(t, 0, st.TotalLikes)
	assert.Equal(t, []string{}, st.LikesBy)
	assert.False(t, st.ID.IsZero())
	assert.False(t, st.CreatedAt.IsZero())

	names, err := tags.Names(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"x", "y"}, names)
}

func TestCreateSalinTempelSkipsKnownTags(t *testing.T) {
	posts := memory.NewSalinTempelRepo()
	tags := memory.NewTagRepo()
	require.NoError(t, tags.InsertMany(ctx, []string{"x"}))

	_, err := CreateSalinTempel(ctx, posts, tags, dto.CreateSalinTempelDTO{
		Title:   "t",
		Content: "c",
		Tags:    []string{"x", "y", "y"},
	})
	require.NoError(t, err)

	names, err := tags.Names(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"x", "y"}, names, "only missing names are inserted, once")
}

func TestCreateSalinTempelNilTags(t *testing.T) {
	posts := memory.NewSalinTempelRepo()
	tags := memory.NewTagRepo()

	st, err := CreateSalinTempel(ctx, posts, tags, dto.CreateSalinTempelDTO{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{}, st.Tags)
}

func TestValidateSalinTempelPermissiveByDefault(t *testing.T) {
	t.Setenv("STRICT_VALIDATION", "")
	assert.Nil(t, ValidateSalinTempel(dto.CreateSalinTempelDTO{}))
}

func TestValidateSalinTempelStrict(t *testing.T) {
	t.Setenv("STRICT_VALIDATION", "true")

	errs := ValidateSalinTempel(dto.CreateSalinTempelDTO{})
	assert.Equal(t, []string{"Title is required.", "Content is required."}, errs)

	errs = ValidateSalinTempel(dto.CreateSalinTempelDTO{Title: "t"})
	assert.Equal(t, []string{"Content is required."}, errs)

	assert.Nil(t, ValidateSalinTempel(dto.CreateSalinTempelDTO{Title: "t", Content: "c"}))
}
