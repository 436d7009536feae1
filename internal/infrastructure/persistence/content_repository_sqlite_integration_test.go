//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/infrastructure/persistence/models"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
	"github.com/buccusa/buccusa-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramSqliteRepository_CRUD(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	program := CreateTestProgram(t, "Bible Study", true)
	require.NoError(t, ctx.ProgramRepo.Create(bg, program))

	// Verify using GORM model (infrastructure concern)
	var model models.ProgramModel
	require.NoError(t, ctx.DB.First(&model, "id = ?", program.ID).Error)
	assert.Equal(t, program.Title, model.Title)

	fetched, err := ctx.ProgramRepo.GetByID(bg, program.ID)
	require.NoError(t, err)
	assert.Equal(t, program.Title, fetched.Title)
	assert.WithinDuration(t, program.CreatedAt, fetched.CreatedAt, time.Second)

	fetched.Title = "Evening Bible Study"
	fetched.Touch(testNow.Add(time.Hour))
	require.NoError(t, ctx.ProgramRepo.UpdateByID(bg, fetched))

	updated, err := ctx.ProgramRepo.GetByID(bg, program.ID)
	require.NoError(t, err)
	assert.Equal(t, "Evening Bible Study", updated.Title)
	assert.WithinDuration(t, testNow.Add(time.Hour), updated.UpdatedAt, time.Second)

	require.NoError(t, ctx.ProgramRepo.DeleteByID(bg, program.ID))

	_, err = ctx.ProgramRepo.GetByID(bg, program.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProgramSqliteRepository_Create_Invalid(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.ProgramRepo.Create(context.Background(), &content.Program{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestProgramSqliteRepository_DeleteMissing(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.ProgramRepo.DeleteByID(context.Background(), "non-existent-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProgramSqliteRepository_ListFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	require.NoError(t, ctx.ProgramRepo.Create(bg, CreateTestProgram(t, "Choir", true)))
	require.NoError(t, ctx.ProgramRepo.Create(bg, CreateTestProgram(t, "Hidden Draft", false)))
	music := CreateTestProgram(t, "Music Ministry", true)
	music.Category = "music"
	require.NoError(t, ctx.ProgramRepo.Create(bg, music))

	query := entity.NewQuery()
	query.PublicOnly = true
	list, err := ctx.ProgramRepo.List(bg, query)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, p := range list {
		assert.True(t, p.Active)
	}

	query.Category = "music"
	count, err := ctx.ProgramRepo.Count(bg, query)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	query = entity.NewQuery()
	query.Search = "CHOIR"
	list, err = ctx.ProgramRepo.List(bg, query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Choir", list[0].Title)

	query = entity.NewQuery()
	query.SortBy = "title"
	query.SortOrder = entity.SortDesc
	query.Limit = 2
	list, err = ctx.ProgramRepo.List(bg, query)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Music Ministry", list[0].Title)
	assert.Equal(t, "Hidden Draft", list[1].Title)

	total, err := ctx.ProgramRepo.Count(bg, query)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestProgramSqliteRepository_RejectsUnknownSort(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	query := entity.NewQuery()
	query.SortBy = "title; DROP TABLE programs"
	_, err := ctx.ProgramRepo.List(context.Background(), query)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestEventSqliteRepository_Upcoming(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	past := CreateTestEvent(t, "Past", testNow.Add(-48*time.Hour))
	ongoing := CreateTestEvent(t, "Ongoing", testNow.Add(-2*time.Hour))
	end := testNow.Add(2 * time.Hour)
	ongoing.EndsAt = &end
	future := CreateTestEvent(t, "Future", testNow.Add(72*time.Hour))
	for _, e := range []*content.Event{past, ongoing, future} {
		require.NoError(t, ctx.EventRepo.Create(bg, e))
	}

	query := entity.NewQuery()
	query.From = testNow
	list, err := ctx.EventRepo.List(bg, query)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ongoing", list[0].Title)
	assert.Equal(t, "Future", list[1].Title)
}

func TestEventSqliteRepository_DeleteDetachesGallery(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	event := CreateTestEvent(t, "Picnic", testNow)
	require.NoError(t, ctx.EventRepo.Create(bg, event))

	item := &content.GalleryItem{Title: "Photo", ImageURL: "https://example.org/p.jpg", EventID: &event.ID}
	item.Stamp(testNow)
	require.NoError(t, ctx.GalleryRepo.Create(bg, item))

	require.NoError(t, ctx.EventRepo.DeleteByID(bg, event.ID))

	fetched, err := ctx.GalleryRepo.GetByID(bg, item.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.EventID)
}

func TestPostSqliteRepository_SlugUniqueAndLookup(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	post := CreateTestPost(t, "Welcome Back", true)
	require.NoError(t, ctx.PostRepo.Create(bg, post))

	fetched, err := ctx.PostRepo.GetBySlug(bg, "welcome-back")
	require.NoError(t, err)
	assert.Equal(t, post.ID, fetched.ID)
	require.NotNil(t, fetched.PublishedAt)

	duplicate := CreateTestPost(t, "Welcome Back", false)
	err = ctx.PostRepo.Create(bg, duplicate)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = ctx.PostRepo.GetBySlug(bg, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSqliteRepository_ClosedDatabaseIsUnavailable(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	require.NoError(t, CloseDB(ctx.DB))

	_, err := ctx.ProgramRepo.List(context.Background(), entity.NewQuery())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)

	assert.ErrorIs(t, Ping(context.Background(), ctx.DB), apperrors.ErrUnavailable)
}

func TestSqliteRepository_SearchWildcardsMatchLiterally(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	for _, title := range []string{"Youth_Camp", "Youth Camp", "100% Giving", "1000 Giving"} {
		require.NoError(t, ctx.ProgramRepo.Create(bg, CreateTestProgram(t, title, true)))
	}

	for search, want := range map[string]string{"_": "Youth_Camp", "%": "100% Giving"} {
		query := entity.NewQuery()
		query.Search = search
		list, err := ctx.ProgramRepo.List(bg, query)
		require.NoError(t, err)
		require.Len(t, list, 1, "search %q", search)
		assert.Equal(t, want, list[0].Title)
	}
}
