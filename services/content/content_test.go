package content

import (
	"errors"
	"net/http"
	"testing"

	contentRepo "islamicdashboard/database/repository/content"
	"islamicdashboard/models"
	"islamicdashboard/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(withSamples bool) *DefaultContentService {
	return NewDefaultContentService(contentRepo.NewMemoryContentRepo(withSamples))
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Status
}

func TestCreateDua_DefaultsAndRoundTrip(t *testing.T) {
	svc := newService(true)
	before := svc.Repo.Duas().Len()

	dua, err := svc.CreateDua(models.CreateDuaRequest{Title: "T", Arabic: "A", Translation: "Tr"})
	require.NoError(t, err)
	assert.Equal(t, before+1, dua.ID)
	assert.Equal(t, models.DefaultCategory, dua.Category)
	assert.Nil(t, dua.AudioURL)
	assert.False(t, dua.CreatedAt.IsZero())

	fetched, err := svc.GetDua(dua.ID)
	require.NoError(t, err)
	assert.Equal(t, dua, fetched)
}

func TestCreateDua_MissingFields(t *testing.T) {
	svc := newService(false)
	_, err := svc.CreateDua(models.CreateDuaRequest{Title: "T", Arabic: "A"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	assert.Equal(t, 0, svc.Repo.Duas().Len())
}

func TestCreateRuqya_DefaultDuration(t *testing.T) {
	svc := newService(false)
	video, err := svc.CreateRuqya(models.CreateRuqyaRequest{Title: "R", Description: "D", VideoURL: "https://v"})
	require.NoError(t, err)
	assert.Equal(t, "00:00", video.Duration)
	assert.Equal(t, 1, video.ID)

	_, err = svc.CreateRuqya(models.CreateRuqyaRequest{Title: "R", Description: "D"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestCreateBook_Validation(t *testing.T) {
	svc := newService(false)
	_, err := svc.CreateBook(models.CreateBookRequest{Title: "B", Author: "A", Description: "D"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	book, err := svc.CreateBook(models.CreateBookRequest{Title: "B", Author: "A", Description: "D", PDFURL: "https://p", Category: "fiqh"})
	require.NoError(t, err)
	assert.Equal(t, "fiqh", book.Category)
	assert.Equal(t, 0, book.Pages)
}

func TestGet_NotFound(t *testing.T) {
	svc := newService(true)
	_, err := svc.GetDua(999)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	_, err = svc.GetRuqya(999)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	_, err = svc.GetBook(999)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestListDuas_FilterAndSearch(t *testing.T) {
	svc := newService(true)

	res := svc.ListDuas(models.ListParams{Category: "morning", Limit: DefaultListLimit})
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Dua for Morning", res.Items[0].Title)

	res = svc.ListDuas(models.ListParams{Search: "SOVEREIGNTY", Limit: DefaultListLimit})
	assert.Equal(t, 2, res.Total)

	res = svc.ListDuas(models.ListParams{Search: "sovereignty", Limit: 1})
	assert.Equal(t, 2, res.Total)
	assert.Len(t, res.Items, 1)
}

func TestListBooks_SearchesAuthor(t *testing.T) {
	svc := newService(true)
	res := svc.ListBooks(models.ListParams{Search: "wahhab", Limit: DefaultListLimit})
	assert.Equal(t, 1, res.Total)

	ruqya := svc.ListRuqya(models.ListParams{Search: "evil eye", Limit: DefaultListLimit})
	assert.Equal(t, 1, ruqya.Total)
}

func TestStats(t *testing.T) {
	svc := newService(true)
	_, err := svc.CreateDua(models.CreateDuaRequest{Title: "T", Arabic: "A", Translation: "Tr", Category: "morning"})
	require.NoError(t, err)

	stats := svc.Stats()
	assert.Equal(t, 3, stats.Duas)
	assert.Equal(t, 1, stats.Ruqya)
	assert.Equal(t, 1, stats.Books)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, []string{"morning", "evening"}, stats.Categories[models.KindDuas])
	assert.Equal(t, []string{"aqeedah"}, stats.Categories[models.KindBooks])
}
