package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
	"bookstore/internal/services"
)

func seedCatalog(t *testing.T, svc *services.CatalogService) map[string]string {
	t.Helper()
	ids := make(map[string]string)
	for _, b := range []struct {
		title, author, category string
		price                   float64
	}{
		{"Dune", "Frank Herbert", "Fiction", 20},
		{"A Brief History of Time", "Stephen Hawking", "Science", 15},
		{"Hyperion", "Dan Simmons", "Fiction", 18},
	} {
		id, err := svc.AddBook(nil, b.title, b.author, b.category, b.price, "", "")
		require.NoError(t, err)
		ids[b.title] = id
	}
	return ids
}

func TestCatalogService_AddBookValidation(t *testing.T) {
	svc := services.NewCatalogService(repositories.NewMockBookRepository(), nil)

	_, err := svc.AddBook(nil, "", "Author", "Fiction", 10, "", "")
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.AddBook(nil, "Title", "", "Fiction", 10, "", "")
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.AddBook(nil, "Title", "Author", "Fiction", -1, "", "")
	assert.ErrorIs(t, err, services.ErrValidation)

	// A free book is a valid book.
	_, err = svc.AddBook(nil, "Title", "Author", "Fiction", 0, "", "")
	assert.NoError(t, err)
}

func TestCatalogService_ListAllOrdered(t *testing.T) {
	svc := services.NewCatalogService(repositories.NewMockBookRepository(), nil)
	seedCatalog(t, svc)

	books, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, books, 3)
	// (category, title): Fiction/Dune, Fiction/Hyperion, Science/...
	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, "Hyperion", books[1].Title)
	assert.Equal(t, "A Brief History of Time", books[2].Title)
}

func TestCatalogService_ListByCategory(t *testing.T) {
	svc := services.NewCatalogService(repositories.NewMockBookRepository(), nil)
	seedCatalog(t, svc)

	shelves, err := svc.ListByCategory()
	require.NoError(t, err)
	require.Len(t, shelves, 2)
	assert.Equal(t, "Fiction", shelves[0].Category)
	require.Len(t, shelves[0].Books, 2)
	assert.Equal(t, "Dune", shelves[0].Books[0].Title)
	assert.Equal(t, "Hyperion", shelves[0].Books[1].Title)
	assert.Equal(t, "Science", shelves[1].Category)
	require.Len(t, shelves[1].Books, 1)
}

func TestCatalogService_Search(t *testing.T) {
	svc := services.NewCatalogService(repositories.NewMockBookRepository(), nil)
	seedCatalog(t, svc)

	// Case-insensitive substring over title, author, and category.
	byTitle, err := svc.Search("dUnE")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "Dune", byTitle[0].Title)

	byAuthor, err := svc.Search("hawking")
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)

	byCategory, err := svc.Search("fiction")
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	none, err := svc.Search("zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogService_GetByIDAndContent(t *testing.T) {
	svc := services.NewCatalogService(repositories.NewMockBookRepository(), nil)
	id, err := svc.AddBook(nil, "Dune", "Frank Herbert", "Fiction", 20, "Spice opera", "It began with a dream...")
	require.NoError(t, err)

	book, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "It began with a dream...", book.Content)

	content, err := svc.GetContent(id)
	require.NoError(t, err)
	assert.Equal(t, "Dune", content.Title)
	assert.Equal(t, "It began with a dream...", content.Content)

	_, err = svc.GetByID("no-such-id")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCatalogService_DeleteBook(t *testing.T) {
	repo := repositories.NewMockBookRepository()
	svc := services.NewCatalogService(repo, nil)
	id, err := svc.AddBook(nil, "Dune", "Frank Herbert", "Fiction", 20, "", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBook(nil, id))

	_, err = svc.GetByID(id)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Deleting what is already gone stays quiet.
	assert.NoError(t, svc.DeleteBook(nil, id))
}

func TestCatalogService_AddBookAnnounces(t *testing.T) {
	notificationRepo := newRecordingNotificationRepo()
	notifications := services.NewNotificationService(notificationRepo, nil)
	svc := services.NewCatalogService(repositories.NewMockBookRepository(), notifications)

	actor := "admin-1"
	_, err := svc.AddBook(&actor, "Dune", "Frank Herbert", "Fiction", 20, "", "")
	require.NoError(t, err)

	require.Len(t, notificationRepo.created, 1)
	n := notificationRepo.created[0]
	assert.True(t, n.IsBroadcast)
	assert.Contains(t, n.Message, "Dune")
	require.NotNil(t, n.ActorID)
	assert.Equal(t, "admin-1", *n.ActorID)
}

// recordingNotificationRepo captures created notifications for assertions.
type recordingNotificationRepo struct {
	created []models.Notification
}

func newRecordingNotificationRepo() *recordingNotificationRepo {
	return &recordingNotificationRepo{}
}

func (r *recordingNotificationRepo) Create(n *models.Notification) error {
	r.created = append(r.created, *n)
	return nil
}

func (r *recordingNotificationRepo) VisibleTo(userID string, limit int) ([]models.NotificationView, error) {
	var views []models.NotificationView
	for i := len(r.created) - 1; i >= 0 && len(views) < limit; i-- {
		n := r.created[i]
		if n.IsBroadcast || (n.TargetUserID != nil && *n.TargetUserID == userID) {
			views = append(views, models.NotificationView{
				ID:           n.ID,
				ActorID:      n.ActorID,
				Message:      n.Message,
				IsBroadcast:  n.IsBroadcast,
				TargetUserID: n.TargetUserID,
				CreatedAt:    n.CreatedAt,
			})
		}
	}
	return views, nil
}
