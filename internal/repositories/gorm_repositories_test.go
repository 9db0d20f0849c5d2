package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// openTestDB opens a private in-memory SQLite database and migrates the
// schema. Each test gets its own database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.CategoryDiscount{},
		&models.Purchase{},
		&models.Review{},
		&models.Notification{},
	))
	return db
}

func TestGORMUserRepository_BanRules(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMUserRepository(db)

	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x", Role: models.RoleUser}
	admin := &models.User{Username: "root", Email: "root@example.com", PasswordHash: "x", Role: models.RoleAdmin}
	require.NoError(t, repo.Create(user))
	require.NoError(t, repo.Create(admin))

	require.NoError(t, repo.SetBanned(user.ID, true))
	got, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.True(t, got.IsBanned)

	require.NoError(t, repo.SetBanned(user.ID, false))
	got, err = repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.False(t, got.IsBanned)

	// Admin rows and unknown ids both read as not-found.
	assert.ErrorIs(t, repo.SetBanned(admin.ID, true), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.SetBanned("no-such-id", true), gorm.ErrRecordNotFound)

	got, err = repo.GetByID(admin.ID)
	require.NoError(t, err)
	assert.False(t, got.IsBanned)
}

func TestGORMUserRepository_ListRegularExcludesAdmins(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMUserRepository(db)

	require.NoError(t, repo.Create(&models.User{Username: "carol", Email: "c@example.com", PasswordHash: "x"}))
	require.NoError(t, repo.Create(&models.User{Username: "alice", Email: "a@example.com", PasswordHash: "x"}))
	require.NoError(t, repo.Create(&models.User{Username: "root", Email: "r@example.com", PasswordHash: "x", Role: models.RoleAdmin}))

	users, err := repo.ListRegular()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "carol", users[1].Username)
}

func TestGORMUserRepository_UniqueConstraints(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMUserRepository(db)

	require.NoError(t, repo.Create(&models.User{Username: "alice", Email: "a@example.com", PasswordHash: "x"}))
	assert.Error(t, repo.Create(&models.User{Username: "alice", Email: "other@example.com", PasswordHash: "x"}))
	assert.Error(t, repo.Create(&models.User{Username: "other", Email: "a@example.com", PasswordHash: "x"}))
}

func TestGORMPurchaseRepository_CreateUnique(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMPurchaseRepository(db)

	first := &models.Purchase{UserID: "u1", BookID: "b1", PurchasePrice: 20, DiscountApplied: 5, FinalPrice: 15, PurchaseDate: time.Now()}
	require.NoError(t, repo.CreateUnique(first))

	dup := &models.Purchase{UserID: "u1", BookID: "b1", PurchasePrice: 20, FinalPrice: 20, PurchaseDate: time.Now()}
	assert.ErrorIs(t, repo.CreateUnique(dup), repositories.ErrDuplicatePurchase)

	var count int64
	require.NoError(t, db.Model(&models.Purchase{}).Where("user_id = ? AND book_id = ?", "u1", "b1").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Same book, different user is fine; same user, different book too.
	assert.NoError(t, repo.CreateUnique(&models.Purchase{UserID: "u2", BookID: "b1", PurchasePrice: 20, FinalPrice: 20, PurchaseDate: time.Now()}))
	assert.NoError(t, repo.CreateUnique(&models.Purchase{UserID: "u1", BookID: "b2", PurchasePrice: 20, FinalPrice: 20, PurchaseDate: time.Now()}))
}

func TestGORMPurchaseRepository_History(t *testing.T) {
	db := openTestDB(t)
	bookRepo := repositories.NewGORMBookRepository(db)
	repo := repositories.NewGORMPurchaseRepository(db)

	dune := &models.Book{Title: "Dune", Author: "Frank Herbert", Category: "Fiction", Price: 20}
	sicp := &models.Book{Title: "SICP", Author: "Abelson", Category: "Programming", Price: 50}
	require.NoError(t, bookRepo.Create(dune))
	require.NoError(t, bookRepo.Create(sicp))

	older := time.Now().Add(-time.Hour)
	require.NoError(t, repo.CreateUnique(&models.Purchase{UserID: "u1", BookID: dune.ID, PurchasePrice: 20, FinalPrice: 20, PurchaseDate: older}))
	require.NoError(t, repo.CreateUnique(&models.Purchase{UserID: "u1", BookID: sicp.ID, PurchasePrice: 50, FinalPrice: 50, PurchaseDate: time.Now()}))

	records, err := repo.HistoryByUser("u1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Newest first, joined with book fields.
	assert.Equal(t, "SICP", records[0].Title)
	assert.Equal(t, "Programming", records[0].Category)
	assert.Equal(t, "Dune", records[1].Title)
	assert.Equal(t, "Frank Herbert", records[1].Author)
}

func TestGORMBookRepository_DeleteKeepsLedger(t *testing.T) {
	db := openTestDB(t)
	bookRepo := repositories.NewGORMBookRepository(db)
	purchaseRepo := repositories.NewGORMPurchaseRepository(db)

	book := &models.Book{Title: "Dune", Author: "Frank Herbert", Category: "Fiction", Price: 20}
	require.NoError(t, bookRepo.Create(book))
	require.NoError(t, purchaseRepo.CreateUnique(&models.Purchase{UserID: "u1", BookID: book.ID, PurchasePrice: 20, FinalPrice: 20, PurchaseDate: time.Now()}))

	require.NoError(t, bookRepo.Delete(book.ID))

	_, err := bookRepo.GetByID(book.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The ledger row survives the catalog deletion.
	var count int64
	require.NoError(t, db.Model(&models.Purchase{}).Where("book_id = ?", book.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Deleting again is a no-op.
	assert.NoError(t, bookRepo.Delete(book.ID))
}

func TestGORMBookRepository_SearchAndGrouping(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMBookRepository(db)

	require.NoError(t, repo.Create(&models.Book{Title: "Hyperion", Author: "Dan Simmons", Category: "Fiction", Price: 18}))
	require.NoError(t, repo.Create(&models.Book{Title: "Dune", Author: "Frank Herbert", Category: "Fiction", Price: 20}))
	require.NoError(t, repo.Create(&models.Book{Title: "Cosmos", Author: "Carl Sagan", Category: "Science", Price: 15}))

	found, err := repo.Search("SAGAN")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Cosmos", found[0].Title)

	groups, err := repo.GroupedByCategory()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Fiction", groups[0].Category)
	require.Len(t, groups[0].Books, 2)
	assert.Equal(t, "Dune", groups[0].Books[0].Title)
	assert.Equal(t, "Hyperion", groups[0].Books[1].Title)
	assert.Equal(t, "Science", groups[1].Category)
}

func TestGORMDiscountRepository_Upsert(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMDiscountRepository(db)

	require.NoError(t, repo.Upsert("Fiction", 25))
	require.NoError(t, repo.Upsert("Fiction", 40))

	var count int64
	require.NoError(t, db.Model(&models.CategoryDiscount{}).Where("category = ?", "Fiction").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	pct, err := repo.Get("Fiction")
	require.NoError(t, err)
	assert.Equal(t, 40.0, pct)

	pct, err = repo.Get("Nonexistent")
	require.NoError(t, err)
	assert.Equal(t, 0.0, pct)

	assert.NoError(t, repo.Delete("Fiction"))
	assert.NoError(t, repo.Delete("Fiction"))
}

func TestGORMReviewRepository_ForBookJoinsUsername(t *testing.T) {
	db := openTestDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)

	user := &models.User{Username: "alice", Email: "a@example.com", PasswordHash: "x"}
	require.NoError(t, userRepo.Create(user))

	rating := 4
	require.NoError(t, reviewRepo.Create(&models.Review{UserID: user.ID, BookID: "b1", Rating: &rating, ReviewText: "Good read."}))
	require.NoError(t, reviewRepo.Create(&models.Review{UserID: user.ID, BookID: "b1", ReviewText: "Second thoughts."}))

	reviews, err := reviewRepo.ForBook("b1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "alice", reviews[0].Username)
	assert.Equal(t, "alice", reviews[1].Username)
}

func TestGORMNotificationRepository_VisibleTo(t *testing.T) {
	db := openTestDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	repo := repositories.NewGORMNotificationRepository(db)

	admin := &models.User{Username: "root", Email: "r@example.com", PasswordHash: "x", Role: models.RoleAdmin}
	require.NoError(t, userRepo.Create(admin))

	target := "u7"
	require.NoError(t, repo.Create(&models.Notification{ActorID: &admin.ID, Message: "sale", IsBroadcast: true}))
	require.NoError(t, repo.Create(&models.Notification{Message: "system maintenance", IsBroadcast: true}))
	require.NoError(t, repo.Create(&models.Notification{ActorID: &admin.ID, Message: "for you", IsBroadcast: false, TargetUserID: &target}))

	forTarget, err := repo.VisibleTo("u7", 10)
	require.NoError(t, err)
	assert.Len(t, forTarget, 3)

	forOther, err := repo.VisibleTo("u9", 10)
	require.NoError(t, err)
	assert.Len(t, forOther, 2)

	// The actor join is optional: system entries come back with an
	// empty actor username.
	for _, n := range forOther {
		if n.ActorID == nil {
			assert.Empty(t, n.ActorUsername)
		} else {
			assert.Equal(t, "root", n.ActorUsername)
		}
	}

	limited, err := repo.VisibleTo("u7", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestGORMNotificationRepository_TargetedStaysTargeted(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMNotificationRepository(db)

	target := "u7"
	created := &models.Notification{Message: "your order shipped", IsBroadcast: false, TargetUserID: &target}
	require.NoError(t, repo.Create(created))

	// The false flag must survive the insert as-is; a column default must
	// never flip a targeted entry into a broadcast.
	var stored models.Notification
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.False(t, stored.IsBroadcast)
	require.NotNil(t, stored.TargetUserID)
	assert.Equal(t, "u7", *stored.TargetUserID)

	forOther, err := repo.VisibleTo("u9", 10)
	require.NoError(t, err)
	assert.Empty(t, forOther)

	forTarget, err := repo.VisibleTo("u7", 10)
	require.NoError(t, err)
	require.Len(t, forTarget, 1)
	assert.Equal(t, "your order shipped", forTarget[0].Message)
}
