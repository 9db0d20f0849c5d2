package repositories

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookstore/internal/models"
)

func TestIsUniqueViolation(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:uniq_violation?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Purchase{}))

	first := models.Purchase{ID: "p1", UserID: "u1", BookID: "b1", PurchasePrice: 10, FinalPrice: 10}
	require.NoError(t, db.Create(&first).Error)

	// A second row for the same (user, book) pair lands on the composite
	// unique index; that rejection must classify as a duplicate so a racing
	// insert is reported the same way as the checked path.
	second := models.Purchase{ID: "p2", UserID: "u1", BookID: "b1", PurchasePrice: 10, FinalPrice: 10}
	err = db.Create(&second).Error
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))

	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(gorm.ErrRecordNotFound))
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_purchase_user_book" (SQLSTATE 23505)`)))
}
