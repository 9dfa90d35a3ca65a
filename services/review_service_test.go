package services

import (
	"testing"
	"time"

	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(repository.NewReviewRepository(db))
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := entity.User{Email: email, Password: "x", Role: "customer"}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func TestCreateReviewAutoApproves(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService(db)
	u := seedUser(t, db, "reviewer@example.com")

	rev, err := svc.Create(u.ID, 5, "Excelente", 0)
	require.NoError(t, err)

	assert.True(t, rev.IsApproved)
	assert.True(t, rev.IsVisible)
	assert.Equal(t, u.ID, rev.UserID)
	assert.Nil(t, rev.OrderID)
}

func TestCreateReviewKeepsOwnOrderLink(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService(db)
	u := seedUser(t, db, "buyer@example.com")

	o := seedOrderAt(t, db, time.Now(), entity.OrderStatusDelivered, 10, u.Email, "")
	require.NoError(t, db.Model(o).Update("user_id", u.ID).Error)

	rev, err := svc.Create(u.ID, 4, "Rico", o.ID)
	require.NoError(t, err)
	require.NotNil(t, rev.OrderID)
	assert.Equal(t, o.ID, *rev.OrderID)
}

func TestCreateReviewDropsForeignOrderLink(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService(db)
	author := seedUser(t, db, "author@example.com")
	other := seedUser(t, db, "other@example.com")

	o := seedOrderAt(t, db, time.Now(), entity.OrderStatusDelivered, 10, other.Email, "")
	require.NoError(t, db.Model(o).Update("user_id", other.ID).Error)

	// the review is still created; only the link is dropped
	rev, err := svc.Create(author.ID, 3, "Normal", o.ID)
	require.NoError(t, err)
	assert.Nil(t, rev.OrderID)

	rev, err = svc.Create(author.ID, 3, "Normal", 9999)
	require.NoError(t, err)
	assert.Nil(t, rev.OrderID)
}

func TestListReviewsFiltersVisibility(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService(db)
	u := seedUser(t, db, "reviewer@example.com")

	shown, err := svc.Create(u.ID, 5, "Visible", 0)
	require.NoError(t, err)
	hidden, err := svc.Create(u.ID, 1, "Oculta", 0)
	require.NoError(t, err)
	_, err = svc.SetVisibility(hidden.ID, false)
	require.NoError(t, err)

	public, err := svc.List(false, false)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, shown.ID, public[0].ID)

	// includeAll only honored for staff
	public, err = svc.List(true, false)
	require.NoError(t, err)
	assert.Len(t, public, 1)

	all, err := svc.List(true, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSetVisibilityUnknownReview(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService(db)

	_, err := svc.SetVisibility(404, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReview(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService(db)
	u := seedUser(t, db, "reviewer@example.com")

	rev, err := svc.Create(u.ID, 2, "Se borra", 0)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(rev.ID))
	assert.ErrorIs(t, svc.Delete(rev.ID), ErrNotFound)

	public, err := svc.List(false, false)
	require.NoError(t, err)
	assert.Empty(t, public)
}
