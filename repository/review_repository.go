package repository

import (
	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(rev *entity.Review) error {
	return r.DB.Create(rev).Error
}

// ListVisible returns publicly listable reviews: approved AND visible.
func (r *ReviewRepository) ListVisible() ([]entity.Review, error) {
	var out []entity.Review
	err := r.DB.Preload("User").
		Where("is_approved = ? AND is_visible = ?", true, true).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *ReviewRepository) ListAll() ([]entity.Review, error) {
	var out []entity.Review
	err := r.DB.Preload("User").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) SetVisibility(id uint, visible bool) error {
	return r.DB.Model(&entity.Review{}).
		Where("id = ?", id).
		Update("is_visible", visible).Error
}

func (r *ReviewRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Review{}, id).Error
}

// OrderBelongsToUser reports whether the order exists and is owned by the
// user; used to decide if a review may link to it.
func (r *ReviewRepository) OrderBelongsToUser(orderID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("id = ? AND user_id = ?", orderID, userID).
		Count(&count).Error
	return count > 0, err
}
