package services

import (
	"errors"

	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	Repo *repository.ReviewRepository
}

func NewReviewService(repo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{Repo: repo}
}

// Create stores a review for the authenticated user, auto-approved. The
// order link is only kept when the order belongs to the author; a foreign
// or unknown order id is silently dropped, not rejected.
func (s *ReviewService) Create(userID uint, rating int, comment string, orderID uint) (*entity.Review, error) {
	rev := &entity.Review{
		Rating:     rating,
		Comment:    comment,
		IsApproved: true,
		IsVisible:  true,
		UserID:     userID,
	}

	if orderID != 0 {
		owned, err := s.Repo.OrderBelongsToUser(orderID, userID)
		if err != nil {
			return nil, err
		}
		if owned {
			id := orderID
			rev.OrderID = &id
		}
	}

	if err := s.Repo.Create(rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// List returns the public listing (approved AND visible). Staff callers
// asking for includeAll get everything.
func (s *ReviewService) List(includeAll, isStaff bool) ([]entity.Review, error) {
	if includeAll && isStaff {
		return s.Repo.ListAll()
	}
	return s.Repo.ListVisible()
}

func (s *ReviewService) SetVisibility(id uint, visible bool) (*entity.Review, error) {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.Repo.SetVisibility(id, visible); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

func (s *ReviewService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.Delete(id)
}
