package services

import (
	"errors"

	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/repository"

	"gorm.io/gorm"
)

// ContentService serves the editorial singletons (hero/about/contact/
// featured) and the id=1 SiteConfig.
type ContentService struct {
	Repo *repository.ContentRepository
}

func NewContentService(repo *repository.ContentRepository) *ContentService {
	return &ContentService{Repo: repo}
}

func (s *ContentService) ActiveHero() (*entity.HeroSection, error) {
	return notFoundWrap(s.Repo.ActiveHero())
}

func (s *ContentService) ActiveAbout() (*entity.AboutSection, error) {
	return notFoundWrap(s.Repo.ActiveAbout())
}

func (s *ContentService) ActiveContact() (*entity.ContactInfo, error) {
	return notFoundWrap(s.Repo.ActiveContact())
}

func (s *ContentService) ActiveFeatured() (*entity.FeaturedProduct, error) {
	return notFoundWrap(s.Repo.ActiveFeatured())
}

func (s *ContentService) SaveHero(h *entity.HeroSection) error {
	return s.Repo.SaveHero(h)
}

func (s *ContentService) SaveAbout(a *entity.AboutSection) error {
	return s.Repo.SaveAbout(a)
}

func (s *ContentService) SaveContact(c *entity.ContactInfo) error {
	return s.Repo.SaveContact(c)
}

func (s *ContentService) SaveFeatured(f *entity.FeaturedProduct) error {
	return s.Repo.SaveFeatured(f)
}

func (s *ContentService) SiteConfig() (*entity.SiteConfig, error) {
	return s.Repo.GetOrCreateSiteConfig()
}

func (s *ContentService) UpdateSiteConfig(updates map[string]any) (*entity.SiteConfig, error) {
	if _, err := s.Repo.GetOrCreateSiteConfig(); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateSiteConfig(updates); err != nil {
		return nil, err
	}
	return s.Repo.GetOrCreateSiteConfig()
}

func notFoundWrap[T any](v *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}
