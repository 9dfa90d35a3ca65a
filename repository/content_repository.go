package repository

import (
	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"

	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

// Active* lookups take the first active record (singleton by convention).

func (r *ContentRepository) ActiveHero() (*entity.HeroSection, error) {
	var h entity.HeroSection
	if err := r.DB.Where("is_active = ?", true).First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *ContentRepository) ActiveAbout() (*entity.AboutSection, error) {
	var a entity.AboutSection
	if err := r.DB.Where("is_active = ?", true).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ContentRepository) ActiveContact() (*entity.ContactInfo, error) {
	var c entity.ContactInfo
	if err := r.DB.Where("is_active = ?", true).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContentRepository) ActiveFeatured() (*entity.FeaturedProduct, error) {
	var f entity.FeaturedProduct
	if err := r.DB.Preload("Product").Where("is_active = ?", true).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *ContentRepository) SaveHero(h *entity.HeroSection) error {
	return r.DB.Save(h).Error
}

func (r *ContentRepository) SaveAbout(a *entity.AboutSection) error {
	return r.DB.Save(a).Error
}

func (r *ContentRepository) SaveContact(c *entity.ContactInfo) error {
	return r.DB.Save(c).Error
}

func (r *ContentRepository) SaveFeatured(f *entity.FeaturedProduct) error {
	return r.DB.Save(f).Error
}

// SiteConfig is keyed to id=1; reads create the row when missing.
func (r *ContentRepository) GetOrCreateSiteConfig() (*entity.SiteConfig, error) {
	var cfg entity.SiteConfig
	err := r.DB.Where(entity.SiteConfig{Model: gorm.Model{ID: 1}}).
		FirstOrCreate(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *ContentRepository) UpdateSiteConfig(updates map[string]any) error {
	return r.DB.Model(&entity.SiteConfig{}).Where("id = ?", 1).Updates(updates).Error
}
