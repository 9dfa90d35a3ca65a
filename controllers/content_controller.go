package controllers

import (
	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/pkg/resp"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/services"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	Service *services.ContentService
}

func NewContentController(service *services.ContentService) *ContentController {
	return &ContentController{Service: service}
}

// GET /content/hero/active
func (cc *ContentController) ActiveHero(c *gin.Context) {
	h, err := cc.Service.ActiveHero()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, h)
}

// GET /content/about/active
func (cc *ContentController) ActiveAbout(c *gin.Context) {
	a, err := cc.Service.ActiveAbout()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, a)
}

// GET /content/contact/active
func (cc *ContentController) ActiveContact(c *gin.Context) {
	ci, err := cc.Service.ActiveContact()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, ci)
}

// GET /content/featured/active
func (cc *ContentController) ActiveFeatured(c *gin.Context) {
	f, err := cc.Service.ActiveFeatured()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, f)
}

// PUT /content/hero (admin) — upsert by id
func (cc *ContentController) SaveHero(c *gin.Context) {
	var h entity.HeroSection
	if err := c.ShouldBindJSON(&h); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Service.SaveHero(&h); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, h)
}

// PUT /content/about (admin)
func (cc *ContentController) SaveAbout(c *gin.Context) {
	var a entity.AboutSection
	if err := c.ShouldBindJSON(&a); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Service.SaveAbout(&a); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, a)
}

// PUT /content/contact (admin)
func (cc *ContentController) SaveContact(c *gin.Context) {
	var ci entity.ContactInfo
	if err := c.ShouldBindJSON(&ci); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Service.SaveContact(&ci); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, ci)
}

// PUT /content/featured (admin)
func (cc *ContentController) SaveFeatured(c *gin.Context) {
	var f entity.FeaturedProduct
	if err := c.ShouldBindJSON(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Service.SaveFeatured(&f); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, f)
}

// GET /site-config
func (cc *ContentController) SiteConfig(c *gin.Context) {
	cfg, err := cc.Service.SiteConfig()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, cfg)
}

type SiteConfigReq struct {
	SiteName     *string `json:"siteName"`
	Logo         *string `json:"logo"`
	PrimaryColor *string `json:"primaryColor"`
	Currency     *string `json:"currency"`
}

// PATCH /site-config (admin) — partial update of the id=1 row
func (cc *ContentController) UpdateSiteConfig(c *gin.Context) {
	var req SiteConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.SiteName != nil {
		updates["site_name"] = *req.SiteName
	}
	if req.Logo != nil {
		updates["logo"] = *req.Logo
	}
	if req.PrimaryColor != nil {
		updates["primary_color"] = *req.PrimaryColor
	}
	if req.Currency != nil {
		updates["currency"] = *req.Currency
	}

	cfg, err := cc.Service.UpdateSiteConfig(updates)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, cfg)
}
