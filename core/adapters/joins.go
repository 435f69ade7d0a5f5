package adapters

import (
	"datacache/core/entity"
	"datacache/core/models"
)

// ContentCategoryAdapter derives content-category associations from "categories"
// edges declared by contents.
type ContentCategoryAdapter struct{}

func (ContentCategoryAdapter) Process(relationships []entity.Relationship) []models.ContentCategory {
	joins := []models.ContentCategory{}
	for _, rel := range relationships {
		if rel.Name == "categories" && rel.From.Is(entity.KindContent) && rel.To.Is(entity.KindCategory) {
			joins = append(joins, models.ContentCategory{ContentID: rel.From.ID, CategoryID: rel.To.ID})
		}
	}
	return joins
}

// ContentDomainAdapter derives content-domain associations from "domains" edges
// declared by contents.
type ContentDomainAdapter struct{}

func (ContentDomainAdapter) Process(relationships []entity.Relationship) []models.ContentDomain {
	joins := []models.ContentDomain{}
	for _, rel := range relationships {
		if rel.Name == "domains" && rel.From.Is(entity.KindContent) && rel.To.Is(entity.KindDomain) {
			joins = append(joins, models.ContentDomain{ContentID: rel.From.ID, DomainID: rel.To.ID})
		}
	}
	return joins
}
