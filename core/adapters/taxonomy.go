package adapters

import (
	"datacache/core/entity"
	"datacache/core/jsonapi"
	"datacache/core/models"
)

// DomainAdapter decodes "domains" resources.
type DomainAdapter struct{}

type domainAttributes struct {
	Name        *string `mapstructure:"name" validate:"required"`
	Slug        *string `mapstructure:"slug" validate:"required"`
	Description string  `mapstructure:"description"`
	Level       *string `mapstructure:"level" validate:"required"`
	Ordinal     int     `mapstructure:"ordinal"`
}

func (DomainAdapter) Process(res jsonapi.Resource, _ []entity.Relationship) (models.Domain, error) {
	id, err := identify(res, entity.KindDomain)
	if err != nil {
		return models.Domain{}, err
	}

	var attrs domainAttributes
	if err := decodeAttributes(res, &attrs); err != nil {
		return models.Domain{}, err
	}

	return models.Domain{
		ID:          id.ID,
		Name:        *attrs.Name,
		Slug:        *attrs.Slug,
		Description: attrs.Description,
		Level:       *attrs.Level,
		Ordinal:     attrs.Ordinal,
	}, nil
}

// GroupAdapter decodes "groups" resources.
type GroupAdapter struct{}

type groupAttributes struct {
	Name        *string `mapstructure:"name" validate:"required"`
	Description string  `mapstructure:"description"`
	Ordinal     *int    `mapstructure:"ordinal" validate:"required"`
}

// Process decodes the group. Its parent content is found through an edge from a
// content to this group, which usually comes from the primary data of the document.
func (GroupAdapter) Process(res jsonapi.Resource, relationships []entity.Relationship) (models.Group, error) {
	id, err := identify(res, entity.KindGroup)
	if err != nil {
		return models.Group{}, err
	}

	var attrs groupAttributes
	if err := decodeAttributes(res, &attrs); err != nil {
		return models.Group{}, err
	}

	group := models.Group{
		ID:          id.ID,
		Name:        *attrs.Name,
		Description: attrs.Description,
		Ordinal:     *attrs.Ordinal,
	}
	if rel, ok := entity.FirstTo(relationships, id, entity.KindContent); ok {
		contentID := rel.From.ID
		group.ContentID = &contentID
	}

	return group, nil
}

// CategoryAdapter decodes "categories" resources.
type CategoryAdapter struct{}

type categoryAttributes struct {
	Name    *string `mapstructure:"name" validate:"required"`
	URI     *string `mapstructure:"uri" validate:"required"`
	Ordinal int     `mapstructure:"ordinal"`
}

func (CategoryAdapter) Process(res jsonapi.Resource, _ []entity.Relationship) (models.Category, error) {
	id, err := identify(res, entity.KindCategory)
	if err != nil {
		return models.Category{}, err
	}

	var attrs categoryAttributes
	if err := decodeAttributes(res, &attrs); err != nil {
		return models.Category{}, err
	}

	return models.Category{
		ID:      id.ID,
		Name:    *attrs.Name,
		URI:     *attrs.URI,
		Ordinal: attrs.Ordinal,
	}, nil
}
