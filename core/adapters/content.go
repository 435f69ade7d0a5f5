package adapters

import (
	"time"

	"datacache/core/entity"
	"datacache/core/jsonapi"
	"datacache/core/models"
)

// ContentAdapter decodes "contents" resources.
type ContentAdapter struct{}

type contentAttributes struct {
	URI                    *string   `mapstructure:"uri" validate:"required"`
	Name                   *string   `mapstructure:"name" validate:"required"`
	Description            string    `mapstructure:"description"`
	DescriptionPlainText   string    `mapstructure:"description_plain_text"`
	ReleasedAt             time.Time `mapstructure:"released_at" validate:"required"`
	Free                   bool      `mapstructure:"free"`
	Professional           bool      `mapstructure:"professional"`
	Difficulty             string    `mapstructure:"difficulty"`
	ContentType            *string   `mapstructure:"content_type" validate:"required"`
	Duration               int       `mapstructure:"duration"`
	Popularity             float64   `mapstructure:"popularity"`
	VideoIdentifier        *int64    `mapstructure:"video_identifier"`
	CardArtworkURL         string    `mapstructure:"card_artwork_url"`
	TechnologyTripleString string    `mapstructure:"technology_triple_string"`
	ContributorString      string    `mapstructure:"contributor_string"`
	Ordinal                int       `mapstructure:"ordinal"`
}

// Process decodes the content. The owning group, if any, is the group whose
// relationship block points at this content.
func (ContentAdapter) Process(res jsonapi.Resource, relationships []entity.Relationship) (models.Content, error) {
	id, err := identify(res, entity.KindContent)
	if err != nil {
		return models.Content{}, err
	}

	var attrs contentAttributes
	if err := decodeAttributes(res, &attrs); err != nil {
		return models.Content{}, err
	}

	content := models.Content{
		ID:                     id.ID,
		URI:                    *attrs.URI,
		Name:                   *attrs.Name,
		DescriptionHTML:        attrs.Description,
		DescriptionPlainText:   attrs.DescriptionPlainText,
		ReleasedAt:             attrs.ReleasedAt,
		Free:                   attrs.Free,
		Professional:           attrs.Professional,
		Difficulty:             attrs.Difficulty,
		ContentType:            *attrs.ContentType,
		Duration:               attrs.Duration,
		Popularity:             attrs.Popularity,
		VideoIdentifier:        attrs.VideoIdentifier,
		CardArtworkURL:         attrs.CardArtworkURL,
		TechnologyTripleString: attrs.TechnologyTripleString,
		ContributorString:      attrs.ContributorString,
		Ordinal:                attrs.Ordinal,
	}

	if rel, ok := entity.FirstTo(relationships, id, entity.KindGroup); ok {
		groupID := rel.From.ID
		content.GroupID = &groupID
	}

	return content, nil
}
