package adapters

import (
	"errors"
	"time"

	"datacache/core/entity"
	"datacache/core/jsonapi"
	"datacache/core/models"
)

// ProgressionAdapter decodes "progressions" resources.
type ProgressionAdapter struct{}

type progressionAttributes struct {
	Target          *int      `mapstructure:"target" validate:"required"`
	Progress        *int      `mapstructure:"progress" validate:"required"`
	Finished        bool      `mapstructure:"finished"`
	PercentComplete float64   `mapstructure:"percent_complete"`
	CreatedAt       time.Time `mapstructure:"created_at" validate:"required"`
	UpdatedAt       time.Time `mapstructure:"updated_at" validate:"required"`
}

// Process decodes the progression. Like bookmarks, a progression must carry a
// "content" relationship.
func (ProgressionAdapter) Process(res jsonapi.Resource, relationships []entity.Relationship) (models.Progression, error) {
	id, err := identify(res, entity.KindProgression)
	if err != nil {
		return models.Progression{}, err
	}

	var attrs progressionAttributes
	if err := decodeAttributes(res, &attrs); err != nil {
		return models.Progression{}, err
	}

	rel, ok := entity.FirstFrom(relationships, id, "content", entity.KindContent)
	if !ok {
		return models.Progression{}, newDecodingError(res, "content", errors.New("missing content relationship"))
	}

	return models.Progression{
		ID:              id.ID,
		Target:          *attrs.Target,
		Progress:        *attrs.Progress,
		Finished:        attrs.Finished,
		PercentComplete: attrs.PercentComplete,
		CreatedAt:       attrs.CreatedAt,
		UpdatedAt:       attrs.UpdatedAt,
		ContentID:       rel.To.ID,
	}, nil
}
