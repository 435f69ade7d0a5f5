package models

import (
	"time"

	"datacache/core/entity"
)

// Content is a course, screencast, article or collection episode.
type Content struct {
	ID                     int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	URI                    string    `gorm:"column:uri;type:varchar(255)" json:"uri"`
	Name                   string    `gorm:"column:name;type:varchar(255)" json:"name"`
	DescriptionHTML        string    `gorm:"column:description_html;type:text" json:"description_html"`
	DescriptionPlainText   string    `gorm:"column:description_plain_text;type:text" json:"description_plain_text"`
	ReleasedAt             time.Time `gorm:"column:released_at" json:"released_at"`
	Free                   bool      `gorm:"column:free" json:"free"`
	Professional           bool      `gorm:"column:professional" json:"professional"`
	Difficulty             string    `gorm:"column:difficulty;type:varchar(32)" json:"difficulty"`
	ContentType            string    `gorm:"column:content_type;type:varchar(32)" json:"content_type"`
	Duration               int       `gorm:"column:duration" json:"duration"`
	Popularity             float64   `gorm:"column:popularity" json:"popularity"`
	VideoIdentifier        *int64    `gorm:"column:video_identifier" json:"video_identifier,omitempty"`
	CardArtworkURL         string    `gorm:"column:card_artwork_url;type:varchar(512)" json:"card_artwork_url"`
	TechnologyTripleString string    `gorm:"column:technology_triple_string;type:varchar(255)" json:"technology_triple_string"`
	ContributorString      string    `gorm:"column:contributor_string;type:varchar(255)" json:"contributor_string"`
	Ordinal                int       `gorm:"column:ordinal" json:"ordinal"`
	GroupID                *int64    `gorm:"column:group_id;index" json:"group_id,omitempty"`
}

func (Content) TableName() string { return "contents" }

// Identity returns the entity identity of the content.
func (c Content) Identity() entity.Identity {
	return entity.NewIdentity(entity.KindContent, c.ID)
}

// Bookmark marks a content as saved by the user.
type Bookmark struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime:false" json:"created_at"`
	ContentID int64     `gorm:"column:content_id;index" json:"content_id"`
}

func (Bookmark) TableName() string { return "bookmarks" }

func (b Bookmark) Identity() entity.Identity {
	return entity.NewIdentity(entity.KindBookmark, b.ID)
}

// Progression tracks how far the user got through a content.
type Progression struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Target          int       `gorm:"column:target" json:"target"`
	Progress        int       `gorm:"column:progress" json:"progress"`
	Finished        bool      `gorm:"column:finished" json:"finished"`
	PercentComplete float64   `gorm:"column:percent_complete" json:"percent_complete"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime:false" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updated_at"`
	ContentID       int64     `gorm:"column:content_id;index" json:"content_id"`
}

func (Progression) TableName() string { return "progressions" }

func (p Progression) Identity() entity.Identity {
	return entity.NewIdentity(entity.KindProgression, p.ID)
}

// Domain is a platform or technology area (e.g. iOS, Android).
type Domain struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name        string `gorm:"column:name;type:varchar(255)" json:"name"`
	Slug        string `gorm:"column:slug;type:varchar(255)" json:"slug"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Level       string `gorm:"column:level;type:varchar(32)" json:"level"`
	Ordinal     int    `gorm:"column:ordinal" json:"ordinal"`
}

func (Domain) TableName() string { return "domains" }

func (d Domain) Identity() entity.Identity {
	return entity.NewIdentity(entity.KindDomain, d.ID)
}

// Group is a section of a collection content.
type Group struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name        string `gorm:"column:name;type:varchar(255)" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Ordinal     int    `gorm:"column:ordinal" json:"ordinal"`
	ContentID   *int64 `gorm:"column:content_id;index" json:"content_id,omitempty"`
}

func (Group) TableName() string { return "groups" }

func (g Group) Identity() entity.Identity {
	return entity.NewIdentity(entity.KindGroup, g.ID)
}

// Category is a topic used to classify contents.
type Category struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name    string `gorm:"column:name;type:varchar(255)" json:"name"`
	URI     string `gorm:"column:uri;type:varchar(255)" json:"uri"`
	Ordinal int    `gorm:"column:ordinal" json:"ordinal"`
}

func (Category) TableName() string { return "categories" }

func (c Category) Identity() entity.Identity {
	return entity.NewIdentity(entity.KindCategory, c.ID)
}

// ContentCategory associates a content with a category.
type ContentCategory struct {
	ContentID  int64 `gorm:"column:content_id;primaryKey;autoIncrement:false" json:"content_id"`
	CategoryID int64 `gorm:"column:category_id;primaryKey;autoIncrement:false" json:"category_id"`
}

func (ContentCategory) TableName() string { return "content_categories" }

// ContentDomain associates a content with a domain.
type ContentDomain struct {
	ContentID int64 `gorm:"column:content_id;primaryKey;autoIncrement:false" json:"content_id"`
	DomainID  int64 `gorm:"column:domain_id;primaryKey;autoIncrement:false" json:"domain_id"`
}

func (ContentDomain) TableName() string { return "content_domains" }

// Relationship is the stored form of an entity.Relationship.
type Relationship struct {
	Name     string `gorm:"column:name;primaryKey;type:varchar(64)"`
	FromKind string `gorm:"column:from_kind;primaryKey;type:varchar(32)"`
	FromID   int64  `gorm:"column:from_id;primaryKey;autoIncrement:false"`
	ToKind   string `gorm:"column:to_kind;primaryKey;type:varchar(32)"`
	ToID     int64  `gorm:"column:to_id;primaryKey;autoIncrement:false"`
}

func (Relationship) TableName() string { return "entity_relationships" }

// NewRelationship converts an edge into its stored form.
func NewRelationship(rel entity.Relationship) Relationship {
	return Relationship{
		Name:     rel.Name,
		FromKind: string(rel.From.Kind),
		FromID:   rel.From.ID,
		ToKind:   string(rel.To.Kind),
		ToID:     rel.To.ID,
	}
}

// Edge converts the stored form back into an edge.
func (r Relationship) Edge() entity.Relationship {
	return entity.Relationship{
		Name: r.Name,
		From: entity.NewIdentity(entity.Kind(r.FromKind), r.FromID),
		To:   entity.NewIdentity(entity.Kind(r.ToKind), r.ToID),
	}
}

// All lists every model managed by the cache schema, in migration order.
func All() []any {
	return []any{
		&Content{},
		&Bookmark{},
		&Progression{},
		&Domain{},
		&Group{},
		&Category{},
		&ContentCategory{},
		&ContentDomain{},
		&Relationship{},
	}
}
