package analysis

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const EntityName = "analysis"

// Analysis is keyed by the sha256 of its content so repeated requests reuse it.
type Analysis struct {
	ID              uuid.UUID           `json:"id" gorm:"type:uuid;primaryKey"`
	ContentHash     string              `json:"content_hash" gorm:"type:varchar(64);uniqueIndex;not null"`
	OriginalContent string              `json:"original_content" gorm:"type:text;not null"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Keywords        []Keyword           `json:"keywords" gorm:"foreignKey:AnalysisID;constraint:OnDelete:CASCADE"`
	Summary         *Summary            `json:"summary,omitempty" gorm:"foreignKey:AnalysisID;constraint:OnDelete:CASCADE"`
	Sentiments      []SentimentAnalysis `json:"sentiment_analyses" gorm:"foreignKey:AnalysisID;constraint:OnDelete:CASCADE"`
}

func (a *Analysis) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return nil
}

func (a *Analysis) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (a *Analysis) TableName() string {
	return "analyses"
}

type Keyword struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AnalysisID uuid.UUID `json:"analysis_id" gorm:"type:uuid;index;not null"`
	Position   int       `json:"position" gorm:"not null"`
	Text       string    `json:"text" gorm:"type:varchar(100);not null"`
	Score      float64   `json:"score" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (k *Keyword) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}

func (k *Keyword) TableName() string {
	return "keywords"
}

type Summary struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AnalysisID uuid.UUID `json:"analysis_id" gorm:"type:uuid;uniqueIndex;not null"`
	Text       string    `json:"text" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s *Summary) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s *Summary) TableName() string {
	return "summaries"
}

type SentimentAnalysis struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AnalysisID    uuid.UUID `json:"analysis_id" gorm:"type:uuid;index;not null"`
	PositiveScore float64   `json:"positive_score" gorm:"not null"`
	NegativeScore float64   `json:"negative_score" gorm:"not null"`
	NeutralScore  float64   `json:"neutral_score" gorm:"not null"`
	CompoundScore float64   `json:"compound_score" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}

func (s *SentimentAnalysis) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s *SentimentAnalysis) TableName() string {
	return "sentiment_analyses"
}
