package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssessmentSession is one respondent's walk through a questionnaire. Answers
// accumulate as a JSON document keyed by question id; the session is the unit
// of authorization (the session token is scoped to exactly one row).
type AssessmentSession struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Identity  string         `gorm:"not null" json:"identity"`
	Track     string         `gorm:"not null;index" json:"track"`
	Status    string         `gorm:"not null;index" json:"status"`
	Answers   datatypes.JSON `gorm:"type:jsonb;column:answers" json:"answers"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AssessmentSession) TableName() string { return "assessment_session" }

const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
)

// AssessmentResult is the immutable scored outcome of a completed session.
// Scores and the full result payload are stored as JSON documents; TypeCode
// is lifted into a column for querying.
type AssessmentResult struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"session_id"`
	Session   *AssessmentSession `gorm:"constraint:OnDelete:CASCADE;foreignKey:SessionID;references:ID" json:"session,omitempty"`
	TypeCode  string             `gorm:"not null;index" json:"type_code"`
	Refined   bool               `gorm:"not null" json:"refined"`
	Scores    datatypes.JSON     `gorm:"type:jsonb;column:scores" json:"scores"`
	Payload   datatypes.JSON     `gorm:"type:jsonb;column:payload" json:"payload"`
	CreatedAt time.Time          `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time          `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt     `gorm:"index" json:"deleted_at,omitempty"`
}

func (AssessmentResult) TableName() string { return "assessment_result" }
