// internal/models/common.go
package models

import (
	"time"
)

// Base model with common fields. Records are hard-deleted; there is no
// soft-delete column.
type BaseModel struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// League names used by the seed data and the teams table.
type LeagueCode string

const (
	LeagueNHL LeagueCode = "NHL"
	LeagueNFL LeagueCode = "NFL"
	LeagueNBA LeagueCode = "NBA"
	LeagueMLB LeagueCode = "MLB"
)

// All returns every model managed by AutoMigrate, parents before children.
func All() []interface{} {
	return []interface{}{
		&League{},
		&Team{},
		&User{},
		&Category{},
		&Product{},
		&Tag{},
		&ProductTag{},
		&Review{},
		&Order{},
		&OrderItem{},
	}
}
