// internal/models/league.go
package models

type League struct {
	BaseModel
	Name LeagueCode `json:"name" gorm:"type:varchar(10);uniqueIndex;not null"`

	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:LeagueID"`
	Users []User `json:"users,omitempty" gorm:"foreignKey:LeagueID"`
}

// Team rows for every league share one table; LeagueID tells them apart.
type Team struct {
	BaseModel
	LeagueID int64  `json:"league_id" gorm:"not null;index"`
	Name     string `json:"name" gorm:"size:100;not null"`
	City     string `json:"city" gorm:"size:100"`

	League *League `json:"league,omitempty" gorm:"foreignKey:LeagueID"`
}
