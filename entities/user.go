package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered meal-prep user.
type User struct {
	ID                string     `gorm:"type:text;primaryKey" json:"id"`
	Name              string     `gorm:"not null" json:"name"`
	Email             string     `gorm:"unique;not null" json:"email"`
	PasswordHash      string     `gorm:"not null" json:"-"`
	DietaryPreference string     `json:"dietary_preference"`
	Allergies         StringList `gorm:"type:jsonb" json:"allergies"`
	NutritionalGoal   string     `json:"nutritional_goal"`
	PreferredCuisine  string     `json:"preferred_cuisine"`
	CreatedAt         string     `json:"date"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New().String()
	u.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if u.DietaryPreference == "" {
		u.DietaryPreference = "omnivore"
	}
	if u.NutritionalGoal == "" {
		u.NutritionalGoal = "maintenance"
	}
	if u.PreferredCuisine == "" {
		u.PreferredCuisine = "any"
	}
	if u.Allergies == nil {
		u.Allergies = StringList{}
	}
	return
}

// PublicUser is the user shape returned to clients. It never carries the
// password hash.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
