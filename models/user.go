package models

import "time"

// Address is a user's postal address.
type Address struct {
	Street   string `bson:"street" json:"street" binding:"required"`
	City     string `bson:"city" json:"city" binding:"required"`
	State    string `bson:"state" json:"state" binding:"required"`
	Postcode string `bson:"postcode" json:"postcode" binding:"required"`
}

// User is an account identity plus profile attributes used for
// authorization and display.
type User struct {
	ID                string    `bson:"id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	Email             string    `bson:"email" json:"email"`
	Phone             string    `bson:"phone" json:"phone"`
	PasswordHash      string    `bson:"passwordHash" json:"-"`
	Age               int       `bson:"age" json:"age"`
	Citizenship       string    `bson:"citizenship" json:"citizenship"`
	PreferredLanguage string    `bson:"preferredLanguage" json:"preferredLanguage"`
	CovidVaccinated   string    `bson:"covidVaccinated" json:"covidVaccinated"` // self-report: "Yes", "No", "Prefer not to say"
	Address           Address   `bson:"address" json:"address"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserRegistration is the signup payload.
type UserRegistration struct {
	Name              string  `json:"name" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	Phone             string  `json:"phone" binding:"required"`
	Password          string  `json:"password" binding:"required,min=8"`
	Age               int     `json:"age" binding:"required"`
	Citizenship       string  `json:"citizenship" binding:"required"`
	PreferredLanguage string  `json:"preferredLanguage" binding:"required"`
	CovidVaccinated   string  `json:"covidVaccinated" binding:"required"`
	Address           Address `json:"address" binding:"required"`
}

// ProfileUpdate carries the editable profile fields. Nil fields are left
// unchanged; email, age and citizenship are fixed at registration.
type ProfileUpdate struct {
	Name              *string  `json:"name,omitempty"`
	Phone             *string  `json:"phone,omitempty"`
	PreferredLanguage *string  `json:"preferredLanguage,omitempty"`
	CovidVaccinated   *string  `json:"covidVaccinated,omitempty"`
	Address           *Address `json:"address,omitempty"`
}

// AuthResponse carries the session token and the public user fields.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
