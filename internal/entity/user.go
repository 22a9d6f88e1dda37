package entity

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ProfileAnalytics is the master-curated study profile attached to every user.
// It is stored as a JSON document and decoded with encoding/json only.
type ProfileAnalytics struct {
	Goals            []string   `json:"goals"`
	Achievements     []string   `json:"achievements"`
	StudyNotes       string     `json:"study_notes"`
	StudySchedule    string     `json:"study_schedule"`
	MotivationLevel  int        `json:"motivation_level"`
	RemindersEnabled bool       `json:"reminders_enabled"`
	PriorityStudent  bool       `json:"priority_student"`
	LastUpdatedBy    string     `json:"last_updated_by,omitempty"`
	LastUpdatedAt    *time.Time `json:"last_updated_at,omitempty"`
}

// NewProfileAnalytics returns the zeroed profile assigned at registration.
func NewProfileAnalytics() ProfileAnalytics {
	return ProfileAnalytics{
		Goals:           []string{},
		Achievements:    []string{},
		MotivationLevel: 5,
	}
}

// Normalize ensures slice fields are non-nil before persistence.
func (pa *ProfileAnalytics) Normalize() {
	if pa.Goals == nil {
		pa.Goals = []string{}
	}
	if pa.Achievements == nil {
		pa.Achievements = []string{}
	}
}

// User represents a master or student account.
type User struct {
	ID           string           `json:"unique_id"`
	Role         Role             `json:"role"`
	PasswordHash []byte           `json:"-"`
	FirstName    string           `json:"first_name,omitempty"`
	LastName     string           `json:"last_name,omitempty"`
	DateOfBirth  string           `json:"date_of_birth,omitempty"`
	Synced       bool             `json:"github_synced"`
	CreatedAt    time.Time        `json:"created_at"`
	Analytics    ProfileAnalytics `json:"analytics"`
}

// SetPassword hashes pwd with a fresh salt and stores the digest.
// An empty password leaves the account passwordless.
func (u *User) SetPassword(pwd string) error {
	if pwd == "" {
		u.PasswordHash = nil
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// CheckPassword verifies pwd against the stored digest in constant time.
func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}
