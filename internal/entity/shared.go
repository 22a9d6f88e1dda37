package entity

import "strings"

// Role identifies the two account kinds supported by the application.
type Role string

const (
	RoleUnspecified Role = ""
	RoleMaster      Role = "master"
	RoleStudent     Role = "student"
)

// Code returns the lowercase role code (without defaulting).
func (r Role) Code() string {
	return strings.TrimSpace(string(r))
}

// ParseRole converts an arbitrary string into a supported Role value.
func ParseRole(code string) Role {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "master":
		return RoleMaster
	case "student":
		return RoleStudent
	default:
		return RoleUnspecified
	}
}

// Difficulty grades a syllabus topic.
type Difficulty string

const (
	DifficultyUnspecified  Difficulty = ""
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// NormalizeDifficulty ensures the difficulty falls back to a supported value
// (defaults to Intermediate, matching runtime topic creation).
func NormalizeDifficulty(d Difficulty) Difficulty {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return d
	default:
		return DifficultyIntermediate
	}
}

// ParseDifficulty converts an arbitrary string into a supported Difficulty value.
func ParseDifficulty(code string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "beginner":
		return DifficultyBeginner
	case "intermediate":
		return DifficultyIntermediate
	case "advanced":
		return DifficultyAdvanced
	default:
		return DifficultyUnspecified
	}
}
