package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSkillLevel = errors.New("domain: unknown skill level")
	ErrUnknownSport      = errors.New("domain: unknown sport")
)

// SkillLevel is one of four fixed labels.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"
)

// Valid reports whether l is one of the declared levels.
func (l SkillLevel) Valid() bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert:
		return true
	}
	return false
}

// ParseSkillLevel converts a raw label into a SkillLevel.
func ParseSkillLevel(raw string) (SkillLevel, error) {
	level := SkillLevel(raw)
	if !level.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSkillLevel, raw)
	}
	return level, nil
}

// Sport is either ski or snowboard.
type Sport string

const (
	SportSki       Sport = "ski"
	SportSnowboard Sport = "snowboard"
)

func (s Sport) Valid() bool {
	return s == SportSki || s == SportSnowboard
}

// ParseSport converts a raw label into a Sport.
func ParseSport(raw string) (Sport, error) {
	sport := Sport(raw)
	if !sport.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSport, raw)
	}
	return sport, nil
}

// SkiSchoolStudent describes a student enrolled in a ski school.
type SkiSchoolStudent struct {
	Name  string
	Age   int
	Sport Sport
	Level SkillLevel
}

// Validate checks that Sport and Level hold declared labels.
func (s SkiSchoolStudent) Validate() error {
	if !s.Sport.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSport, s.Sport)
	}
	if !s.Level.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSkillLevel, s.Level)
	}
	return nil
}
