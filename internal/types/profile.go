package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ArtisanProfile is the craftsperson's identity and specialization record
// driving all downstream generation.
type ArtisanProfile struct {
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	Specialization  CraftType `json:"specialization"`
	ExperienceYears int       `json:"experience_years"`
	SignatureStyle  string    `json:"signature_style"`
	TargetAudience  string    `json:"target_audience"`
	Platforms       []string  `json:"social_media_platforms"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProfileConfig carries the fully named inputs for profile creation. Defaults
// are resolved at construction time rather than via runtime presence checks.
type ProfileConfig struct {
	Name            string   `json:"name" validate:"required"`
	Location        string   `json:"location" validate:"required"`
	Specialization  string   `json:"specialization" validate:"required"`
	ExperienceYears int      `json:"experience_years" validate:"min=0,max=80"`
	SignatureStyle  string   `json:"signature_style"`
	TargetAudience  string   `json:"target_audience"`
	Platforms       []string `json:"social_media_platforms" validate:"required,min=1"`
}

var profileValidate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the creation config against the profile constraints
// (experience within 0-80, at least one target platform).
func (c ProfileConfig) Validate() error {
	return profileValidate.Struct(c)
}

// NewArtisanProfile builds a profile from a validated config, resolving
// defaults and stamping the creation time at second precision so the snapshot
// round-trip is exact.
func NewArtisanProfile(cfg ProfileConfig) (*ArtisanProfile, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	style := cfg.SignatureStyle
	if style == "" {
		style = "Traditional craft showcase"
	}
	audience := cfg.TargetAudience
	if audience == "" {
		audience = "Craft enthusiasts and cultural appreciators"
	}

	return &ArtisanProfile{
		Name:            cfg.Name,
		Location:        cfg.Location,
		Specialization:  ParseCraftType(cfg.Specialization),
		ExperienceYears: cfg.ExperienceYears,
		SignatureStyle:  style,
		TargetAudience:  audience,
		Platforms:       cfg.Platforms,
		CreatedAt:       time.Now().Truncate(time.Second),
	}, nil
}

// CraftAnalysis holds structured attributes derived from an examined craft
// item or photo. It is never mutated after creation and is supplied at most
// once per pipeline invocation.
type CraftAnalysis struct {
	Colors          []string  `json:"colors"`
	Patterns        []string  `json:"patterns"`
	Materials       []string  `json:"materials"`
	Style           string    `json:"style"`
	CraftType       CraftType `json:"craft_type"`
	ComplexityLevel string    `json:"complexity_level"`
	EstimatedTime   string    `json:"estimated_time"`
	ConfidenceScore float64   `json:"confidence_score"`
}

// AnalysisConfig carries the raw inputs for a craft analysis record.
type AnalysisConfig struct {
	Colors          []string `json:"colors"`
	Patterns        []string `json:"patterns"`
	Materials       []string `json:"materials"`
	Style           string   `json:"style"`
	CraftType       string   `json:"craft_type"`
	ComplexityLevel string   `json:"complexity_level"`
	EstimatedTime   string   `json:"estimated_time"`
	ConfidenceScore float64  `json:"confidence_score"`
}

// NewCraftAnalysis builds a CraftAnalysis, resolving defaults for missing
// attributes and clamping the confidence score into [0,1].
func NewCraftAnalysis(cfg AnalysisConfig) *CraftAnalysis {
	complexity := cfg.ComplexityLevel
	if complexity == "" {
		complexity = "intermediate"
	}
	estimated := cfg.EstimatedTime
	if estimated == "" {
		estimated = "2-4 hours"
	}
	confidence := cfg.ConfidenceScore
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return &CraftAnalysis{
		Colors:          cfg.Colors,
		Patterns:        cfg.Patterns,
		Materials:       cfg.Materials,
		Style:           cfg.Style,
		CraftType:       ParseCraftType(cfg.CraftType),
		ComplexityLevel: complexity,
		EstimatedTime:   estimated,
		ConfidenceScore: confidence,
	}
}
