package types

import "github.com/go-playground/validator/v10"

// LoginRequest represents the admin login request.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// HeroUpdateRequest carries a partial hero update. Nil sub-sections are left
// untouched by the merge.
type HeroUpdateRequest struct {
	PersonalInfo *PersonalInfo `json:"personal_info,omitempty"`
	SocialLinks  *SocialLinks  `json:"social_links,omitempty"`
}

// ContactUpdateRequest carries a partial contact update.
type ContactUpdateRequest struct {
	EmailRelayConfig *EmailRelayConfig `json:"email_relay_config,omitempty"`
	SocialLinks      *SocialLinks      `json:"social_links,omitempty"`
}

// ExperienceRequest represents a submitted experience entry for add or edit.
// ID and Order are assigned by the store and ignored on input.
type ExperienceRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=100"`
	Company     string   `json:"company" validate:"required,min=2,max=100"`
	WorkType    string   `json:"work_type" validate:"required,oneof=On-site Hybrid Remote"`
	Location    string   `json:"location" validate:"required,min=2,max=100"`
	StartDate   string   `json:"start_date" validate:"required"`
	EndDate     string   `json:"end_date,omitempty"`
	Description string   `json:"description" validate:"required,min=10,max=1000"`
	Skills      []string `json:"skills" validate:"max=20"`
	Featured    bool     `json:"featured"`
	Visible     bool     `json:"visible"`
}

// EducationRequest represents a submitted education entry for add or edit.
type EducationRequest struct {
	Degree         string `json:"degree" validate:"required,min=2,max=200"`
	Institution    string `json:"institution" validate:"required,min=2,max=200"`
	StartDate      string `json:"start_date" validate:"required"`
	EndDate        string `json:"end_date" validate:"required"`
	Grade          string `json:"grade,omitempty" validate:"max=50"`
	Description    string `json:"description,omitempty" validate:"max=500"`
	CertificateURL string `json:"certificate_url,omitempty" validate:"omitempty,url"`
}

// ProjectRequest represents a submitted project entry for add or edit.
type ProjectRequest struct {
	Title           string   `json:"title" validate:"required,min=2,max=100"`
	Description     string   `json:"description" validate:"required,min=10,max=500"`
	LongDescription string   `json:"long_description,omitempty" validate:"max=2000"`
	ImageURL        string   `json:"image_url" validate:"required,url"`
	Gallery         []string `json:"gallery,omitempty" validate:"max=10,dive,url"`
	Tags            []string `json:"tags,omitempty" validate:"max=15"`
	DemoURL         string   `json:"demo_url,omitempty" validate:"omitempty,url"`
	GitHubURL       string   `json:"github_url,omitempty" validate:"omitempty,url"`
	DemoStatus      string   `json:"demo_status" validate:"required,oneof=online offline maintenance"`
	Featured        bool     `json:"featured"`
	Category        string   `json:"category,omitempty"`
	Technologies    []string `json:"technologies,omitempty" validate:"max=20"`
	StartDate       string   `json:"start_date,omitempty"`
	EndDate         string   `json:"end_date,omitempty"`
	Visible         bool     `json:"visible"`
}

// SkillRequest represents a submitted skill for add or edit within a category.
type SkillRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=50"`
	LogoURL          string `json:"logo_url" validate:"required,url"`
	ProficiencyLevel int    `json:"proficiency_level" validate:"omitempty,min=1,max=5"`
}

// CategoryRequest represents a skill category creation request.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// ReorderRequest moves a list item from one index to another.
type ReorderRequest struct {
	FromIndex int `json:"from_index" validate:"min=0"`
	ToIndex   int `json:"to_index" validate:"min=0"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
