// Package types provides type definitions for the portfolio content state
// shared across the store, server, and CLI layers.
package types

import (
	"slices"
	"time"
)

// Work type values accepted for an experience entry.
const (
	WorkTypeOnSite = "On-site"
	WorkTypeHybrid = "Hybrid"
	WorkTypeRemote = "Remote"
)

// Demo status values accepted for a project entry.
const (
	DemoStatusOnline      = "online"
	DemoStatusOffline     = "offline"
	DemoStatusMaintenance = "maintenance"
)

// PersonalInfo holds the hero headline data.
type PersonalInfo struct {
	Name            string   `json:"name"`
	Titles          []string `json:"titles"`
	Description     string   `json:"description"`
	ProfileImageURL string   `json:"profile_image_url,omitempty"`
	ResumeURL       string   `json:"resume_url,omitempty"`
}

// SocialLinks holds outbound profile links. Email is the only field every
// consumer expects to be present.
type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	LeetCode string `json:"leetcode,omitempty"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

// Hero is the top section of the portfolio.
type Hero struct {
	PersonalInfo PersonalInfo `json:"personal_info"`
	SocialLinks  SocialLinks  `json:"social_links"`
}

// Experience represents a single work experience entry.
type Experience struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	WorkType    string   `json:"work_type"`
	Location    string   `json:"location"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date,omitempty"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Order       int      `json:"order"`
	Featured    bool     `json:"featured"`
	Visible     bool     `json:"visible"`
}

// Education represents a single education entry.
type Education struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Grade          string `json:"grade,omitempty"`
	Description    string `json:"description,omitempty"`
	CertificateURL string `json:"certificate_url,omitempty"`
	Order          int    `json:"order"`
}

// Skill represents a single skill within a category.
type Skill struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	LogoURL          string `json:"logo_url"`
	ProficiencyLevel int    `json:"proficiency_level,omitempty"`
	Order            int    `json:"order"`
}

// Project represents a single portfolio project.
type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description,omitempty"`
	ImageURL        string   `json:"image_url"`
	Gallery         []string `json:"gallery,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	DemoURL         string   `json:"demo_url,omitempty"`
	GitHubURL       string   `json:"github_url,omitempty"`
	DemoStatus      string   `json:"demo_status"`
	Featured        bool     `json:"featured"`
	Category        string   `json:"category,omitempty"`
	Technologies    []string `json:"technologies,omitempty"`
	StartDate       string   `json:"start_date,omitempty"`
	EndDate         string   `json:"end_date,omitempty"`
	Order           int      `json:"order"`
	Visible         bool     `json:"visible"`
}

// EmailRelayConfig holds the credentials for the third-party transactional
// email service used by the public contact form. The service is called by the
// site frontend; this system only stores and validates the configuration.
type EmailRelayConfig struct {
	ServiceID  string `json:"service_id"`
	TemplateID string `json:"template_id"`
	PublicKey  string `json:"public_key"`
}

// Contact is the contact section configuration.
type Contact struct {
	EmailRelayConfig EmailRelayConfig `json:"email_relay_config"`
	SocialLinks      SocialLinks      `json:"social_links"`
}

// Portfolio is the full content aggregate. Each top-level section is
// independently replaceable through the content store.
type Portfolio struct {
	Hero           Hero               `json:"hero"`
	Experience     []Experience       `json:"experience"`
	Education      []Education        `json:"education"`
	Skills         map[string][]Skill `json:"skills"`
	Projects       []Project          `json:"projects"`
	Contact        Contact            `json:"contact"`
	LastModifiedAt time.Time          `json:"last_modified_at,omitzero"`
}

// DefaultPortfolio returns the empty content state used when no persisted
// slice exists yet. Collections are non-nil so JSON round-trips stay stable.
func DefaultPortfolio() Portfolio {
	return Portfolio{
		Experience: []Experience{},
		Education:  []Education{},
		Skills:     map[string][]Skill{},
		Projects:   []Project{},
	}
}

// Clone returns a deep copy of the aggregate. The store mutates collections
// in place under its lock, so every snapshot it hands out must own its map
// and slice backing arrays.
func (p Portfolio) Clone() Portfolio {
	out := p
	out.Hero.PersonalInfo.Titles = slices.Clone(p.Hero.PersonalInfo.Titles)

	out.Experience = slices.Clone(p.Experience)
	for i := range out.Experience {
		out.Experience[i].Skills = slices.Clone(out.Experience[i].Skills)
	}

	out.Education = slices.Clone(p.Education)

	if p.Skills != nil {
		out.Skills = make(map[string][]Skill, len(p.Skills))
		for name, list := range p.Skills {
			out.Skills[name] = slices.Clone(list)
		}
	}

	out.Projects = slices.Clone(p.Projects)
	for i := range out.Projects {
		pr := &out.Projects[i]
		pr.Gallery = slices.Clone(pr.Gallery)
		pr.Tags = slices.Clone(pr.Tags)
		pr.Technologies = slices.Clone(pr.Technologies)
	}

	return out
}
