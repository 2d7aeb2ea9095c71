// Package content implements the portfolio content store: a CRUD surface
// over the persisted content slice, one operation family per section. The
// store performs no field validation; callers validate before mutating.
package content

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thomas/portfolio-cms/internal/schemas"
	"github.com/thomas/portfolio-cms/internal/store"
	"github.com/thomas/portfolio-cms/internal/types"
)

// SliceName is the persisted slice holding the portfolio content.
const SliceName = "portfolio-content"

// SliceVersion is the content slice schema version.
const SliceVersion = 1

// Reorderable section names accepted by Reorder.
const (
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionProjects   = "projects"
)

// Store is the content store. All mutating operations stamp LastModifiedAt
// and persist synchronously before returning.
type Store struct {
	store *store.Store[types.Portfolio]
	now   func() time.Time
	newID func() string
}

// NewStore opens the content slice in dir.
func NewStore(dir string) (*Store, error) {
	st, err := store.Open(store.Options[types.Portfolio]{
		Dir:        dir,
		Name:       SliceName,
		Version:    SliceVersion,
		Default:    types.DefaultPortfolio,
		Partialize: normalize,
		Clone:      types.Portfolio.Clone,
	})
	if err != nil {
		return nil, err
	}
	return &Store{store: st, now: time.Now, newID: uuid.NewString}, nil
}

// State returns the current content state.
func (s *Store) State() types.Portfolio {
	return s.store.State()
}

// normalize keeps collections non-nil so persisted slices and API responses
// stay shape-stable regardless of how a section was last written.
func normalize(p types.Portfolio) types.Portfolio {
	if p.Experience == nil {
		p.Experience = []types.Experience{}
	}
	if p.Education == nil {
		p.Education = []types.Education{}
	}
	if p.Projects == nil {
		p.Projects = []types.Project{}
	}
	if p.Skills == nil {
		p.Skills = map[string][]types.Skill{}
	}
	for name, list := range p.Skills {
		if list == nil {
			p.Skills[name] = []types.Skill{}
		}
	}
	return p
}

// ---------------------------------------------------------------------
// Hero and contact (partial merge)
// ---------------------------------------------------------------------

// UpdateHero merges the submitted hero sub-sections over the current hero.
func (s *Store) UpdateHero(req types.HeroUpdateRequest) types.Hero {
	state := s.mutate(func(p types.Portfolio) types.Portfolio {
		if req.PersonalInfo != nil {
			p.Hero.PersonalInfo = *req.PersonalInfo
		}
		if req.SocialLinks != nil {
			p.Hero.SocialLinks = *req.SocialLinks
		}
		return p
	})
	return state.Hero
}

// UpdateContact merges the submitted contact sub-sections over the current
// contact configuration.
func (s *Store) UpdateContact(req types.ContactUpdateRequest) types.Contact {
	state := s.mutate(func(p types.Portfolio) types.Portfolio {
		if req.EmailRelayConfig != nil {
			p.Contact.EmailRelayConfig = *req.EmailRelayConfig
		}
		if req.SocialLinks != nil {
			p.Contact.SocialLinks = *req.SocialLinks
		}
		return p
	})
	return state.Contact
}

// ---------------------------------------------------------------------
// Experience
// ---------------------------------------------------------------------

// ReplaceExperience replaces the whole experience list and renumbers order.
func (s *Store) ReplaceExperience(list []types.Experience) []types.Experience {
	state := s.mutate(func(p types.Portfolio) types.Portfolio {
		p.Experience = reindexExperience(list)
		return p
	})
	return state.Experience
}

// AddExperience appends a new entry with a fresh id and order equal to the
// current list length.
func (s *Store) AddExperience(req types.ExperienceRequest) types.Experience {
	var created types.Experience
	s.mutate(func(p types.Portfolio) types.Portfolio {
		created = types.Experience{
			ID:          s.newID(),
			Title:       req.Title,
			Company:     req.Company,
			WorkType:    req.WorkType,
			Location:    req.Location,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Description: req.Description,
			Skills:      req.Skills,
			Order:       len(p.Experience),
			Featured:    req.Featured,
			Visible:     req.Visible,
		}
		p.Experience = append(p.Experience, created)
		return p
	})
	return created
}

// UpdateExperience merges the submitted fields over the entry with the given
// id, preserving id and order.
func (s *Store) UpdateExperience(id string, req types.ExperienceRequest) (types.Experience, error) {
	var updated types.Experience
	var opErr error
	s.mutate(func(p types.Portfolio) types.Portfolio {
		for i := range p.Experience {
			if p.Experience[i].ID != id {
				continue
			}
			e := &p.Experience[i]
			e.Title = req.Title
			e.Company = req.Company
			e.WorkType = req.WorkType
			e.Location = req.Location
			e.StartDate = req.StartDate
			e.EndDate = req.EndDate
			e.Description = req.Description
			e.Skills = req.Skills
			e.Featured = req.Featured
			e.Visible = req.Visible
			updated = *e
			return p
		}
		opErr = &ErrItemNotFound{Section: SectionExperience, ID: id}
		return p
	})
	return updated, opErr
}

// DeleteExperience removes the entry with the given id and renumbers the
// remaining entries densely from zero.
func (s *Store) DeleteExperience(id string) error {
	var opErr error
	s.mutate(func(p types.Portfolio) types.Portfolio {
		for i := range p.Experience {
			if p.Experience[i].ID == id {
				p.Experience = reindexExperience(append(p.Experience[:i], p.Experience[i+1:]...))
				return p
			}
		}
		opErr = &ErrItemNotFound{Section: SectionExperience, ID: id}
		return p
	})
	return opErr
}

// ---------------------------------------------------------------------
// Education
// ---------------------------------------------------------------------

// ReplaceEducation replaces the whole education list and renumbers order.
func (s *Store) ReplaceEducation(list []types.Education) []types.Education {
	state := s.mutate(func(p types.Portfolio) types.Portfolio {
		p.Education = reindexEducation(list)
		return p
	})
	return state.Education
}

// AddEducation appends a new entry with a fresh id and order equal to the
// current list length.
func (s *Store) AddEducation(req types.EducationRequest) types.Education {
	var created types.Education
	s.mutate(func(p types.Portfolio) types.Portfolio {
		created = types.Education{
			ID:             s.newID(),
			Degree:         req.Degree,
			Institution:    req.Institution,
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			Grade:          req.Grade,
			Description:    req.Description,
			CertificateURL: req.CertificateURL,
			Order:          len(p.Education),
		}
		p.Education = append(p.Education, created)
		return p
	})
	return created
}

// UpdateEducation merges the submitted fields over the entry with the given
// id, preserving id and order.
func (s *Store) UpdateEducation(id string, req types.EducationRequest) (types.Education, error) {
	var updated types.Education
	var opErr error
	s.mutate(func(p types.Portfolio) types.Portfolio {
		for i := range p.Education {
			if p.Education[i].ID != id {
				continue
			}
			e := &p.Education[i]
			e.Degree = req.Degree
			e.Institution = req.Institution
			e.StartDate = req.StartDate
			e.EndDate = req.EndDate
			e.Grade = req.Grade
			e.Description = req.Description
			e.CertificateURL = req.CertificateURL
			updated = *e
			return p
		}
		opErr = &ErrItemNotFound{Section: SectionEducation, ID: id}
		return p
	})
	return updated, opErr
}

// DeleteEducation removes the entry with the given id and renumbers the
// remaining entries densely from zero.
func (s *Store) DeleteEducation(id string) error {
	var opErr error
	s.mutate(func(p types.Portfolio) types.Portfolio {
		for i := range p.Education {
			if p.Education[i].ID == id {
				p.Education = reindexEducation(append(p.Education[:i], p.Education[i+1:]...))
				return p
			}
		}
		opErr = &ErrItemNotFound{Section: SectionEducation, ID: id}
		return p
	})
	return opErr
}

// ---------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------

// ReplaceProjects replaces the whole projects list and renumbers order.
func (s *Store) ReplaceProjects(list []types.Project) []types.Project {
	state := s.mutate(func(p types.Portfolio) types.Portfolio {
		p.Projects = reindexProjects(list)
		return p
	})
	return state.Projects
}

// AddProject appends a new entry with a fresh id and order equal to the
// current list length.
func (s *Store) AddProject(req types.ProjectRequest) types.Project {
	var created types.Project
	s.mutate(func(p types.Portfolio) types.Portfolio {
		created = types.Project{
			ID:              s.newID(),
			Title:           req.Title,
			Description:     req.Description,
			LongDescription: req.LongDescription,
			ImageURL:        req.ImageURL,
			Gallery:         req.Gallery,
			Tags:            req.Tags,
			DemoURL:         req.DemoURL,
			GitHubURL:       req.GitHubURL,
			DemoStatus:      req.DemoStatus,
			Featured:        req.Featured,
			Category:        req.Category,
			Technologies:    req.Technologies,
			StartDate:       req.StartDate,
			EndDate:         req.EndDate,
			Order:           len(p.Projects),
			Visible:         req.Visible,
		}
		p.Projects = append(p.Projects, created)
		return p
	})
	return created
}

// UpdateProject merges the submitted fields over the entry with the given
// id, preserving id and order.
func (s *Store) UpdateProject(id string, req types.ProjectRequest) (types.Project, error) {
	var updated types.Project
	var opErr error
	s.mutate(func(p types.Portfolio) types.Portfolio {
		for i := range p.Projects {
			if p.Projects[i].ID != id {
				continue
			}
			pr := &p.Projects[i]
			pr.Title = req.Title
			pr.Description = req.Description
			pr.LongDescription = req.LongDescription
			pr.ImageURL = req.ImageURL
			pr.Gallery = req.Gallery
			pr.Tags = req.Tags
			pr.DemoURL = req.DemoURL
			pr.GitHubURL = req.GitHubURL
			pr.DemoStatus = req.DemoStatus
			pr.Featured = req.Featured
			pr.Category = req.Category
			pr.Technologies = req.Technologies
			pr.StartDate = req.StartDate
			pr.EndDate = req.EndDate
			pr.Visible = req.Visible
			updated = *pr
			return p
		}
		opErr = &ErrItemNotFound{Section: SectionProjects, ID: id}
		return p
	})
	return updated, opErr
}

// DeleteProject removes the entry with the given id and renumbers the
// remaining entries densely from zero.
func (s *Store) DeleteProject(id string) error {
	var opErr error
	s.mutate(func(p types.Portfolio) types.Portfolio {
		for i := range p.Projects {
			if p.Projects[i].ID == id {
				p.Projects = reindexProjects(append(p.Projects[:i], p.Projects[i+1:]...))
				return p
			}
		}
		opErr = &ErrItemNotFound{Section: SectionProjects, ID: id}
		return p
	})
	return opErr
}

// ---------------------------------------------------------------------
// Skills
// ---------------------------------------------------------------------

// ReplaceSkills replaces the whole skills map and renumbers every category.
func (s *Store) ReplaceSkills(skills map[string][]types.Skill) map[string][]types.Skill {
	state := s.mutate(func(p types.Portfolio) types.Portfolio {
		if skills == nil {
			skills = map[string][]types.Skill{}
		}
		for name, list := range skills {
			skills[name] = reindexSkills(list)
		}
		p.Skills = skills
		return p
	})
	return state.Skills
}

// CreateCategory adds an empty category. A duplicate name is rejected.
func (s *Store) CreateCategory(name string) error {
	var opErr error
	s.mutate(func(p types.Portfolio) types.Portfolio {
		if _, ok := p.Skills[name]; ok {
			opErr = &ErrCategoryExists{Name: name}
			return p
		}
		if p.Skills == nil {
			p.Skills = map[string][]types.Skill{}
		}
		p.Skills[name] = []types.Skill{}
		return p
	})
	return opErr
}

// DeleteCategory removes a category and all its skills.
func (s *Store) DeleteCategory(name string) error {
	var opErr error
	s.mutate(func(p types.Portfolio) types.Portfolio {
		if _, ok := p.Skills[name]; !ok {
			opErr = &ErrCategoryNotFound{Name: name}
			return p
		}
		delete(p.Skills, name)
		return p
	})
	return opErr
}

// AddSkill appends a skill to the named category with a fresh id and order
// equal to the current category length.
func (s *Store) AddSkill(category string, req types.SkillRequest) (types.Skill, error) {
	var created types.Skill
	var opErr error
	s.mutate(func(p types.Portfolio) types.Portfolio {
		list, ok := p.Skills[category]
		if !ok {
			opErr = &ErrCategoryNotFound{Name: category}
			return p
		}
		created = types.Skill{
			ID:               s.newID(),
			Name:             req.Name,
			LogoURL:          req.LogoURL,
			ProficiencyLevel: req.ProficiencyLevel,
			Order:            len(list),
		}
		p.Skills[category] = append(list, created)
		return p
	})
	return created, opErr
}

// UpdateSkill merges the submitted fields over the skill with the given id
// in the named category, preserving id and order.
func (s *Store) UpdateSkill(category, id string, req types.SkillRequest) (types.Skill, error) {
	var updated types.Skill
	var opErr error
	s.mutate(func(p types.Portfolio) types.Portfolio {
		list, ok := p.Skills[category]
		if !ok {
			opErr = &ErrCategoryNotFound{Name: category}
			return p
		}
		for i := range list {
			if list[i].ID != id {
				continue
			}
			list[i].Name = req.Name
			list[i].LogoURL = req.LogoURL
			list[i].ProficiencyLevel = req.ProficiencyLevel
			updated = list[i]
			return p
		}
		opErr = &ErrItemNotFound{Section: "skills/" + category, ID: id}
		return p
	})
	return updated, opErr
}

// DeleteSkill removes the skill with the given id from the named category
// and renumbers the remaining skills densely from zero.
func (s *Store) DeleteSkill(category, id string) error {
	var opErr error
	s.mutate(func(p types.Portfolio) types.Portfolio {
		list, ok := p.Skills[category]
		if !ok {
			opErr = &ErrCategoryNotFound{Name: category}
			return p
		}
		for i := range list {
			if list[i].ID == id {
				p.Skills[category] = reindexSkills(append(list[:i], list[i+1:]...))
				return p
			}
		}
		opErr = &ErrItemNotFound{Section: "skills/" + category, ID: id}
		return p
	})
	return opErr
}

// ---------------------------------------------------------------------
// Reordering
// ---------------------------------------------------------------------

// Reorder removes the item at fromIndex in the named section and reinserts
// it at toIndex, then renumbers the whole list. Out-of-range indices are
// rejected.
func (s *Store) Reorder(section string, fromIndex, toIndex int) error {
	var opErr error
	s.mutate(func(p types.Portfolio) types.Portfolio {
		switch section {
		case SectionExperience:
			list, err := move(p.Experience, section, fromIndex, toIndex)
			if err != nil {
				opErr = err
				return p
			}
			p.Experience = reindexExperience(list)
		case SectionEducation:
			list, err := move(p.Education, section, fromIndex, toIndex)
			if err != nil {
				opErr = err
				return p
			}
			p.Education = reindexEducation(list)
		case SectionProjects:
			list, err := move(p.Projects, section, fromIndex, toIndex)
			if err != nil {
				opErr = err
				return p
			}
			p.Projects = reindexProjects(list)
		default:
			opErr = &ErrUnknownSection{Section: section}
		}
		return p
	})
	return opErr
}

// ReorderSkills applies the same move discipline to a skill category.
func (s *Store) ReorderSkills(category string, fromIndex, toIndex int) error {
	var opErr error
	s.mutate(func(p types.Portfolio) types.Portfolio {
		list, ok := p.Skills[category]
		if !ok {
			opErr = &ErrCategoryNotFound{Name: category}
			return p
		}
		moved, err := move(list, "skills/"+category, fromIndex, toIndex)
		if err != nil {
			opErr = err
			return p
		}
		p.Skills[category] = reindexSkills(moved)
		return p
	})
	return opErr
}

// ---------------------------------------------------------------------
// Bulk operations
// ---------------------------------------------------------------------

// Export returns the full content state as an indented JSON document.
func (s *Store) Export() ([]byte, error) {
	doc, err := json.MarshalIndent(s.store.State(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to export content: %w", err)
	}
	return doc, nil
}

// Import schema-validates the document and replaces the whole content state
// with it. Every list is renumbered on the way in.
func (s *Store) Import(doc []byte) error {
	if err := schemas.ValidateContent(doc); err != nil {
		return err
	}

	var incoming types.Portfolio
	if err := json.Unmarshal(doc, &incoming); err != nil {
		return fmt.Errorf("failed to parse content document: %w", err)
	}

	s.mutate(func(types.Portfolio) types.Portfolio {
		incoming.Experience = reindexExperience(incoming.Experience)
		incoming.Education = reindexEducation(incoming.Education)
		incoming.Projects = reindexProjects(incoming.Projects)
		for name, list := range incoming.Skills {
			incoming.Skills[name] = reindexSkills(list)
		}
		return incoming
	})
	return nil
}

// Reset clears all lists and skills while keeping hero and contact, matching
// the admin panel's reset action.
func (s *Store) Reset() types.Portfolio {
	return s.mutate(func(p types.Portfolio) types.Portfolio {
		p.Experience = []types.Experience{}
		p.Education = []types.Education{}
		p.Skills = map[string][]types.Skill{}
		p.Projects = []types.Project{}
		return p
	})
}

// mutate stamps LastModifiedAt on top of the section mutation and persists.
func (s *Store) mutate(fn func(types.Portfolio) types.Portfolio) types.Portfolio {
	return s.store.Mutate(func(p types.Portfolio) types.Portfolio {
		p = fn(p)
		p.LastModifiedAt = s.now()
		return p
	})
}

func move[T any](list []T, section string, from, to int) ([]T, error) {
	if from < 0 || from >= len(list) {
		return nil, &ErrIndexOutOfRange{Section: section, Index: from, Length: len(list)}
	}
	if to < 0 || to >= len(list) {
		return nil, &ErrIndexOutOfRange{Section: section, Index: to, Length: len(list)}
	}

	item := list[from]
	list = append(list[:from], list[from+1:]...)
	list = append(list, item)
	copy(list[to+1:], list[to:len(list)-1])
	list[to] = item
	return list, nil
}

func reindexExperience(list []types.Experience) []types.Experience {
	for i := range list {
		list[i].Order = i
	}
	return list
}

func reindexEducation(list []types.Education) []types.Education {
	for i := range list {
		list[i].Order = i
	}
	return list
}

func reindexProjects(list []types.Project) []types.Project {
	for i := range list {
		list[i].Order = i
	}
	return list
}

func reindexSkills(list []types.Skill) []types.Skill {
	for i := range list {
		list[i].Order = i
	}
	return list
}
