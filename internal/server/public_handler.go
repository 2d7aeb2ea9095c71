package server

import (
	"net/http"
	"time"

	"github.com/thomas/portfolio-cms/internal/types"
)

// PublicPortfolio is the read-only view served to the site. List sections
// carry only visible items and are omitted entirely when nothing is visible,
// so the display layer can hide empty sections without extra checks.
type PublicPortfolio struct {
	Hero           types.Hero               `json:"hero"`
	Experience     []types.Experience       `json:"experience,omitempty"`
	Education      []types.Education        `json:"education,omitempty"`
	Skills         map[string][]types.Skill `json:"skills,omitempty"`
	Projects       []types.Project          `json:"projects,omitempty"`
	Contact        types.Contact            `json:"contact"`
	LastModifiedAt time.Time                `json:"last_modified_at,omitzero"`
}

func (s *Server) handlePublicPortfolio(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, publicView(s.contentStore.State()))
}

// publicView filters the content state down to what the site shows.
func publicView(p types.Portfolio) PublicPortfolio {
	view := PublicPortfolio{
		Hero:           p.Hero,
		Contact:        p.Contact,
		LastModifiedAt: p.LastModifiedAt,
	}

	for _, e := range p.Experience {
		if e.Visible {
			view.Experience = append(view.Experience, e)
		}
	}
	for _, pr := range p.Projects {
		if pr.Visible {
			view.Projects = append(view.Projects, pr)
		}
	}

	// Education and skills have no per-item visibility flag; the section
	// hides itself only when empty.
	if len(p.Education) > 0 {
		view.Education = p.Education
	}

	for name, list := range p.Skills {
		if len(list) == 0 {
			continue
		}
		if view.Skills == nil {
			view.Skills = map[string][]types.Skill{}
		}
		view.Skills[name] = list
	}

	return view
}
