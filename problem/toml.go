package problem

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/coderelay/backend/scoring"
)

type catalogTOML struct {
	Problems []problemTOML `toml:"problems"`
}

type problemTOML struct {
	ID          string        `toml:"id"`
	Label       string        `toml:"label"`
	Number      int           `toml:"number"`
	Title       string        `toml:"title"`
	Description string        `toml:"description"`
	MaxPoints   int           `toml:"max_points"`
	Sections    []sectionTOML `toml:"sections"`
}

type sectionTOML struct {
	Key         string `toml:"key"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Points      int    `toml:"points"`
}

// ReadCatalog loads the problem catalog from a TOML file. The catalog
// is read once at startup; every problem must declare at least one
// section with a unique key.
func ReadCatalog(path string) ([]Problem, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(content)
}

func ParseCatalog(content []byte) ([]Problem, error) {
	var catalog catalogTOML
	if err := toml.Unmarshal(content, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog toml: %w", err)
	}

	seenIDs := make(map[string]bool)
	problems := make([]Problem, 0, len(catalog.Problems))
	for _, pt := range catalog.Problems {
		if pt.ID == "" {
			return nil, fmt.Errorf("problem without an id in catalog")
		}
		if seenIDs[pt.ID] {
			return nil, fmt.Errorf("duplicate problem id %q in catalog", pt.ID)
		}
		seenIDs[pt.ID] = true
		if len(pt.Sections) == 0 {
			return nil, fmt.Errorf("problem %q has no sections", pt.ID)
		}

		seenKeys := make(map[string]bool)
		sections := make([]Section, 0, len(pt.Sections))
		for _, st := range pt.Sections {
			if st.Key == "" {
				return nil, fmt.Errorf("problem %q has a section without a key", pt.ID)
			}
			if seenKeys[st.Key] {
				return nil, fmt.Errorf("problem %q has duplicate section key %q", pt.ID, st.Key)
			}
			seenKeys[st.Key] = true
			sections = append(sections, Section{
				Key:         st.Key,
				Title:       st.Title,
				Description: st.Description,
				Points:      st.Points,
			})
		}

		maxPoints := pt.MaxPoints
		if maxPoints == 0 {
			for _, sec := range sections {
				if sec.Points > 0 {
					maxPoints += sec.Points
				} else {
					maxPoints += scoring.DefaultSectionPoints
				}
			}
		}

		problems = append(problems, Problem{
			ID:          pt.ID,
			Label:       pt.Label,
			Number:      pt.Number,
			Title:       pt.Title,
			Description: pt.Description,
			MaxPoints:   maxPoints,
			Sections:    sections,
		})
	}
	return problems, nil
}
