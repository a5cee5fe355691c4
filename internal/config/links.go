package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/darkspy3580/interface/internal"
)

// AppLink is one navigation entry in the link table, with a URL per
// deployment environment
type AppLink struct {
	Name        string `toml:"name"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Icon        string `toml:"icon"`
	Local       string `toml:"local"`
	Production  string `toml:"production"`
}

// LinkTable is the parsed navigation link configuration
type LinkTable struct {
	Apps []AppLink `toml:"apps"`
}

// Card is a resolved navigation card ready for rendering
type Card struct {
	Title       string
	Description string
	Icon        string
	URL         string
}

// LoadLinks reads and parses the TOML link table from path
func LoadLinks(path string) (*LinkTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read link table '%s': %w", path, err)
	}

	var table LinkTable
	if err := toml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return &table, nil
}

// Resolve maps the link table to display cards for the given deployment
// environment. Resolution happens once at process start; an entry with no
// URL for the environment renders as a dead "#" link with a logged warning
// rather than failing the page.
func (t *LinkTable) Resolve(env string, logger *internal.Logger) []Card {
	if logger == nil {
		logger = internal.DefaultLogger
	}

	cards := make([]Card, 0, len(t.Apps))
	for _, app := range t.Apps {
		url := ""
		switch env {
		case "production":
			url = app.Production
		case "local":
			url = app.Local
		}
		if url == "" {
			logger.Warn("no link found for %s in %s environment", app.Name, env)
			url = "#"
		}
		cards = append(cards, Card{
			Title:       app.Title,
			Description: app.Description,
			Icon:        app.Icon,
			URL:         url,
		})
	}
	return cards
}
