package sources

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source identifies one feed origin.
type Source struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Registry is the built-in feed list, in fetch order. Order matters: the
// deduplicator keeps the first occurrence of a story, so earlier sources win.
var Registry = []Source{
	{Name: "PV-Tech", URL: "https://www.pv-tech.org/feed/"},
	{Name: "Energy Storage News", URL: "https://www.energy-storage.news/feed/"},
	{Name: "IEA News", URL: "https://www.iea.org/rss/news.xml"},
	{Name: "IRENA", URL: "https://www.irena.org/rss"},
	{Name: "Bundesnetzagentur", URL: "https://www.bundesnetzagentur.de/SiteGlobals/Functions/RSSFeed/rss_nachrichten.xml?nn=268128"},
	{Name: "EU Energy", URL: "https://ec.europa.eu/newsroom/ener/rss.cfm?type=atom"},
}

// DefaultOfficial names the sources whose records are tiered "official".
// Everything else is "trade".
var DefaultOfficial = []string{
	"Bundesnetzagentur",
	"IEA",
	"IRENA",
	"EU Energy",
}

// Load reads a registry override from a YAML file of the form:
//
//	sources:
//	  - name: PV-Tech
//	    url: https://www.pv-tech.org/feed/
func Load(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var doc struct {
		Sources []Source `yaml:"sources"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}
	if len(doc.Sources) == 0 {
		return nil, fmt.Errorf("sources file %s lists no sources", path)
	}

	for i, src := range doc.Sources {
		if src.Name == "" || src.URL == "" {
			return nil, fmt.Errorf("sources file %s: entry %d is missing name or url", path, i)
		}
	}

	return doc.Sources, nil
}
