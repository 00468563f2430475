// Package site handles loading and parsing of site definition files.
package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/terrasense/pitcheck/internal/model"
)

// Site is a parsed site definition: the pit under construction and the
// sensors placed around it.
type Site struct {
	Name    string
	Config  model.PitConfig
	Sensors []model.Sensor
	Path    string // file the site was loaded from
}

// conventionalNames are the file names Detect tries, in priority order.
var conventionalNames = []string{
	"pitcheck.yaml", "pitcheck.yml", "pitcheck.json",
	"site.yaml", "site.yml", "site.json",
}

// DetectAndLoad finds a site file in dir by its conventional name and loads
// it. A missing site file is reported as an error because there is nothing
// to validate without one.
func DetectAndLoad(dir string) (*Site, error) {
	path, format := Detect(dir)
	if path == "" {
		return nil, fmt.Errorf("no site file found in %s (tried %s)",
			dir, strings.Join(conventionalNames, ", "))
	}
	return Load(path, format)
}

// Detect searches dir for a conventionally named site file and returns the
// path and format of the first match.
func Detect(dir string) (path, format string) {
	for _, name := range conventionalNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, formatForPath(p)
		}
	}
	return "", ""
}

// Load parses a site file with the given format hint. An empty hint is
// resolved from the file extension, falling back to content sniffing when the
// extension is unrecognized.
func Load(path string, format string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site file: %w", err)
	}

	if format == "" {
		format = formatForPath(path)
	}

	var fs fileSite
	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, &fs)
	case "json":
		err = json.Unmarshal(data, &fs)
	default:
		// No extension to go by: JSON documents open with a brace.
		if looksLikeJSON(data) {
			err = json.Unmarshal(data, &fs)
		} else {
			err = yaml.Unmarshal(data, &fs)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	st, err := fs.toSite(path)
	if err != nil {
		return nil, fmt.Errorf("invalid site file %s: %w", path, err)
	}

	zap.S().Debugw("loaded site",
		"path", path,
		"name", st.Name,
		"sensors", len(st.Sensors))
	return st, nil
}

func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return ""
	}
}

func looksLikeJSON(data []byte) bool {
	trimmed := strings.TrimLeftFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	return strings.HasPrefix(trimmed, "{")
}

// fileSite is the wire representation of a site definition. YAML is the
// primary format; the JSON tags make the same shape loadable from JSON.
type fileSite struct {
	Site struct {
		Name string `yaml:"name" json:"name"`
	} `yaml:"site" json:"site"`
	Pit struct {
		Composition string  `yaml:"composition" json:"composition"`
		SafetyLevel int     `yaml:"safety_level" json:"safety_level"`
		Length      float64 `yaml:"length" json:"length"`
		Width       float64 `yaml:"width" json:"width"`
		Depth       float64 `yaml:"depth" json:"depth"`
	} `yaml:"pit" json:"pit"`
	Sensors []fileSensor `yaml:"sensors" json:"sensors"`
}

type fileSensor struct {
	Category string  `yaml:"category" json:"category"`
	X        float64 `yaml:"x" json:"x"`
	Y        float64 `yaml:"y" json:"y"`
	Z        float64 `yaml:"z" json:"z"`
}

// toSite validates the wire structure and converts it to the model types.
// Composition and safety level pass through unvalidated: whether the pair is
// covered by the standard is a validation finding, not a parse error.
func (fs *fileSite) toSite(path string) (*Site, error) {
	pit := fs.Pit
	if pit.Length <= 0 {
		return nil, fmt.Errorf("pit length must be positive, got %g", pit.Length)
	}
	if pit.Width <= 0 {
		return nil, fmt.Errorf("pit width must be positive, got %g", pit.Width)
	}
	if pit.Depth <= 0 {
		return nil, fmt.Errorf("pit depth must be positive, got %g", pit.Depth)
	}

	sensors := make([]model.Sensor, 0, len(fs.Sensors))
	for i, s := range fs.Sensors {
		cat := model.Category(s.Category)
		if !model.Known(cat) {
			return nil, fmt.Errorf("sensor %d: unknown category %q", i+1, s.Category)
		}
		sensors = append(sensors, model.Sensor{
			Category: cat,
			Position: model.Position{X: s.X, Y: s.Y, Z: s.Z},
		})
	}

	name := fs.Site.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &Site{
		Name: name,
		Config: model.PitConfig{
			Composition: model.Composition(pit.Composition),
			SafetyLevel: model.SafetyLevel(pit.SafetyLevel),
			Length:      pit.Length,
			Width:       pit.Width,
			Depth:       pit.Depth,
		},
		Sensors: sensors,
		Path:    path,
	}, nil
}
