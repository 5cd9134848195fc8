package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type LayoutDirection string

const (
	LayoutLTR LayoutDirection = "ltr"
	LayoutRTL LayoutDirection = "rtl"
)

func ParseLayoutDirection(s string) (LayoutDirection, error) {
	switch LayoutDirection(strings.ToLower(strings.TrimSpace(s))) {
	case "", LayoutLTR:
		return LayoutLTR, nil
	case LayoutRTL:
		return LayoutRTL, nil
	}
	return "", fmt.Errorf("invalid layout_direction %q (valid: ltr, rtl)", s)
}

type EndPolicy string

const (
	EndFarthest EndPolicy = "farthest"
	EndClosest  EndPolicy = "closest"
)

func ParseEndPolicy(s string) (EndPolicy, error) {
	switch EndPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", EndFarthest:
		return EndFarthest, nil
	case EndClosest:
		return EndClosest, nil
	}
	return "", fmt.Errorf("invalid end_policy %q (valid: farthest, closest)", s)
}

type Config struct {
	Icons     string    `yaml:"icons"` // "nerdfont" (default), "unicode", "none"
	Theme     string    `yaml:"theme"` // "auto" (default), "dark", "light"
	Animation Animation `yaml:"animation"`
	Scroll    Scroll    `yaml:"scroll"`
	Grid      Grid      `yaml:"grid"`
	Selection Selection `yaml:"selection"`
	Walk      Walk      `yaml:"walk"`
}

type Animation struct {
	MaxDuration time.Duration `yaml:"max_duration"`
	FrameRate   int           `yaml:"frame_rate"`
}

type Scroll struct {
	LineHeight      float64         `yaml:"line_height"`
	Paging          bool            `yaml:"paging"`
	LayoutDirection LayoutDirection `yaml:"layout_direction"`
	// A zoom_min above zoom_max disables zooming.
	ZoomMin float64 `yaml:"zoom_min"`
	ZoomMax float64 `yaml:"zoom_max"`
}

type Grid struct {
	SearchDistance float64   `yaml:"search_distance"`
	EndPolicy      EndPolicy `yaml:"end_policy"`
	CellWidth      int       `yaml:"cell_width"`
	CellHeight     int       `yaml:"cell_height"`
}

type Selection struct {
	RequiresSelection bool `yaml:"requires_selection"`
	Multiple          bool `yaml:"multiple"`
}

type Walk struct {
	MaxDepth int      `yaml:"max_depth"`
	MaxItems int      `yaml:"max_items"`
	Hidden   bool     `yaml:"hidden"` // include dot entries (still unselectable)
	Skip     []string `yaml:"skip"`
}

func Default() Config {
	return Config{
		Icons: "nerdfont",
		Theme: "auto",
		Animation: Animation{
			MaxDuration: 500 * time.Millisecond,
			FrameRate:   60,
		},
		Scroll: Scroll{
			LineHeight:      1,
			LayoutDirection: LayoutLTR,
			ZoomMin:         0.5,
			ZoomMax:         3,
		},
		Grid: Grid{
			SearchDistance: 500,
			EndPolicy:      EndFarthest,
			CellWidth:      18,
			CellHeight:     3,
		},
		Walk: Walk{
			MaxDepth: 4,
			MaxItems: 5000,
			Skip:     []string{".git", "node_modules", "vendor"},
		},
	}
}

// Normalize trims and lowercases enum fields, expands paths and fills zero
// values with defaults.
func (c *Config) Normalize() {
	def := Default()

	c.Icons = strings.TrimSpace(strings.ToLower(c.Icons))
	c.Theme = strings.TrimSpace(strings.ToLower(c.Theme))
	if c.Theme == "" {
		c.Theme = def.Theme
	}

	if c.Animation.MaxDuration == 0 {
		c.Animation.MaxDuration = def.Animation.MaxDuration
	}
	if c.Animation.FrameRate == 0 {
		c.Animation.FrameRate = def.Animation.FrameRate
	}

	if c.Scroll.LineHeight == 0 {
		c.Scroll.LineHeight = def.Scroll.LineHeight
	}
	c.Scroll.LayoutDirection = LayoutDirection(strings.TrimSpace(strings.ToLower(string(c.Scroll.LayoutDirection))))
	if c.Scroll.LayoutDirection == "" {
		c.Scroll.LayoutDirection = LayoutLTR
	}
	if c.Scroll.ZoomMin == 0 {
		c.Scroll.ZoomMin = def.Scroll.ZoomMin
	}
	if c.Scroll.ZoomMax == 0 {
		c.Scroll.ZoomMax = def.Scroll.ZoomMax
	}

	if c.Grid.SearchDistance == 0 {
		c.Grid.SearchDistance = def.Grid.SearchDistance
	}
	c.Grid.EndPolicy = EndPolicy(strings.TrimSpace(strings.ToLower(string(c.Grid.EndPolicy))))
	if c.Grid.EndPolicy == "" {
		c.Grid.EndPolicy = EndFarthest
	}
	if c.Grid.CellWidth == 0 {
		c.Grid.CellWidth = def.Grid.CellWidth
	}
	if c.Grid.CellHeight == 0 {
		c.Grid.CellHeight = def.Grid.CellHeight
	}

	if c.Walk.MaxDepth == 0 {
		c.Walk.MaxDepth = def.Walk.MaxDepth
	}
	if c.Walk.MaxItems == 0 {
		c.Walk.MaxItems = def.Walk.MaxItems
	}
	if len(c.Walk.Skip) > 0 {
		c.Walk.Skip = normalizeStringList(c.Walk.Skip)
	}
}

func (c Config) Validate() error {
	if c.Icons != "" {
		switch c.Icons {
		case "nerdfont", "unicode", "none":
		default:
			return fmt.Errorf("invalid icons %q (valid: nerdfont, unicode, none)", c.Icons)
		}
	}
	switch c.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("invalid theme %q (valid: auto, dark, light)", c.Theme)
	}
	if c.Animation.MaxDuration < 0 {
		return fmt.Errorf("invalid animation.max_duration %s: must be positive", c.Animation.MaxDuration)
	}
	if c.Animation.FrameRate < 0 || c.Animation.FrameRate > 240 {
		return fmt.Errorf("invalid animation.frame_rate %d (valid: 1-240)", c.Animation.FrameRate)
	}
	if c.Scroll.LineHeight < 0 {
		return fmt.Errorf("invalid scroll.line_height %g: must be positive", c.Scroll.LineHeight)
	}
	if _, err := ParseLayoutDirection(string(c.Scroll.LayoutDirection)); err != nil {
		return err
	}
	if c.Scroll.ZoomMin < 0 || c.Scroll.ZoomMax < 0 {
		return fmt.Errorf("invalid zoom range [%g, %g]: must be positive", c.Scroll.ZoomMin, c.Scroll.ZoomMax)
	}
	if c.Grid.SearchDistance < 0 {
		return fmt.Errorf("invalid grid.search_distance %g: must be positive", c.Grid.SearchDistance)
	}
	if _, err := ParseEndPolicy(string(c.Grid.EndPolicy)); err != nil {
		return err
	}
	if c.Grid.CellWidth < 0 || c.Grid.CellHeight < 0 {
		return fmt.Errorf("invalid grid cell %dx%d: must be positive", c.Grid.CellWidth, c.Grid.CellHeight)
	}
	if c.Walk.MaxDepth < 0 || c.Walk.MaxItems < 0 {
		return fmt.Errorf("invalid walk limits depth=%d items=%d: must not be negative", c.Walk.MaxDepth, c.Walk.MaxItems)
	}
	return nil
}

func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "keynav", "config.yaml")
}

func Load() (Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom returns Default() if path doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

func normalizeStringList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, item := range in {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
