// Package config loads and saves guide presets: the pen and options used
// for every guide kind and the kind chosen last.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vasalvit/compguide"
)

// ErrInvalidSettings is returned for presets naming unknown kinds, options
// or line styles, or carrying unusable pens.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Helper is the preset of one guide kind.
type Helper struct {
	Pen     compguide.Pen
	Options compguide.OptionSet
}

// Settings holds a preset for every guide kind.
type Settings struct {
	LastUsed compguide.GuideKind
	helpers  map[compguide.GuideKind]Helper
}

type settingsFile struct {
	LastUsed string                `yaml:"lastUsed,omitempty"`
	Helpers  map[string]helperFile `yaml:"helpers,omitempty"`
}

// helperFile fields are pointers so an explicit zero is told apart from a
// missing field.
type helperFile struct {
	Color   *string  `yaml:"color,omitempty"`
	Width   *float64 `yaml:"width,omitempty"`
	Style   *string  `yaml:"style,omitempty"`
	Options []string `yaml:"options"`
}

// Default returns settings drawing every kind with the default pen and the
// kind's default options.
func Default() *Settings {
	s := &Settings{helpers: make(map[compguide.GuideKind]Helper)}
	for _, k := range compguide.Kinds() {
		s.helpers[k] = defaultHelper(k)
	}
	return s
}

// Helper returns the preset of kind. Kinds without a preset, as on the zero
// Settings, get the default pen and the kind's default options.
func (s *Settings) Helper(kind compguide.GuideKind) (Helper, error) {
	if !kind.Valid() {
		return Helper{}, fmt.Errorf("%w: %d", compguide.ErrUnknownGuideKind, int(kind))
	}
	if s != nil {
		if h, ok := s.helpers[kind]; ok {
			return h, nil
		}
	}
	return defaultHelper(kind), nil
}

func defaultHelper(kind compguide.GuideKind) Helper {
	return Helper{Pen: compguide.DefaultPen(), Options: kind.Defaults()}
}

// SetHelper replaces the preset of kind. Options the kind does not accept
// are dropped.
func (s *Settings) SetHelper(kind compguide.GuideKind, h Helper) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", compguide.ErrUnknownGuideKind, int(kind))
	}
	if err := h.Pen.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidSettings, kind, err)
	}
	h.Options = h.Options.Intersect(kind.Accepted())
	if s.helpers == nil {
		s.helpers = make(map[compguide.GuideKind]Helper)
	}
	s.helpers[kind] = h
	return nil
}

// Load reads YAML settings from r and merges them over Default. Fields
// missing from a helper keep their default value.
func Load(r io.Reader) (*Settings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}

	s := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	var doc settingsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	if tag := strings.TrimSpace(doc.LastUsed); tag != "" {
		k, err := compguide.ParseGuideKind(tag)
		if err != nil {
			return nil, fmt.Errorf("%w: lastUsed: %v", ErrInvalidSettings, err)
		}
		s.LastUsed = k
	}

	for tag, raw := range doc.Helpers {
		k, err := compguide.ParseGuideKind(strings.TrimSpace(tag))
		if err != nil {
			return nil, fmt.Errorf("%w: helpers: %v", ErrInvalidSettings, err)
		}
		base, err := s.Helper(k)
		if err != nil {
			return nil, err
		}
		h, err := normaliseHelper(base, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: helper %s: %v", ErrInvalidSettings, tag, err)
		}
		if err := s.SetHelper(k, h); err != nil {
			return nil, err
		}
	}

	compguide.Logger().Debug("config loaded", "lastUsed", s.LastUsed.String(), "helpers", len(doc.Helpers))
	return s, nil
}

// LoadFile reads settings from path. A missing file yields Default.
func LoadFile(path string) (*Settings, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

func normaliseHelper(h Helper, raw helperFile) (Helper, error) {
	if raw.Color != nil {
		h.Pen.Color = *raw.Color
	}
	if raw.Width != nil {
		h.Pen.Width = *raw.Width
	}
	if raw.Style != nil {
		style, err := compguide.ParseLineStyle(strings.TrimSpace(*raw.Style))
		if err != nil {
			return Helper{}, err
		}
		h.Pen.Style = style
	}
	if raw.Options != nil {
		var opts compguide.OptionSet
		for _, tag := range raw.Options {
			o, err := compguide.ParseOption(strings.TrimSpace(tag))
			if err != nil {
				return Helper{}, err
			}
			opts = opts.With(o)
		}
		h.Options = opts
	}
	return h, h.Pen.Validate()
}

// Save writes the settings to w as YAML. Every kind is written so the file
// documents the full preset.
func (s *Settings) Save(w io.Writer) error {
	doc := settingsFile{
		LastUsed: s.LastUsed.String(),
		Helpers:  make(map[string]helperFile, len(s.helpers)),
	}
	for _, k := range compguide.Kinds() {
		h, err := s.Helper(k)
		if err != nil {
			return err
		}
		style := h.Pen.Style.String()
		doc.Helpers[k.String()] = helperFile{
			Color:   &h.Pen.Color,
			Width:   &h.Pen.Width,
			Style:   &style,
			Options: h.Options.Tags(),
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}

// SaveFile writes the settings to path.
func (s *Settings) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	if err := s.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
