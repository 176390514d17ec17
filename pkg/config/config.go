package config

import (
	"github.com/arthur-debert/minifiles/pkg/entries"
	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/arthur-debert/minifiles/pkg/listing"
)

// Config is the complete minifiles configuration
type Config struct {
	Options Options `koanf:"options" toml:"options"`
	Content Content `koanf:"content" toml:"content"`
	UI      UI      `koanf:"ui" toml:"ui"`
}

// Options controls how actions are applied
type Options struct {
	PermanentDelete bool   `koanf:"permanent_delete" toml:"permanent_delete"`
	TrashDir        string `koanf:"trash_dir" toml:"trash_dir"`
}

// Content controls what listings show
type Content struct {
	ShowHidden bool   `koanf:"show_hidden" toml:"show_hidden"`
	Sort       string `koanf:"sort" toml:"sort"`
	Filter     string `koanf:"filter" toml:"filter"`
	Prefix     string `koanf:"prefix" toml:"prefix"`
}

// UI controls output and prompting
type UI struct {
	Format  string `koanf:"format" toml:"format"`
	Confirm bool   `koanf:"confirm" toml:"confirm"`
}

var formats = map[string]bool{
	"auto": true, "term": true, "terminal": true, "text": true,
	"plain": true, "json": true, "yaml": true, "yml": true, "xml": true,
}

// Validate rejects values no component understands
func (c *Config) Validate() error {
	if _, ok := entries.SorterByName(c.Content.Sort); !ok {
		return errors.Newf(errors.ErrConfigValid, "unknown content.sort %q", c.Content.Sort).
			WithDetail("key", "content.sort")
	}
	if _, ok := listing.PrefixerByName(c.Content.Prefix); !ok {
		return errors.Newf(errors.ErrConfigValid, "unknown content.prefix %q", c.Content.Prefix).
			WithDetail("key", "content.prefix")
	}
	if !formats[c.UI.Format] {
		return errors.Newf(errors.ErrConfigValid, "unknown ui.format %q", c.UI.Format).
			WithDetail("key", "ui.format")
	}
	return nil
}

// Filter builds the entry filter for the content options
func (c *Config) Filter() entries.Filter {
	return entries.NewFilter(c.Content.ShowHidden, c.Content.Filter)
}

// Sorter returns the entry sorter for content.sort
func (c *Config) Sorter() entries.Sorter {
	s, ok := entries.SorterByName(c.Content.Sort)
	if !ok {
		return entries.DefaultSorter{}
	}
	return s
}

// Prefixer returns the listing prefixer for content.prefix
func (c *Config) Prefixer() listing.Prefixer {
	p, ok := listing.PrefixerByName(c.Content.Prefix)
	if !ok {
		return listing.NoPrefix{}
	}
	return p
}
