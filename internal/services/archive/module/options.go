package module

import "draftforge/internal/platform/config"

// Options controls the archive writer
type Options struct {
	BaseDir string
	Ext     string
}

// FromConfig reads with ARCHIVE_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("ARCHIVE_")
	return Options{
		BaseDir: c.MayString("DIR", "poc"),
		Ext:     c.MayString("EXT", "ts"),
	}
}
