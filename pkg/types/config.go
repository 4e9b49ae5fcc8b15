package types

// SiteConfig holds the settings for locating the publishing site.
type SiteConfig struct {
	// Root is the site root probed for conventional output directories
	// (default ".").
	Root string `json:"root" yaml:"root"`

	// OutputDir is an explicit output directory. When set it bypasses
	// directory detection.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}
