package config

import "flag"

// Flags holds command-line overrides.
type Flags struct {
	Config string
	Debug  bool
	Width  int
	Height int
	Scheme string
	Shader string
}

// RegisterFlags defines the demo flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.StringVar(&f.Scheme, "scheme", "", "Input scheme: tap, held or mixed")
	fs.StringVar(&f.Shader, "shaders", "", "Shader root directory")
	return f
}

// apply applies flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.Scheme != "" {
		cfg.Input.Scheme = f.Scheme
	}
	if f.Shader != "" {
		cfg.Shaders.Dir = f.Shader
	}
}
