package service

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"paintquote_backend/internal/contractor/transport"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// defaultSettings returns the hard-coded pricing defaults. Parsed from the
// embedded fixture at startup; a broken fixture is a programmer error.
func defaultSettings() transport.Settings {
	var s transport.Settings
	if err := yaml.Unmarshal(defaultsYAML, &s); err != nil {
		panic("contractor: invalid embedded defaults: " + err.Error())
	}
	return s
}
