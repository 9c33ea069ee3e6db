package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) TestParse() {
	cfg, err := ParseConfig([]byte(`
packages:
  - pattern: ./colors
    types: [Color, Shade]
    output: palette_exhaust.go
  - pattern: ./status
    types: [Status]
`))
	s.Require().NoError(err)
	s.Require().Len(cfg.Packages, 2)
	s.Equal([]string{"Color", "Shade"}, cfg.Packages[0].Types)
	s.Equal("palette_exhaust.go", cfg.Packages[0].Output)
	s.Empty(cfg.Packages[1].Output)
}

func (s *ConfigSuite) TestRequests() {
	cfg, err := ParseConfig([]byte("packages:\n  - pattern: ./colors\n    types: [Color]\n"))
	s.Require().NoError(err)

	reqs := cfg.Requests("/work")
	s.Equal([]Request{{Dir: "/work", Pattern: "./colors", Types: []string{"Color"}}}, reqs)
}

func (s *ConfigSuite) TestInvalid() {
	tests := map[string]string{
		"no packages":     "packages: []\n",
		"missing pattern": "packages:\n  - types: [Color]\n",
		"no types":        "packages:\n  - pattern: ./colors\n",
		"output path":     "packages:\n  - pattern: ./colors\n    types: [Color]\n    output: sub/x.go\n",
	}
	for name, data := range tests {
		s.Run(name, func() {
			_, err := ParseConfig([]byte(data))
			s.ErrorIs(err, ErrInvalidConfig)
		})
	}
}

func (s *ConfigSuite) TestUnknownField() {
	_, err := ParseConfig([]byte("packages:\n  - pattern: ./colors\n    types: [Color]\n    typo: true\n"))
	s.Error(err)
	s.NotErrorIs(err, ErrInvalidConfig)
}

func (s *ConfigSuite) TestEmpty() {
	_, err := ParseConfig(nil)
	s.Error(err)
}

func (s *ConfigSuite) TestLoadConfig() {
	path := filepath.Join(s.T().TempDir(), DefaultConfigFile)
	s.Require().NoError(os.WriteFile(path, []byte("packages:\n  - pattern: .\n    types: [Color]\n"), 0o644))

	cfg, err := LoadConfig(path)
	s.Require().NoError(err)
	s.Equal(".", cfg.Packages[0].Pattern)

	_, err = LoadConfig(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.ErrorIs(err, os.ErrNotExist)
}
