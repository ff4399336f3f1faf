package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

const (
	ManifestFormatRequirements = "requirements"
	ManifestFormatPyproject    = "pyproject"

	// LockDisabled turns off the install lock when used as lock_file.
	LockDisabled = "-"

	defaultManifest   = "requirements.txt"
	defaultEntryPoint = "main.py"
	defaultLockName   = "bootstrap.lock"
)

// Settings is the launcher configuration.
type Settings struct {
	Interpreter    string   `yaml:"interpreter"`     // Executable name or path; empty means auto-detect
	Manifest       string   `yaml:"manifest"`        // Dependency manifest path
	ManifestFormat string   `yaml:"manifest_format"` // "requirements", "pyproject" or empty for auto
	CommentMarker  string   `yaml:"comment_marker"`
	EntryPoint     string   `yaml:"entry_point"` // Script handed to the interpreter after the pass
	EntryArgs      []string `yaml:"entry_args"`
	Tools          []string `yaml:"tools"`     // External executables the application needs
	LockFile       string   `yaml:"lock_file"` // Install lock path, "-" disables
	CheckVersions  bool     `yaml:"check_versions"`
	ClearScreen    bool     `yaml:"clear_screen"`
	Pause          bool     `yaml:"pause"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the configuration used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Manifest:      defaultManifest,
		CommentMarker: DefaultCommentMarker,
		EntryPoint:    defaultEntryPoint,
		EntryArgs:     []string{},
		Tools:         []string{"ffmpeg", "ffprobe"},
		LockFile:      filepath.Join(os.TempDir(), defaultLockName),
		CheckVersions: true,
		ClearScreen:   true,
		Pause:         true,
	}
}

// NewSettings reads a YAML or HCL configuration file on top of the defaults,
// expands environment variables, and validates the result.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		err = decodeHCL(data, path, settings)
	} else {
		err = yaml.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	settings.expand()

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".bootstrap.yaml",
		".bootstrap.yml",
		"bootstrap.yaml",
		"bootstrap.yml",
		"bootstrap.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// InterpreterCandidates returns the executables tried, in order, when
// resolving the interpreter.
func (s *Settings) InterpreterCandidates() []string {
	if s.Interpreter != "" {
		return []string{s.Interpreter}
	}
	return []string{"python3", "python"}
}

// LockingEnabled reports whether installs are serialized through a lock file.
func (s *Settings) LockingEnabled() bool {
	return s.LockFile != "" && s.LockFile != LockDisabled
}

// expand resolves ${ENV_VAR} references in every string setting.
func (s *Settings) expand() {
	s.Interpreter = expandEnv(s.Interpreter)
	s.Manifest = expandEnv(s.Manifest)
	s.EntryPoint = expandEnv(s.EntryPoint)
	s.LockFile = expandEnv(s.LockFile)
	for i := range s.EntryArgs {
		s.EntryArgs[i] = expandEnv(s.EntryArgs[i])
	}
	for i := range s.Tools {
		s.Tools[i] = expandEnv(s.Tools[i])
	}
}

func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// decodeHCL applies the top-level attributes of an HCL config onto settings.
func decodeHCL(data []byte, path string, settings *Settings) error {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return diags
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return diags
	}

	for name, attr := range attrs {
		value, valDiags := attr.Expr.Value(&hcl.EvalContext{})
		if valDiags.HasErrors() {
			return valDiags
		}
		if err := assignHCLAttribute(settings, name, value); err != nil {
			return fmt.Errorf("%s:%d: %w", path, attr.Range.Start.Line, err)
		}
	}

	return nil
}

func assignHCLAttribute(settings *Settings, name string, value cty.Value) error {
	var err error
	switch name {
	case "interpreter":
		settings.Interpreter, err = ctyString(name, value)
	case "manifest":
		settings.Manifest, err = ctyString(name, value)
	case "manifest_format":
		settings.ManifestFormat, err = ctyString(name, value)
	case "comment_marker":
		settings.CommentMarker, err = ctyString(name, value)
	case "entry_point":
		settings.EntryPoint, err = ctyString(name, value)
	case "entry_args":
		settings.EntryArgs, err = ctyStrings(name, value)
	case "tools":
		settings.Tools, err = ctyStrings(name, value)
	case "lock_file":
		settings.LockFile, err = ctyString(name, value)
	case "check_versions":
		settings.CheckVersions, err = ctyBool(name, value)
	case "clear_screen":
		settings.ClearScreen, err = ctyBool(name, value)
	case "pause":
		settings.Pause, err = ctyBool(name, value)
	default:
		err = fmt.Errorf("unknown setting %q", name)
	}
	return err
}

func ctyString(name string, value cty.Value) (string, error) {
	if value.IsNull() || value.Type() != cty.String {
		return "", fmt.Errorf("%s must be a string", name)
	}
	return value.AsString(), nil
}

func ctyBool(name string, value cty.Value) (bool, error) {
	if value.IsNull() || value.Type() != cty.Bool {
		return false, fmt.Errorf("%s must be a bool", name)
	}
	return value.True(), nil
}

func ctyStrings(name string, value cty.Value) ([]string, error) {
	if value.IsNull() {
		return []string{}, nil
	}
	valueType := value.Type()
	if !valueType.IsTupleType() && !valueType.IsListType() {
		return nil, fmt.Errorf("%s must be a list of strings", name)
	}

	result := make([]string, 0, value.LengthInt())
	for _, element := range value.AsValueSlice() {
		str, err := ctyString(name+" element", element)
		if err != nil {
			return nil, err
		}
		result = append(result, str)
	}
	return result, nil
}

// validate checks for required configuration values.
func validate(settings *Settings) error {
	if settings.Manifest == "" {
		return errors.New("manifest is required")
	}
	if settings.EntryPoint == "" {
		return errors.New("entry_point is required")
	}
	if len([]rune(settings.CommentMarker)) != 1 {
		return fmt.Errorf("comment_marker must be a single character, got %q", settings.CommentMarker)
	}

	switch settings.ManifestFormat {
	case "", ManifestFormatRequirements, ManifestFormatPyproject:
	default:
		return fmt.Errorf(
			"manifest_format must be %q or %q, got %q",
			ManifestFormatRequirements, ManifestFormatPyproject, settings.ManifestFormat,
		)
	}

	return nil
}
