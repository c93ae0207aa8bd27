package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// ConfigFileName is the fixed name of the per-directory declarative config
// file, looked up at the scanned root only.
const ConfigFileName = ".codeclip.toml"

// ConfigError reports a config file that exists but could not be read.
// Malformed content is never a ConfigError; it is tolerated per file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config file %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// fileConfig is the recognized schema: one [exclude] section with two list
// keys. Unknown sections and keys are dropped by the decoder.
type fileConfig struct {
	Exclude struct {
		Ext []string `toml:"ext"`
		Dir []string `toml:"dir"`
	} `toml:"exclude"`
}

// LoadConfigFile reads the declarative config file at root, if present.
// A missing file contributes nothing. A file that exists but cannot be read
// returns a *ConfigError. A file with invalid TOML contributes nothing and
// is logged as a warning; availability wins over strictness here.
func LoadConfigFile(root string, logger *zap.Logger) (ext, dir []string, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	path := filepath.Join(root, ConfigFileName)
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		if errors.Is(readErr, fs.ErrNotExist) {
			logger.Debug("no config file at root", zap.String("path", path))
			return nil, nil, nil
		}
		return nil, nil, &ConfigError{Path: path, Err: readErr}
	}

	var cfg fileConfig
	if unmarshalErr := toml.Unmarshal(data, &cfg); unmarshalErr != nil {
		logger.Warn("ignoring malformed config file",
			zap.String("path", path),
			zap.Error(unmarshalErr))
		return nil, nil, nil
	}

	logger.Debug("loaded config file",
		zap.String("path", path),
		zap.Strings("ext", cfg.Exclude.Ext),
		zap.Strings("dir", cfg.Exclude.Dir))
	return cfg.Exclude.Ext, cfg.Exclude.Dir, nil
}

// MergeRules combines exclusion rules from the built-in defaults, the CLI,
// and the config file, in that order. All sources are additive; nothing can
// re-include a file a broader rule excludes. Invalid patterns are dropped
// with a warning rather than failing the run.
func MergeRules(cliExt, cliDir, cfgExt, cfgDir []string, isRepo bool, logger *zap.Logger) RuleSet {
	if logger == nil {
		logger = zap.NewNop()
	}
	var rs RuleSet

	// Implicit rules, never user-overridable: the VCS metadata directory
	// (only meaningful when the root is a repository) and the config file
	// itself.
	if isRepo {
		rs.Directories = append(rs.Directories, DirectoryRule{Name: ".git"})
	}
	rs.Extensions = append(rs.Extensions, ExtensionRule{Pattern: ConfigFileName})

	for _, source := range [][]string{cliExt, cfgExt} {
		for _, pattern := range source {
			rule, ok := NewExtensionRule(pattern)
			if !ok {
				logger.Warn("dropping empty extension pattern")
				continue
			}
			rs.Extensions = append(rs.Extensions, rule)
		}
	}
	for _, source := range [][]string{cliDir, cfgDir} {
		for _, name := range source {
			rule, ok := NewDirectoryRule(name)
			if !ok {
				logger.Warn("dropping invalid directory exclusion", zap.String("name", name))
				continue
			}
			rs.Directories = append(rs.Directories, rule)
		}
	}

	logger.Debug("merged exclusion rules",
		zap.Int("extensionRules", len(rs.Extensions)),
		zap.Int("directoryRules", len(rs.Directories)))
	return rs
}
