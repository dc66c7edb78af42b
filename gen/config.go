package gen

import (
	"go/token"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
	"github.com/kirsle/configdir"

	"github.com/grahambates/m68kdecode/internal/log"
)

// Config controls the shape of the generated decoder.
type Config struct {
	Package     string   `toml:"package"`
	EntryPoint  string   `toml:"entry_point"`
	Operands    []string `toml:"operands"` // operand slots, in Instruction.Operands order
	OperandType string   `toml:"operand_type"`
	ExtraType   string   `toml:"extra_type"`
	Imports     []string `toml:"imports"`
}

// ConfigFilename is the name of the configuration file looked up next to
// the table.
const ConfigFilename = "gendecoder.toml"

// DefaultConfig returns the configuration used for the keys a config file
// doesn't set.
func DefaultConfig() Config {
	return Config{
		Package:     "decoder",
		EntryPoint:  "Decode",
		Operands:    []string{"src", "dst"},
		OperandType: "Operand",
		ExtraType:   "Extra",
	}
}

// UserConfigPath returns the path of the per-user configuration file.
func UserConfigPath() string {
	return filepath.Join(configdir.LocalConfig("gendecoder"), "config.toml")
}

// LoadConfig decodes the TOML file at path on top of the defaults. Unknown
// keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "config")
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, errors.Errorf("config %s: unknown key %q", path, undec[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}

	log.ModGen.InfoZ("config loaded").String("path", path).End()
	return cfg, nil
}

// FindConfig loads, in order of preference, the file at explicit, the
// gendecoder.toml next to the table, then the per-user configuration file.
// If explicit is empty and no file exists, the defaults are returned.
func FindConfig(explicit, tablePath string) (Config, error) {
	if explicit != "" {
		return LoadConfig(explicit)
	}

	candidates := []string{
		filepath.Join(filepath.Dir(tablePath), ConfigFilename),
		UserConfigPath(),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadConfig(path)
	}

	log.ModGen.DebugZ("no config file, using defaults").End()
	return DefaultConfig(), nil
}

// reserved identifiers are declared by the generated code itself.
var reserved = map[string]bool{
	"cs":   true,
	"size": true,
	"w0":   true,
}

// Validate checks that cfg can produce a compilable package.
func (cfg Config) Validate() error {
	if !token.IsIdentifier(cfg.Package) {
		return errors.Errorf("package %q is not an identifier", cfg.Package)
	}
	if !token.IsIdentifier(cfg.EntryPoint) {
		return errors.Errorf("entry_point %q is not an identifier", cfg.EntryPoint)
	}
	if len(cfg.Operands) == 0 {
		return errors.New("no operand slots")
	}

	seen := map[string]bool{ExtraSlot: true}
	for _, op := range cfg.Operands {
		switch {
		case !token.IsIdentifier(op):
			return errors.Errorf("operand slot %q is not an identifier", op)
		case reserved[op] || seen[op]:
			return errors.Errorf("operand slot %q is already declared", op)
		}
		seen[op] = true
	}
	if cfg.OperandType == "" || cfg.ExtraType == "" {
		return errors.New("operand_type and extra_type are required")
	}
	return nil
}
