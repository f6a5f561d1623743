// Package config exposes runtime settings read from the environment.
// There is no configuration file; every setting is an MKPROJECT_* variable
// bound through Viper.
package config

import (
	"strings"

	"github.com/mkproject-labs/mkproject/internal/branding"
	"github.com/spf13/viper"
)

// Setting keys, resolved as MKPROJECT_<KEY> in the environment.
const (
	KeyLanguage = "language"
	KeyVerbose  = "verbose"
)

// Load binds Viper to the MKPROJECT_ environment prefix. Safe to call
// more than once.
func Load() {
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// DefaultLanguage returns the language to use when --language is not
// given. Empty when MKPROJECT_LANGUAGE is unset.
func DefaultLanguage() string {
	return viper.GetString(KeyLanguage)
}

// Verbose reports whether child process output should be streamed to the
// terminal in addition to being captured.
func Verbose() bool {
	return viper.GetBool(KeyVerbose)
}
