package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/ValentinKolb/stubDB/lib/codec"
	"github.com/ValentinKolb/stubDB/lib/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupStoreFlags adds the common simulation flags to a command
func SetupStoreFlags(cmd *cobra.Command) {
	key := "delay"
	cmd.PersistentFlags().Duration(key, 0, WrapString("Simulated delay applied to every operation category (e.g. 150ms)"))

	key = "delay-delete"
	cmd.PersistentFlags().Duration(key, 0, WrapString("Simulated delay for delete operations (overrides --delay)"))

	key = "delay-fetch"
	cmd.PersistentFlags().Duration(key, 0, WrapString("Simulated delay for fetch and stream operations (overrides --delay)"))

	key = "delay-insert"
	cmd.PersistentFlags().Duration(key, 0, WrapString("Simulated delay for insert operations (overrides --delay)"))

	key = "delay-update"
	cmd.PersistentFlags().Duration(key, 0, WrapString("Simulated delay for update operations (overrides --delay)"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("stubdb")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetDelayProfile builds a delay profile from the configured flags.
// Per-category flags override the base --delay value. If no delay is
// configured at all, nil is returned (no simulated delay).
func GetDelayProfile() (*store.DelayProfile, error) {
	base := viper.GetDuration("delay")

	pick := func(key string) time.Duration {
		if d := viper.GetDuration(key); d != 0 {
			return d
		}
		return base
	}

	deleteD := pick("delay-delete")
	fetchD := pick("delay-fetch")
	insertD := pick("delay-insert")
	updateD := pick("delay-update")

	if deleteD == 0 && fetchD == 0 && insertD == 0 && updateD == 0 {
		return nil, nil
	}

	return store.NewDelayProfileFor(deleteD, fetchD, insertD, updateD)
}

// GetCodec creates a codec based on configuration
func GetCodec() (codec.ICodec, error) {
	switch viper.GetString("codec") {
	case "json":
		return codec.NewJSONCodec(), nil
	case "gob":
		return codec.NewGOBCodec(), nil
	default:
		return nil, fmt.Errorf("invalid codec %s", viper.GetString("codec"))
	}
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
