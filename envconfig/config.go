// config.go - Konfiguration ueber Environment-Variablen
//
// Dieses Modul enthaelt:
// - BlockSize: Standard-Blockgroesse fuer die CLI (S2D2S_BLOCK_SIZE)
// - LogLevel: Gibt Log-Level zurueck (S2D2S_DEBUG)
// - Crop: Standard fuer --crop (S2D2S_CROP)
// - Normalize: Standard-Normalisierung fuer die CLI (S2D2S_NORMALIZE)
// - Var: Liest eine Variable ohne Quotes und Leerzeichen
//
// Getter-Fabriken und AsMap/Values liegen in config_utils.go
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// defaultBlockSize wird verwendet wenn S2D2S_BLOCK_SIZE fehlt oder 0 ist
const defaultBlockSize = 2

// blockSize liest S2D2S_BLOCK_SIZE
var blockSize = Uint("S2D2S_BLOCK_SIZE", defaultBlockSize)

// BlockSize gibt die Standard-Blockgroesse zurueck
// Konfigurierbar via S2D2S_BLOCK_SIZE
// Default: 2
func BlockSize() uint {
	if n := blockSize(); n > 0 {
		return n
	}
	return defaultBlockSize
}

// Crop schneidet Bilder standardmaessig auf ein Vielfaches der Blockgroesse zu
// Konfigurierbar via S2D2S_CROP
var Crop = Bool("S2D2S_CROP")

// Normalize gibt den Namen der Standard-Normalisierung zurueck
// Konfigurierbar via S2D2S_NORMALIZE (none, imagenet, clip)
// Default: none
func Normalize() string {
	if s := strings.ToLower(Var("S2D2S_NORMALIZE")); s != "" {
		return s
	}
	return "none"
}

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via S2D2S_DEBUG
// - true/1: Debug
// - Ganzzahl n: slog.Level(-4n), z.B. 2 fuer Trace-aehnliche Ausgabe
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("S2D2S_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
