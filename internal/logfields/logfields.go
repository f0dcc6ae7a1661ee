package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFormat     = "format"
	KeyField      = "field"
	KeyBuildID    = "build_id"
	KeyDurationMS = "duration_ms"
	KeyOverrides  = "overrides"
	KeyAddr       = "addr"
	KeyError      = "error"
)

func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Field(f string) slog.Attr        { return slog.String(KeyField, f) }
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Overrides(n int) slog.Attr       { return slog.Int(KeyOverrides, n) }
func Addr(a string) slog.Attr         { return slog.String(KeyAddr, a) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
