package giveaway

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// durationPattern acepta una cantidad entera con unidad, con "s" plural
// opcional: 10m, 2h, 1day, 30secs. No admite decimales ni unidades
// compuestas.
var durationPattern = regexp.MustCompile(`^(?i)(\d+)(s|sec|m|min|h|hr|hour|d|day)s?$`)

// ParseDuration convierte un texto como "10m" o "2hours" en una duración.
// Rechaza cero, negativos y cualquier cosa fuera del patrón.
func ParseDuration(raw string) (time.Duration, error) {
	m := durationPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, newValidationError("duración", fmt.Sprintf("formato inválido: %q (usa 10m, 2h, 1d...)", raw))
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, newValidationError("duración", "cantidad fuera de rango")
	}
	if n <= 0 {
		return 0, newValidationError("duración", "debe ser mayor que cero")
	}

	var unit time.Duration
	switch strings.ToLower(m[2]) {
	case "s", "sec":
		unit = time.Second
	case "m", "min":
		unit = time.Minute
	case "h", "hr", "hour":
		unit = time.Hour
	case "d", "day":
		unit = 24 * time.Hour
	}
	return time.Duration(n) * unit, nil
}

// FormatDuration renders a duration in the compact style used in
// announcements: "2d 3h", "10m", "45s".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	mins := d / time.Minute
	d -= mins * time.Minute
	secs := d / time.Second

	parts := make([]string, 0, 4)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if mins > 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}
	if secs > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}
	return strings.Join(parts, " ")
}
