package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrInvalid = errors.New("config: invalid settings")

var langRe = regexp.MustCompile(`^[a-z]{2,3}(-[A-Za-z0-9]{2,8})*$`)

// Validate normalizes the settings and rejects invalid values.
func (s *Settings) Validate() error {
	s.App.Name = strings.TrimSpace(s.App.Name)
	s.App.Theme = strings.TrimSpace(s.App.Theme)

	lang, ok := NormalizeLanguage(s.App.Language)
	s.App.Language = lang
	if !ok {
		return fmt.Errorf("%w: app.language %q", ErrInvalid, s.App.Language)
	}

	s.App.Direction = strings.ToLower(strings.TrimSpace(s.App.Direction))
	switch s.App.Direction {
	case "ltr", "rtl", "auto":
	default:
		return fmt.Errorf("%w: app.direction %q must be ltr, rtl or auto", ErrInvalid, s.App.Direction)
	}

	s.App.StartupBanner = strings.ToLower(strings.TrimSpace(s.App.StartupBanner))
	if s.App.StartupBanner == "" {
		s.App.StartupBanner = "off"
	}

	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))
	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, s.Log.Level)
	}
	if !s.Log.StdoutOnly && strings.TrimSpace(s.Log.File) == "" {
		return fmt.Errorf("%w: log.file required unless stdout_only", ErrInvalid)
	}
	if s.Log.MaxSizeMB < 0 || s.Log.MaxBackups < 0 || s.Log.MaxAgeDays < 0 {
		return fmt.Errorf("%w: log rotation limits must be >= 0", ErrInvalid)
	}

	if s.Server.BindPort <= 0 || s.Server.BindPort > 65535 {
		return fmt.Errorf("%w: server.bind_port %d", ErrInvalid, s.Server.BindPort)
	}
	if (s.Server.TLSCert == "") != (s.Server.TLSKey == "") {
		return fmt.Errorf("%w: server.tls_cert and server.tls_key must be set together", ErrInvalid)
	}
	if s.Server.ReadTimeoutSec < 0 || s.Server.WriteTimeoutSec < 0 || s.Server.IdleTimeoutSec < 0 || s.Server.RequestTimeoutSec < 0 {
		return fmt.Errorf("%w: server timeouts must be >= 0", ErrInvalid)
	}
	return nil
}

// NormalizeLanguage turns "es_es" into "es-ES" and reports whether the result is a
// well formed language tag.
func NormalizeLanguage(lang string) (string, bool) {
	lang = normalizeLang(lang)
	return lang, len(lang) <= 35 && langRe.MatchString(lang)
}

func normalizeLang(lang string) string {
	parts := strings.FieldsFunc(strings.TrimSpace(lang), func(r rune) bool { return r == '-' || r == '_' })
	if len(parts) == 0 {
		return ""
	}
	parts[0] = strings.ToLower(parts[0])
	for i := 1; i < len(parts); i++ {
		if len(parts[i]) == 2 {
			parts[i] = strings.ToUpper(parts[i])
		}
	}
	return strings.Join(parts, "-")
}
