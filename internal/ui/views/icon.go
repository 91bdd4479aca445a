package views

import (
	"strings"

	"weatherdash/internal/domain"
)

// Icon is the terminal stand-in for the condition image. Label plays the
// role of the image's alt text and always equals the condition text.
type Icon struct {
	Glyph string
	Label string
	URL   string
}

// IconFor builds the icon for a report
func IconFor(r *domain.Report) Icon {
	night := strings.Contains(r.Current.Condition.Icon, "/night/")
	return Icon{
		Glyph: glyphFor(r.Current.Condition.Code, night),
		Label: r.Current.Condition.Text,
		URL:   r.IconURL(),
	}
}

// glyphFor maps WeatherAPI condition codes onto a symbol
func glyphFor(code int, night bool) string {
	switch {
	case code == 1000:
		if night {
			return "☾"
		}
		return "☀"
	case code == 1003:
		return "⛅"
	case code == 1006 || code == 1009:
		return "☁"
	case code == 1030 || code == 1135 || code == 1147:
		return "≡"
	case code == 1087 || (code >= 1273 && code <= 1282):
		return "⛈"
	case code == 1066 || code == 1114 || code == 1117 ||
		(code >= 1210 && code <= 1225) || code == 1255 || code == 1258:
		return "❄"
	case code == 1069 || code == 1072 || (code >= 1150 && code <= 1207) ||
		(code >= 1237 && code <= 1264):
		return "☂"
	case code == 1063:
		return "☂"
	default:
		return "•"
	}
}
