package render

// ThemeStyles are the CSS classes of a social card
type ThemeStyles struct {
	Normal     string
	TextNormal string
	TextHover  string
	IconNormal string
	IconHover  string
}

// ThemeFor returns the styles for a social theme
func ThemeFor(theme string) ThemeStyles {
	switch theme {
	case "github":
		return ThemeStyles{
			Normal:     "bg-gray-50 hover:bg-gray-900 border-gray-200 hover:border-gray-800",
			TextNormal: "text-gray-900",
			TextHover:  "group-hover:text-white",
			IconNormal: "text-gray-600",
			IconHover:  "group-hover:text-white",
		}
	case "linkedin":
		return ThemeStyles{
			Normal:     "bg-blue-50 hover:bg-blue-600 border-blue-200 hover:border-blue-700",
			TextNormal: "text-gray-900",
			TextHover:  "group-hover:text-white",
			IconNormal: "text-gray-600",
			IconHover:  "group-hover:text-white",
		}
	case "twitter":
		return ThemeStyles{
			Normal:     "bg-sky-50 hover:bg-black border-sky-200 hover:border-gray-800",
			TextNormal: "text-gray-900",
			TextHover:  "group-hover:text-white",
			IconNormal: "text-gray-600",
			IconHover:  "group-hover:text-white",
		}
	default:
		return ThemeStyles{
			Normal:     "bg-gray-50 hover:bg-gray-100 border-gray-200 hover:border-gray-300",
			TextNormal: "text-gray-900",
			TextHover:  "group-hover:text-gray-800",
			IconNormal: "text-gray-600",
			IconHover:  "group-hover:text-gray-800",
		}
	}
}
