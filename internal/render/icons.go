package render

import (
	"fmt"
	"html/template"

	"tahiru.dev/internal/models"
)

// iconPath returns the 24x24 SVG path of an icon. Every icon in the
// models set has a path; IconNone and values outside the set have none.
func iconPath(i models.Icon) string {
	switch i {
	case models.IconStar:
		return "M12 17.27L18.18 21l-1.64-7.03L22 9.24l-7.19-.61L12 2 9.19 8.63 2 9.24l5.46 4.73L5.82 21z"
	case models.IconCode:
		return "M9.4 16.6L4.8 12l4.6-4.6L8 6l-6 6 6 6 1.4-1.4zm5.2 0l4.6-4.6-4.6-4.6L16 6l6 6-6 6-1.4-1.4z"
	case models.IconComputer:
		return "M20 18c1.1 0 1.99-.9 1.99-2L22 6c0-1.1-.9-2-2-2H4c-1.1 0-2 .9-2 2v10c0 1.1.9 2 2 2H0v2h24v-2h-4zM4 6h16v10H4V6z"
	case models.IconSmartphone:
		return "M17 1.01L7 1c-1.1 0-2 .9-2 2v18c0 1.1.9 2 2 2h10c1.1 0 2-.9 2-2V3c0-1.1-.9-1.99-2-1.99zM17 19H7V5h10v14z"
	case models.IconDNS:
		return "M20 13H4c-.55 0-1 .45-1 1v6c0 .55.45 1 1 1h16c.55 0 1-.45 1-1v-6c0-.55-.45-1-1-1zM20 3H4c-.55 0-1 .45-1 1v6c0 .55.45 1 1 1h16c.55 0 1-.45 1-1V4c0-.55-.45-1-1-1z"
	case models.IconStorage:
		return "M2 20h20v-4H2v4zm2-3h2v2H4v-2zM2 4v4h20V4H2zm4 3H4V5h2v2zm-4 7h20v-4H2v4zm2-3h2v2H4v-2z"
	case models.IconCloud:
		return "M19.35 10.04C18.67 6.59 15.64 4 12 4 9.11 4 6.6 5.64 5.35 8.04 2.34 8.36 0 10.91 0 14c0 3.31 2.69 6 6 6h13c2.76 0 5-2.24 5-5 0-2.64-2.05-4.78-4.65-4.96z"
	case models.IconTrophy:
		return "M19 5h-2V3H7v2H5c-1.1 0-2 .9-2 2v1c0 2.55 1.92 4.63 4.39 4.94.63 1.5 1.98 2.63 3.61 2.96V19H7v2h10v-2h-4v-3.1c1.63-.33 2.98-1.46 3.61-2.96C19.08 12.63 21 10.55 21 8V7c0-1.1-.9-2-2-2z"
	case models.IconMail:
		return "M20 4H4c-1.1 0-2 .9-2 2v12c0 1.1.9 2 2 2h16c1.1 0 2-.9 2-2V6c0-1.1-.9-2-2-2zm0 4l-8 5-8-5V6l8 5 8-5v2z"
	case models.IconCalendar:
		return "M20 3h-1V1h-2v2H7V1H5v2H4c-1.1 0-2 .9-2 2v16c0 1.1.9 2 2 2h16c1.1 0 2-.9 2-2V5c0-1.1-.9-2-2-2zm0 18H4V8h16v13z"
	case models.IconLocation:
		return "M12 2C8.13 2 5 5.13 5 9c0 5.25 7 13 7 13s7-7.75 7-13c0-3.87-3.13-7-7-7zm0 9.5a2.5 2.5 0 010-5 2.5 2.5 0 010 5z"
	case models.IconGitHub:
		return "M12 .3a12 12 0 00-3.8 23.4c.6.1.8-.3.8-.6v-2c-3.3.7-4-1.6-4-1.6-.6-1.4-1.4-1.8-1.4-1.8-1-.7.1-.7.1-.7 1.2.1 1.8 1.2 1.8 1.2 1 1.8 2.8 1.3 3.5 1 .1-.8.4-1.3.7-1.6-2.7-.3-5.5-1.3-5.5-6 0-1.2.5-2.3 1.3-3.1-.2-.4-.6-1.6 0-3.2 0 0 1-.3 3.4 1.2a11.5 11.5 0 016 0C17.3 4.7 18.3 5 18.3 5c.7 1.6.2 2.9.1 3.2.8.8 1.3 1.9 1.3 3.2 0 4.6-2.8 5.6-5.5 5.9.4.4.8 1.1.8 2.2v3.3c0 .3.2.7.8.6A12 12 0 0012 .3"
	case models.IconLinkedIn:
		return "M20.45 20.45h-3.56v-5.57c0-1.33-.02-3.04-1.85-3.04-1.85 0-2.14 1.45-2.14 2.94v5.67H9.35V9h3.41v1.56h.05c.48-.9 1.64-1.85 3.37-1.85 3.6 0 4.27 2.37 4.27 5.46v6.28zM5.34 7.43a2.06 2.06 0 110-4.13 2.06 2.06 0 010 4.13zM7.12 20.45H3.56V9h3.56v11.45zM22.22 0H1.77C.79 0 0 .77 0 1.73v20.54C0 23.23.79 24 1.77 24h20.45c.98 0 1.78-.77 1.78-1.73V1.73C24 .77 23.2 0 22.22 0z"
	case models.IconX:
		return "M18.9 1.15h3.68l-8.04 9.19L24 22.85h-7.4l-5.8-7.58-6.63 7.58H.49l8.6-9.83L0 1.15h7.59l5.24 6.93 6.07-6.93zm-1.29 19.5h2.04L6.48 3.24H4.3z"
	case models.IconJavaScript:
		return "M0 0h24v24H0V0zm22.03 18.28c-.17-1.1-.89-2.02-3.02-2.88-.74-.35-1.56-.59-1.81-1.15-.09-.33-.1-.51-.04-.71.15-.65.92-.85 1.52-.67.39.12.75.42.98.9 1.04-.68 1.04-.68 1.77-1.13-.27-.42-.41-.61-.59-.79-.63-.7-1.47-1.06-2.83-1.03l-.7.09c-.68.17-1.32.52-1.7 1-1.13 1.29-.81 3.54.57 4.47 1.35 1.02 3.34 1.24 3.6 2.2.24 1.17-.87 1.55-1.97 1.41-.81-.18-1.26-.59-1.76-1.34l-1.83 1.05c.21.48.45.68.8 1.09 1.74 1.75 6.1 1.66 6.88-1.02.03-.09.24-.71.07-1.68z"
	case models.IconReact:
		return "M12 10.11a1.87 1.87 0 110 3.74 1.87 1.87 0 010-3.74zM7.37 20c.63.38 2.01-.2 3.6-1.7-.52-.59-1.03-1.23-1.51-1.9a22.7 22.7 0 01-2.4-.36c-.51 2.14-.32 3.61.31 3.96zm.71-5.74l-.29-.51c-.11.29-.22.58-.29.86.27.06.57.11.88.16l-.3-.51zm6.54-.76l.81-1.5-.81-1.5c-.3-.53-.62-1-.91-1.47C13.17 9 12.6 9 12 9s-1.17 0-1.71.03c-.29.47-.61.94-.91 1.47L8.57 12l.81 1.5c.3.53.62 1 .91 1.47.54.03 1.11.03 1.71.03s1.17 0 1.71-.03c.29-.47.61-.94.91-1.47z"
	case models.IconPython:
		return "M14.25.18l.9.2.73.26.59.3.45.32.34.34.25.34.16.33.1.3.04.26.02.2-.01.13V8.5l-.05.63-.13.55-.21.46-.26.38-.3.31-.33.25-.35.19-.35.14-.33.1-.3.07-.26.04-.21.02H8.77l-.69.05-.59.14-.5.22-.41.27-.33.32-.27.35-.2.36-.15.37-.1.35-.07.32-.04.27-.02.21v3.06H3.17l-.21-.03-.28-.07-.32-.12-.35-.18-.36-.26-.36-.36-.35-.46-.32-.59-.28-.73-.21-.88-.14-1.05-.05-1.23.06-1.22.16-1.04.24-.87.32-.71.36-.57.4-.44.42-.33.42-.24.4-.16.36-.1.32-.05.24-.01h.16l.06.01h8.16v-.83H6.18l-.01-2.75-.02-.37.05-.34.11-.31.17-.28.25-.26.31-.23.38-.2.44-.18.51-.15.58-.12.64-.1.71-.06.77-.04.84-.02 1.27.05z"
	case models.IconNodeJS:
		return "M11.998 24c-.321 0-.641-.084-.922-.247l-2.936-1.737c-.438-.245-.224-.332-.08-.383.585-.203.703-.25 1.328-.604.065-.037.151-.023.218.017l2.256 1.339a.29.29 0 00.272 0l8.795-5.076a.277.277 0 00.134-.238V6.921a.283.283 0 00-.137-.242l-8.791-5.072a.278.278 0 00-.271 0L3.075 6.68a.284.284 0 00-.139.241v10.15a.27.27 0 00.139.235l2.409 1.392c1.307.654 2.108-.116 2.108-.89V7.787c0-.142.114-.253.256-.253h1.115c.139 0 .255.112.255.253v10.021c0 1.745-.95 2.745-2.604 2.745-.508 0-.909 0-2.026-.551L2.28 18.675a1.857 1.857 0 01-.922-1.604V6.921c0-.659.353-1.275.922-1.603L11.076.236a1.932 1.932 0 011.846 0l8.794 5.082c.57.329.924.944.924 1.603v10.15a1.86 1.86 0 01-.924 1.604l-8.794 5.078c-.28.163-.599.247-.924.247z"
	case models.IconMongoDB:
		return "M17.19 9.56c-1.26-5.58-4.25-7.42-4.57-8.12-.35-.49-.7-1.36-.7-1.36l-.02-.08c-.04.5-.06.69-.53 1.19-.73.57-4.48 3.72-4.79 10.12-.28 5.97 4.31 9.5 4.93 9.95l.07.05c.01.15.03.31.05.47l.24 1.22.55-.01.2-1.51.06-.15c.25-.23 5.84-3.57 4.51-11.77z"
	case models.IconAmazon:
		return "M.05 18.13c.07-.12.19-.12.36-.02 3.89 2.26 8.13 3.39 12.71 3.39 3.06 0 6.08-.57 9.06-1.71l.34-.15c.15-.06.25-.1.32-.13.25-.1.43-.05.56.15.12.2.08.38-.13.55-.27.19-.61.42-1.02.66-1.27.76-2.69 1.34-4.26 1.76a17.9 17.9 0 01-4.58.62c-2.35 0-4.57-.41-6.66-1.23a18.3 18.3 0 01-5.6-3.48c-.08-.07-.12-.13-.12-.2 0-.04.02-.08.05-.12z"
	}
	return ""
}

// iconSVG renders an icon as inline SVG, or nothing for IconNone
func iconSVG(i models.Icon, class string) template.HTML {
	path := iconPath(i)
	if path == "" {
		return ""
	}
	return template.HTML(fmt.Sprintf(
		`<svg class="%s" viewBox="0 0 24 24" fill="currentColor" aria-hidden="true"><path d="%s"/></svg>`,
		template.HTMLEscapeString(class), path,
	))
}
