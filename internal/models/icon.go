package models

import "encoding/json"

// Icon is the closed set of icons a card may reference
type Icon int

const (
	IconNone Icon = iota
	IconStar
	IconCode
	IconComputer
	IconSmartphone
	IconDNS
	IconStorage
	IconCloud
	IconTrophy
	IconMail
	IconCalendar
	IconLocation
	IconGitHub
	IconLinkedIn
	IconX
	IconJavaScript
	IconReact
	IconPython
	IconNodeJS
	IconMongoDB
	IconAmazon

	iconCount
)

// iconNames are the names used in the portfolio document
var iconNames = [iconCount]string{
	IconNone:       "",
	IconStar:       "MdStar",
	IconCode:       "MdCode",
	IconComputer:   "MdComputer",
	IconSmartphone: "MdSmartphone",
	IconDNS:        "MdDns",
	IconStorage:    "MdStorage",
	IconCloud:      "MdCloud",
	IconTrophy:     "MdEmojiEvents",
	IconMail:       "MdMail",
	IconCalendar:   "MdCalendarToday",
	IconLocation:   "MdLocationOn",
	IconGitHub:     "SiGithub",
	IconLinkedIn:   "SiLinkedin",
	IconX:          "SiX",
	IconJavaScript: "SiJavascript",
	IconReact:      "SiReact",
	IconPython:     "SiPython",
	IconNodeJS:     "SiNodedotjs",
	IconMongoDB:    "SiMongodb",
	IconAmazon:     "SiAmazon",
}

// Icons returns every icon except IconNone
func Icons() []Icon {
	icons := make([]Icon, 0, iconCount-1)
	for i := IconNone + 1; i < iconCount; i++ {
		icons = append(icons, i)
	}
	return icons
}

// ParseIcon maps a document icon name to an Icon. Unknown names map to
// IconNone.
func ParseIcon(name string) Icon {
	for i, n := range iconNames {
		if n != "" && n == name {
			return Icon(i)
		}
	}
	return IconNone
}

// Valid reports whether the icon is inside the closed set
func (i Icon) Valid() bool {
	return i >= IconNone && i < iconCount
}

func (i Icon) String() string {
	if !i.Valid() {
		return ""
	}
	return iconNames[i]
}

// MarshalJSON writes the document name of the icon
func (i Icon) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// UnmarshalJSON reads a document icon name
func (i *Icon) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*i = ParseIcon(name)
	return nil
}
