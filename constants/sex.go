package constants

import "strings"

// Sex is the patient sex as reported by the lab.
type Sex string

const (
	Male       Sex = "Male"
	Female     Sex = "Female"
	SexUnknown Sex = ""
)

// ParseSex maps the Russian/Kazakh spellings found in lab reports onto the
// canonical enum. Unrecognized input maps to SexUnknown rather than failing.
func ParseSex(raw string) Sex {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "м", "муж", "мужской", "ер", "male", "m":
		return Male
	case "ж", "жен", "женский", "әйел", "female", "f":
		return Female
	}
	return SexUnknown
}
