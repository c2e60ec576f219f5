package validation

import "regexp"

// donorEmailRe matches Express: /^[a-zA-Z0-9._%+-]+@gmail\.com$/
var donorEmailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@gmail\.com$`)

// registrationEmailRe matches Express: /^[^\s@]+@gmail\.com$/
var registrationEmailRe = regexp.MustCompile(`^[^\s@]+@gmail\.com$`)

// IsValidDonorEmail reports whether email satisfies the restricted donor
// address pattern used on donation submission.
func IsValidDonorEmail(email string) bool {
	return donorEmailRe.MatchString(email)
}

// IsValidRegistrationEmail reports whether email satisfies the broader
// pattern used for event registrations (still restricted to one domain).
func IsValidRegistrationEmail(email string) bool {
	return registrationEmailRe.MatchString(email)
}

// Join-team enums (Mongoose schema parity).
var joinTeamYears = map[string]bool{"1": true, "2": true, "3": true, "4": true}

var joinTeamInterests = map[string]bool{
	"collection":   true,
	"sorting":      true,
	"distribution": true,
	"awareness":    true,
	"event":        true,
}

// IsValidJoinTeamYear reports whether year is a valid academic year.
func IsValidJoinTeamYear(year string) bool {
	return joinTeamYears[year]
}

// IsValidJoinTeamInterest reports whether interest is a recognized area.
func IsValidJoinTeamInterest(interest string) bool {
	return joinTeamInterests[interest]
}
