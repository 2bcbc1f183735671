package models

// Badge is the tier label derived from a user's most recent payment
// package. A new payment overwrites the badge unconditionally.
type Badge string

const (
	BadgeBronze   Badge = "Bronze"
	BadgeSilver   Badge = "Silver"
	BadgeGold     Badge = "Gold"
	BadgePlatinum Badge = "Platinum"
)

var badgeForPackage = map[string]Badge{
	"Silver":   BadgeSilver,
	"Gold":     BadgeGold,
	"Platinum": BadgePlatinum,
}

// BadgeForPackage maps a payment package name to the badge it grants.
// Unknown or empty package names fall back to Bronze.
func BadgeForPackage(packageName string) Badge {
	if b, ok := badgeForPackage[packageName]; ok {
		return b
	}
	return BadgeBronze
}
