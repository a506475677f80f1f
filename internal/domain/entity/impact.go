package entity

// ImpactStats summarises how many gifts have been recorded.
type ImpactStats struct {
	Donations    int64
	Sponsorships int64
}
