package domain

// Campaign represents an advertising campaign imported from the ad platform.
// Campaigns are created by bulk import and only ever renamed by this service.
type Campaign struct {
	ID   int64
	Name string
	Type string // SEARCH, DISPLAY, VIDEO, ...
}

// AdGroup groups ads under a single campaign.
type AdGroup struct {
	ID         int64
	Name       string
	CampaignID int64
}
