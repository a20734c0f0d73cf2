package models

// Request payloads for the generation endpoints. Field constraints are
// enforced with go-playground/validator in the handlers; position, tier
// and scheme names are checked against the profile tables there since the
// catalogs are data, not tags.

// ProspectRequest asks for one generated player.
type ProspectRequest struct {
	Position string `json:"position" validate:"omitempty,alphanum,max=3"`
	Tier     string `json:"tier" validate:"omitempty,alpha,max=10"`
	Scheme   string `json:"scheme" validate:"omitempty,max=32"`
}

// DraftClassRequest asks for a draft class.
type DraftClassRequest struct {
	Size   int    `json:"size" validate:"omitempty,min=1,max=1000"`
	Scheme string `json:"scheme" validate:"omitempty,max=32"`
}

// RosterRequest asks for one team's full roster.
type RosterRequest struct {
	TeamID string `json:"teamId" validate:"required,max=64"`
	Scheme string `json:"scheme" validate:"omitempty,max=32"`
}

// LeagueRequest asks for a full league of rosters.
type LeagueRequest struct {
	Teams int `json:"teams" validate:"omitempty,min=2,max=32"`
}

// RosterResponse is a projected roster.
type RosterResponse struct {
	TeamID  string             `json:"teamId"`
	Players []*PlayerViewModel `json:"players"`
}

// LeagueResponse is a projected league.
type LeagueResponse struct {
	Teams   int               `json:"teams"`
	Players int               `json:"players"`
	Rosters []*RosterResponse `json:"rosters"`
}
