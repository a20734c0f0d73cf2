package handlers

import (
	"net/http"

	"github.com/gridironforge/roster-api/internal/logic"
	"github.com/gridironforge/roster-api/internal/models"
	"github.com/gridironforge/roster-api/internal/profiles"
)

// GenerateProspect creates one draft-eligible player and returns its
// projection.
func (h *Handler) GenerateProspect(w http.ResponseWriter, r *http.Request) {
	var req models.ProspectRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	pos := profiles.Position(req.Position)
	if req.Position != "" && !pos.Valid() {
		h.errorResponse(w, http.StatusBadRequest, "Unknown position: "+req.Position)
		return
	}
	tier := profiles.Tier(req.Tier)
	if req.Tier != "" && !tier.Valid() {
		h.errorResponse(w, http.StatusBadRequest, "Unknown tier: "+req.Tier)
		return
	}
	if !h.checkScheme(w, req.Scheme) {
		return
	}

	p := h.assembler.Generate(h.requestSource(), logic.GenerateOptions{
		Position:   pos,
		Tier:       tier,
		AgeContext: profiles.AgeDraftEligible,
	})
	h.jsonResponse(w, http.StatusOK, h.projector.Project(p, req.Scheme))
}

// GenerateDraftClass creates a full prospect class.
func (h *Handler) GenerateDraftClass(w http.ResponseWriter, r *http.Request) {
	var req models.DraftClassRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}
	if !h.checkScheme(w, req.Scheme) {
		return
	}

	class, err := h.builder.BuildDraftClass(r.Context(), h.requestSource(), req.Size)
	if err != nil {
		h.logger.Errorw("draft class generation failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Generation failed")
		return
	}
	h.jsonResponse(w, http.StatusOK, h.projectAll(class, req.Scheme))
}

// GenerateRoster creates one team's 53-man roster.
func (h *Handler) GenerateRoster(w http.ResponseWriter, r *http.Request) {
	var req models.RosterRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}
	if !h.checkScheme(w, req.Scheme) {
		return
	}

	roster, err := h.builder.BuildRoster(r.Context(), h.requestSource(), req.TeamID)
	if err != nil {
		h.logger.Errorw("roster generation failed", "team", req.TeamID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Generation failed")
		return
	}
	h.jsonResponse(w, http.StatusOK, &models.RosterResponse{
		TeamID:  roster.TeamID,
		Players: h.projectAll(roster.Players, req.Scheme),
	})
}

// GenerateLeague creates a full league of rosters.
func (h *Handler) GenerateLeague(w http.ResponseWriter, r *http.Request) {
	var req models.LeagueRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	rosters, err := h.builder.BuildLeague(r.Context(), h.requestSource(), req.Teams)
	if err != nil {
		h.logger.Errorw("league generation failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Generation failed")
		return
	}

	resp := &models.LeagueResponse{Teams: len(rosters)}
	for _, roster := range rosters {
		resp.Players += len(roster.Players)
		resp.Rosters = append(resp.Rosters, &models.RosterResponse{
			TeamID:  roster.TeamID,
			Players: h.projectAll(roster.Players, ""),
		})
	}
	h.jsonResponse(w, http.StatusOK, resp)
}

// SchemeCatalog lists the scheme names a client may request evaluations
// for.
func (h *Handler) SchemeCatalog(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string][]string{"schemes": profiles.SchemeNames()})
}

func (h *Handler) checkScheme(w http.ResponseWriter, scheme string) bool {
	if scheme == "" {
		return true
	}
	if _, ok := profiles.SchemeByName(scheme); !ok {
		h.errorResponse(w, http.StatusBadRequest, "Unknown scheme: "+scheme)
		return false
	}
	return true
}

func (h *Handler) projectAll(players []*models.Player, scheme string) []*models.PlayerViewModel {
	views := make([]*models.PlayerViewModel, len(players))
	for i, p := range players {
		views[i] = h.projector.Project(p, scheme)
	}
	return views
}
