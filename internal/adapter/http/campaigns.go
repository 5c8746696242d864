package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"adperf/internal/core/port"
)

const (
	msgNoInput       = "No input data provided."
	msgMissingFields = "Missing required fields: campaign_id and new_name."
)

// handleListCampaigns returns every campaign with its ad group names and
// cost rollups.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.fail(w, r, keyMessage, msgInvalid, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handleRenameCampaign expects a JSON object with campaign_id and new_name.
// An empty or unparsable body is reported separately from missing fields;
// a zero id, a non-integer id or an empty name count as missing.
func (h *Handler) handleRenameCampaign(w http.ResponseWriter, r *http.Request) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body) == 0 {
		h.reject(w, r, keyMessage, msgNoInput)
		return
	}

	var req port.RenameReq
	if raw, ok := body["campaign_id"]; ok {
		_ = json.Unmarshal(raw, &req.CampaignID)
	}
	if raw, ok := body["new_name"]; ok {
		_ = json.Unmarshal(raw, &req.NewName)
	}
	if req.CampaignID == 0 || req.NewName == "" {
		h.reject(w, r, keyMessage, msgMissingFields)
		return
	}

	if err := h.svc.RenameCampaign(r.Context(), req); err != nil {
		h.fail(w, r, keyMessage, msgMissingFields, err)
		return
	}
	h.logger.Info("campaign renamed",
		slog.String("request_id", requestIDFrom(r.Context())),
		slog.Int64("campaign_id", req.CampaignID),
	)
	h.writeJSON(w, http.StatusOK, map[string]string{keyMessage: "Campaign name updated successfully."})
}
