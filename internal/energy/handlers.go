package energy

import (
	"encoding/json"
	"net/http"

	"neura-os-backend/internal/web"
)

type calculateRequest struct {
	Sleep     web.Number `json:"sleep"`
	Training  web.Number `json:"training"`
	Focus     web.Number `json:"focus"`
	Nutrition web.Number `json:"nutrition"`
}

type calculateResponse struct {
	Energy int    `json:"energy"`
	Label  string `json:"label"`
}

// PostCalculate handles POST /api/energy/calculate.
// This endpoint never fails on bad input: missing or non-numeric fields
// score as 0, and a malformed body scores as all zeros.
func PostCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	value := Score(
		float64(req.Sleep),
		float64(req.Training),
		float64(req.Focus),
		float64(req.Nutrition),
	)

	web.JSON(w, http.StatusOK, calculateResponse{
		Energy: value,
		Label:  Label(&value),
	})
}
