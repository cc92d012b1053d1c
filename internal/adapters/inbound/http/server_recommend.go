package http

import "net/http"

// RecommendAd handles GET /recommend/{customer_id}.
func (api AdRecommenderServer) RecommendAd(w http.ResponseWriter, r *http.Request, customerId string) {
	params := recommendParams{CustomerID: customerId}
	if err := validateParams(params); err != nil {
		respondError(w, toError(err))
		return
	}

	result, err := api.RecommendAdUseCase.Query(r.Context(), params.CustomerID)
	if err != nil {
		api.Logger.Printf("AdRecommenderServer: recommendation for %s failed: %v", params.CustomerID, err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toRecommendResp(result))
}

// Healthz reports that the server is accepting requests.
func (api AdRecommenderServer) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
