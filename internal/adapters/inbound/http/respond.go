package http

import (
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/adapters/inbound/http/gen"
	"github.com/goccy/go-json"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err gen.ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case gen.BADREQUEST:
		statusCode = http.StatusBadRequest
	case gen.NOTFOUND:
		statusCode = http.StatusNotFound
	}
	respondJSON(w, statusCode, err)
}

// respondParamError reports a path parameter the router could not bind.
func respondParamError(w http.ResponseWriter, _ *http.Request, err error) {
	errResp := gen.ErrorResp{}
	errResp.Error.Code = gen.BADREQUEST
	errResp.Error.Message = fmt.Sprintf("invalid request: %v", err)
	respondError(w, errResp)
}
