package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
)

func toError(err error) gen.ErrorResp {
	errResp := gen.ErrorResp{}

	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
	)
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = gen.BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = gen.NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	default:
		errResp.Error.Code = gen.INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toRecommendation(r domain.Recommendation) gen.Recommendation {
	return gen.Recommendation{
		Url:     r.URL,
		Product: r.Product,
		Score:   r.Score,
	}
}

func toRecommendResp(result domain.PipelineResult) gen.RecommendResp {
	resp := gen.RecommendResp{
		CustomerId: result.CustomerID,
		UserInterests: gen.UserInterests{
			InterestName:        result.Interests.InterestName,
			InterestDescription: result.Interests.InterestDescription,
		},
		SelectionApproach: gen.SelectionApproach{
			TopAd: gen.Recommendation{
				Url:     result.AdURL,
				Product: result.Product,
				Score:   result.Score,
			},
			TopRecommendations: make([]gen.Recommendation, 0, len(result.Shortlist)),
			PlayAd:             result.PlayAd,
		},
	}
	for _, rec := range result.Shortlist {
		resp.SelectionApproach.TopRecommendations = append(resp.SelectionApproach.TopRecommendations, toRecommendation(rec))
	}
	return resp
}
