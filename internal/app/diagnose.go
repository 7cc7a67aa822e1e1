package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/types"
)

// Diagnose validates the location code, clears any prior diagnosis and
// product results (both are scoped to one diagnosis run), then calls the
// gateway. A non-empty invalid code blocks the request entirely; the
// gateway is never reached.
func (a *App) Diagnose(ctx context.Context, image []byte, locationCode string) (types.DiagnosisResult, error) {
	locationCode = strings.TrimSpace(locationCode)
	if !ValidLocationCode(locationCode) {
		a.mu.Lock()
		a.zipError = MsgInvalidZip
		a.mu.Unlock()
		return types.DiagnosisResult{}, fmt.Errorf("%w: bad location code", ErrValidation)
	}

	a.mu.Lock()
	a.zipError = ""
	a.diagnoseSeq++
	seq := a.diagnoseSeq
	a.diagnosis = nil
	a.products = nil
	a.searchSeq++ // invalidate any product search still in flight
	a.searchState = FlowState{}
	a.diagnoseState = FlowState{Loading: true}
	a.mu.Unlock()

	result, err := a.gw.Diagnose(ctx, image, locationCode)

	a.mu.Lock()
	defer a.mu.Unlock()
	if seq != a.diagnoseSeq {
		log.Printf("diagnose: discarding superseded result (seq %d, current %d)", seq, a.diagnoseSeq)
		return types.DiagnosisResult{}, ErrSuperseded
	}
	if err != nil {
		log.Printf("diagnose: %v", err)
		a.diagnoseState = FlowState{Err: MsgDiagnoseFailed}
		return types.DiagnosisResult{}, err
	}
	a.diagnosis = &result
	a.diagnoseState = FlowState{}
	return result, nil
}

// Diagnosis returns the latest diagnosis, or nil.
func (a *App) Diagnosis() *types.DiagnosisResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.diagnosis
}

// CanSearchProducts reports whether the product-search affordance is
// offered: there is a diagnosis and the plant is not healthy.
func (a *App) CanSearchProducts() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.diagnosis != nil && a.diagnosis.HealthStatus != types.StatusHealthy
}

// SearchProducts looks up treatment products for the current diagnosis.
// It runs under its own loading flag so it neither blocks nor is blocked
// by the diagnosis flow, and it degrades silently: a failure leaves no
// visible error because the feature is supplementary.
func (a *App) SearchProducts(ctx context.Context) (types.SearchResult, error) {
	a.mu.Lock()
	if a.diagnosis == nil || a.diagnosis.HealthStatus == types.StatusHealthy {
		a.mu.Unlock()
		return types.SearchResult{}, fmt.Errorf("%w: product search requires an unhealthy diagnosis", ErrValidation)
	}
	query := a.diagnosis.Diagnosis
	a.searchSeq++
	seq := a.searchSeq
	a.searchState = FlowState{Loading: true}
	a.mu.Unlock()

	result, err := a.gw.SearchProducts(ctx, query)

	a.mu.Lock()
	defer a.mu.Unlock()
	if seq != a.searchSeq {
		log.Printf("products: discarding superseded result (seq %d, current %d)", seq, a.searchSeq)
		return types.SearchResult{}, ErrSuperseded
	}
	a.searchState = FlowState{}
	if err != nil {
		log.Printf("products: %v", err)
		return types.SearchResult{}, err
	}
	a.products = &result
	return result, nil
}

// Products returns the latest product search result, or nil.
func (a *App) Products() *types.SearchResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.products
}
