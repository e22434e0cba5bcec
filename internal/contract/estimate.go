package contract

import (
	"time"

	"github.com/alexanderramin/deadline/internal/domain"
)

// EstimateRequest asks for the three scenario estimates of one project setup.
type EstimateRequest struct {
	Setup *domain.ProjectSetup
	// StartDate overrides Setup.StartDate when set.
	StartDate *time.Time
}

func NewEstimateRequest(setup *domain.ProjectSetup) EstimateRequest {
	return EstimateRequest{Setup: setup}
}

// EstimateResponse carries one Estimate per scenario.
type EstimateResponse struct {
	RunID     string
	StartDate time.Time
	Estimates map[domain.Scenario]domain.Estimate
}

// Get returns the estimate for a scenario and whether it was present.
func (r *EstimateResponse) Get(s domain.Scenario) (domain.Estimate, bool) {
	e, ok := r.Estimates[s]
	return e, ok
}

type EstimateErrorCode string

const (
	EstimateErrInvalidSetup EstimateErrorCode = "INVALID_SETUP"
)

type EstimateError struct {
	Code    EstimateErrorCode
	Message string
	Err     error
}

func (e *EstimateError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *EstimateError) Unwrap() error {
	return e.Err
}
