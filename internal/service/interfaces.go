package service

import (
	"context"
	"time"

	"github.com/alexanderramin/deadline/internal/contract"
	"github.com/alexanderramin/deadline/internal/domain"
	"github.com/alexanderramin/deadline/internal/importer"
)

type EstimateService interface {
	Estimate(ctx context.Context, req contract.EstimateRequest) (*contract.EstimateResponse, error)
}

type ImportService interface {
	// LoadSetup reads, validates and converts an input file. today fills in a
	// missing start date.
	LoadSetup(ctx context.Context, filePath string, today time.Time) (*domain.ProjectSetup, error)
	SetupFromSchema(ctx context.Context, schema *importer.ImportSchema, today time.Time) (*domain.ProjectSetup, error)
}
