package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/deadline/internal/domain"
	"github.com/alexanderramin/deadline/internal/importer"
)

type importService struct {
	observer UseCaseObserver
}

func NewImportService(observers ...UseCaseObserver) ImportService {
	return &importService{observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) LoadSetup(ctx context.Context, filePath string, today time.Time) (setup *domain.ProjectSetup, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "load_setup",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"path": filePath},
		})
	}()

	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading setup file: %w", err)
	}
	return s.importSchema(schema, today)
}

func (s *importService) SetupFromSchema(ctx context.Context, schema *importer.ImportSchema, today time.Time) (*domain.ProjectSetup, error) {
	return s.importSchema(schema, today)
}

func (s *importService) importSchema(schema *importer.ImportSchema, today time.Time) (*domain.ProjectSetup, error) {
	schema = importer.Normalize(schema)
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	setup, err := importer.Convert(schema, today)
	if err != nil {
		return nil, fmt.Errorf("converting setup file: %w", err)
	}
	return setup, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("setup validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
