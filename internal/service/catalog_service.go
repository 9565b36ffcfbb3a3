package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"quizmaker/internal/models"
	"quizmaker/internal/validation"
)

const catalogVersion = "1.0"

// CatalogFile is the JSON layout of an exported catalog
type CatalogFile struct {
	Version    string                  `json:"version"`
	ExportedAt time.Time               `json:"exported_at"`
	Tests      []models.TestDefinition `json:"tests"`
}

// CatalogStore is the storage the catalog tool moves tests in and out of
type CatalogStore interface {
	ListTests(ctx context.Context) ([]models.TestDefinition, error)
	SaveTest(ctx context.Context, test *models.TestDefinition) error
	Clear(ctx context.Context) error
}

// CatalogService exports and imports test definitions as JSON
type CatalogService struct {
	store CatalogStore
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

// Export writes every test in the store to outputPath
func (s *CatalogService) Export(ctx context.Context, outputPath string) (int, error) {
	file, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	n, err := s.ExportToWriter(ctx, file)
	if err != nil {
		return 0, err
	}
	log.Printf("Catalog exported to %s: %d tests", outputPath, n)
	return n, nil
}

// ExportToWriter writes every test in the store to w
func (s *CatalogService) ExportToWriter(ctx context.Context, w io.Writer) (int, error) {
	tests, err := s.store.ListTests(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list tests: %w", err)
	}
	if tests == nil {
		tests = []models.TestDefinition{}
	}

	out := CatalogFile{Version: catalogVersion, ExportedAt: time.Now().UTC(), Tests: tests}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return 0, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return len(tests), nil
}

// Import loads tests from inputPath into the store
func (s *CatalogService) Import(ctx context.Context, inputPath string, clear bool) (int, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(ctx, file, clear)
}

// ImportFromReader validates every test in r and then saves them all,
// replacing tests with the same id. With clear set the store is emptied
// first. Nothing is written if any test is invalid.
func (s *CatalogService) ImportFromReader(ctx context.Context, r io.Reader, clear bool) (int, error) {
	var in CatalogFile
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return 0, fmt.Errorf("failed to decode catalog: %w", err)
	}
	log.Printf("Catalog version: %s, exported at: %s, %d tests", in.Version, in.ExportedAt, len(in.Tests))

	seen := make(map[string]bool, len(in.Tests))
	for i := range in.Tests {
		t := &in.Tests[i]
		if err := validation.ValidateRequired("id", t.ID); err != nil {
			return 0, fmt.Errorf("test %d: %w", i, err)
		}
		if seen[t.ID] {
			return 0, fmt.Errorf("test %d: duplicate id %q", i, t.ID)
		}
		seen[t.ID] = true
		if err := validation.ValidateTestDefinition(t); err != nil {
			return 0, fmt.Errorf("test %q: %w", t.ID, err)
		}
	}

	if clear {
		if err := s.store.Clear(ctx); err != nil {
			return 0, fmt.Errorf("failed to clear catalog: %w", err)
		}
	}

	for i := range in.Tests {
		if err := s.store.SaveTest(ctx, &in.Tests[i]); err != nil {
			return i, fmt.Errorf("failed to import test %q: %w", in.Tests[i].ID, err)
		}
	}

	log.Printf("Catalog import completed: %d tests", len(in.Tests))
	return len(in.Tests), nil
}
