package service

import (
	"context"
	"fmt"

	"quizmaker/internal/models"
	"quizmaker/internal/validation"
)

// ErrTestNotFound is returned when a provider has no test for an id
var ErrTestNotFound = models.ErrTestNotFound

// TestProvider supplies test definitions by id
type TestProvider interface {
	GetTest(ctx context.Context, id string) (*models.TestDefinition, error)
}

// StaticProvider serves one built-in test for every id
type StaticProvider struct {
	test models.TestDefinition
}

// NewStaticProvider creates a provider that always serves test
func NewStaticProvider(test models.TestDefinition) *StaticProvider {
	return &StaticProvider{test: test.Clone()}
}

// GetTest returns a copy of the built-in test under the requested id
func (p *StaticProvider) GetTest(ctx context.Context, id string) (*models.TestDefinition, error) {
	if id == "" {
		return nil, ErrTestNotFound
	}
	test := p.test.Clone()
	test.ID = id
	return &test, nil
}

// ListTests returns the built-in test under its own id
func (p *StaticProvider) ListTests(ctx context.Context) ([]models.TestDefinition, error) {
	return []models.TestDefinition{p.test.Clone()}, nil
}

type validatingProvider struct {
	next TestProvider
}

// Validated wraps a provider so that malformed definitions are rejected
// before a session is started on them
func Validated(next TestProvider) TestProvider {
	return validatingProvider{next: next}
}

func (p validatingProvider) GetTest(ctx context.Context, id string) (*models.TestDefinition, error) {
	test, err := p.next.GetTest(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateTestDefinition(test); err != nil {
		return nil, fmt.Errorf("test %s is malformed: %w", id, err)
	}
	return test, nil
}
