package exception

import (
	"fmt"

	"github.com/amirhossein-jamali/dbexceptions/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
	coreport "github.com/amirhossein-jamali/dbexceptions/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbexceptions/internal/domain/port/driver"
	"github.com/amirhossein-jamali/dbexceptions/internal/domain/port/metadata"
)

type logFielder interface {
	LogFields() map[string]any
}

// Processor turns raw driver failures into typed database failures.
// It is safe for concurrent use.
type Processor struct {
	classifier driver.ErrorClassifier
	catalog    *Catalog
	logger     coreport.Logger
}

// NewProcessor creates a processor. A nil model disables constraint attribution.
func NewProcessor(classifier driver.ErrorClassifier, model metadata.Model, logger coreport.Logger) *Processor {
	p := &Processor{
		classifier: classifier,
		logger:     logger,
	}
	if model != nil {
		p.catalog = NewCatalog(model)
	}
	return p
}

// CommandFailed handles a failure raised while executing a single command
func (p *Processor) CommandFailed(err error) error {
	return p.process(err, nil)
}

// SaveChangesFailed handles a failure raised while saving entries
func (p *Processor) SaveChangesFailed(err error, entries []any) error {
	return p.process(err, entries)
}

// process returns err unchanged when it is nil, already classified or not recognised
func (p *Processor) process(err error, entries []any) error {
	if err == nil || domainerr.IsDatabaseError(err) {
		return err
	}

	classification, ok := p.classifier.Classify(err)
	if !ok {
		return err
	}

	opts, resolveErr := p.attribute(classification)
	failure := Create(classification.Category, err, entries, opts...)

	if resolveErr != nil {
		p.logger.Error("Failed to build constraint catalog", map[string]any{
			"category": classification.Category.String(),
			"error":    resolveErr.Error(),
		})
		return fmt.Errorf("%w: %w", failure, resolveErr)
	}

	if lf, ok := failure.(logFielder); ok {
		p.logger.Debug("Classified database failure", lf.LogFields())
	}

	return failure
}

// attribute resolves the constraint behind unique and reference failures
func (p *Processor) attribute(classification driver.Classification) ([]Option, error) {
	if p.catalog == nil {
		return nil, nil
	}

	var (
		details    entity.ConstraintDetails
		resolution Resolution
	)

	switch classification.Category {
	case domainerr.UniqueConstraint:
		indexes, err := p.catalog.UniqueIndexes()
		if err != nil {
			return nil, err
		}
		var match entity.IndexDetails
		match, resolution = Match(classification.Message(), indexes)
		details = match.ConstraintDetails
	case domainerr.ReferenceConstraint:
		foreignKeys, err := p.catalog.ForeignKeys()
		if err != nil {
			return nil, err
		}
		var match entity.ForeignKeyDetails
		match, resolution = Match(classification.Message(), foreignKeys)
		details = match.ConstraintDetails
	default:
		return nil, nil
	}

	if resolution == ResolvedAmbiguously {
		p.logger.Warn("Constraint match is ambiguous, using first candidate", map[string]any{
			"category":   classification.Category.String(),
			"constraint": details.Name,
			"table":      details.SchemaQualifiedTableName,
		})
	}

	if !resolution.Matched() {
		return nil, nil
	}
	return []Option{WithConstraint(details)}, nil
}
