package exception

import (
	"fmt"
	"sync"

	"github.com/amirhossein-jamali/dbexceptions/internal/domain/entity"
	"github.com/amirhossein-jamali/dbexceptions/internal/domain/port/metadata"
)

// Catalog lazily indexes the named constraints of a model.
// Each list is built once on first use and is read-only afterwards;
// the model is assumed not to change for the catalog's lifetime.
type Catalog struct {
	model metadata.Model

	mu               sync.Mutex
	uniqueIndexes    []entity.IndexDetails
	foreignKeys      []entity.ForeignKeyDetails
	indexesBuilt     bool
	foreignKeysBuilt bool
}

// NewCatalog creates a catalog over model
func NewCatalog(model metadata.Model) *Catalog {
	return &Catalog{model: model}
}

// UniqueIndexes returns the unique indexes and named primary keys of the model
func (c *Catalog) UniqueIndexes() ([]entity.IndexDetails, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexesBuilt {
		return c.uniqueIndexes, nil
	}

	types, err := c.model.EntityTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read entity types: %w", err)
	}

	c.uniqueIndexes = BuildUniqueIndexes(types)
	c.indexesBuilt = true
	return c.uniqueIndexes, nil
}

// ForeignKeys returns the foreign key constraints of the model
func (c *Catalog) ForeignKeys() ([]entity.ForeignKeyDetails, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.foreignKeysBuilt {
		return c.foreignKeys, nil
	}

	types, err := c.model.EntityTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read entity types: %w", err)
	}

	c.foreignKeys = BuildForeignKeys(types)
	c.foreignKeysBuilt = true
	return c.foreignKeys, nil
}

// BuildUniqueIndexes projects the declared unique indexes of every entity type,
// followed by every named primary key. Unnamed entries and repeats are dropped.
func BuildUniqueIndexes(types []entity.EntityType) []entity.IndexDetails {
	var details []entity.IndexDetails
	seen := make(map[string]struct{})

	add := func(name string, table entity.Table, properties []string) {
		if name == "" {
			return
		}
		key := name + "\x00" + table.SchemaQualifiedName()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		details = append(details, entity.NewIndexDetails(name, table.SchemaQualifiedName(), properties))
	}

	for _, t := range types {
		for _, index := range t.Indexes {
			if !index.Unique {
				continue
			}
			add(index.Name, tableOr(index.Table, t.Table), index.Properties)
		}
	}

	for _, t := range types {
		if t.PrimaryKey == nil {
			continue
		}
		add(t.PrimaryKey.Name, t.Table, t.PrimaryKey.Properties)
	}

	return details
}

// BuildForeignKeys projects the declared foreign keys of every entity type.
// Unnamed entries and repeats are dropped.
func BuildForeignKeys(types []entity.EntityType) []entity.ForeignKeyDetails {
	var details []entity.ForeignKeyDetails
	seen := make(map[string]struct{})

	for _, t := range types {
		for _, fk := range t.ForeignKeys {
			if fk.ConstraintName == "" {
				continue
			}
			table := tableOr(fk.Table, t.Table)
			key := fk.ConstraintName + "\x00" + table.SchemaQualifiedName()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			details = append(details, entity.NewForeignKeyDetails(fk.ConstraintName, table.SchemaQualifiedName(), fk.Properties))
		}
	}

	return details
}

func tableOr(table, fallback entity.Table) entity.Table {
	if table.Name == "" {
		return fallback
	}
	return table
}
