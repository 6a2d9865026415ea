package metadata

import "github.com/amirhossein-jamali/dbexceptions/internal/domain/entity"

// Model exposes the schema metadata of the mapped entity types
type Model interface {
	// EntityTypes returns every mapped entity type with its declared indexes, foreign keys and primary key
	EntityTypes() ([]entity.EntityType, error)
}
