package metadata

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/amirhossein-jamali/dbexceptions/internal/domain/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// GormModel reads entity metadata from gorm model structs.
// Tables, unique indexes, primary keys and relationship constraints are taken
// from the parsed gorm schema, so names match what AutoMigrate creates.
type GormModel struct {
	models        []any
	namer         schema.Namer
	dialect       string
	defaultSchema string
	cache         *sync.Map
}

// NewGormModel creates a model for the given structs.
// defaultSchema qualifies tables whose name carries no schema; leave it empty for none.
func NewGormModel(namer schema.Namer, dialect, defaultSchema string, models ...any) *GormModel {
	if namer == nil {
		namer = schema.NamingStrategy{}
	}
	return &GormModel{
		models:        models,
		namer:         namer,
		dialect:       dialect,
		defaultSchema: defaultSchema,
		cache:         &sync.Map{},
	}
}

// FromDB creates a model that uses the naming strategy and dialect of db
func FromDB(db *gorm.DB, defaultSchema string, models ...any) *GormModel {
	return NewGormModel(db.NamingStrategy, db.Dialector.Name(), defaultSchema, models...)
}

// EntityTypes implements metadata.Model
func (m *GormModel) EntityTypes() ([]entity.EntityType, error) {
	schemas := make([]*schema.Schema, 0, len(m.models))
	byTable := make(map[string]int, len(m.models))

	for _, model := range m.models {
		s, err := schema.Parse(model, m.cache, m.namer)
		if err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		byTable[s.Table] = len(schemas)
		schemas = append(schemas, s)
	}

	types := make([]entity.EntityType, len(schemas))
	for i, s := range schemas {
		types[i] = entity.EntityType{
			Name:       s.Name,
			Table:      m.table(s.Table),
			Indexes:    m.uniqueIndexes(s),
			PrimaryKey: m.primaryKey(s),
		}
	}

	seen := make(map[string]struct{})
	for _, s := range schemas {
		for _, fk := range m.foreignKeys(s) {
			owner, ok := byTable[fk.Table.Name]
			if !ok {
				continue
			}
			fk.Table = types[owner].Table
			key := fk.ConstraintName + "\x00" + fk.Table.SchemaQualifiedName()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			types[owner].ForeignKeys = append(types[owner].ForeignKeys, fk)
		}
	}

	return types, nil
}

func (m *GormModel) table(name string) entity.Table {
	if schemaName, table, ok := strings.Cut(name, "."); ok {
		return entity.Table{Schema: schemaName, Name: table}
	}
	return entity.Table{Schema: m.defaultSchema, Name: name}
}

func (m *GormModel) uniqueIndexes(s *schema.Schema) []entity.Index {
	var indexes []entity.Index
	for _, idx := range s.ParseIndexes() {
		if !strings.EqualFold(idx.Class, "UNIQUE") {
			continue
		}
		properties := make([]string, 0, len(idx.Fields))
		for _, opt := range idx.Fields {
			if opt.Field != nil {
				properties = append(properties, opt.Field.Name)
			}
		}
		indexes = append(indexes, entity.Index{
			Name:       idx.Name,
			Unique:     true,
			Properties: properties,
		})
	}
	sort.Slice(indexes, func(i, j int) bool { return indexes[i].Name < indexes[j].Name })
	return indexes
}

func (m *GormModel) primaryKey(s *schema.Schema) *entity.Key {
	if len(s.PrimaryFields) == 0 {
		return nil
	}
	properties := make([]string, len(s.PrimaryFields))
	for i, field := range s.PrimaryFields {
		properties[i] = field.Name
	}
	return &entity.Key{Name: PrimaryKeyName(m.dialect, s.Table), Properties: properties}
}

// foreignKeys returns the relationship constraints declared on s, keyed by owner table in Table.Name
func (m *GormModel) foreignKeys(s *schema.Schema) []entity.ForeignKey {
	names := make([]string, 0, len(s.Relationships.Relations))
	for name := range s.Relationships.Relations {
		names = append(names, name)
	}
	sort.Strings(names)

	var foreignKeys []entity.ForeignKey
	for _, name := range names {
		constraint := s.Relationships.Relations[name].ParseConstraint()
		if constraint == nil || constraint.Schema == nil {
			continue
		}
		properties := make([]string, len(constraint.ForeignKeys))
		for i, field := range constraint.ForeignKeys {
			properties[i] = field.Name
		}
		foreignKeys = append(foreignKeys, entity.ForeignKey{
			ConstraintName: constraint.Name,
			Table:          entity.Table{Name: constraint.Schema.Table},
			Properties:     properties,
		})
	}
	return foreignKeys
}

// PrimaryKeyName returns the name the engine gives a primary key created without an explicit name.
// SQLite does not name primary keys.
func PrimaryKeyName(dialect, table string) string {
	switch strings.ToLower(dialect) {
	case "postgres":
		if _, bare, ok := strings.Cut(table, "."); ok {
			table = bare
		}
		return table + "_pkey"
	case "mysql":
		return "PRIMARY"
	default:
		return ""
	}
}
