package entity

// Table identifies a mapped table
type Table struct {
	Schema string
	Name   string
}

// SchemaQualifiedName returns "schema.name", or just the name when the table has no schema
func (t Table) SchemaQualifiedName() string {
	if t.Schema == "" {
		return t.Name
	}
	return t.Schema + "." + t.Name
}

// Index is an index declared on an entity type
type Index struct {
	// Name is the physical index name in the mapped table
	Name   string
	Unique bool
	Table  Table
	// Properties are the indexed property names in index order
	Properties []string
}

// ForeignKey is a foreign key declared on the dependent entity type
type ForeignKey struct {
	// ConstraintName is the physical constraint name
	ConstraintName string
	Table          Table
	Properties     []string
}

// Key is an entity type's primary key
type Key struct {
	// Name is empty when the engine does not name primary keys
	Name       string
	Properties []string
}

// EntityType is the schema metadata of one mapped entity
type EntityType struct {
	Name  string
	Table Table
	// Indexes are the indexes declared on this type, inherited ones excluded
	Indexes []Index
	// ForeignKeys are the foreign keys declared on this type, inherited ones excluded
	ForeignKeys []ForeignKey
	// PrimaryKey is nil for keyless entity types
	PrimaryKey *Key
}
