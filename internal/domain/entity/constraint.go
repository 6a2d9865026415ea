package entity

// ConstraintDetails is a named constraint as it appears in the constraint catalog
type ConstraintDetails struct {
	Name                     string
	SchemaQualifiedTableName string
	Properties               []string
}

// Details returns the shared constraint description
func (d ConstraintDetails) Details() ConstraintDetails {
	return d
}

// IndexDetails describes a unique index or a primary key
type IndexDetails struct {
	ConstraintDetails
}

// ForeignKeyDetails describes a foreign key constraint
type ForeignKeyDetails struct {
	ConstraintDetails
}

// NewIndexDetails creates index details, copying properties
func NewIndexDetails(name, schemaQualifiedTableName string, properties []string) IndexDetails {
	return IndexDetails{ConstraintDetails{
		Name:                     name,
		SchemaQualifiedTableName: schemaQualifiedTableName,
		Properties:               append([]string(nil), properties...),
	}}
}

// NewForeignKeyDetails creates foreign key details, copying properties
func NewForeignKeyDetails(name, schemaQualifiedTableName string, properties []string) ForeignKeyDetails {
	return ForeignKeyDetails{ConstraintDetails{
		Name:                     name,
		SchemaQualifiedTableName: schemaQualifiedTableName,
		Properties:               append([]string(nil), properties...),
	}}
}
