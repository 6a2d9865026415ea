package exception

import (
	"strings"

	"github.com/amirhossein-jamali/dbexceptions/internal/domain/entity"
)

// Resolution tells how a driver message was matched against a catalog
type Resolution int

const (
	// Unresolved means no catalog entry could be attributed
	Unresolved Resolution = iota
	// ResolvedByName means exactly one entry name occurs in the message
	ResolvedByName
	// ResolvedByTable means several names occur and one entry's table broke the tie
	ResolvedByTable
	// ResolvedAmbiguously means several entries survived the table tie-break; the first was taken
	ResolvedAmbiguously
)

// String returns a short label for logging
func (r Resolution) String() string {
	switch r {
	case ResolvedByName:
		return "name"
	case ResolvedByTable:
		return "table"
	case ResolvedAmbiguously:
		return "ambiguous"
	default:
		return "unresolved"
	}
}

// Matched reports whether a catalog entry was selected
func (r Resolution) Matched() bool {
	return r != Unresolved
}

type catalogEntry interface {
	Details() entity.ConstraintDetails
}

// Match finds the catalog entry whose name occurs in message, ignoring case.
// When several names occur, the first entry whose schema-qualified table name
// also occurs in message wins.
func Match[T catalogEntry](message string, catalog []T) (T, Resolution) {
	var zero T
	lowered := strings.ToLower(message)

	var candidates []T
	for _, entry := range catalog {
		name := entry.Details().Name
		if name != "" && strings.Contains(lowered, strings.ToLower(name)) {
			candidates = append(candidates, entry)
		}
	}

	switch len(candidates) {
	case 0:
		return zero, Unresolved
	case 1:
		return candidates[0], ResolvedByName
	}

	var (
		match T
		hits  int
	)
	for _, candidate := range candidates {
		table := candidate.Details().SchemaQualifiedTableName
		if table == "" || !strings.Contains(lowered, strings.ToLower(table)) {
			continue
		}
		if hits == 0 {
			match = candidate
		}
		hits++
	}

	switch {
	case hits == 0:
		return zero, Unresolved
	case hits == 1:
		return match, ResolvedByTable
	default:
		return match, ResolvedAmbiguously
	}
}
