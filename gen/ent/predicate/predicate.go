// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DocumentProcessing is the predicate function for documentprocessing builders.
type DocumentProcessing func(*sql.Selector)

// ExtractedEntity is the predicate function for extractedentity builders.
type ExtractedEntity func(*sql.Selector)
