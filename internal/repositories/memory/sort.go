package memory

import (
	"slices"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
)

// sortByCreation orders records oldest first, matching the SQL repositories.
func sortByCreation[T any](records []T, audit func(T) domain.AuditFields) {
	slices.SortStableFunc(records, func(a, b T) int {
		return audit(a).CreatedAt.Compare(audit(b).CreatedAt)
	})
}
