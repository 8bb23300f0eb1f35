// Package resolver matches followed entities against the configured video
// source catalog. A followed favorite, collection, or uploader may already
// be configured as a source; resolution finds that source or reports that
// none exists yet.
package resolver

import (
	"strings"

	"bilictl/internal/api"
	"bilictl/internal/filter"
)

// Entity is a remotely-followed favorite, collection, or uploader. RemoteID
// is the stable backend-side identifier (fid, sid, or mid); Name is the
// display name from the followed listing.
type Entity struct {
	Kind     filter.SourceType
	RemoteID int64
	Name     string
}

// Resolve finds the configured source for entity, or nil when it is not yet
// configured. A nil result is not an error.
//
// Matching precedence, deliberately in this order: the remote identifier is
// collision-free and always wins; exact name equality covers sources created
// before remote ids were recorded; for collections only, case-sensitive
// substring containment in either direction tolerates cosmetic name drift
// between the two independently-fetched listings.
func Resolve(entity Entity, catalog *api.SourceCatalog) *api.SourceEntry {
	if catalog == nil {
		return nil
	}

	var candidates []api.SourceEntry
	switch entity.Kind {
	case filter.SourceFavorite:
		candidates = catalog.Favorites
	case filter.SourceCollection:
		candidates = catalog.Collections
	case filter.SourceSubmission:
		candidates = catalog.Submissions
	default:
		return nil
	}

	for i := range candidates {
		if candidates[i].RemoteID != 0 && candidates[i].RemoteID == entity.RemoteID {
			return &candidates[i]
		}
	}

	for i := range candidates {
		if candidates[i].Name == entity.Name {
			return &candidates[i]
		}
	}

	if entity.Kind == filter.SourceCollection && entity.Name != "" {
		for i := range candidates {
			name := candidates[i].Name
			if name == "" {
				continue
			}
			if strings.Contains(name, entity.Name) || strings.Contains(entity.Name, name) {
				return &candidates[i]
			}
		}
	}

	return nil
}
