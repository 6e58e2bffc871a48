package guard

import (
	"sort"
	"strings"

	"civic_backend/internal/config"
)

// Category - the classification of a request path. Every path maps to
// exactly one category; anything outside the table is public.
type Category int

const (
	CategoryPublic Category = iota
	CategoryProtected
	CategoryUnauthOnly
	CategoryOrgCreation
)

func (c Category) String() string {
	switch c {
	case CategoryProtected:
		return "protected"
	case CategoryUnauthOnly:
		return "unauthenticated_only"
	case CategoryOrgCreation:
		return "organization_creation"
	default:
		return "public"
	}
}

type classifierEntry struct {
	prefix   string
	category Category
}

// Classifier - static path classification table built once at startup.
// Matching is exact or longest-prefix on path segment boundaries.
type Classifier struct {
	entries []classifierEntry
}

func NewClassifier(cfg config.GuardConfig) *Classifier {
	var entries []classifierEntry

	add := func(paths []string, category Category) {
		for _, p := range paths {
			p = strings.TrimSuffix(p, "/")
			if p == "" {
				p = "/"
			}
			entries = append(entries, classifierEntry{prefix: p, category: category})
		}
	}

	add(cfg.ProtectedPaths(), CategoryProtected)
	add(cfg.UnauthenticatedOnlyPaths(), CategoryUnauthOnly)
	add(cfg.OrgCreationPaths(), CategoryOrgCreation)
	add(cfg.PublicPaths(), CategoryPublic)

	// Longest prefix first, so /signup/activity wins over /signup.
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].prefix) > len(entries[j].prefix)
	})

	return &Classifier{entries: entries}
}

// Classify - total over all paths. The second return reports whether the
// table matched at all; unmatched paths classify public.
func (c *Classifier) Classify(path string) (Category, bool) {
	if path == "" {
		path = "/"
	}

	for _, e := range c.entries {
		if path == e.prefix || strings.HasPrefix(path, e.prefix+"/") {
			return e.category, true
		}
	}

	return CategoryPublic, false
}
