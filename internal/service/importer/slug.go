package importer

import (
	"context"
	"fmt"

	"github.com/talentoapp/talento-backend/internal/domain"
)

// uniqueSlug derives a slug from name and suffixes an incrementing counter
// until no organization holds it. There is no retry cap: under
// duplicate-heavy input this loop runs as long as the existence check keeps
// answering true, matching the read-then-write contract of the store.
func (s *Service) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := domain.Slugify(name)
	if base == "" {
		base = "club"
	}

	candidate := base
	for n := 1; ; n++ {
		exists, err := s.organizations.ExistsBySlug(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
