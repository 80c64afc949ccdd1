package auth

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/liammahoney/site-api/internal/adapter/provider/github"
	"github.com/liammahoney/site-api/internal/domain"
)

// errNotAllowed is both a not-allowed and a forbidden failure so callers
// can match either sentinel.
var errNotAllowed = fmt.Errorf("%w: %w", domain.ErrNotAllowed, domain.ErrForbidden)

// checkAllowed succeeds only when the profile id equals permittedID.
// The id may arrive as a JSON number or a numeric string.
func checkAllowed(profile *github.Profile, permittedID int64) error {
	if profile == nil {
		return errNotAllowed
	}
	raw := strings.TrimSpace(profile.ID.String())
	if raw == "" {
		return errNotAllowed
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id != permittedID {
		return errNotAllowed
	}
	return nil
}
