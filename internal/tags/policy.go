package tags

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"community_sync/internal/config"
	"community_sync/internal/domain"
)

// Policy canonicalizes free-text tag lists and strips tags reserved for
// administrator-authored content.
type Policy struct {
	reserved  map[string]struct{}
	maxCount  int
	maxLength int
}

func NewPolicy(cfg config.TagsConfig) *Policy {
	reserved := make(map[string]struct{}, len(cfg.Reserved))
	for _, t := range cfg.Reserved {
		reserved[strings.ToLower(t)] = struct{}{}
	}
	return &Policy{
		reserved:  reserved,
		maxCount:  cfg.MaxCount,
		maxLength: cfg.MaxLength,
	}
}

// FormatTags canonicalizes a comma separated tag list: trims each tag,
// drops empties, dedupes keeping first occurrence, joins with ",".
func (p *Policy) FormatTags(raw string) (string, error) {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	formatted := make([]string, 0, len(parts))

	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if utf8.RuneCountInString(tag) > p.maxLength {
			return "", fmt.Errorf("tag %q exceeds %d characters", tag, p.maxLength)
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		formatted = append(formatted, tag)
	}

	if len(formatted) > p.maxCount {
		return "", fmt.Errorf("too many tags: %d, at most %d allowed", len(formatted), p.maxCount)
	}

	return strings.Join(formatted, ","), nil
}

// FilterReserved removes reserved tags from a comma separated list.
// Administrators bypass the filter entirely.
func (p *Policy) FilterReserved(tags string, role domain.UserRole) string {
	if role == domain.RoleAdministrator {
		return tags
	}
	if tags == "" {
		return tags
	}

	parts := strings.Split(tags, ",")
	kept := make([]string, 0, len(parts))
	for _, tag := range parts {
		if _, ok := p.reserved[strings.ToLower(strings.TrimSpace(tag))]; ok {
			continue
		}
		kept = append(kept, tag)
	}

	return strings.Join(kept, ",")
}
