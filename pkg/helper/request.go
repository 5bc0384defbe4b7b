package helper

import (
	"fmt"
	"strconv"
	"strings"

	"media-uploader/internal/domain/entities"
)

// ParseEntityType accepts one of the known entity types; empty means general.
func ParseEntityType(s string) (entities.EntityType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return entities.EntityGeneral, nil
	}
	et, ok := entities.ParseEntityType(s)
	if !ok {
		return "", fmt.Errorf("unknown entity_type %q", s)
	}
	return et, nil
}

// ParseEntityID returns nil for an empty value.
func ParseEntityID(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("entity_id must be a positive integer, got %q", s)
	}
	return &id, nil
}

// ParseResourceType accepts image, video and auto; empty stays empty so the
// caller can apply its own default.
func ParseResourceType(s string) (entities.ResourceType, error) {
	switch rt := entities.ResourceType(strings.ToLower(strings.TrimSpace(s))); rt {
	case "", entities.ResourceImage, entities.ResourceVideo, entities.ResourceAuto:
		return rt, nil
	default:
		return "", fmt.Errorf("unknown resource_type %q", s)
	}
}
