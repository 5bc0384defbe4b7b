package cloud

import (
	"strings"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"
	"media-uploader/pkg/constants"
)

// BuildURL composes a delivery URL for publicID. Local paths are already
// servable and are returned untouched.
func BuildURL(deliveryBase, account, publicID string, opts dto.URLOptions) string {
	if strings.HasPrefix(publicID, constants.LocalURLPrefix) {
		return publicID
	}

	rt := opts.ResourceType
	if rt == "" || rt == entities.ResourceAuto {
		rt = entities.ResourceImage
	}

	parts := []string{strings.TrimRight(deliveryBase, "/"), account, string(rt), "upload"}
	if t := strings.Trim(opts.Transformation, "/"); t != "" {
		parts = append(parts, t)
	}
	id := strings.TrimLeft(publicID, "/")
	if opts.Format != "" {
		id += "." + strings.TrimPrefix(opts.Format, ".")
	}
	return strings.Join(append(parts, id), "/")
}
