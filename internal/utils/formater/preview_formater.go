package formater

import (
	"fmt"

	"github.com/google/uuid"
)

const previewCDNSchemeHost = "https://static-cdn.jtvnw.net"

// CreatePreviewURL builds the live preview image URL with a cache-busting
// query parameter, so an edited notification picks up a fresh frame.
func CreatePreviewURL(userLogin string) string {
	return fmt.Sprintf("%s/previews-ttv/live_user_%s-640x360.jpg?cacheBypass=%s",
		previewCDNSchemeHost, ToLower(userLogin), uuid.NewString())
}
