package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"
)

// formatByType maps accepted content types to the format name reported
// by image.DecodeConfig.
var formatByType = map[string]string{
	"image/jpeg": "jpeg",
	"image/jpg":  "jpeg",
	"image/png":  "png",
}

// Allowed reports whether contentType is one of the accepted image types.
func Allowed(contentType string) bool {
	_, ok := formatByType[strings.ToLower(contentType)]
	return ok
}

// Ext returns the file extension used for object keys of the given
// content type. Allowed must hold for contentType.
func Ext(contentType string) string {
	if formatByType[strings.ToLower(contentType)] == "png" {
		return ".png"
	}
	return ".jpg"
}

// Verify decodes the payload header and checks it matches the declared
// content type, so a renamed file cannot sneak past the allow-list.
func Verify(data []byte, contentType string) error {
	want, ok := formatByType[strings.ToLower(contentType)]
	if !ok {
		return fmt.Errorf("unsupported content type %q", contentType)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("payload is not a decodable image: %w", err)
	}
	if format != want {
		return fmt.Errorf("payload is %s, declared %s", format, contentType)
	}
	return nil
}
