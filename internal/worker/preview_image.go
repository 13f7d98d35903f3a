package worker

import (
	"strings"

	"github.com/blacktop/go-termimg"

	"github.com/wilbur182/runa/internal/formatter"
)

var imageExtensions = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "gif": {}, "bmp": {}, "webp": {},
}

func isImageExt(ext string) bool {
	_, ok := imageExtensions[strings.ToLower(ext)]
	return ok
}

// renderImagePreview renders path as a terminal graphic via go-termimg,
// falling back to a plain placeholder line if the terminal can't display
// images or the file can't be decoded.
func renderImagePreview(path string, paneWidth int) (lines, styled []string) {
	placeholder := []string{formatter.SanitizeToWidth("[Image]", paneWidth)}

	img, err := termimg.Open(path)
	if err != nil {
		return placeholder, nil
	}
	defer img.Close()

	rendered, err := img.Width(paneWidth).Render()
	if err != nil || rendered == "" {
		return placeholder, nil
	}
	return placeholder, strings.Split(strings.TrimRight(rendered, "\n"), "\n")
}
