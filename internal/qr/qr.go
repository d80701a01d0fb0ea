// Package qr renders the scan URL for a team as a PNG image. It is a
// pure rendering utility: no state is read or written.
package qr

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/ostapdev/teamwheel/internal/model"
)

// ImageSize is the square pixel size of generated QR images
const ImageSize = 256

// ScanURL builds the absolute URL a scanned code resolves to
func ScanURL(baseURL string, teamID model.TeamID) string {
	return fmt.Sprintf("%s/scan/%s", strings.TrimSuffix(baseURL, "/"), teamID)
}

// ImagePNG renders the scan URL for teamID as PNG bytes
func ImagePNG(baseURL string, teamID model.TeamID) ([]byte, error) {
	return qrcode.Encode(ScanURL(baseURL, teamID), qrcode.Medium, ImageSize)
}
