package render

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const filenameTimeLayout = "20060102_150405"

// SavePDF writes the PDF into outputDir under a timestamped name and returns
// the bare filename for later download lookups.
func SavePDF(outputDir string, pdf []byte) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	filename := fmt.Sprintf("tailored_resume_%s.pdf", time.Now().Format(filenameTimeLayout))
	if err := os.WriteFile(filepath.Join(outputDir, filename), pdf, 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return filename, nil
}
