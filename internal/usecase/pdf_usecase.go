package usecase

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"resume-tailor/internal/render"
)

type GeneratedPDF struct {
	Filename string
	Path     string
}

type PDFUsecase interface {
	Generate(ctx context.Context, doc render.Document) (GeneratedPDF, error)
	Locate(filename string) (string, error)
}

type PDF struct {
	renderer  render.Renderer
	outputDir string
	logger    *log.Logger
}

func NewPDFUsecase(renderer render.Renderer, outputDir string, logger *log.Logger) *PDF {
	if logger == nil {
		logger = log.Default()
	}
	return &PDF{renderer: renderer, outputDir: outputDir, logger: logger}
}

func (u *PDF) Generate(ctx context.Context, doc render.Document) (GeneratedPDF, error) {
	if strings.TrimSpace(doc.Name) == "" {
		return GeneratedPDF{}, fmt.Errorf("%w: resume name required", ErrInvalidInput)
	}

	html, err := render.BuildHTML(doc)
	if err != nil {
		return GeneratedPDF{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	pdf, err := u.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		u.logger.Printf("[PDF] render failed | err=%v", err)
		return GeneratedPDF{}, fmt.Errorf("%w: pdf rendering failed", ErrInternal)
	}

	filename, err := render.SavePDF(u.outputDir, pdf)
	if err != nil {
		u.logger.Printf("[PDF] save failed | err=%v", err)
		return GeneratedPDF{}, fmt.Errorf("%w: could not save pdf", ErrInternal)
	}
	return GeneratedPDF{Filename: filename, Path: filepath.Join(u.outputDir, filename)}, nil
}

// Locate maps a generated filename back to its path. Only bare filenames the
// service itself produced are accepted, which keeps the download endpoint
// from walking the filesystem.
func (u *PDF) Locate(filename string) (string, error) {
	if filename == "" ||
		filepath.Base(filename) != filename ||
		!strings.HasPrefix(filename, "tailored_resume_") ||
		!strings.HasSuffix(filename, ".pdf") {
		return "", fmt.Errorf("%w: invalid filename", ErrInvalidInput)
	}

	path := filepath.Join(u.outputDir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, filename)
	}
	return path, nil
}
