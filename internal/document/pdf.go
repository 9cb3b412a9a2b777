package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

const pdfToolName = "pdftotext"

// ErrPDFToolNotFound is returned when pdftotext is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH: " + InstallInstructions())

// CommandRunner executes an external command and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

var lookPath = exec.LookPath

// CheckAvailable reports whether pdftotext can be found.
func CheckAvailable() error {
	if _, err := lookPath(pdfToolName); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions explains how to install pdftotext.
func InstallInstructions() string {
	return "install poppler (macOS: brew install poppler, Debian/Ubuntu: apt install poppler-utils)"
}

type pdfExtractor struct {
	runner CommandRunner
}

func newPDFExtractor(runner CommandRunner) *pdfExtractor {
	return &pdfExtractor{runner: runner}
}

func (p *pdfExtractor) extract(ctx context.Context, content []byte) (string, error) {
	if _, ok := p.runner.(execRunner); ok {
		if err := CheckAvailable(); err != nil {
			return "", err
		}
	}

	tmp, err := os.CreateTemp("", "resume-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	out, err := p.runner.Run(ctx, pdfToolName, "-layout", "-enc", "UTF-8", tmp.Name(), "-")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrPDFToolNotFound
		}
		return "", fmt.Errorf("run %s: %w", pdfToolName, err)
	}

	return toValidUTF8(out), nil
}
