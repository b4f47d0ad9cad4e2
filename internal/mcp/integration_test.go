package mcp

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/formweld/pdf-form-tools/internal/config"
	"github.com/formweld/pdf-form-tools/internal/service"
)

// These tests drive the tool handlers end to end through the service layer
// with real files on disk, PDFs excepted.

func integrationServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.WorkDirectory = t.TempDir()
	cfg.ServerName = "test-server"

	server, err := NewServer(cfg, service.NewService(cfg))
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return server
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestHandleValidateBoxes_Integration(t *testing.T) {
	server := integrationServer(t)
	dir := t.TempDir()

	specPath := writeFile(t, dir, "fields.json", `{
		"form_fields": [
			{
				"page_number": 1,
				"description": "Name",
				"label_bounding_box": [10, 20, 120, 40],
				"entry_bounding_box": [100, 20, 200, 40]
			}
		]
	}`)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"spec_path": specPath,
			},
		},
	}

	result, err := server.handleValidateBoxes(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", extractTextFromResult(result))
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "intersect") {
		t.Errorf("expected an intersection violation, got: %s", resultText)
	}
}

func TestHandleValidationImage_Integration(t *testing.T) {
	server := integrationServer(t)
	dir := t.TempDir()

	specPath := writeFile(t, dir, "fields.json", `{
		"form_fields": [
			{
				"page_number": 1,
				"description": "Name",
				"entry_bounding_box": [100, 20, 200, 40]
			}
		]
	}`)

	imagePath := filepath.Join(dir, "page.png")
	f, err := os.Create(imagePath)
	if err != nil {
		t.Fatalf("failed to create image: %v", err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 300, 120))); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close image: %v", err)
	}

	outPath := filepath.Join(dir, "page_boxes.png")
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"image_path":  imagePath,
				"output_path": outPath,
				"spec_path":   specPath,
			},
		},
	}

	result, err := server.handleValidationImage(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", extractTextFromResult(result))
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "1 entry box(es)") {
		t.Errorf("expected one drawn entry box, got: %s", resultText)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("annotated image was not written: %v", err)
	}
}

func TestHandleMerge_MissingInputs(t *testing.T) {
	server := integrationServer(t)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"inputs":      filepath.Join(t.TempDir(), "absent.pdf"),
				"output_path": "out.pdf",
			},
		},
	}

	result, err := server.handleMerge(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for missing input files")
	}
}

func TestHandleFieldCatalog_InvalidPDF(t *testing.T) {
	server := integrationServer(t)
	dir := t.TempDir()

	// A file with a .pdf name but garbage content must produce an error
	// result, not a panic or a transport error.
	path := writeFile(t, dir, "broken.pdf", "not a pdf at all")

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"path": path,
			},
		},
	}

	result, err := server.handleFieldCatalog(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for a malformed PDF")
	}
}
