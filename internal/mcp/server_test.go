package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/formweld/pdf-form-tools/internal/config"
	"github.com/formweld/pdf-form-tools/internal/forms"
	"github.com/formweld/pdf-form-tools/internal/service"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.WorkDirectory = t.TempDir()
	cfg.ServerName = "test-server"
	return cfg
}

func TestNewServer(t *testing.T) {
	cfg := testConfig(t)
	svc := service.NewService(cfg)

	server, err := NewServer(cfg, svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if server == nil {
		t.Fatal("server should not be nil")
	}
	if server.config != cfg {
		t.Error("server config not set correctly")
	}
	if server.formService != svc {
		t.Error("server formService not set correctly")
	}
	if server.mcpServer == nil {
		t.Error("mcpServer should be initialized")
	}
}

func TestNewServerNilService(t *testing.T) {
	if _, err := NewServer(testConfig(t), nil); err == nil {
		t.Error("expected error for nil service")
	}
}

func TestServer_InvalidArguments(t *testing.T) {
	cfg := testConfig(t)
	server, err := NewServer(cfg, service.NewService(cfg))
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	emptyRequest := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{},
		},
	}

	handlers := []struct {
		name    string
		handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
	}{
		{"FieldCatalog", server.handleFieldCatalog},
		{"FillFields", server.handleFillFields},
		{"ValidateBoxes", server.handleValidateBoxes},
		{"FillOverlay", server.handleFillOverlay},
		{"RenderPages", server.handleRenderPages},
		{"ValidationImage", server.handleValidationImage},
		{"Merge", server.handleMerge},
		{"ExtractPages", server.handleExtractPages},
		{"Split", server.handleSplit},
		{"PageInfo", server.handlePageInfo},
	}

	for _, h := range handlers {
		t.Run(h.name, func(t *testing.T) {
			result, err := h.handler(context.Background(), emptyRequest)
			if err != nil {
				t.Errorf("handler should not return error, got: %v", err)
			}
			if result == nil {
				t.Fatal("result should not be nil")
			}
			if !result.IsError {
				t.Error("expected error result for missing arguments")
			}
		})
	}
}

func TestFormatMethods(t *testing.T) {
	cfg := testConfig(t)
	server, err := NewServer(cfg, service.NewService(cfg))
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	catalogResult := &service.FieldCatalogResult{
		Path:       "/tmp/form.pdf",
		Fillable:   true,
		FieldCount: 2,
		Fields: []forms.FieldInfo{
			{
				FieldID: "last_name",
				Page:    1,
				Rect:    forms.RawRect{100, 700, 300, 720},
				Type:    forms.FieldTypeText,
			},
			{
				FieldID:      "subscribe",
				Page:         2,
				Rect:         forms.RawRect{100, 650, 120, 670},
				Type:         forms.FieldTypeCheckbox,
				CheckedValue: "/Yes",
			},
		},
	}

	formatted := server.formatFieldCatalogResult(catalogResult)
	if !strings.Contains(formatted, "Found 2 fillable field(s)") {
		t.Error("formatted result should contain field count")
	}
	if !strings.Contains(formatted, "last_name") {
		t.Error("formatted result should contain field IDs")
	}
	if !strings.Contains(formatted, "Checked value: /Yes") {
		t.Error("formatted result should contain the checkbox's checked value")
	}

	emptyCatalog := &service.FieldCatalogResult{Path: "/tmp/flat.pdf"}
	formatted = server.formatFieldCatalogResult(emptyCatalog)
	if !strings.Contains(formatted, "no fillable form fields") {
		t.Error("formatted result should mention the overlay workflow for flat PDFs")
	}

	validResult := &service.ValidateBoxesResult{
		SpecPath:   "/tmp/fields.json",
		Valid:      true,
		FieldCount: 3,
	}
	formatted = server.formatValidateBoxesResult(validResult)
	if !strings.Contains(formatted, "passed geometry validation") {
		t.Error("formatted result should report success")
	}

	invalidResult := &service.ValidateBoxesResult{
		SpecPath:   "/tmp/fields.json",
		Violations: []string{`Page 1: Label and entry boxes intersect for "Name"`},
	}
	formatted = server.formatValidateBoxesResult(invalidResult)
	if !strings.Contains(formatted, "intersect") {
		t.Error("formatted result should list violations")
	}

	pageInfoResult := &service.PageInfoResult{
		Path:      "/tmp/doc.pdf",
		PageCount: 1,
		Pages: []service.PageDimension{
			{PageNumber: 1, Width: 612, Height: 792},
		},
	}
	formatted = server.formatPageInfoResult(pageInfoResult)
	if !strings.Contains(formatted, "1 page(s)") {
		t.Error("formatted result should contain page count")
	}
	if !strings.Contains(formatted, "612.00 x 792.00") {
		t.Error("formatted result should contain page dimensions")
	}
}

// Helper function to extract text from a CallToolResult
func extractTextFromResult(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}

	for _, content := range result.Content {
		if textContent, ok := content.(mcp.TextContent); ok {
			return textContent.Text
		}
		if textContentPtr, ok := content.(*mcp.TextContent); ok {
			return textContentPtr.Text
		}
	}

	return ""
}
