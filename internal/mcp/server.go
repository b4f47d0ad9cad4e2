package mcp

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/formweld/pdf-form-tools/internal/config"
	"github.com/formweld/pdf-form-tools/internal/descriptions"
	"github.com/formweld/pdf-form-tools/internal/service"
)

// Server represents the MCP server instance
type Server struct {
	config      *config.Config
	formService *service.Service
	mcpServer   *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, formService *service.Service) (*Server, error) {
	if formService == nil {
		return nil, fmt.Errorf("formService cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:      cfg,
		formService: formService,
		mcpServer:   mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	fieldCatalogTool := mcp.NewTool(
		"pdf_field_catalog",
		mcp.WithDescription(descriptions.PDFFieldCatalogDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(fieldCatalogTool, s.handleFieldCatalog)

	fillFieldsTool := mcp.NewTool(
		"pdf_fill_fields",
		mcp.WithDescription(descriptions.PDFFillFieldsDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the fillable PDF file"),
		),
		mcp.WithString("output_path",
			mcp.Required(),
			mcp.Description("Path for the filled PDF"),
		),
		mcp.WithString("values_path",
			mcp.Required(),
			mcp.Description("Path to a JSON list of {field_id, value} objects"),
		),
	)
	s.mcpServer.AddTool(fillFieldsTool, s.handleFillFields)

	validateBoxesTool := mcp.NewTool(
		"pdf_validate_boxes",
		mcp.WithDescription(descriptions.PDFValidateBoxesDescription),
		mcp.WithString("spec_path",
			mcp.Required(),
			mcp.Description("Path to the field description JSON document"),
		),
		mcp.WithNumber("min_entry_height",
			mcp.Description("Minimum entry box height in pixels (uses server default if omitted)"),
		),
	)
	s.mcpServer.AddTool(validateBoxesTool, s.handleValidateBoxes)

	fillOverlayTool := mcp.NewTool(
		"pdf_fill_overlay",
		mcp.WithDescription(descriptions.PDFFillOverlayDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithString("output_path",
			mcp.Required(),
			mcp.Description("Path for the stamped PDF"),
		),
		mcp.WithString("spec_path",
			mcp.Required(),
			mcp.Description("Path to the field description JSON document"),
		),
	)
	s.mcpServer.AddTool(fillOverlayTool, s.handleFillOverlay)

	renderPagesTool := mcp.NewTool(
		"pdf_render_pages",
		mcp.WithDescription(descriptions.PDFRenderPagesDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithString("output_dir",
			mcp.Required(),
			mcp.Description("Directory for the page images"),
		),
		mcp.WithNumber("dpi",
			mcp.Description("Rasterization resolution (uses server default if omitted)"),
		),
	)
	s.mcpServer.AddTool(renderPagesTool, s.handleRenderPages)

	validationImageTool := mcp.NewTool(
		"pdf_validation_image",
		mcp.WithDescription(descriptions.PDFValidationImageDescription),
		mcp.WithString("image_path",
			mcp.Required(),
			mcp.Description("Path to the rendered page image (PNG)"),
		),
		mcp.WithString("output_path",
			mcp.Required(),
			mcp.Description("Path for the annotated image"),
		),
		mcp.WithString("spec_path",
			mcp.Required(),
			mcp.Description("Path to the field description JSON document"),
		),
		mcp.WithNumber("page_number",
			mcp.Description("1-based page the image shows (default 1)"),
		),
	)
	s.mcpServer.AddTool(validationImageTool, s.handleValidationImage)

	mergeTool := mcp.NewTool(
		"pdf_merge",
		mcp.WithDescription(descriptions.PDFMergeDescription),
		mcp.WithString("inputs",
			mcp.Required(),
			mcp.Description("Comma-separated list of input PDF paths"),
		),
		mcp.WithString("output_path",
			mcp.Required(),
			mcp.Description("Path for the merged PDF"),
		),
	)
	s.mcpServer.AddTool(mergeTool, s.handleMerge)

	extractPagesTool := mcp.NewTool(
		"pdf_extract_pages",
		mcp.WithDescription(descriptions.PDFExtractPagesDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithString("output_path",
			mcp.Required(),
			mcp.Description("Path for the extracted PDF"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("1-based page range expression, e.g. '1-3,5,2'"),
		),
	)
	s.mcpServer.AddTool(extractPagesTool, s.handleExtractPages)

	splitTool := mcp.NewTool(
		"pdf_split",
		mcp.WithDescription(descriptions.PDFSplitDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithString("output_dir",
			mcp.Required(),
			mcp.Description("Directory for the single-page PDFs"),
		),
	)
	s.mcpServer.AddTool(splitTool, s.handleSplit)

	pageInfoTool := mcp.NewTool(
		"pdf_page_info",
		mcp.WithDescription(descriptions.PDFPageInfoDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(pageInfoTool, s.handlePageInfo)
}

// Handler functions

func (s *Server) handleFieldCatalog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.formService.FieldCatalog(service.FieldCatalogRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatFieldCatalogResult(result)), nil
}

func (s *Server) handleFillFields(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outputPath, err := request.RequireString("output_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	valuesPath, err := request.RequireString("values_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.formService.FillFields(service.FillFieldsRequest{
		Path:       path,
		OutputPath: outputPath,
		ValuesPath: valuesPath,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Filled %d field(s)\nOutput: %s\n", result.FieldsSet, result.OutputPath)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleValidateBoxes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	specPath, err := request.RequireString("spec_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	minHeight := 0.0
	if v, ok := args["min_entry_height"].(float64); ok {
		minHeight = v
	}

	result, err := s.formService.ValidateBoxes(service.ValidateBoxesRequest{
		SpecPath:       specPath,
		MinEntryHeight: minHeight,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatValidateBoxesResult(result)), nil
}

func (s *Server) handleFillOverlay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outputPath, err := request.RequireString("output_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	specPath, err := request.RequireString("spec_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.formService.FillOverlay(service.FillOverlayRequest{
		Path:       path,
		OutputPath: outputPath,
		SpecPath:   specPath,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Stamped %d field(s)\nOutput: %s\n", result.FieldsDrawn, result.OutputPath)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleRenderPages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outputDir, err := request.RequireString("output_dir")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	dpi := 0.0
	if v, ok := args["dpi"].(float64); ok {
		dpi = v
	}

	result, err := s.formService.RenderPages(service.RenderPagesRequest{
		Path:      path,
		OutputDir: outputDir,
		DPI:       dpi,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatRenderPagesResult(result)), nil
}

func (s *Server) handleValidationImage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	imagePath, err := request.RequireString("image_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outputPath, err := request.RequireString("output_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	specPath, err := request.RequireString("spec_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	pageNumber := 1
	if v, ok := args["page_number"].(float64); ok && v > 0 {
		pageNumber = int(v)
	}

	result, err := s.formService.ValidationImage(service.ValidationImageRequest{
		ImagePath:  imagePath,
		OutputPath: outputPath,
		SpecPath:   specPath,
		PageNumber: pageNumber,
		WithLabels: true,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Drew %d entry box(es) and %d label box(es)\nOutput: %s\n",
		result.Entries, result.Labels, result.OutputPath)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleMerge(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputsArg, err := request.RequireString("inputs")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outputPath, err := request.RequireString("output_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var inputs []string
	for _, in := range strings.Split(inputsArg, ",") {
		if in = strings.TrimSpace(in); in != "" {
			inputs = append(inputs, in)
		}
	}

	result, err := s.formService.Merge(service.MergeRequest{
		Inputs:     inputs,
		OutputPath: outputPath,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Merged %d file(s) into %s (%d pages)\n",
		result.InputCount, result.OutputPath, result.PageCount)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleExtractPages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outputPath, err := request.RequireString("output_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rangeExpr, err := request.RequireString("range")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.formService.ExtractPages(service.ExtractPagesRequest{
		Path:       path,
		OutputPath: outputPath,
		Range:      rangeExpr,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Extracted %d page(s) into %s\n", result.PagesSelected, result.OutputPath)
	for _, w := range result.Warnings {
		responseText += fmt.Sprintf("Warning: %s\n", w)
	}
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleSplit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outputDir, err := request.RequireString("output_dir")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.formService.Split(service.SplitRequest{
		Path:      path,
		OutputDir: outputDir,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Split %d page(s) into %s\n", result.PageCount, result.OutputDir)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handlePageInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.formService.PageInfo(service.PageInfoRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatPageInfoResult(result)), nil
}

// Formatting methods

func (s *Server) formatFieldCatalogResult(result *service.FieldCatalogResult) string {
	if !result.Fillable {
		return fmt.Sprintf("%s has no fillable form fields.\n"+
			"Use pdf_render_pages and pdf_fill_overlay for the image-based workflow instead.", result.Path)
	}

	text := fmt.Sprintf("Found %d fillable field(s) in %s\n\n", result.FieldCount, result.Path)
	for i, f := range result.Fields {
		text += fmt.Sprintf("%d. %s\n", i+1, f.FieldID)
		text += fmt.Sprintf("   Page: %d\n", f.Page)
		text += fmt.Sprintf("   Type: %s\n", f.Type)
		text += fmt.Sprintf("   Rect: [%g %g %g %g]\n", f.Rect[0], f.Rect[1], f.Rect[2], f.Rect[3])
		if f.Type == "checkbox" {
			text += fmt.Sprintf("   Checked value: %s\n", f.CheckedValue)
		}
		if len(f.RadioOptions) > 0 {
			text += "   Options:"
			for _, opt := range f.RadioOptions {
				text += " " + opt.Value
			}
			text += "\n"
		}
		if len(f.ChoiceOptions) > 0 {
			text += "   Choices:"
			for _, opt := range f.ChoiceOptions {
				text += " " + opt.Value
			}
			text += "\n"
		}
		if i < len(result.Fields)-1 {
			text += "\n"
		}
	}
	return text
}

func (s *Server) formatValidateBoxesResult(result *service.ValidateBoxesResult) string {
	if result.Valid {
		return fmt.Sprintf("All %d field(s) in %s passed geometry validation.",
			result.FieldCount, result.SpecPath)
	}

	text := fmt.Sprintf("Found %d geometry problem(s) in %s:\n", len(result.Violations), result.SpecPath)
	for _, v := range result.Violations {
		text += fmt.Sprintf("  %s\n", v)
	}
	return text
}

func (s *Server) formatRenderPagesResult(result *service.RenderPagesResult) string {
	text := fmt.Sprintf("Rendered %d page(s) into %s\n", result.PageCount, result.OutputDir)
	for _, img := range result.Images {
		text += fmt.Sprintf("  Page %d: %s (%dx%d)\n", img.PageNumber, img.Path, img.Width, img.Height)
	}
	return text
}

func (s *Server) formatPageInfoResult(result *service.PageInfoResult) string {
	text := fmt.Sprintf("%s has %d page(s)\n", result.Path, result.PageCount)
	for _, p := range result.Pages {
		text += fmt.Sprintf("  Page %d: %.2f x %.2f pt\n", p.PageNumber, p.Width, p.Height)
	}
	return text
}

// Run starts the MCP server on stdio
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting PDF form tools MCP server in stdio mode")
		log.Printf("Working directory: %s", s.config.WorkDirectory)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
