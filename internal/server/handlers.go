package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/stripbg/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_strip_background").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the named tool.
// Results are wrapped in the MCP content format:
//
//	{"content": [{"type": "text", "text": "<JSON result>"}]}
func (s *Server) handleToolsCall(req *Request) *Response {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": marshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches execution to the matching handler.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_info":
		return s.handleImageInfo(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_strip_background":
		return s.handleStripBackground(args)
	case "image_content_bounds":
		return s.handleContentBounds(args)
	case "image_bounds_overlay":
		return s.handleBoundsOverlay(args)
	case "image_sample_color":
		return s.handleSampleColor(args)
	case "image_dominant_colors":
		return s.handleDominantColors(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

func (s *Server) errorResponse(id interface{}, code int, message, data string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// marshalJSON converts a value to pretty-printed JSON. On marshal failure it
// returns an empty string rather than failing the whole response.
func marshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Image information handlers ===

type pathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Background stripping handlers ===

// toleranceArgs embeds the common path + tolerance pair. Tolerance is a
// pointer so an explicit 0 survives; nil means "use the default".
type toleranceArgs struct {
	Path      string `json:"path"`
	Tolerance *int   `json:"tolerance"`
}

func (a toleranceArgs) tolerance() int {
	if a.Tolerance == nil {
		return imaging.DefaultTolerance
	}
	return *a.Tolerance
}

type stripBackgroundArgs struct {
	toleranceArgs
	OutputPath string `json:"output_path"`
}

type stripBackgroundResult struct {
	*imaging.StripResult
	OutputPath string `json:"output_path,omitempty"`
}

func (s *Server) handleStripBackground(args json.RawMessage) (interface{}, error) {
	var a stripBackgroundArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	result, err := imaging.StripToFile(img, a.tolerance(), a.OutputPath)
	if err != nil {
		return nil, err
	}

	return stripBackgroundResult{StripResult: result, OutputPath: a.OutputPath}, nil
}

func (s *Server) handleContentBounds(args json.RawMessage) (interface{}, error) {
	var a toleranceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	return imaging.ContentBoundsReport(img, a.tolerance())
}

type boundsOverlayArgs struct {
	toleranceArgs
	Color string `json:"color"`
}

func (s *Server) handleBoundsOverlay(args json.RawMessage) (interface{}, error) {
	var a boundsOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		a.Color = "#FF0000"
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	return imaging.BoundsOverlay(img, a.tolerance(), a.Color)
}

// === Color inspection handlers ===

type sampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	return imaging.SampleColor(img, a.X, a.Y)
}

type dominantColorsArgs struct {
	Path   string          `json:"path"`
	Count  int             `json:"count"`
	Region *imaging.Region `json:"region"`
}

func (s *Server) handleDominantColors(args json.RawMessage) (interface{}, error) {
	var a dominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	return imaging.DominantColors(img, a.Count, a.Region)
}
