package server

// Tool describes a callable tool exposed via tools/list.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image information
		{
			Name:        "image_info",
			Description: "Load an image file and return its dimensions, format, color depth, and alpha channel presence.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Background stripping
		{
			Name:        "image_strip_background",
			Description: "Rewrite near-white pixels to transparent, crop to the bounding box of the remaining content, and return the result as base64-encoded PNG. Optionally writes the PNG to output_path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"tolerance": map[string]interface{}{
						"type":        "integer",
						"description": "Whiteness threshold 0-255; a pixel is background when R, G, and B each exceed 255 - tolerance. Default 60",
						"default":     60,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also write the processed PNG to",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_content_bounds",
			Description: "Report the bounding box of non-background content at the given tolerance, without producing an image. found=false means the whole image would become transparent.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"tolerance": map[string]interface{}{
						"type":        "integer",
						"description": "Whiteness threshold 0-255. Default 60",
						"default":     60,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_bounds_overlay",
			Description: "Return the image with the detected content box outlined, as base64-encoded PNG. Use this to verify where a crop would land before stripping.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"tolerance": map[string]interface{}{
						"type":        "integer",
						"description": "Whiteness threshold 0-255. Default 60",
						"default":     60,
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Outline color as hex, e.g. #FF0000. Default red",
						"default":     "#FF0000",
					},
				},
				"required": []string{"path"},
			},
		},

		// Color inspection
		{
			Name:        "image_sample_color",
			Description: "Get the color at a pixel coordinate, including whether it counts as near-white at the default tolerance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Return the N most common colors in the image or a region. Helps pick a tolerance by showing what shade the background actually is.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return (default 5)",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region to analyze. If omitted, analyzes the entire image.",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
