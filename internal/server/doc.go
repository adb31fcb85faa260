// Package server implements the stdio tool server for stripbg.
//
// The server speaks JSON-RPC 2.0 over stdio: one request per line on stdin,
// responses on stdout, diagnostics on stderr. It follows the MCP method
// surface so background stripping can be driven by MCP-compatible clients:
//
//   - initialize: protocol handshake
//   - tools/list: enumerate available tools
//   - tools/call: execute a tool with arguments
//   - ping: health check
//
// # Available Tools
//
// Image information:
//   - image_info: load an image and return its metadata
//   - image_dimensions: width and height only
//
// Background stripping:
//   - image_strip_background: classify near-white pixels as transparent,
//     crop to the content box, return the result as base64 PNG and
//     optionally write it to disk
//   - image_content_bounds: report the content box at a given tolerance
//     without producing an image
//   - image_bounds_overlay: draw the detected content box on a copy of the
//     image for visual verification
//
// Color inspection:
//   - image_sample_color: color at a pixel, with a near-white verdict
//   - image_dominant_colors: most common colors in the image or a region
//
// # Image Caching
//
// Loaded images are cached by path for the lifetime of the process, so a
// bounds check followed by a strip does not decode the file twice.
//
// # Error Handling
//
// Tool failures return JSON-RPC errors with code -32000 and the underlying
// Go error string in the data field; malformed parameters return -32602 and
// unknown methods -32601.
package server
