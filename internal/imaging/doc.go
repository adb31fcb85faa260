// Package imaging implements the pixel-level operations behind stripbg:
// whiteness classification, content bounding-box computation, cropping,
// color inspection, and PNG output.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner.
// X increases rightward, Y increases downward. Rectangles follow the standard
// Go image convention: the top-left corner is inclusive, the bottom-right
// corner is exclusive.
//
// # Pixel Model
//
// Operations work on non-premultiplied RGBA (*image.NRGBA) so that pixels
// which are not classified as background pass through with their original
// channel values bit-exact, including partial alpha from the source image.
// Sources without an alpha channel decode to full opacity.
//
// # Classification
//
// A pixel is background when all three of its color channels exceed
// 255 - tolerance, where tolerance is an integer in [0,255]. Background
// pixels are rewritten to transparent white (255,255,255,0); every other
// pixel is left untouched.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are
// stateless: they never mutate their input image and may be called
// concurrently on different images.
package imaging
