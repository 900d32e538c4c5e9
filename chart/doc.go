// Package chart draws the geometry of a 2×2 eigen-decomposition: the unit
// circle, its image under A (an ellipse, possibly degenerate) and the
// eigenvector directions.
//
// Two renderers share one Geometry:
//
//	Plot / Save — a gonum/plot figure saved by file extension. Vector and
//	              standard raster formats (.svg .pdf .eps .png .jpg .tif)
//	              go through plot.Save; .webp and .tga are rasterized with
//	              vgimg at a supersampled DPI, downscaled with
//	              golang.org/x/image/draw and encoded by nativewebp or tga.
//	WriteHTML   — a go-echarts page for interactive inspection.
//
// For complex eigenvectors the real and imaginary parts are drawn as two
// directions; together they span the real invariant plane.
package chart
