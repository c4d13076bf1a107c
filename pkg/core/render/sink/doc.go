// Package sink renders word cloud layouts to output formats.
//
// # Formats
//
//   - [RenderSVG]: vector output, optionally animated with CSS keyframes
//   - [RenderPNG]: raster output drawn with gogpu/gg and the embedded Go font
//   - [RenderPDF]: static SVG converted by rsvg-convert
//   - [RenderJSON]: the layout document of pkg/wordcloud
//   - [RenderTerminal], [RenderTerminalFrame]: colored text grids for the CLI
//
// Every sink takes a finished [cloud.Layout]; none of them changes word
// positions. The SVG animation and terminal frames read their motion from
// pkg/core/cloud/motion, so an animated SVG and the terminal preview of the
// same layout move the same way.
//
// # Styles
//
// Visual styles come from pkg/core/render/styles:
//
//	svg := sink.RenderSVG(l, sink.WithStyle(styles.Storm{}), sink.WithTitle("sonder"))
//
// # Rotation
//
// SVG and PDF honor word rotation. The gogpu/gg text path draws unrotated
// glyphs, so [RenderPNG] draws rotated words level unless [WithRSVG] routes
// the rasterization through rsvg-convert instead.
package sink
