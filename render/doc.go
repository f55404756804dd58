// Package render draws Zernike mode stacks as PNG heatmaps using gonum/plot.
//
// What:
//
//   - PNG implements modes.Renderer: attach one with modes.WithRenderer or
//     call Render directly on any finished stack.
//   - A single-mode stack becomes one titled heatmap.
//   - A multi-mode stack becomes a pyramid: tile row n holds the n+1 modes
//     of radial degree n, each tile titled with its OSA index — the classic
//     Zernike pyramid figure.
//
// Color:
//
//	A symmetric diverging palette (Moreland smooth blue–red) centered on
//	zero. The heat range is ±max|value| over the whole stack, shared by all
//	tiles so modes remain visually comparable.
//
// Rendering never mutates the stack; it is a pure consumer.
//
// Errors:
//
//   - ErrEmptyStack: nil stack or stack with no layers.
//   - ErrNoPath: no output path configured.
package render
