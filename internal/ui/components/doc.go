// Package components provides the theme-aware lipgloss building blocks used to draw
// the CosmicUI page in a terminal.
//
// # Theme
//
// Themes are immutable values passed explicitly through RenderContext:
//
//	ctx := components.DefaultContext().WithWidth(80)
//	output := components.NewCard(components.BodyText("hi")).WithTitle("Card").ViewWithContext(ctx)
//
// View() renders with DefaultTheme and no width limit.
//
// # Components
//
//   - Text, Header, Badge, Button, Alert, Divider: primitives
//   - Card: bordered container with optional title, accent and footer
//   - Stack, Grid: vertical/horizontal arrangement with gaps
//   - Meter: a labelled level bar drawn with the bubbles progress model
//   - GradientText: one colour per rune, resolved along the theme's headline gradient
//
// # Style modifiers
//
// Components accept StyleFunc appliers that read the theme at render time:
//
//	NewText("Hello").WithAppliers(Foreground(PalettePrimary), Bold())
package components
