package theme

// Icons for panel list entries and overlays
const (
	IconHighlight = "●"
	IconNote      = "✎"
	IconRemoved   = "✗"
	IconCurrent   = "▶"
	IconAddSwatch = "+"
	IconConfirm   = "⚠️ "
	IconSuccess   = "✓"
)
