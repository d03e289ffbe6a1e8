package tracing

// Span attribute keys shared across the theme pipeline.
const (
	AttrTheme        = "theme.name"
	AttrActivationID = "theme.activation_id"
	AttrPreset       = "theme.preset"
	AttrColorCount   = "theme.color_count"

	AttrColorName = "color.name"
	AttrTier      = "display.tier"

	AttrFaceName = "face.name"

	AttrConfigPath = "config.path"

	AttrErrorMessage = "error.message"
)

// Span names.
const (
	SpanActivate     = "theme.activate"
	SpanResolve      = "theme.resolve"
	SpanResolveFace  = "faces.resolve"
	SpanConfigLoad   = "config.load"
	SpanConfigReload = "config.reload"
)

// Event names for span events.
const (
	EventTableBuilt      = "palette.table_built"
	EventOverrideApplied = "palette.override_applied"
	EventReloadTriggered = "config.reload_triggered"
	EventErrorOccurred   = "error.occurred"
)
