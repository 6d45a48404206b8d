package render

// Quality names mirror the presets the scenes are rendered at.
const (
	QualityLow    = "low_quality"
	QualityMedium = "medium_quality"
	QualityHigh   = "high_quality"
)

// Options selects output quality and geometry for offline rendering.
type Options struct {
	Quality     string `yaml:"quality"`
	Preview     bool   `yaml:"preview"`
	FrameRate   int    `yaml:"frame_rate"`
	PixelWidth  int    `yaml:"pixel_width"`
	PixelHeight int    `yaml:"pixel_height"`
}

// DefaultOptions returns the medium quality settings.
func DefaultOptions() Options {
	return QualityPreset(QualityMedium)
}

// QualityPreset maps a quality name to concrete dimensions and frame rate.
// Unknown names fall back to medium.
func QualityPreset(name string) Options {
	switch name {
	case QualityLow:
		return Options{Quality: QualityLow, FrameRate: 15, PixelWidth: 854, PixelHeight: 480}
	case QualityHigh:
		return Options{Quality: QualityHigh, FrameRate: 60, PixelWidth: 1920, PixelHeight: 1080}
	default:
		return Options{Quality: QualityMedium, FrameRate: 30, PixelWidth: 1280, PixelHeight: 720}
	}
}

// CanvasSize derives braille canvas dimensions (in character cells) from the
// pixel geometry. Each cell holds 2x4 sub-pixels; terminal cells are roughly
// twice as tall as wide, so the aspect works out close to the pixel aspect.
func (o Options) CanvasSize() (w, h int) {
	w = o.PixelWidth / 16
	h = o.PixelHeight / 20
	if w < 10 {
		w = 10
	}
	if h < 5 {
		h = 5
	}
	return
}
