package form

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/iw2rmb/paramedit/param"
)

const (
	defaultTitle = "Parameter editor"
	defaultWidth = 40
	minWidth     = 4
)

// Config configures the form Model.
type Config struct {
	// Fields are rendered in this order.
	Definitions []param.Definition
	// Initial values and the pass-through colors.
	Model param.Model

	// Heading above the fields. Empty uses "Parameter editor".
	Title string
	// Render the current model as JSON below the fields.
	ShowPreview bool
	// Inner width of every field, in cells. <= 0 uses 40.
	Width int

	// A zero Style renders without decoration.
	Style Style
	// A zero KeyMap uses DefaultKeyMap.
	KeyMap KeyMap

	// OnChange is called synchronously after every effective value change.
	OnChange func(ChangeEvent)

	// Nil discards log output.
	Logger *zap.Logger
}

func normalizeConfig(cfg Config) Config {
	if cfg.Title == "" {
		cfg.Title = defaultTitle
	}
	cfg.Width = normalizeWidth(cfg.Width)
	if reflect.DeepEqual(cfg.KeyMap, KeyMap{}) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	cfg.Definitions = append([]param.Definition(nil), cfg.Definitions...)
	return cfg
}

func normalizeWidth(w int) int {
	if w <= 0 {
		return defaultWidth
	}
	if w < minWidth {
		return minWidth
	}
	return w
}
