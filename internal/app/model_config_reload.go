package app

import (
	"rangeslider/internal/config"
	"rangeslider/internal/logging"
	"rangeslider/internal/slider"
)

func (m *Model) reduceConfigReload(msg configReloadedMsg) {
	if msg.err != nil {
		m.log.Warn("config reload failed", logging.F("error", msg.err))
		m.showErrorToast("config: " + msg.err.Error())
		return
	}
	if r := msg.cfg.Range; !slider.ValidBounds(r.Min, r.Max) {
		m.log.Warn("config reload rejected", logging.F("min", r.Min), logging.F("max", r.Max))
		m.showWarningToast("config: range min must be below max, keeping current settings")
		return
	}
	if m.widget.Dragging() {
		cfg := msg.cfg
		m.pendingConfig = &cfg
		m.showWarningToast("config changed, applying after drag")
		return
	}
	m.applyConfig(msg.cfg)
}

// applyConfig takes the new bounds, widths and drag tuning but keeps the
// current selection, clamped into the new bounds. Command line overrides
// win over the file.
func (m *Model) applyConfig(cfg config.Config) {
	if m.trackWidthOverride > 0 {
		cfg.UI.TrackWidth = m.trackWidthOverride
	}

	current := m.widget.State()
	next := cfg.Range.State()
	if !m.widget.Apply(slider.State{
		Min:      next.Min,
		Max:      next.Max,
		Start:    current.Start,
		End:      current.End,
		MinWidth: next.MinWidth,
		MaxWidth: next.MaxWidth,
	}) {
		m.log.Warn("config reload rejected", logging.F("min", next.Min), logging.F("max", next.Max))
		m.showWarningToast("config: range min must be below max, keeping current settings")
		return
	}

	m.cfg = cfg
	m.showHelp = cfg.UI.ShowHelp
	ctrl := m.widget.Controller()
	ctrl.SetSpeedFactor(cfg.Drag.SpeedFactor)
	ctrl.SetTickInterval(cfg.Drag.TickInterval())
	ctrl.Render()

	state := m.widget.State()
	m.log.Info("config reloaded",
		logging.F("min", state.Min),
		logging.F("max", state.Max),
		logging.F("start", state.Start),
		logging.F("end", state.End),
		logging.F("track_width", m.trackWidth()),
		logging.F("speed_factor", ctrl.Options().SpeedFactor),
		logging.F("tick_interval", ctrl.Options().TickInterval),
	)
	m.showInfoToast("config reloaded")
}
