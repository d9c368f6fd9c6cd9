package app

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"rangeslider/internal/logging"
)

func (m *Model) reduceKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.widget.Release()
		return tea.Quit
	case key.Matches(msg, m.keys.Copy):
		return copyCmd(m.selectionText())
	case key.Matches(msg, m.keys.Reset):
		if !m.widget.Apply(m.cfg.Range.State()) {
			m.showWarningToast("configured range is invalid")
			return nil
		}
		m.log.Info("selection reset", logging.F("start", m.widget.SliderStart()), logging.F("end", m.widget.SliderEnd()))
		m.showInfoToast("range reset")
	case key.Matches(msg, m.keys.Help):
		m.helpOpen = !m.helpOpen
		m.help.ShowAll = m.helpOpen
	}
	return nil
}
