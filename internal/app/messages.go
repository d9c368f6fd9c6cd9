package app

import "rangeslider/internal/config"

// scheduledTickMsg carries a slider callback back onto the program loop.
type scheduledTickMsg struct {
	run func()
}

type configReloadedMsg struct {
	cfg config.Config
	err error
}

type clipboardResultMsg struct {
	text   string
	method clipboardMethod
	err    error
}
