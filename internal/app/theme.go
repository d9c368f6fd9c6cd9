package app

import "charm.land/lipgloss/v2"

var (
	headerStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	helpStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activityStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true)
	trackHiddenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	selectionStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	selectionDragStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	handleStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	handleActiveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true)
	boundStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	valueStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("230"))
	toastInfoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Bold(true)
	toastWarningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("136")).Bold(true)
	toastErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true)
)
