// Package ui holds the terminal styles shared by the ascend CLI.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/osse101/Ascendant_Go/internal/domain"
)

const (
	IconQuest   = "🗺️"
	IconTask    = "📝"
	IconMission = "🎯"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconMissed  = "💀"
	IconCurse   = "☠️"
	IconLock    = "🔒"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconScroll  = "📜"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
)

// Heading renders a section title with an optional icon
func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

// LabelValue renders "label: value" with a styled label
func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// KindIcon returns the icon for an item kind
func KindIcon(kind domain.ItemKind) string {
	switch kind {
	case domain.KindQuest:
		return IconQuest
	case domain.KindMission:
		return IconMission
	default:
		return IconTask
	}
}

// ItemState renders the lifecycle state of a work item
func ItemState(w domain.WorkItem) string {
	switch {
	case w.Missed && w.Completed:
		return Warn.Render("late")
	case w.Missed:
		return Bad.Render("missed")
	case w.Completed:
		return Good.Render("done")
	case w.Started:
		return H2.Render("active")
	default:
		return Muted.Render("open")
	}
}

// ProgressBar renders cur/max as a fixed width bar
func ProgressBar(cur, max int64, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	filled := int(cur * int64(width) / max)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}

// Notification renders one engine notification as a single line
func Notification(n domain.Notification) string {
	switch n.Type {
	case domain.NotificationLevelUp:
		return Gold.Render(IconSparkle+" LEVEL UP") + " " + n.Message
	case domain.NotificationLevelDown:
		return Bad.Render(IconCurse+" LEVEL DOWN") + " " + n.Message
	case domain.NotificationCurseApplied, domain.NotificationShadowFatigueApplied:
		return Bad.Render(IconCurse+" "+n.Message)
	case domain.NotificationSideQuestsLocked:
		return Bad.Render(IconLock + " " + n.Message)
	case domain.NotificationItemMissed:
		return Warn.Render(IconMissed + " " + n.Message)
	case domain.NotificationQuotaRejected:
		return Warn.Render(IconWarn + " " + n.Message)
	case domain.NotificationExpAwarded, domain.NotificationRedemptionSucceeded, domain.NotificationCurseLifted:
		return Good.Render(IconDone + " " + n.Message)
	default:
		return Muted.Render(n.Message)
	}
}
