package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/jetsetgo/kiosk/internal/files"
	"github.com/jetsetgo/kiosk/internal/printer"
	"github.com/jetsetgo/kiosk/internal/state"
)

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderNotice())
	b.WriteString("\n")

	if m.active != nil {
		b.WriteString(m.renderActivePrint())
	} else {
		b.WriteString(m.renderSelection())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the connection and status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	conn := m.snapshot.Connection
	var connStyle lipgloss.Style
	switch conn {
	case state.ConnectionConnected:
		connStyle = styles.SuccessText
	case state.ConnectionError:
		connStyle = styles.DangerText
	case state.ConnectionDisconnected:
		connStyle = styles.WarningText
	default:
		connStyle = styles.MutedText
	}

	stateLabel := printStateLabel(m.snapshot)
	stateStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.StatusColor(stateLabel)))

	lightLabel := "off"
	lightStyle := styles.FaintText
	if m.light == printer.LightOn {
		lightLabel = "on"
		lightStyle = styles.WarningText
	}

	parts := []string{
		styles.Logo.Render("kiosk"),
		connStyle.Bold(true).Render(conn.String()),
		styles.MutedText.Render("state") + " " + stateStyle.Render(stateLabel),
		styles.MutedText.Render("nozzle") + " " + styles.Text.Render(formatTemp(m.snapshot)),
		styles.MutedText.Render("light") + " " + lightStyle.Render(lightLabel),
	}
	if !m.lastUpdated.IsZero() {
		parts = append(parts, styles.FaintText.Render(humanizeDuration(time.Since(m.lastUpdated))))
	}

	return strings.Join(parts, "  ")
}

// renderNotice renders the notification line.
func (m Model) renderNotice() string {
	if m.notice == "" {
		return ""
	}
	return m.theme.Styles().InfoText.Render(m.notice)
}

// renderSelection renders the file and slot pickers side by side.
func (m Model) renderSelection() string {
	styles := m.theme.Styles()

	filesPane := m.paneStyle(paneFiles).Render(m.renderFilePane())

	panes := []string{filesPane}
	if m.slotPaneVisible() {
		panes = append(panes, m.paneStyle(paneSlots).Render(m.renderSlotPane()))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, panes...)

	if m.sess.CanAct() {
		ready := styles.SuccessText.Render("Ready: ") +
			styles.Text.Render(m.sess.File()+" → slot "+m.sess.Slot()) +
			styles.MutedText.Render("  press s to start")
		return row + "\n" + ready
	}
	return row
}

func (m Model) paneStyle(p pane) lipgloss.Style {
	if m.focused == p {
		return m.theme.Styles().PaneFocus
	}
	return m.theme.Styles().Pane
}

// renderFilePane lists the queued print files.
func (m Model) renderFilePane() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Print Files"))
	b.WriteString("\n")

	if len(m.queue) == 0 {
		b.WriteString(styles.MutedText.Render("no queued files"))
		return b.String()
	}

	for i, f := range m.queue {
		b.WriteString(m.renderRow(
			i == m.fileCursor && m.focused == paneFiles,
			f.Name == m.sess.File(),
			truncate(f.Name, 34)+"  "+files.FormatSize(f.Size),
		))
		if i < len(m.queue)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderSlotPane lists the AMS material slots.
func (m Model) renderSlotPane() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Material Slots"))
	b.WriteString("\n")

	slots := m.slots()
	if len(slots) == 0 {
		b.WriteString(styles.MutedText.Render("no slots configured"))
		return b.String()
	}

	for i, slot := range slots {
		dot := lipgloss.NewStyle().
			Foreground(lipgloss.Color(slot.Color)).
			Render("●")
		b.WriteString(dot + " " + m.renderRow(
			i == m.slotCursor && m.focused == paneSlots,
			slot.ID == m.sess.Slot(),
			slot.Name,
		))
		if i < len(slots)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderRow renders one selectable entry: cursor marker for the
// highlighted row, selection background for the chosen one.
func (m Model) renderRow(cursor, selected bool, content string) string {
	styles := m.theme.Styles()

	marker := "  "
	if cursor {
		marker = "▸ "
	}
	if selected {
		return marker + styles.Selected.Render(" "+content+" ")
	}
	return marker + styles.Text.Render(content)
}

// renderActivePrint renders the running-job view.
func (m Model) renderActivePrint() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Now Printing"))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("file  ") + styles.Text.Render(m.active.Filename))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("slot  ") + styles.Text.Render(m.active.Slot))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("press c to cancel"))

	return m.theme.Styles().Pane.Render(b.String())
}

// renderConfirm renders the cancel confirmation modal.
func (m Model) renderConfirm() string {
	styles := m.theme.Styles()

	body := styles.Text.Render("Cancel the current print?") + "\n\n" +
		styles.DangerText.Render("[y]") + styles.MutedText.Render(" yes   ") +
		styles.Text.Render("[n]") + styles.MutedText.Render(" no")

	box := styles.Modal.Render(body)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// renderHelp renders the key binding overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	rows := []struct{ key, desc string }{
		{"↑/k ↓/j", "move"},
		{"enter", "select file / slot"},
		{"tab", "switch pane"},
		{"s", "start print"},
		{"c", "cancel print"},
		{"l", "toggle light"},
		{"r", "refresh file list"},
		{"esc", "clear selection"},
		{"T", "cycle theme"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Key Bindings"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(styles.AccentText.Render(padRight(row.key, 10)))
		b.WriteString(styles.Text.Render(row.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("press any key to close"))

	box := styles.Modal.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// renderFooter renders the abbreviated key hint line.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	hints := []string{"enter select", "s start", "c cancel", "l light", "h help", "q quit"}
	if m.active != nil {
		hints = []string{"c cancel", "l light", "h help", "q quit"}
	}
	return styles.FaintText.Render(strings.Join(hints, " · "))
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s + " "
}
