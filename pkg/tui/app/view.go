package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	appsvc "tableflip.dev/movimientos/pkg/app"
	"tableflip.dev/movimientos/pkg/movement"
)

var navLinks = []struct {
	key    string
	label  string
	screen appsvc.Screen
}{
	{"F1", "Inicio", appsvc.ScreenHome},
	{"F2", "Gestionar", appsvc.ScreenManage},
	{"F3", "Historial", appsvc.ScreenHistory},
	{"F4", "PDF", appsvc.ScreenPDF},
}

// View renders the top bar, the current screen and the footer.
func (m Model) View() string {
	nav, footer := m.renderNav(), m.renderFooter()

	// Lines left for the screen body once the bars and the blank separator
	// are drawn. Negative means the size is not known yet.
	avail := -1
	if m.termHeight > 0 {
		avail = m.termHeight - lipgloss.Height(nav) - lipgloss.Height(footer) - 1
	}

	var b strings.Builder
	b.WriteString(nav)
	b.WriteString("\n")

	switch m.app.Screen() {
	case appsvc.ScreenHome:
		b.WriteString(m.renderHome(avail))
	case appsvc.ScreenComment:
		b.WriteString(m.renderComment())
	case appsvc.ScreenManage:
		b.WriteString(m.renderManage())
	case appsvc.ScreenHistory:
		b.WriteString(m.renderHistory(avail))
	case appsvc.ScreenEdit:
		b.WriteString(m.renderEdit())
	case appsvc.ScreenPDF:
		b.WriteString(m.renderPDF(avail))
	}

	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

// rowBudget is how many one-line rows fit in avail after head is drawn.
// It returns -1 when there is no bound.
func rowBudget(avail int, head string) int {
	if avail < 0 {
		return -1
	}
	n := avail - strings.Count(head, "\n")
	if n < 1 {
		n = 1
	}
	return n
}

// visibleRange returns the bounds of at most limit rows out of total that
// keep cursor on screen. A negative limit shows everything.
func visibleRange(total, cursor, limit int) (int, int) {
	if limit < 0 || total <= limit {
		return 0, total
	}
	start := 0
	if cursor >= limit {
		start = cursor - limit + 1
	}
	return start, start + limit
}

func (m Model) renderNav() string {
	parts := []string{m.theme.Nav.AppTitle.Render("Movimientos")}
	for _, l := range navLinks {
		style := m.theme.Nav.Link
		if m.app.Screen() == l.screen {
			style = m.theme.Nav.Active
		}
		parts = append(parts, style.Render(l.key+" "+l.label))
	}
	return m.theme.Nav.Bar.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (m Model) renderFooter() string {
	var lines []string
	if n := m.app.Notice(); n.Text != "" {
		style := m.theme.Footer.Info
		if n.Error {
			style = m.theme.Footer.Error
		}
		lines = append(lines, style.Render(n.Text))
	}
	lines = append(lines, m.theme.Footer.Help.Render(helpFor(m.app.Screen())))
	return strings.Join(lines, "\n")
}

func helpFor(s appsvc.Screen) string {
	switch s {
	case appsvc.ScreenHome:
		return "flechas mover · enter registrar · q salir"
	case appsvc.ScreenComment:
		return "tab campo · ←/→ carro y zona · enter guardar · esc cancelar"
	case appsvc.ScreenManage:
		return "enter crear · ↑/↓ elegir · ctrl+d borrar · esc volver"
	case appsvc.ScreenHistory:
		return "↑/↓ elegir · e editar · d borrar · esc volver"
	case appsvc.ScreenEdit:
		return "tab campo · enter guardar · esc cancelar"
	case appsvc.ScreenPDF:
		return "escribe el día · enter exportar · esc volver"
	}
	return ""
}

func (m Model) renderHome(avail int) string {
	var b strings.Builder
	types := m.app.Types()
	if len(types) == 0 {
		b.WriteString(m.theme.Panel.Muted.Render("Sin botones. Crea uno en Gestionar (F2)."))
		b.WriteString("\n")
	} else {
		var rows []string
		for start := 0; start < len(types); start += gridColumns {
			end := start + gridColumns
			if end > len(types) {
				end = len(types)
			}
			var cells []string
			for i := start; i < end; i++ {
				style := m.theme.Grid.Button
				if i == m.homeCursor {
					style = m.theme.Grid.Selected
				}
				cells = append(cells, style.Render(types[i].Name))
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		}
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Panel.Title.Render("Últimos movimientos"))
	b.WriteString("\n")

	recent := m.app.Recent(appsvc.HomeRecent)
	_, end := visibleRange(len(recent), 0, rowBudget(avail, b.String()))
	b.WriteString(m.renderRows(recent[:end], -1, false))
	return b.String()
}

func (m Model) renderComment() string {
	sel, _ := m.app.Selected()
	var body []string
	body = append(body, m.theme.Panel.Title.Render(sel.Name))
	if sel.RequiresCartZone() {
		body = append(body,
			m.renderPicker("Carro", m.app.Cart(), m.focus == fieldCart),
			m.renderPicker("Zona", m.app.Zone(), m.focus == fieldZone),
		)
	}
	label := m.theme.Panel.Label
	if m.focus == fieldComment {
		label = m.theme.Panel.Focus
	}
	body = append(body, label.Render("Comentario"), m.comment.View())
	return m.theme.Panel.Frame.Render(strings.Join(body, "\n"))
}

func (m Model) renderPicker(name string, value int, focused bool) string {
	shown := "-"
	if value > 0 {
		shown = fmt.Sprintf("%d", value)
	}
	style := m.theme.Panel.Label
	if focused {
		style = m.theme.Panel.Focus
	}
	return style.Render(fmt.Sprintf("%-6s ‹ %2s ›", name+":", shown))
}

func (m Model) renderManage() string {
	var b strings.Builder
	b.WriteString(m.theme.Panel.Title.Render("Nuevo botón"))
	b.WriteString("\n")
	b.WriteString(m.typeName.View())
	b.WriteString("\n\n")
	b.WriteString(m.theme.Panel.Title.Render("Botones"))
	b.WriteString("\n")

	types := m.app.Types()
	if len(types) == 0 {
		b.WriteString(m.theme.Panel.Muted.Render("ninguno"))
		b.WriteString("\n")
	}
	for i, t := range types {
		line, marker := t.Name, ""
		if t.RequiresCartZone() {
			marker = m.theme.Panel.Muted.Render("  (carro/zona)")
		}
		if i == m.manageCursor {
			line = m.theme.Table.Selected.Render("› "+line) + marker
		} else {
			line = "  " + line + marker
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderHistory(avail int) string {
	var b strings.Builder
	b.WriteString(m.theme.Panel.Title.Render(fmt.Sprintf("Historial (últimos %d)", appsvc.HistoryLimit)))
	b.WriteString("\n")

	rows := m.app.Movements()
	limit := rowBudget(avail, b.String())
	if limit >= 0 && len(rows) > limit && limit > 1 {
		// keep a line for the position marker
		limit--
	}
	start, end := visibleRange(len(rows), m.historyCursor, limit)
	b.WriteString(m.renderRows(rows[start:end], m.historyCursor-start, true))
	if end-start < len(rows) {
		b.WriteString(m.theme.Panel.Muted.Render(fmt.Sprintf("%d-%d de %d", start+1, end, len(rows))))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderEdit() string {
	nameLabel, commentLabel := m.theme.Panel.Label, m.theme.Panel.Label
	if m.editFocus == 0 {
		nameLabel = m.theme.Panel.Focus
	} else {
		commentLabel = m.theme.Panel.Focus
	}
	body := []string{
		m.theme.Panel.Title.Render(fmt.Sprintf("Editar movimiento #%d", m.app.EditID())),
		nameLabel.Render("Movimiento"),
		m.editName.View(),
		commentLabel.Render("Comentario"),
		m.editComment.View(),
	}
	return m.theme.Panel.Frame.Render(strings.Join(body, "\n"))
}

func (m Model) renderPDF(avail int) string {
	var b strings.Builder
	b.WriteString(m.theme.Panel.Title.Render("Exportar día"))
	b.WriteString("\n")
	b.WriteString(m.day.View())
	b.WriteString("\n\n")

	rows, total := m.app.Preview()
	b.WriteString(m.theme.Panel.Label.Render(fmt.Sprintf("%d movimientos el %s", total, m.app.PDFDay())))
	b.WriteString("\n")
	limit := rowBudget(avail, b.String())
	if limit > 1 {
		limit--
	}
	_, end := visibleRange(len(rows), 0, limit)
	b.WriteString(m.renderRows(rows[:end], -1, false))
	if total > end {
		b.WriteString(m.theme.Panel.Muted.Render(fmt.Sprintf("mostrando %d de %d", end, total)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderRows(rows []movement.Movement, cursor int, withDay bool) string {
	if len(rows) == 0 {
		return m.theme.Panel.Muted.Render("sin movimientos") + "\n"
	}
	var b strings.Builder
	for i, r := range rows {
		when := r.HHMMSS
		if withDay {
			when = r.DayKey + " " + r.HHMMSS
		}
		timeStyle := m.theme.Table.Time
		if withDay {
			timeStyle = timeStyle.Width(21)
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			timeStyle.Render(when),
			m.theme.Table.Name.Render(r.MovementName),
			m.theme.Table.Comment.Render(r.Comment),
		)
		if m.termWidth > 0 {
			line = lipgloss.NewStyle().MaxWidth(m.termWidth).Render(line)
		}
		if i == cursor {
			line = m.theme.Table.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
