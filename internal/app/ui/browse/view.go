package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"materi/internal/app/render"
	"materi/internal/app/ui/components"
	"materi/internal/app/view"
)

// View renders the UI
func (m Model) View() string {
	if m.state.quit {
		return ""
	}

	if !m.state.ready {
		return "Initializing…"
	}

	page := m.state.page

	sections := []string{
		components.RenderHeader(m.ui.width, m.renderTitle(), components.SubtitleStyle.Render(render.PageSubtitle)),
		m.renderTabs(),
		m.renderWeekHeader(),
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderCourseList(), components.ActivePanelStyle.Render(m.ui.detail.View())),
	}

	if notices := m.renderNotices(); notices != "" {
		sections = append(sections, notices)
	}

	if m.state.err != nil {
		sections = append(sections, components.ErrorStyle.Render(m.state.err.Error()))
	}

	sections = append(sections, components.RenderFooter(m.ui.width, m.renderHelp()))

	if len(page.Tabs) == 0 && page.Total == 0 {
		sections[2] = components.EmptyStateStyle.Render(render.NoCourse)
	}

	return components.AppContainerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderTitle renders the title with an optional loading spinner
func (m Model) renderTitle() string {
	if m.ui.loader.Active {
		return m.ui.loader.Model.View() + components.LoaderSpacerStyle.Render(m.ui.loader.Message())
	}

	return components.TitleStyle.Render(render.PageTitle)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.state.page.Tabs))

	for _, tab := range m.state.page.Tabs {
		label := tab.Label
		if badge := renderBadge(tab.Badge); badge != "" {
			label += " " + badge
		}

		if tab.Active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderBadge(b render.Badge) string {
	switch b.Kind {
	case render.BadgeCheck:
		return badgeCheckStyle.Render(b.Text())
	case render.BadgeFraction:
		return badgeFractionStyle.Render(b.Text())
	default:
		return ""
	}
}

func (m Model) renderWeekHeader() string {
	page := m.state.page

	return lipgloss.JoinVertical(lipgloss.Left,
		weekTitleStyle.Render(page.WeekTitle),
		fmt.Sprintf("%s  %s %s",
			mutedStyle.Render(fmt.Sprintf("%d e-course tersedia", page.Total)),
			m.ui.meter.Render(meterStyle),
			counterStyle.Render(fmt.Sprintf("%d/%d selesai", page.Completed, page.Total)),
		),
	)
}

func (m Model) renderCourseList() string {
	courses := m.state.page.Courses
	width := components.CourseListWidth - components.PanelInnerPadding

	if len(courses) == 0 {
		return components.PanelStyle.Width(components.CourseListWidth).Render(mutedStyle.Render(render.NoCourse))
	}

	rows := []string{sectionStyle.UnsetMarginTop().Render(render.CourseListTitle)}

	for _, c := range courses {
		marker := markerStyle.Render(c.Marker())
		if c.Completed {
			marker = completedMarkerStyle.Render(c.Marker())
		}

		title := components.Truncate(c.Title, width-lipgloss.Width(marker)-2)
		row := components.PadRight(marker+title, width-2)

		if c.Active {
			rows = append(rows, activeCourseRowStyle.Render(row))
		} else {
			rows = append(rows, courseRowStyle.Render(row))
		}
	}

	return components.PanelStyle.Width(components.CourseListWidth).Render(strings.Join(rows, "\n"))
}

// renderDetail renders the course detail pane content for the viewport
func (m Model) renderDetail() string {
	d := m.state.page.Detail

	if d.Empty {
		return mutedStyle.Render(render.NoCourse)
	}

	var b strings.Builder

	heading := courseHeadingStyle.Render(d.Title)
	if d.Completed {
		heading += completedBadgeStyle.Render(render.CheckMark + " Selesai")
	}

	b.WriteString(heading + "\n")

	if d.Description != "" {
		b.WriteString(mutedStyle.Render(d.Description) + "\n")
	}

	b.WriteString("\n")

	if d.HasVideo {
		b.WriteString(d.VideoTitle + "\n")
		b.WriteString(mutedStyle.Render(d.VideoURL) + "\n")
		b.WriteString(fmt.Sprintf("Video %d dari %d\n", d.VideoNumber, d.VideoCount))
	} else {
		b.WriteString(mutedStyle.Render(render.NoVideo) + "\n")
	}

	b.WriteString(control("← Video Sebelumnya", d.PrevVideoDisabled) + "  " + control("Video Selanjutnya →", d.NextVideoDisabled) + "\n")

	if len(d.Downloads) > 0 {
		b.WriteString(sectionStyle.Render("Materi Pendukung") + "\n")

		for _, link := range d.Downloads {
			style := lipgloss.NewStyle().Foreground(components.DownloadColors[link.Class])
			b.WriteString(style.Render(link.Label) + " " + mutedStyle.Render(link.URL) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(control("↑ Course Sebelumnya", d.PrevCourseDisabled) + "  " + controlStyle.Render("["+d.MarkLabel+"]") + "  " + control("Course Selanjutnya ↓", d.NextCourseDisabled))

	return b.String()
}

func control(label string, disabled bool) string {
	if disabled {
		return disabledStyle.Render(label)
	}

	return controlStyle.Render(label)
}

func (m Model) renderNotices() string {
	if len(m.state.notices) == 0 {
		return ""
	}

	lines := make([]string, 0, len(m.state.notices))

	for _, n := range m.state.notices {
		switch n.Kind {
		case view.KindSuccess:
			lines = append(lines, components.SuccessStyle.Render(n.Message))
		case view.KindError:
			lines = append(lines, components.ErrorStyle.Render(n.Message))
		default:
			lines = append(lines, components.InfoStyle.Render(n.Message))
		}
	}

	return strings.Join(lines, "\n")
}

// renderHelp renders the key bindings and, when enabled, a rotating tip
func (m Model) renderHelp() string {
	h := m.ui.help.View(m.ui.keys)

	if !m.ui.showTips || len(components.Tips) == 0 {
		return h
	}

	rotation := m.ui.tickCounter / components.TipRotationTicks
	tip := components.Tips[(m.ui.tipOffset+rotation)%len(components.Tips)]

	return lipgloss.JoinVertical(lipgloss.Left, h, tip)
}
