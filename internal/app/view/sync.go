package view

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"materi/internal/app/catalog"
	"materi/internal/app/dom"
	"materi/internal/app/navigation"
	"materi/internal/app/progress"
	"materi/internal/app/render"
)

// Ids of the in-place synchronised page chrome
const (
	CourseListID   = "course-list"
	WeekProgressID = "week-progress"
	WeekTabsID     = "week-tabs"
)

// isPaneFragment matches the nodes a pane refresh touches and the live banners
func isPaneFragment(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}

	if dom.HasClass(n, render.NotificationBaseClass) {
		return true
	}

	id, _ := dom.Attr(n, "id")

	switch id {
	case dom.CourseDetailID, CourseListID, WeekTabsID, WeekProgressID:
		return true
	default:
		return false
	}
}

// syncCourseList restyles the existing course list, the active tab badge and the header counter
func syncCourseList(root *html.Node, c catalog.WeekCatalog, p progress.Map, s navigation.State) {
	week, ok := c.Lookup(s.Week)
	if !ok {
		return
	}

	weekProgress := p.Week(s.Week)

	if list := dom.Find(root, dom.ByID(CourseListID)); list != nil {
		for _, item := range dom.FindAll(list, dom.ByClass("course-item")) {
			syncCourseItem(item, week, weekProgress, s.Course)
		}
	}

	completed := p.Completed(s.Week, week.Titles())
	total := len(week.Materials)

	if counter := dom.Find(root, dom.ByID(WeekProgressID)); counter != nil {
		dom.SetText(counter, fmt.Sprintf("%d/%d selesai", completed, total))
	}

	if tabs := dom.Find(root, dom.ByID(WeekTabsID)); tabs != nil {
		for _, tab := range dom.FindAll(tabs, dom.ByClass("tab-button")) {
			if v, _ := dom.Attr(tab, "data-week"); v == strconv.Itoa(s.Week) {
				syncTabBadge(tab, render.WeekBadge(completed, total))
			}
		}
	}
}

func syncCourseItem(item *html.Node, week catalog.Week, weekProgress map[string]bool, activeIndex int) {
	raw, _ := dom.Attr(item, "data-course-index")

	index, err := strconv.Atoi(raw)
	if err != nil {
		return
	}

	course, ok := week.Course(index)
	if !ok {
		return
	}

	active := index == activeIndex
	completed := weekProgress[course.Title]

	dom.RemoveClass(item, render.ActiveItemClasses...)
	dom.RemoveClass(item, render.IdleItemClasses...)

	if active {
		dom.AddClass(item, render.ActiveItemClasses...)
	} else {
		dom.AddClass(item, render.IdleItemClasses...)
	}

	dom.ToggleClass(item, completed, render.CompletedItemClass)

	if badge := dom.Find(item, dom.ByClass("course-badge")); badge != nil {
		dom.SetAttr(badge, "class", render.BadgeClass(active, completed))
		dom.SetText(badge, render.ItemMarker(index, completed))
	}
}

func syncTabBadge(tab *html.Node, badge render.Badge) {
	label := dom.Find(tab, dom.ByClass("tab-label"))
	if label == nil {
		return
	}

	if old := dom.Find(label, dom.ByClass("week-badge")); old != nil {
		label.RemoveChild(old)
	}

	if !badge.Visible() {
		return
	}

	span := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
	dom.SetAttr(span, "class", render.WeekBadgeClass(badge.Kind))
	dom.SetText(span, badge.Text())
	label.AppendChild(span)
}
