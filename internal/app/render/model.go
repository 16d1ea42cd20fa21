package render

import (
	"fmt"

	"materi/internal/app/catalog"
	"materi/internal/app/navigation"
	"materi/internal/app/progress"
)

// Copy shown on the page
const (
	PageTitle       = "Materi Asinkron"
	PageSubtitle    = "Pelajari materi e-course sesuai roadmap yang telah ditentukan"
	CourseListTitle = "Daftar E-Course"
	NoCourse        = "Tidak ada course yang tersedia"
	NoVideo         = "Belum ada video untuk course ini"
	MarkedLabel     = "✓ Sudah Selesai"
	UnmarkedLabel   = "Tandai Selesai Course"
	CheckMark       = "✓"
)

// BadgeKind selects how a week tab shows its progress
type BadgeKind int

const (
	BadgeNone BadgeKind = iota
	BadgeCheck
	BadgeFraction
)

// Badge is the progress marker of a week tab
type Badge struct {
	Kind      BadgeKind
	Completed int
	Total     int
}

// WeekBadge picks the marker for completed out of total courses
func WeekBadge(completed, total int) Badge {
	b := Badge{Completed: completed, Total: total}

	switch {
	case total > 0 && completed == total:
		b.Kind = BadgeCheck
	case completed > 0 && completed < total:
		b.Kind = BadgeFraction
	}

	return b
}

// Visible reports whether the badge shows anything
func (b Badge) Visible() bool {
	return b.Kind != BadgeNone
}

// Text returns the visible badge text
func (b Badge) Text() string {
	switch b.Kind {
	case BadgeCheck:
		return CheckMark
	case BadgeFraction:
		return fmt.Sprintf("%d/%d", b.Completed, b.Total)
	default:
		return ""
	}
}

// TabModel is one week tab
type TabModel struct {
	Week   int
	Label  string
	Active bool
	Badge  Badge
}

// CourseItemModel is one entry of the course list
type CourseItemModel struct {
	Index      int
	Title      string
	VideoCount int
	Active     bool
	Completed  bool
}

// Marker returns the leading badge text of the entry
func (c CourseItemModel) Marker() string {
	return ItemMarker(c.Index, c.Completed)
}

// LinkModel is a supporting material download
type LinkModel struct {
	Label string
	URL   string
	Class string
}

// DetailModel is the course detail pane
type DetailModel struct {
	Empty              bool
	Title              string
	Description        string
	Completed          bool
	HasVideo           bool
	VideoTitle         string
	VideoURL           string
	VideoNumber        int
	VideoCount         int
	PrevVideoDisabled  bool
	NextVideoDisabled  bool
	Downloads          []LinkModel
	PrevCourseDisabled bool
	NextCourseDisabled bool
	MarkLabel          string
}

// PageModel is the full materials page
type PageModel struct {
	Tabs      []TabModel
	Week      int
	WeekTitle string
	Total     int
	Completed int
	Courses   []CourseItemModel
	Detail    DetailModel
}

// Page builds the page model for the active selection
func Page(c catalog.WeekCatalog, p progress.Map, s navigation.State) PageModel {
	m := PageModel{
		Week:      s.Week,
		WeekTitle: fmt.Sprintf("Pekan %d", s.Week),
		Detail:    EmptyDetail(),
	}

	for _, id := range c.Weeks() {
		w := c[id]
		if w.Empty() {
			continue
		}

		m.Tabs = append(m.Tabs, TabModel{
			Week:   id,
			Label:  fmt.Sprintf("Pekan %d", id),
			Active: id == s.Week,
			Badge:  WeekBadge(p.Completed(id, w.Titles()), len(w.Materials)),
		})
	}

	week, ok := c.Lookup(s.Week)
	if !ok {
		return m
	}

	weekProgress := p.Week(s.Week)

	m.WeekTitle = week.Title
	m.Total = len(week.Materials)
	m.Completed = p.Completed(s.Week, week.Titles())

	for i, crs := range week.Materials {
		m.Courses = append(m.Courses, CourseItemModel{
			Index:      i,
			Title:      crs.Title,
			VideoCount: len(crs.Videos),
			Active:     i == s.Course,
			Completed:  weekProgress[crs.Title],
		})
	}

	if crs, ok := week.Course(s.Course); ok {
		m.Detail = CourseDetail(crs, weekProgress, s, len(week.Materials))
	}

	return m
}

// CourseDetail builds the detail pane model of course
func CourseDetail(course catalog.Course, weekProgress map[string]bool, s navigation.State, courseCount int) DetailModel {
	completed := weekProgress[course.Title]

	d := DetailModel{
		Title:              course.Title,
		Description:        course.Description,
		Completed:          completed,
		VideoCount:         len(course.Videos),
		PrevVideoDisabled:  true,
		NextVideoDisabled:  true,
		PrevCourseDisabled: s.Course <= 0,
		NextCourseDisabled: s.Course >= courseCount-1,
		MarkLabel:          UnmarkedLabel,
	}

	if completed {
		d.MarkLabel = MarkedLabel
	}

	if v, ok := course.Video(s.Video); ok {
		d.HasVideo = true
		d.VideoTitle = v.Title
		d.VideoURL = v.URL
		d.VideoNumber = s.Video + 1
		d.PrevVideoDisabled = s.Video == 0
		d.NextVideoDisabled = s.Video == len(course.Videos)-1
	}

	if catalog.HasLink(course.Download.Materi) {
		d.Downloads = append(d.Downloads, LinkModel{
			Label: "Download Materi",
			URL:   course.Download.Materi,
			Class: "download-materi bg-blue-600 hover:bg-blue-700",
		})
	}

	if catalog.HasLink(course.Download.Notulensi) {
		d.Downloads = append(d.Downloads, LinkModel{
			Label: "Download Notulensi",
			URL:   course.Download.Notulensi,
			Class: "download-notulensi bg-green-600 hover:bg-green-700",
		})
	}

	return d
}

// EmptyDetail is the placeholder pane shown when the week has no course to show
func EmptyDetail() DetailModel {
	return DetailModel{Empty: true}
}
