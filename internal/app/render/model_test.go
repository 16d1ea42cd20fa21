package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"materi/internal/app/catalog"
	"materi/internal/app/navigation"
	"materi/internal/app/progress"
)

func scenarioCatalog() catalog.WeekCatalog {
	return catalog.WeekCatalog{
		1: {ID: 1, Title: "Pekan 1: Pengenalan", Materials: []catalog.Course{
			{
				Title:       "A",
				Description: "Course A",
				Videos:      []catalog.Video{{Title: "A1", URL: "https://www.youtube.com/embed/a1"}},
				Download:    catalog.Download{Materi: "https://example.com/a.pdf", Notulensi: catalog.Placeholder},
			},
			{
				Title:       "B",
				Description: "Course B",
				Videos: []catalog.Video{
					{Title: "B1", URL: "https://www.youtube.com/embed/b1"},
					{Title: "B2", URL: "https://www.youtube.com/embed/b2"},
				},
				Download: catalog.Download{Materi: catalog.Placeholder, Notulensi: "https://example.com/b-notes.pdf"},
			},
		}},
		3: {ID: 3, Title: "Pekan 3", Materials: []catalog.Course{
			{Title: "C", Download: catalog.Download{Materi: catalog.Placeholder, Notulensi: catalog.Placeholder}},
		}},
		2: {ID: 2, Title: "Pekan 2"},
	}
}

func Test_WeekBadge(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		kind      BadgeKind
		text      string
	}{
		{name: "nothing done", completed: 0, total: 3, kind: BadgeNone, text: ""},
		{name: "partial", completed: 1, total: 2, kind: BadgeFraction, text: "1/2"},
		{name: "almost", completed: 2, total: 3, kind: BadgeFraction, text: "2/3"},
		{name: "all done", completed: 2, total: 2, kind: BadgeCheck, text: CheckMark},
		{name: "empty week", completed: 0, total: 0, kind: BadgeNone, text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := WeekBadge(tt.completed, tt.total)

			assert.Equal(t, tt.kind, b.Kind)
			assert.Equal(t, tt.text, b.Text())
		})
	}
}

func Test_Page_Tabs(t *testing.T) {
	p := progress.Map{
		1: {"A": true},
		3: {"C": true},
	}

	m := Page(scenarioCatalog(), p, navigation.State{Week: 3})

	require.Len(t, m.Tabs, 2)
	assert.Equal(t, 1, m.Tabs[0].Week)
	assert.Equal(t, "Pekan 1", m.Tabs[0].Label)
	assert.False(t, m.Tabs[0].Active)
	assert.Equal(t, BadgeFraction, m.Tabs[0].Badge.Kind)

	assert.Equal(t, 3, m.Tabs[1].Week)
	assert.True(t, m.Tabs[1].Active)
	assert.Equal(t, BadgeCheck, m.Tabs[1].Badge.Kind)
}

func Test_Page_CountsOnlyCurrentTitles(t *testing.T) {
	p := progress.Map{1: {"A": true, "Renamed": true, "B": false}}

	m := Page(scenarioCatalog(), p, navigation.State{Week: 1})

	assert.Equal(t, 1, m.Completed)
	assert.Equal(t, 2, m.Total)
	assert.Equal(t, BadgeFraction, m.Tabs[0].Badge.Kind)
	assert.Equal(t, 1, m.Tabs[0].Badge.Completed)
}

func Test_Page_CourseList(t *testing.T) {
	p := progress.Map{1: {"A": true}}

	m := Page(scenarioCatalog(), p, navigation.State{Week: 1, Course: 1})

	require.Len(t, m.Courses, 2)
	assert.Equal(t, CourseItemModel{Index: 0, Title: "A", VideoCount: 1, Completed: true}, m.Courses[0])
	assert.Equal(t, CourseItemModel{Index: 1, Title: "B", VideoCount: 2, Active: true}, m.Courses[1])
	assert.Equal(t, CheckMark, m.Courses[0].Marker())
	assert.Equal(t, "2", m.Courses[1].Marker())
	assert.Equal(t, "B", m.Detail.Title)
}

func Test_Page_Placeholder(t *testing.T) {
	tests := []struct {
		name  string
		state navigation.State
		title string
	}{
		{name: "absent week", state: navigation.State{Week: 9}, title: "Pekan 9"},
		{name: "empty week", state: navigation.State{Week: 2}, title: "Pekan 2"},
		{name: "course index beyond list", state: navigation.State{Week: 3, Course: 4}, title: "Pekan 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Page(scenarioCatalog(), nil, tt.state)

			assert.True(t, m.Detail.Empty)
			assert.Equal(t, tt.title, m.WeekTitle)
		})
	}
}

func Test_CourseDetail_Scenario(t *testing.T) {
	c := scenarioCatalog()
	week := c[1]

	a := CourseDetail(week.Materials[0], map[string]bool{}, navigation.State{Week: 1}, 2)

	assert.True(t, a.HasVideo)
	assert.Equal(t, 1, a.VideoNumber)
	assert.Equal(t, 1, a.VideoCount)
	assert.True(t, a.PrevVideoDisabled)
	assert.True(t, a.NextVideoDisabled)
	assert.True(t, a.PrevCourseDisabled)
	assert.False(t, a.NextCourseDisabled)
	assert.Equal(t, UnmarkedLabel, a.MarkLabel)
	assert.False(t, a.Completed)

	b := CourseDetail(week.Materials[1], map[string]bool{}, navigation.State{Week: 1, Course: 1}, 2)

	assert.Equal(t, 1, b.VideoNumber)
	assert.Equal(t, 2, b.VideoCount)
	assert.True(t, b.PrevVideoDisabled)
	assert.False(t, b.NextVideoDisabled)
	assert.False(t, b.PrevCourseDisabled)
	assert.True(t, b.NextCourseDisabled)

	last := CourseDetail(week.Materials[1], map[string]bool{"B": true}, navigation.State{Week: 1, Course: 1, Video: 1}, 2)

	assert.Equal(t, "B2", last.VideoTitle)
	assert.False(t, last.PrevVideoDisabled)
	assert.True(t, last.NextVideoDisabled)
	assert.True(t, last.Completed)
	assert.Equal(t, MarkedLabel, last.MarkLabel)
}

func Test_CourseDetail_Downloads(t *testing.T) {
	tests := []struct {
		name   string
		dl     catalog.Download
		labels []string
	}{
		{name: "both placeholders", dl: catalog.Download{Materi: "#", Notulensi: "#"}},
		{name: "materi only", dl: catalog.Download{Materi: "https://x/m.pdf", Notulensi: "#"}, labels: []string{"Download Materi"}},
		{name: "notulensi only", dl: catalog.Download{Materi: "#", Notulensi: "https://x/n.pdf"}, labels: []string{"Download Notulensi"}},
		{name: "both links", dl: catalog.Download{Materi: "https://x/m.pdf", Notulensi: "https://x/n.pdf"}, labels: []string{"Download Materi", "Download Notulensi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CourseDetail(catalog.Course{Title: "X", Download: tt.dl}, nil, navigation.State{Week: 1}, 1)

			var labels []string
			for _, l := range d.Downloads {
				labels = append(labels, l.Label)
			}

			assert.Equal(t, tt.labels, labels)
		})
	}
}

func Test_CourseDetail_NoVideos(t *testing.T) {
	d := CourseDetail(catalog.Course{Title: "C"}, nil, navigation.State{Week: 3}, 1)

	assert.False(t, d.HasVideo)
	assert.True(t, d.PrevVideoDisabled)
	assert.True(t, d.NextVideoDisabled)
	assert.True(t, d.PrevCourseDisabled)
	assert.True(t, d.NextCourseDisabled)
}
