package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"materi/internal/app/catalog"
	"materi/internal/app/dom"
	"materi/internal/app/navigation"
	"materi/internal/app/progress"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := NewRenderer(ActionPath)
	require.NoError(t, err)

	return r
}

func parse(t *testing.T, fragment string) *html.Node {
	t.Helper()

	root, err := html.Parse(strings.NewReader(fragment))
	require.NoError(t, err)

	return root
}

func Test_Renderer_Shell(t *testing.T) {
	out, err := newTestRenderer(t).Shell()
	require.NoError(t, err)

	doc, err := dom.Parse(out)
	require.NoError(t, err)

	assert.True(t, doc.Exists(dom.ContentID))
	assert.Contains(t, out, "<title>Materi Asinkron</title>")
	assert.Contains(t, out, "actions")
	assert.Contains(t, out, ScopeHeader)
	assert.Contains(t, out, TimeHeader)
}

func Test_Renderer_RenderPage(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.RenderPage(scenarioCatalog(), progress.Map{1: {"A": true}}, navigation.State{Week: 1})
	require.NoError(t, err)

	root := parse(t, out)

	tabs := dom.FindAll(root, dom.ByClass("tab-button"))
	require.Len(t, tabs, 2)

	week, _ := dom.Attr(tabs[0], "data-arg")
	assert.Equal(t, "1", week)
	assert.True(t, dom.HasClass(tabs[0], "border-blue-600"))
	assert.Equal(t, "1/2", dom.Text(dom.Find(tabs[0], dom.ByClass("week-badge"))))
	assert.Nil(t, dom.Find(tabs[1], dom.ByClass("week-badge")))

	assert.Equal(t, "1/2 selesai", dom.Text(dom.Find(root, dom.ByID("week-progress"))))
	assert.Contains(t, out, "2 e-course tersedia")

	items := dom.FindAll(root, dom.ByClass("course-item"))
	require.Len(t, items, 2)
	assert.Equal(t, CheckMark, dom.Text(dom.Find(items[0], dom.ByClass("course-badge"))))
	assert.Equal(t, "2", dom.Text(dom.Find(items[1], dom.ByClass("course-badge"))))
	assert.True(t, dom.HasClass(items[0], "bg-blue-100"))

	detail := dom.Find(root, dom.ByID(dom.CourseDetailID))
	require.NotNil(t, detail)
	pane := dom.FirstElementChild(detail)
	assert.True(t, dom.HasClass(pane, "course-pane"))
}

func Test_Renderer_RenderPage_Placeholder(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.RenderPage(scenarioCatalog(), nil, navigation.State{Week: 2})
	require.NoError(t, err)

	assert.Contains(t, out, NoCourse)
	assert.Empty(t, dom.FindAll(parse(t, out), dom.ByClass("course-item")))
}

func Test_Renderer_RenderCourseDetail(t *testing.T) {
	r := newTestRenderer(t)
	week := scenarioCatalog()[1]

	out, err := r.RenderCourseDetail(week.Materials[1], nil, navigation.State{Week: 1, Course: 1}, 2)
	require.NoError(t, err)

	root := parse(t, out)

	assert.Equal(t, "Video 1 dari 2", dom.Text(dom.Find(root, dom.ByClass("video-counter"))))

	prev := dom.Find(root, dom.ByClass("video-nav-prev"))
	_, disabled := dom.Attr(prev, "disabled")
	assert.True(t, disabled)

	next := dom.Find(root, dom.ByClass("video-nav-next"))
	_, disabled = dom.Attr(next, "disabled")
	assert.False(t, disabled)

	courseNext := dom.Find(root, dom.ByClass("course-nav-next"))
	_, disabled = dom.Attr(courseNext, "disabled")
	assert.True(t, disabled)

	assert.Equal(t, UnmarkedLabel, dom.Text(dom.Find(root, dom.ByClass("mark-complete"))))
	assert.Nil(t, dom.Find(root, dom.ByClass("completed-badge")))

	iframe := dom.Find(root, dom.ByTag("iframe"))
	src, _ := dom.Attr(iframe, "src")
	assert.Equal(t, "https://www.youtube.com/embed/b1", src)
}

func Test_Renderer_DownloadLinks(t *testing.T) {
	r := newTestRenderer(t)
	week := scenarioCatalog()[1]

	out, err := r.RenderCourseDetail(week.Materials[1], nil, navigation.State{Week: 1, Course: 1}, 2)
	require.NoError(t, err)

	root := parse(t, out)

	assert.Nil(t, dom.Find(root, dom.ByClass("download-materi")))

	link := dom.Find(root, dom.ByClass("download-notulensi"))
	require.NotNil(t, link)

	href, _ := dom.Attr(link, "href")
	assert.Equal(t, "https://example.com/b-notes.pdf", href)
	assert.NotContains(t, out, `href="#"`)
}

func Test_Renderer_Completed(t *testing.T) {
	r := newTestRenderer(t)
	week := scenarioCatalog()[1]

	out, err := r.RenderCourseDetail(week.Materials[0], map[string]bool{"A": true}, navigation.State{Week: 1}, 2)
	require.NoError(t, err)

	root := parse(t, out)

	assert.NotNil(t, dom.Find(root, dom.ByClass("completed-badge")))
	assert.Equal(t, MarkedLabel, dom.Text(dom.Find(root, dom.ByClass("mark-complete"))))
}

func Test_Renderer_NoVideo(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.RenderCourseDetail(catalog.Course{Title: "C"}, nil, navigation.State{Week: 3}, 1)
	require.NoError(t, err)

	assert.Contains(t, out, NoVideo)
	assert.NotContains(t, out, "<iframe")
}

func Test_Renderer_EmptyDetail(t *testing.T) {
	out, err := newTestRenderer(t).RenderEmptyDetail()
	require.NoError(t, err)

	assert.Contains(t, out, NoCourse)
	assert.True(t, strings.HasPrefix(out, `<div class="course-pane">`))
}

func Test_Renderer_Escaping(t *testing.T) {
	r := newTestRenderer(t)

	course := catalog.Course{
		Title:       `<script>alert("x")</script>`,
		Description: `Tom & "Jerry"`,
		Videos:      []catalog.Video{{Title: "<b>v</b>", URL: "javascript:alert(1)"}},
		Download:    catalog.Download{Materi: "javascript:alert(2)", Notulensi: catalog.Placeholder},
	}

	out, err := r.RenderCourseDetail(course, nil, navigation.State{Week: 1}, 1)
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<b>v</b>")
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "Tom &amp; &#34;Jerry&#34;")

	root := parse(t, out)
	assert.Equal(t, `<script>alert("x")</script>`, dom.Text(dom.Find(root, dom.ByClass("course-heading"))))
}

func Test_Renderer_NotificationHTML(t *testing.T) {
	r := newTestRenderer(t)

	expires := time.UnixMilli(1_700_000_003_000)

	out, err := r.NotificationHTML("notification-1", "error", "Gagal <x>", expires)
	require.NoError(t, err)

	root := parse(t, out)
	n := dom.Find(root, dom.ByID("notification-1"))
	require.NotNil(t, n)

	assert.True(t, dom.HasClass(n, "notification-error"))
	at, _ := dom.Attr(n, "data-expires")
	assert.Equal(t, "1700000003000", at)
	assert.Equal(t, "Gagal <x>", dom.Text(n))
}

func Test_Renderer_ActionsAreTagged(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.RenderPage(scenarioCatalog(), nil, navigation.State{Week: 1})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, n := range dom.FindAll(parse(t, out), func(n *html.Node) bool {
		_, ok := dom.Attr(n, "data-action")
		return n.Type == html.ElementNode && ok
	}) {
		a, _ := dom.Attr(n, "data-action")
		seen[a] = true
	}

	for _, a := range []string{"week-tab", "course-item", "video-prev", "video-next", "course-prev", "course-next", "mark-complete"} {
		assert.True(t, seen[a], a)
	}
}
