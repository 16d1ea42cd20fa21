package render

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"materi/internal/app/catalog"
	"materi/internal/app/navigation"
	"materi/internal/app/progress"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Notification is a transient banner
type Notification struct {
	ID        string
	Kind      string
	Message   string
	ExpiresMS int64
}

// Renderer turns view models into HTML fragments
type Renderer struct {
	tmpl       *template.Template
	actionPath string
}

// NewRenderer parses the embedded templates, actions posted from the page go to actionPath
func NewRenderer(actionPath string) (*Renderer, error) {
	tmpl, err := template.New("materi").Funcs(template.FuncMap{
		"pageTitle":         func() string { return PageTitle },
		"pageSubtitle":      func() string { return PageSubtitle },
		"courseListTitle":   func() string { return CourseListTitle },
		"noCourse":          func() string { return NoCourse },
		"noVideo":           func() string { return NoVideo },
		"tabClass":          TabClass,
		"itemClass":         ItemClass,
		"badgeClass":        BadgeClass,
		"weekBadgeClass":    WeekBadgeClass,
		"notificationClass": NotificationClass,
	}).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}

	return &Renderer{tmpl: tmpl, actionPath: actionPath}, nil
}

// Shell renders the document the page is mounted into
func (r *Renderer) Shell() (string, error) {
	return r.execute("shell", struct {
		Title       string
		ActionPath  string
		ScopeHeader string
		TimeHeader  string
	}{Title: PageTitle, ActionPath: r.actionPath, ScopeHeader: ScopeHeader, TimeHeader: TimeHeader})
}

// PageHTML renders a page model
func (r *Renderer) PageHTML(m PageModel) (string, error) {
	return r.execute("page", m)
}

// DetailHTML renders a detail pane model
func (r *Renderer) DetailHTML(m DetailModel) (string, error) {
	return r.execute("detail", m)
}

// NotificationHTML renders a banner that disappears at expires
func (r *Renderer) NotificationHTML(id, kind, message string, expires time.Time) (string, error) {
	return r.execute("notification", Notification{
		ID:        id,
		Kind:      kind,
		Message:   message,
		ExpiresMS: expires.UnixMilli(),
	})
}

// RenderPage renders the full page for the active selection
func (r *Renderer) RenderPage(c catalog.WeekCatalog, p progress.Map, s navigation.State) (string, error) {
	return r.PageHTML(Page(c, p, s))
}

// RenderCourseDetail renders only the detail pane of course
func (r *Renderer) RenderCourseDetail(course catalog.Course, weekProgress map[string]bool, s navigation.State, courseCount int) (string, error) {
	return r.DetailHTML(CourseDetail(course, weekProgress, s, courseCount))
}

// RenderEmptyDetail renders the no-course placeholder pane
func (r *Renderer) RenderEmptyDetail() (string, error) {
	return r.DetailHTML(EmptyDetail())
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
