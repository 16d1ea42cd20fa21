package catalog

import "sort"

// Placeholder marks a download link that has no target
const Placeholder = "#"

// Video is a single lecture recording
type Video struct {
	Title string `yaml:"title" toml:"title"`
	URL   string `yaml:"url" toml:"url"`
}

// Download holds the supporting material links of a course
type Download struct {
	Materi    string `yaml:"materi" toml:"materi"`
	Notulensi string `yaml:"notulensi" toml:"notulensi"`
}

// Course is an e-course within a week, its title is the completion key
type Course struct {
	Title       string   `yaml:"title" toml:"title"`
	Description string   `yaml:"description" toml:"description"`
	Videos      []Video  `yaml:"videos" toml:"videos"`
	Download    Download `yaml:"download" toml:"download"`
}

// Week groups the courses published for one week
type Week struct {
	ID        int      `yaml:"week" toml:"week"`
	Title     string   `yaml:"title" toml:"title"`
	Materials []Course `yaml:"materials" toml:"materials"`
}

// WeekCatalog maps week identifiers to their content
type WeekCatalog map[int]Week

// Lookup returns the week with the given id
func (c WeekCatalog) Lookup(id int) (Week, bool) {
	w, ok := c[id]
	return w, ok
}

// Weeks returns the week ids in ascending order
func (c WeekCatalog) Weeks() []int {
	ids := make([]int, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	return ids
}

// CourseCount returns the number of courses in a week, zero when the week is absent
func (c WeekCatalog) CourseCount(id int) int {
	return len(c[id].Materials)
}

// VideoCount returns the number of videos of a course, zero when it is absent
func (c WeekCatalog) VideoCount(id, course int) int {
	w, ok := c.Lookup(id)
	if !ok {
		return 0
	}

	crs, ok := w.Course(course)
	if !ok {
		return 0
	}

	return len(crs.Videos)
}

// Empty reports whether the week has no courses
func (w Week) Empty() bool {
	return len(w.Materials) == 0
}

// Course returns the course at index i
func (w Week) Course(i int) (Course, bool) {
	if i < 0 || i >= len(w.Materials) {
		return Course{}, false
	}

	return w.Materials[i], true
}

// Titles returns the course titles of the week in order
func (w Week) Titles() []string {
	titles := make([]string, len(w.Materials))
	for i, c := range w.Materials {
		titles[i] = c.Title
	}

	return titles
}

// Video returns the video at index i
func (c Course) Video(i int) (Video, bool) {
	if i < 0 || i >= len(c.Videos) {
		return Video{}, false
	}

	return c.Videos[i], true
}

// HasLink reports whether a download URL points somewhere
func HasLink(url string) bool {
	return url != Placeholder
}
