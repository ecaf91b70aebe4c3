package model

import "strings"

// Catalog is one term's course data: course code → sections in declared
// order, plus the department-prefix grouping the course picker shows.
// A Catalog is built once per term and read-only afterwards, so concurrent
// requests may share it freely.
type Catalog struct {
	term        string
	courseOrder []string
	sections    map[string][]Section
}

// NewCatalog groups sections by course, preserving the first-seen order of
// courses and the declared order of sections within a course.
func NewCatalog(term string, sections []Section) *Catalog {
	c := &Catalog{
		term:     term,
		sections: make(map[string][]Section),
	}
	for _, s := range sections {
		if _, seen := c.sections[s.Course]; !seen {
			c.courseOrder = append(c.courseOrder, s.Course)
		}
		c.sections[s.Course] = append(c.sections[s.Course], s)
	}
	return c
}

// Term returns the term this catalog was loaded for.
func (c *Catalog) Term() string { return c.term }

// Courses returns the course codes in declared order.
func (c *Catalog) Courses() []string {
	out := make([]string, len(c.courseOrder))
	copy(out, c.courseOrder)
	return out
}

// SectionsFor returns the sections of a course in declared order, and
// whether the course exists in this term at all.
func (c *Catalog) SectionsFor(course string) ([]Section, bool) {
	secs, ok := c.sections[course]
	return secs, ok
}

// ByPrefix groups course codes by their department prefix (the first
// whitespace-separated token, e.g. "COMP" for "COMP 1202").
func (c *Catalog) ByPrefix() map[string][]string {
	grouped := make(map[string][]string)
	for _, course := range c.courseOrder {
		prefix := course
		if i := strings.IndexByte(course, ' '); i > 0 {
			prefix = course[:i]
		}
		grouped[prefix] = append(grouped[prefix], course)
	}
	return grouped
}

// Empty reports whether the catalog holds no courses.
func (c *Catalog) Empty() bool { return len(c.courseOrder) == 0 }
