package domain

import (
	"fmt"
	"strings"

	"github.com/bnema/conanhost/pkg/validation"
)

// AbsentSegment is the Conan placeholder for a missing user or channel.
const AbsentSegment = "_"

// Wildcard matches any run of characters in a search query field.
const Wildcard = "*"

// Component attribute keys mirrored from a Coordinate.
const (
	AttrGroup   = "group"
	AttrProject = "project"
	AttrVersion = "version"
	AttrState   = "state"
)

// Coordinate identifies a Conan recipe: project/version@group/channel.
// Empty fields are absent. Project is always set on a valid coordinate.
type Coordinate struct {
	Group   string
	Project string
	Version string
	Channel string
}

// PathTokens are the reference segments extracted from a request path by routing.
type PathTokens struct {
	Project string
	Version string
	Group   string
	Channel string
}

// ParseFromPath builds a Coordinate from routed path segments.
// The Conan placeholder "_" and the empty string mark an absent segment.
func ParseFromPath(tokens PathTokens) (Coordinate, error) {
	coord := Coordinate{
		Group:   presentOrEmpty(tokens.Group),
		Project: presentOrEmpty(tokens.Project),
		Version: presentOrEmpty(tokens.Version),
		Channel: presentOrEmpty(tokens.Channel),
	}

	if coord.Project == "" {
		return Coordinate{}, fmt.Errorf("%w: project is required", ErrInvalidCoordinate)
	}

	fields := []struct{ name, value string }{
		{AttrGroup, coord.Group},
		{AttrProject, coord.Project},
		{AttrVersion, coord.Version},
		{"channel", coord.Channel},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := validation.ValidateSegment(f.value); err != nil {
			return Coordinate{}, fmt.Errorf("%w: %s: %v", ErrInvalidCoordinate, f.name, err)
		}
	}

	return coord, nil
}

// ParseQuery parses a search query of the form name[/version][@group][/channel].
// Fields may carry "*" wildcards, which are kept as is.
func ParseQuery(text string) (Coordinate, error) {
	s := queryScanner{input: text}

	var coord Coordinate
	coord.Project = s.field()
	if s.accept('/') {
		coord.Version = s.field()
	}
	if s.accept('@') {
		coord.Group = s.field()
	}
	if s.accept('/') {
		coord.Channel = s.field()
	}

	if !s.done() {
		return Coordinate{}, fmt.Errorf("%w: unexpected %q at offset %d in %q", ErrInvalidQuery, text[s.pos], s.pos, text)
	}
	if coord.Project == "" {
		return Coordinate{}, fmt.Errorf("%w: name is required in %q", ErrInvalidQuery, text)
	}

	return coord, nil
}

// queryScanner walks a query one field at a time. A field is a run of
// characters other than '/' and '@'.
type queryScanner struct {
	input string
	pos   int
}

func (s *queryScanner) field() string {
	start := s.pos
	for s.pos < len(s.input) && s.input[s.pos] != '/' && s.input[s.pos] != '@' {
		s.pos++
	}
	return s.input[start:s.pos]
}

func (s *queryScanner) accept(sep byte) bool {
	if s.pos < len(s.input) && s.input[s.pos] == sep {
		s.pos++
		return true
	}
	return false
}

func (s *queryScanner) done() bool {
	return s.pos == len(s.input)
}

// Spec renders the canonical reference string project/version@group/channel.
// ParseQuery(c.Spec()) yields c back for every valid coordinate.
func (c Coordinate) Spec() string {
	var b strings.Builder
	b.WriteString(c.Project)
	// An empty version slot keeps a lone channel from being read back as the version.
	if c.Version != "" || (c.Channel != "" && c.Group == "") {
		b.WriteByte('/')
		b.WriteString(c.Version)
	}
	if c.Group != "" {
		b.WriteByte('@')
		b.WriteString(c.Group)
	}
	if c.Channel != "" {
		b.WriteByte('/')
		b.WriteString(c.Channel)
	}
	return b.String()
}

// String implements fmt.Stringer.
func (c Coordinate) String() string {
	return c.Spec()
}

// StoragePath renders group/project/version/channel followed by the given
// suffix segments. Absent segments are stored as "_".
func (c Coordinate) StoragePath(suffix ...string) string {
	parts := []string{
		orAbsent(c.Group),
		c.Project,
		orAbsent(c.Version),
		orAbsent(c.Channel),
	}
	for _, s := range suffix {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "/")
}

// Attributes returns the component attributes mirroring this coordinate.
func (c Coordinate) Attributes() map[string]string {
	return map[string]string{
		AttrGroup:   c.Group,
		AttrProject: c.Project,
		AttrVersion: c.Version,
		AttrState:   c.Channel,
	}
}

func presentOrEmpty(segment string) string {
	segment = strings.TrimSpace(segment)
	if segment == AbsentSegment {
		return ""
	}
	return segment
}

func orAbsent(segment string) string {
	if segment == "" {
		return AbsentSegment
	}
	return segment
}
