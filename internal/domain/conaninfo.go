package domain

import (
	"bufio"
	"encoding/json"
	"io"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// AttributeKind is the shape a conaninfo section took while parsing.
type AttributeKind int

const (
	AttributeScalar AttributeKind = iota
	AttributeList
	AttributeTable
)

func (k AttributeKind) String() string {
	switch k {
	case AttributeScalar:
		return "scalar"
	case AttributeList:
		return "list"
	case AttributeTable:
		return "table"
	default:
		return "unknown"
	}
}

// Attribute is the value of one conaninfo section: a scalar, a list or a table.
// It marshals to the bare underlying JSON value.
type Attribute struct {
	kind   AttributeKind
	scalar string
	list   []string
	table  map[string]string
}

// ScalarAttribute returns a scalar attribute.
func ScalarAttribute(v string) Attribute {
	return Attribute{kind: AttributeScalar, scalar: v}
}

// ListAttribute returns a list attribute.
func ListAttribute(values ...string) Attribute {
	return Attribute{kind: AttributeList, list: slices.Clone(values)}
}

// TableAttribute returns a table attribute.
func TableAttribute(values map[string]string) Attribute {
	return Attribute{kind: AttributeTable, table: maps.Clone(values)}
}

// Kind returns the attribute variant.
func (a Attribute) Kind() AttributeKind {
	return a.kind
}

// Scalar returns the scalar value; ok is false for other variants.
func (a Attribute) Scalar() (string, bool) {
	return a.scalar, a.kind == AttributeScalar
}

// List returns a copy of the list values; ok is false for other variants.
func (a Attribute) List() ([]string, bool) {
	return slices.Clone(a.list), a.kind == AttributeList
}

// Table returns a copy of the table values; ok is false for other variants.
func (a Attribute) Table() (map[string]string, bool) {
	return maps.Clone(a.table), a.kind == AttributeTable
}

// Value returns the underlying value: string, []string or map[string]string.
func (a Attribute) Value() any {
	switch a.kind {
	case AttributeList:
		return slices.Clone(a.list)
	case AttributeTable:
		return maps.Clone(a.table)
	default:
		return a.scalar
	}
}

// Equal reports whether both attributes hold the same variant and values.
func (a Attribute) Equal(b Attribute) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case AttributeList:
		return slices.Equal(a.list, b.list)
	case AttributeTable:
		return maps.Equal(a.table, b.table)
	default:
		return a.scalar == b.scalar
	}
}

// MarshalJSON implements json.Marshaler.
func (a Attribute) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Value())
}

// ConanInfo is the parsed attribute tree of a conaninfo.txt document.
type ConanInfo map[string]Attribute

// Attribute returns the underlying value of a section, or nil when absent.
func (i ConanInfo) Attribute(section string) any {
	attr, ok := i[section]
	if !ok {
		return nil
	}
	return attr.Value()
}

// Equal reports whether two trees hold the same sections and values.
func (i ConanInfo) Equal(other ConanInfo) bool {
	return maps.EqualFunc(i, other, Attribute.Equal)
}

var sectionPattern = regexp.MustCompile(`^\[([^]]*)\]$`)

// maxInfoLine bounds a single conaninfo line, above bufio's 64 KiB default.
const maxInfoLine = 4 << 20

// ParseInfo reads a conaninfo document. On a read failure the sections
// parsed so far are returned together with the error.
func ParseInfo(r io.Reader) (ConanInfo, error) {
	p := newInfoParser()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxInfoLine)
	for scanner.Scan() {
		p.line(scanner.Text())
	}
	return p.finish(), scanner.Err()
}

// ParseInfoLines parses a conaninfo document given as lines.
func ParseInfoLines(lines []string) ConanInfo {
	p := newInfoParser()
	for _, l := range lines {
		p.line(l)
	}
	return p.finish()
}

// infoParser tracks the open section and the builder collecting its lines.
type infoParser struct {
	result  ConanInfo
	section string
	open    bool
	builder *sectionBuilder
}

func newInfoParser() *infoParser {
	return &infoParser{result: ConanInfo{}}
}

func (p *infoParser) line(l string) {
	if m := sectionPattern.FindStringSubmatch(l); m != nil {
		p.commit()
		p.section = m[1]
		p.open = true
		return
	}

	if !p.open {
		return
	}
	if p.builder == nil {
		if strings.TrimSpace(l) == "" {
			return
		}
		p.builder = newSectionBuilder(l)
	}
	p.builder.add(l)
}

func (p *infoParser) commit() {
	if p.open && p.builder != nil {
		p.result[p.section] = p.builder.build()
	}
	p.builder = nil
}

func (p *infoParser) finish() ConanInfo {
	p.commit()
	p.open = false
	return p.result
}

// sectionBuilder is a three state machine: scalar, list and table, with a
// single scalar to list promotion edge.
type sectionBuilder struct {
	kind   AttributeKind
	scalar string
	list   []string
	table  map[string]string
}

func newSectionBuilder(first string) *sectionBuilder {
	if strings.Contains(first, "=") {
		return &sectionBuilder{kind: AttributeTable, table: map[string]string{}}
	}
	return &sectionBuilder{kind: AttributeScalar}
}

func (b *sectionBuilder) add(l string) {
	if b.kind == AttributeTable {
		// Trailing empty fields are dropped before counting, so "key=" is
		// skipped and "a=b=" reads as a=b. key=value=extra is skipped too.
		parts := strings.Split(l, "=")
		for len(parts) > 0 && parts[len(parts)-1] == "" {
			parts = parts[:len(parts)-1]
		}
		if len(parts) == 2 {
			b.table[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
		return
	}

	v := strings.TrimSpace(l)
	if v == "" {
		return
	}
	switch {
	case b.kind == AttributeList:
		b.list = append(b.list, v)
	case b.scalar == "":
		b.scalar = v
	default:
		b.kind = AttributeList
		b.list = []string{b.scalar, v}
		b.scalar = ""
	}
}

func (b *sectionBuilder) build() Attribute {
	switch b.kind {
	case AttributeList:
		return Attribute{kind: AttributeList, list: b.list}
	case AttributeTable:
		return Attribute{kind: AttributeTable, table: b.table}
	default:
		return Attribute{kind: AttributeScalar, scalar: b.scalar}
	}
}
