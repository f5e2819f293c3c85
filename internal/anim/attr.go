package anim

import "fmt"

// Attr names one of the eight edge attributes of a clip animation.
type Attr int

const (
	FromLeft Attr = iota
	FromTop
	FromRight
	FromBottom
	ToLeft
	ToTop
	ToRight
	ToBottom
)

// Attrs lists all edge attributes in declaration order.
var Attrs = [...]Attr{FromLeft, FromTop, FromRight, FromBottom, ToLeft, ToTop, ToRight, ToBottom}

var attrNames = [...]string{
	FromLeft:   "fromLeft",
	FromTop:    "fromTop",
	FromRight:  "fromRight",
	FromBottom: "fromBottom",
	ToLeft:     "toLeft",
	ToTop:      "toTop",
	ToRight:    "toRight",
	ToBottom:   "toBottom",
}

func (a Attr) String() string {
	if a < 0 || int(a) >= len(attrNames) {
		return fmt.Sprintf("Attr(%d)", int(a))
	}
	return attrNames[a]
}

// ParseAttr maps an attribute name such as "fromLeft" to its Attr.
func ParseAttr(s string) (Attr, error) {
	for i, n := range attrNames {
		if n == s {
			return Attr(i), nil
		}
	}
	return 0, fmt.Errorf("unknown clip attribute %q", s)
}

// AttributeSource is a declarative resource store that yields one optional
// typed value per edge attribute.
type AttributeSource interface {
	Peek(a Attr) (TypedValue, bool)
}

// AttributeSet is a map-backed AttributeSource.
type AttributeSet map[Attr]TypedValue

// Peek implements AttributeSource.
func (s AttributeSet) Peek(a Attr) (TypedValue, bool) {
	v, ok := s[a]
	return v, ok
}

// Pair is the full set of eight edge specifications of a clip animation.
type Pair struct {
	From, To EdgeSet
}

// Edge returns the spec addressed by a.
func (p Pair) Edge(a Attr) EdgeSpec {
	return *p.slot(a)
}

// SetEdge replaces the spec addressed by a.
func (p *Pair) SetEdge(a Attr, e EdgeSpec) {
	*p.slot(a) = e
}

func (p *Pair) slot(a Attr) *EdgeSpec {
	switch a {
	case FromLeft:
		return &p.From.Left
	case FromTop:
		return &p.From.Top
	case FromRight:
		return &p.From.Right
	case FromBottom:
		return &p.From.Bottom
	case ToLeft:
		return &p.To.Left
	case ToTop:
		return &p.To.Top
	case ToRight:
		return &p.To.Right
	case ToBottom:
		return &p.To.Bottom
	}
	panic(fmt.Sprintf("anim: unknown attribute %d", int(a)))
}
