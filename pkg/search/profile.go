package search

import (
	"strconv"
	"strings"
	"time"
)

// ProfileEvent is one entry in an AlgorithmProfile: the node that produced
// it, how long it took, how deep in the tree it sat, and how many
// documents it matched.
type ProfileEvent struct {
	Description string
	Micros      int64
	Depth       int
	ResultSize  int
}

// AlgorithmProfile is an ordered list of ProfileEvents, root first, in
// the order profileBuilder.Take produces.
type AlgorithmProfile struct {
	Events []ProfileEvent
}

// profileBuilder is component F: it wraps every node visit with
// Start/Finish, tracking depth and recording elapsed time on a monotonic
// clock. Finish appends in post-order (nodes finish in the order their
// subtrees complete); Take reverses that, so the root comes first and
// every node precedes its descendants. Siblings come out in reverse
// evaluation order (the last-evaluated child first).
type profileBuilder struct {
	depth   int
	events  []ProfileEvent
}

func newProfileBuilder() *profileBuilder {
	return &profileBuilder{}
}

// Start increments the depth counter and captures a monotonic timestamp.
func (p *profileBuilder) Start() time.Time {
	p.depth++
	return time.Now()
}

// Finish decrements the depth counter and appends an event computed from
// the node's description and the elapsed time since start.
func (p *profileBuilder) Finish(start time.Time, node AstNode, result IndexResult) {
	elapsed := time.Since(start)
	p.depth--
	p.events = append(p.events, ProfileEvent{
		Description: describeNode(node),
		Micros:      elapsed.Microseconds(),
		Depth:       p.depth,
		ResultSize:  result.Size(),
	})
}

// Take returns the recorded events reversed: root first, each node before
// its descendants, siblings last-evaluated first.
func (p *profileBuilder) Take() AlgorithmProfile {
	events := p.events
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return AlgorithmProfile{Events: events}
}

// describeNode renders a node's profile description per the fixed
// grammar: Term{<affix>}, Prefix{<affix>}, Suffix{<affix>}, Infix{<affix>},
// Range{<lo><><hi>}, Logical{n=<k>,o=<and|or>}, Tags{<tag1>,<tag2>,...},
// Field{<field>}, KNN{l=<limit>}, Negate{}, Star{}, StarField{}.
func describeNode(node AstNode) string {
	switch n := node.(type) {
	case AstEmpty:
		return ""
	case AstStar:
		return "Star{}"
	case AstStarField:
		return "StarField{}"
	case AstAffix:
		return n.Kind.String() + "{" + n.Text + "}"
	case AstRange:
		return "Range{" + formatFloat(n.Lo) + "<>" + formatFloat(n.Hi) + "}"
	case AstNegate:
		return "Negate{}"
	case AstLogical:
		op := "and"
		if n.Op == LogicOr {
			op = "or"
		}
		return "Logical{n=" + strconv.Itoa(len(n.Children)) + ",o=" + op + "}"
	case AstTags:
		parts := make([]string, len(n.Tags))
		for i, t := range n.Tags {
			parts[i] = t.Text
		}
		return "Tags{" + strings.Join(parts, ",") + "}"
	case AstField:
		return "Field{" + n.Field + "}"
	case AstKnn:
		return "KNN{l=" + strconv.Itoa(n.Limit) + "}"
	default:
		return ""
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
