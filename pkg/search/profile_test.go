package search

import "testing"

func TestDescribeNode(t *testing.T) {
	cases := []struct {
		node AstNode
		want string
	}{
		{AstStar{}, "Star{}"},
		{AstStarField{}, "StarField{}"},
		{AstAffix{Kind: AffixPrefix, Text: "sho"}, "Prefix{sho}"},
		{AstRange{Lo: 1, Hi: 2.5}, "Range{1<>2.5}"},
		{AstNegate{}, "Negate{}"},
		{AstLogical{Op: LogicAnd, Children: []AstNode{AstStar{}, AstStar{}}}, "Logical{n=2,o=and}"},
		{AstLogical{Op: LogicOr, Children: []AstNode{AstStar{}}}, "Logical{n=1,o=or}"},
		{AstTags{Tags: []AstAffix{{Text: "red"}, {Text: "blue"}}}, "Tags{red,blue}"},
		{AstField{Field: "title"}, "Field{title}"},
		{AstKnn{Limit: 5}, "KNN{l=5}"},
	}
	for _, c := range cases {
		if got := describeNode(c.node); got != c.want {
			t.Errorf("describeNode(%#v) = %q, want %q", c.node, got, c.want)
		}
	}
}

func TestProfileBuilderTakeReversesToPreOrder(t *testing.T) {
	p := newProfileBuilder()

	outerStart := p.Start()
	innerStart := p.Start()
	p.Finish(innerStart, AstStar{}, EmptyResult())
	p.Finish(outerStart, AstField{Field: "x"}, EmptyResult())

	profile := p.Take()
	if len(profile.Events) != 2 {
		t.Fatalf("len(Events) = %d, want 2", len(profile.Events))
	}
	if profile.Events[0].Description != "Field{x}" {
		t.Errorf("Events[0] = %q, want root Field{x} first (pre-order)", profile.Events[0].Description)
	}
	if profile.Events[1].Description != "Star{}" {
		t.Errorf("Events[1] = %q, want Star{} second", profile.Events[1].Description)
	}
	if profile.Events[0].Depth != 0 {
		t.Errorf("root depth = %d, want 0", profile.Events[0].Depth)
	}
	if profile.Events[1].Depth != 1 {
		t.Errorf("child depth = %d, want 1", profile.Events[1].Depth)
	}
}
