package pane

import (
	"testing"

	"github.com/cmantic/cmantic/internal/buffer"
	"github.com/cmantic/cmantic/internal/token"
	"github.com/cmantic/cmantic/internal/view"
)

func newTestArena() *Arena {
	b := buffer.New("scratch", token.Text)
	return NewArena(view.New(b))
}

func TestSplitAndReflow(t *testing.T) {
	a := newTestArena()
	status := a.Split(a.Root(), Status, true)
	a.Reflow(80, 24)

	root := a.Node(a.Root())
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children after split, got %d", len(root.Children))
	}
	if a.Node(status).Rect.H == 0 {
		t.Fatalf("status pane got zero height")
	}
	total := a.Node(root.Children[0]).Rect.H + a.Node(root.Children[1]).Rect.H
	if total != 23 {
		t.Fatalf("children should fill the status-strip-adjusted height 23, got %d", total)
	}
}

func TestCloseCollapsesContainer(t *testing.T) {
	a := newTestArena()
	second := a.Split(a.Root(), Edit, false)
	a.Reflow(80, 24)

	a.Close(second)
	a.Compact()

	root := a.Node(a.Root())
	if len(root.Children) != 0 {
		t.Fatalf("expected container to collapse to a single leaf root, got %d children", len(root.Children))
	}
	if root.Kind != Edit {
		t.Fatalf("collapsed root should inherit the surviving child's kind, got %v", root.Kind)
	}
}

func TestResizeClampsMinimumWeight(t *testing.T) {
	a := newTestArena()
	second := a.Split(a.Root(), Edit, false)
	a.Resize(second, -10)
	if a.Node(second).Weight < 0.05 {
		t.Fatalf("weight should clamp at 0.05, got %v", a.Node(second).Weight)
	}
}
