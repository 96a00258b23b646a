package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// card builds a target-first chain ending at a grid item
func card(nodes ...Element) *Element {
	return Chain(append(nodes, Element{Tag: "div", Classes: []string{"item"}}))
}

func TestDragStartPredicate(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		name     string
		target   *Element
		allow    bool
		distance float64
	}{
		{"text input", card(Element{Tag: "INPUT"}), false, 0},
		{"textarea", card(Element{Tag: "textarea"}), false, 0},
		{"span inside button", card(Element{Tag: "span"}, Element{Tag: "button"}), false, 0},
		{"select", card(Element{Tag: "select"}), false, 0},
		{"label text", card(Element{Tag: "span"}, Element{Tag: "label"}), false, 0},
		{"iframe", card(Element{Tag: "iframe"}), false, 0},
		{"inside no-drag", card(Element{Tag: "p"}, Element{Tag: "a", Classes: []string{"block", "no-drag"}}), false, 0},
		{"drag handle", card(Element{Tag: "h3"}, Element{Tag: "div", Classes: []string{"drag-handle"}}), true, 0},
		{"plain content", card(Element{Tag: "p"}), true, 10},
		{"card root", card(), true, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := opts.DragStartPredicate(tt.target)
			assert.Equal(t, tt.allow, d.Allow)
			if tt.allow {
				assert.Equal(t, tt.distance, d.Distance)
				assert.Zero(t, d.Delay)
			}
		})
	}
}

func TestDragStartPredicateGuardsWinOverHandle(t *testing.T) {
	opts := DefaultOptions()
	target := card(Element{Tag: "button"}, Element{Tag: "div", Classes: []string{"drag-handle"}})
	assert.False(t, opts.DragStartPredicate(target).Allow)
}

func TestDragStartPredicateNilTarget(t *testing.T) {
	assert.Equal(t, Rejected, DefaultOptions().DragStartPredicate(nil))
}

func TestHandleDecisionIsImmediate(t *testing.T) {
	d := DefaultOptions().DragStartPredicate(card(Element{Tag: "div", Classes: []string{"drag-handle"}}))
	assert.True(t, d.Immediate())

	d = DefaultOptions().DragStartPredicate(card(Element{Tag: "p"}))
	assert.False(t, d.Immediate())
}

func TestChain(t *testing.T) {
	target := Chain([]Element{{Tag: "span"}, {Tag: "div", Classes: []string{"no-drag"}}})
	assert.Equal(t, "span", target.Tag)
	if assert.NotNil(t, target.Parent) {
		assert.True(t, target.Parent.HasClass("no-drag"))
		assert.Nil(t, target.Parent.Parent)
	}
	assert.Nil(t, Chain(nil))
}
