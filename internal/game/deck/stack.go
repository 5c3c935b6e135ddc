// Package deck holds the draw and discard piles of a card type.
package deck

import (
	"math/rand"
	"slices"
)

// Stack is a draw pile with its discard pile. The top of each pile is the end
// of its slice.
type Stack[T any] struct {
	draw    []T
	discard []T
	rng     *rand.Rand
}

// NewStack creates a stack from the given draw pile. The cards are not
// shuffled, so a saved order can be restored as is.
func NewStack[T any](cards []T, rng *rand.Rand) *Stack[T] {
	return &Stack[T]{
		draw: slices.Clone(cards),
		rng:  rng,
	}
}

// Draw takes the top card of the draw pile. ok is false when the pile is
// empty.
func (s *Stack[T]) Draw() (card T, ok bool) {
	if len(s.draw) == 0 {
		return card, false
	}
	last := len(s.draw) - 1
	card = s.draw[last]
	s.draw = s.draw[:last]
	return card, true
}

// Discard puts a card on the discard pile. Cards leaving the game are simply
// not discarded.
func (s *Stack[T]) Discard(card T) {
	s.discard = append(s.discard, card)
}

// Shuffle shuffles the draw pile. The discard pile is not touched.
func (s *Stack[T]) Shuffle() {
	s.rng.Shuffle(len(s.draw), func(i, j int) {
		s.draw[i], s.draw[j] = s.draw[j], s.draw[i]
	})
}

// ShuffleBack shuffles the discard pile and puts it on top of the draw pile.
// The draw pile keeps its order.
func (s *Stack[T]) ShuffleBack() {
	s.rng.Shuffle(len(s.discard), func(i, j int) {
		s.discard[i], s.discard[j] = s.discard[j], s.discard[i]
	})
	s.draw = append(s.draw, s.discard...)
	s.discard = nil
}

// Remove drops every card matching from both piles and returns how many
// were removed.
func (s *Stack[T]) Remove(match func(T) bool) int {
	before := s.Size()
	s.draw = slices.DeleteFunc(s.draw, match)
	s.discard = slices.DeleteFunc(s.discard, match)
	return before - s.Size()
}

// DiscardPile returns a copy of the discard pile, bottom card first.
func (s *Stack[T]) DiscardPile() []T { return slices.Clone(s.discard) }

func (s *Stack[T]) DrawSize() int    { return len(s.draw) }
func (s *Stack[T]) DiscardSize() int { return len(s.discard) }

// Size is the number of cards in both piles.
func (s *Stack[T]) Size() int { return len(s.draw) + len(s.discard) }
