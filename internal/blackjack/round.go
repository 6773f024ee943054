package blackjack

import (
	"errors"

	"github.com/arcanaland/cardtrick/internal/deck"
)

// ErrShoeEmpty is returned when a round runs out of cards
var ErrShoeEmpty = errors.New("not enough cards to finish the round")

// Round is the outcome of one player-versus-dealer round
type Round struct {
	Player *Hand
	Dealer *Hand
}

// Winner returns "player", "dealer" or "push"
func (r Round) Winner() string {
	switch cmp := r.Player.Compare(r.Dealer); {
	case cmp > 0:
		return "player"
	case cmp < 0:
		return "dealer"
	default:
		return "push"
	}
}

// PlayRound deals two cards each from the top of shoe, alternating player and
// dealer, then both sides draw until they reach DealerStand or bust.
func PlayRound(shoe *deck.Pile) (Round, error) {
	r := Round{Player: &Hand{}, Dealer: &Hand{}}
	for i := 0; i < 2; i++ {
		for _, h := range []*Hand{r.Player, r.Dealer} {
			if shoe.IsEmpty() {
				return r, ErrShoeEmpty
			}
			h.Add(shoe.Pop())
		}
	}

	for _, h := range []*Hand{r.Player, r.Dealer} {
		for !h.Bust() && h.Value() < DealerStand {
			if shoe.IsEmpty() {
				return r, ErrShoeEmpty
			}
			h.Add(shoe.Pop())
		}
	}
	return r, nil
}
