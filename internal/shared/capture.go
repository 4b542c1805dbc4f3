package shared

import (
	"fmt"
	"strings"
)

// CaptureKind tells which rule decided a play.
type CaptureKind int

const (
	NoCapture   CaptureKind = iota // The played card stays on the board
	AceSweep                       // An Ace takes the whole board
	DirectMatch                    // One board card of equal value
	SumMatch                       // Two or three board cards adding up to the played value
)

func (k CaptureKind) String() string {
	switch k {
	case NoCapture:
		return "none"
	case AceSweep:
		return "ace"
	case DirectMatch:
		return "direct"
	case SumMatch:
		return "sum"
	default:
		return fmt.Sprintf("CaptureKind(%d)", int(k))
	}
}

// SumPolicy selects how the sum search treats a pair that falls short of the
// played value when no third card completes it.
type SumPolicy int

const (
	// SumPolicyLegacy takes the second card of that pair on its own and stops.
	SumPolicyLegacy SumPolicy = iota
	// SumPolicyStrict only ever takes combinations adding up exactly, and keeps scanning.
	SumPolicyStrict
)

func (p SumPolicy) String() string {
	switch p {
	case SumPolicyLegacy:
		return "legacy"
	case SumPolicyStrict:
		return "strict"
	default:
		return fmt.Sprintf("SumPolicy(%d)", int(p))
	}
}

// ParseSumPolicy accepts "legacy" or "strict" (case-insensitive).
func ParseSumPolicy(s string) (SumPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy":
		return SumPolicyLegacy, nil
	case "strict":
		return SumPolicyStrict, nil
	default:
		return 0, fmt.Errorf("unknown sum policy %q (want legacy or strict)", s)
	}
}

// Capture is the outcome of resolving a played card against the board.
// Indices are board positions in ascending order.
type Capture struct {
	Kind    CaptureKind
	Indices []int
	Sweep   bool // The capture empties a board that was not empty
}

// Captured reports whether any rule other than NoCapture applied.
func (c Capture) Captured() bool {
	return c.Kind != NoCapture
}

// Split partitions the board into the cards left behind and the cards taken,
// both in board order. The board itself is not modified.
func (c Capture) Split(board []Card) (kept, taken []Card) {
	take := make(map[int]bool, len(c.Indices))
	for _, i := range c.Indices {
		take[i] = true
	}
	kept = make([]Card, 0, len(board))
	for i, card := range board {
		if take[i] {
			taken = append(taken, card)
		} else {
			kept = append(kept, card)
		}
	}
	return kept, taken
}

// ResolveCapture decides which board cards the played card takes.
//
// Rules are tried in order and the first one that applies wins: an Ace takes the
// whole board; otherwise the first board card of equal value is taken; otherwise a
// combination of two or three cards adding up to the played value is searched for.
// When nothing applies the result is NoCapture and the card is meant to stay on the board.
func ResolveCapture(played Card, board []Card, policy SumPolicy) Capture {
	if played.Rank == Ace {
		indices := make([]int, len(board))
		for i := range board {
			indices[i] = i
		}
		return Capture{Kind: AceSweep, Indices: indices, Sweep: len(board) > 0}
	}

	v := played.Value()
	for i, card := range board {
		if card.Value() == v {
			return newCapture(DirectMatch, board, i)
		}
	}

	if indices := findSum(v, board, policy); indices != nil {
		return newCapture(SumMatch, board, indices...)
	}
	return Capture{Kind: NoCapture}
}

func newCapture(kind CaptureKind, board []Card, indices ...int) Capture {
	return Capture{
		Kind:    kind,
		Indices: indices,
		Sweep:   len(board) > 0 && len(indices) == len(board),
	}
}

// summable reports whether a board card may take part in a sum towards v.
// Cards worth exactly half of v, and cards within one of v, never do.
func summable(v int, card Card) bool {
	cv := card.Value()
	return 2*cv != v && cv < v-1
}

// findSum scans i < j < k in board order and returns the first combination found.
func findSum(v int, board []Card, policy SumPolicy) []int {
	for i := 0; i < len(board); i++ {
		if !summable(v, board[i]) {
			continue
		}
		for j := i + 1; j < len(board); j++ {
			if !summable(v, board[j]) {
				continue
			}
			pair := board[i].Value() + board[j].Value()
			if pair == v {
				return []int{i, j}
			}
			if pair > v {
				continue
			}
			for k := j + 1; k < len(board); k++ {
				if summable(v, board[k]) && pair+board[k].Value() == v {
					return []int{i, j, k}
				}
			}
			if policy == SumPolicyLegacy {
				return []int{j}
			}
		}
	}
	return nil
}
