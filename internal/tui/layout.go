package tui

// Rect is the outer size of one card.
type Rect struct {
	Width, Height int
}

// Card width bounds and the minimum usable terminal size.
const (
	MinCardWidth = 36
	MaxCardWidth = 64
	MinHeight    = 12
)

// Layout holds the card geometry for a given terminal size.
type Layout struct {
	Cards      []Rect
	Horizontal bool // cards side by side
	TooSmall   bool // true when the terminal cannot fit a single card
}

// Calculate computes the layout of n cards for a terminal of the given
// dimensions. The body is the terminal minus one footer row.
//
// Algorithm:
//   - TooSmall when width < MinCardWidth or height < MinHeight (or n < 1)
//   - Side by side when every card gets at least MinCardWidth columns
//   - Otherwise stacked, each card taking the full width
//   - Card width is clamped to MaxCardWidth in both cases
func Calculate(width, height, n int) Layout {
	if n < 1 || width < MinCardWidth || height < MinHeight {
		return Layout{TooSmall: true}
	}

	bodyH := height - 1

	if width/n >= MinCardWidth {
		cardW := min(width/n, MaxCardWidth)
		cards := make([]Rect, n)
		for i := range cards {
			cards[i] = Rect{Width: cardW, Height: bodyH}
		}
		return Layout{Cards: cards, Horizontal: true}
	}

	cardW := min(width, MaxCardWidth)
	cardH := bodyH / n
	cards := make([]Rect, n)
	for i := range cards {
		cards[i] = Rect{Width: cardW, Height: cardH}
	}
	return Layout{Cards: cards}
}
