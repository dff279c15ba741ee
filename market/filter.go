package market

// Window returns the inclusive [low, high] acceptance bounds of the criteria
func (c Criteria) Window() (float64, float64) {
	return c.Target - c.Tolerance, c.Target + c.Tolerance
}

// Accept reports whether all three of the quote's odds lie within the
// acceptance window. Bounds are inclusive
func (c Criteria) Accept(q Quote) bool {
	low, high := c.Window()

	for _, odds := range []float64{q.Home, q.Draw, q.Away} {
		if odds < low || odds > high {
			return false
		}
	}

	return true
}

// FilterQuotes returns the quotes the criteria accepts, preserving order
func FilterQuotes(quotes []Quote, c Criteria) []Quote {
	accepted := make([]Quote, 0, len(quotes))

	for _, quote := range quotes {
		if !c.Accept(quote) {
			continue
		}

		accepted = append(accepted, quote)
	}

	return accepted
}
