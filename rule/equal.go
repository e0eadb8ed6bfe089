package rule

// Equal reports whether r and other are the same span up to attribute
// equality: same LHS/P/RHS graphs and the same PLhs/PRhs maps,
// compared without regard to node-map iteration order.
func (r Rule) Equal(other Rule) bool {
	return r.LHS.Equal(other.LHS) &&
		r.P.Equal(other.P) &&
		r.RHS.Equal(other.RHS) &&
		r.PLhs.Equal(other.PLhs) &&
		r.PRhs.Equal(other.PRhs)
}
