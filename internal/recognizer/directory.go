package recognizer

// Directory is an ordered list of recognizers. Lookup is first match wins.
type Directory struct {
	recognizers []*Recognizer
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{}
}

// Register appends a recognizer. Panics on a duplicate institution.
func (d *Directory) Register(r *Recognizer) {
	for _, existing := range d.recognizers {
		if existing.Institution == r.Institution {
			panic("duplicate recognizer: " + string(r.Institution))
		}
	}
	d.recognizers = append(d.recognizers, r)
}

// Find returns the first recognizer claiming sender, or nil.
func (d *Directory) Find(sender string) *Recognizer {
	for _, r := range d.recognizers {
		if r.ClaimsSender(sender) {
			return r
		}
	}
	return nil
}

// Recognizers returns the registered recognizers in registration order.
func (d *Directory) Recognizers() []*Recognizer {
	out := make([]*Recognizer, len(d.recognizers))
	copy(out, d.recognizers)
	return out
}

// DefaultDirectory returns a directory with all built-in banks.
func DefaultDirectory() *Directory {
	d := NewDirectory()
	d.Register(HDFC())
	d.Register(ICICI())
	d.Register(SBI())
	d.Register(Saraswat())
	d.Register(IndianBank())
	d.Register(UnionBank())
	return d
}
