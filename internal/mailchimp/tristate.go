package mailchimp

// TriState is a boolean whose value may not be known. Unknown values are
// never sent to Mailchimp.
type TriState int8

const (
	Unknown TriState = iota
	True
	False
)

func TriStateOf(value bool) TriState {
	if value {
		return True
	}
	return False
}

func (t TriState) IsKnown() bool {
	return t != Unknown
}

// MergeValue renders a known value with the tokens expected by the list.
func (t TriState) MergeValue() string {
	switch t {
	case True:
		return "oui"
	case False:
		return "non"
	}
	return ""
}
