package tagger

// POS is a coarse part-of-speech tag (universal dependencies names).
type POS string

const (
	Noun        POS = "NOUN"
	ProperNoun  POS = "PROPN"
	Adjective   POS = "ADJ"
	Verb        POS = "VERB"
	Adverb      POS = "ADV"
	Number      POS = "NUM"
	Punctuation POS = "PUNCT"
	Space       POS = "SPACE"
	Function    POS = "X"
)

// Token is one tagged span of the input.
type Token struct {
	Text    string
	Lemma   string
	POS     POS
	IsStop  bool
	IsPunct bool
	IsSpace bool
	// Offset is the byte offset of Text in the normalized input.
	Offset int
}

// IsContent reports whether the tag is one of the open content classes.
func (p POS) IsContent() bool {
	switch p {
	case Noun, ProperNoun, Adjective, Verb:
		return true
	default:
		return false
	}
}
