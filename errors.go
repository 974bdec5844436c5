package twisty

import (
	"errors"
	"fmt"
)

// Sentinel errors for the twisty package.
var (
	// Definition errors
	ErrMissingName    = errors.New("twisty: definition has no \"Name:\" header")
	ErrAmbiguousToken = errors.New("twisty: piece token does not match Label or Label+D")
	ErrRepeatedPiece  = errors.New("twisty: piece appears more than once in a move")
	ErrStrayText      = errors.New("twisty: text outside a (...) cycle")
	ErrOrderExceeded  = errors.New("twisty: move does not return to identity within the order bound")
	ErrNoMoves        = errors.New("twisty: no move definitions")

	// Descriptor errors
	ErrUnknownPosition = errors.New("twisty: unknown position")
	ErrBadRotation     = errors.New("twisty: candidate rotation does not resolve")

	// Notation errors
	ErrIllegalMove     = errors.New("twisty: illegal move")
	ErrInvalidNotation = errors.New("twisty: invalid move notation")
	ErrMalformedMove   = errors.New("twisty: move has no known order")
)

// Diagnostic reports a problem found while reading move definitions or
// checking a puzzle at construction time.
type Diagnostic struct {
	Move  string // move name, empty when the line had none
	Token string // offending token or line
	Err   error
}

func (d Diagnostic) Error() string {
	switch {
	case d.Move != "" && d.Token != "":
		return fmt.Sprintf("%v: move %q: %q", d.Err, d.Move, d.Token)
	case d.Move != "":
		return fmt.Sprintf("%v: move %q", d.Err, d.Move)
	default:
		return fmt.Sprintf("%v: %q", d.Err, d.Token)
	}
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// TokenError reports a notation token that was skipped during resolution.
type TokenError struct {
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Token)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// SkippedTokens returns the tokens named by the TokenErrors inside err,
// which is usually the joined error returned by Resolve or Move.
func SkippedTokens(err error) []string {
	if err == nil {
		return nil
	}
	var tokens []string
	var te *TokenError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if errors.As(e, &te) {
				tokens = append(tokens, te.Token)
			}
		}
		return tokens
	}
	if errors.As(err, &te) {
		tokens = append(tokens, te.Token)
	}
	return tokens
}
