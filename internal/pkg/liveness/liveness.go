// Package liveness ties the result of an in-flight call to the session that
// started it. A Token captured before a remote call reports whether local
// state may still be written when the call completes.
package liveness

import "sync/atomic"

// Scope issues tokens for the current generation. Invalidate starts a new
// generation and kills every token handed out before it.
type Scope struct {
	generation atomic.Uint64
}

type Token struct {
	scope      *Scope
	generation uint64
}

func (s *Scope) Token() Token {
	return Token{scope: s, generation: s.generation.Load()}
}

func (s *Scope) Invalidate() {
	s.generation.Add(1)
}

// Alive is false for the zero Token.
func (t Token) Alive() bool {
	return t.scope != nil && t.scope.generation.Load() == t.generation
}
