package matching

import "context"

// CandidateSource provee el pool de owners cuando el request no lo trae.
// Es de solo lectura: el matcher no persiste owners ni matches.
type CandidateSource interface {
	ListCandidates(ctx context.Context) ([]Owner, error)
}

// OwnerGenerator genera perfiles aleatorios (demo/testing).
type OwnerGenerator interface {
	Generate(n int) []Owner
}
