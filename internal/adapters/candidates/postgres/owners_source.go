package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"dog-playdate-matcher/internal/domain/matching"
	"dog-playdate-matcher/internal/platform/logger"

	json "github.com/goccy/go-json"
)

// OwnersSource lee el pool de candidatos de la tabla owners (solo SELECT).
//
//	owners(id text, name text, gender text, relationship_status text,
//	       latitude double precision, longitude double precision,
//	       availability jsonb, dogs jsonb)
//
// dogs usa el mismo formato de wire que el API (dog_name, dog_breed, ...).
type OwnersSource struct {
	db    *sql.DB
	limit int
	log   logger.Logger
}

// NewOwnersSource. limit <= 0 => sin límite. El LIMIT corta por id, antes del filtro de distancia.
func NewOwnersSource(db *sql.DB, limit int, log logger.Logger) *OwnersSource {
	if log == nil {
		log = logger.NewNop()
	}
	return &OwnersSource{db: db, limit: limit, log: log}
}

const listOwnersSQL = `
	SELECT
		id, name, gender, relationship_status,
		latitude, longitude,
		availability, dogs
	FROM owners
	ORDER BY id ASC`

func (s *OwnersSource) ListCandidates(ctx context.Context) ([]matching.Owner, error) {
	query := listOwnersSQL
	args := []any{}
	if s.limit > 0 {
		query += "\n\tLIMIT $1"
		args = append(args, s.limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query owners: %w", err)
	}
	defer rows.Close()

	out := make([]matching.Owner, 0)
	read := 0
	for rows.Next() {
		read++
		var (
			p                    matching.OwnerPayload
			lat, lon             float64
			availRaw, dogsRaw    []byte
			gender, relationship sql.NullString
		)
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&gender,
			&relationship,
			&lat,
			&lon,
			&availRaw,
			&dogsRaw,
		); err != nil {
			return nil, fmt.Errorf("scan owner: %w", err)
		}

		p.Gender = gender.String
		p.RelationshipStatus = relationship.String
		p.Location = []float64{lat, lon}

		if err := json.Unmarshal(availRaw, &p.Availability); err != nil {
			s.log.Warn("skipping owner with malformed availability", map[string]any{"owner_id": p.ID, "error": err})
			continue
		}
		if err := json.Unmarshal(dogsRaw, &p.Dogs); err != nil {
			s.log.Warn("skipping owner with malformed dogs", map[string]any{"owner_id": p.ID, "error": err})
			continue
		}

		// el core asume registros bien formados: se filtran acá
		if verr := matching.ValidateOwner(p); verr != nil {
			s.log.Warn("skipping invalid owner", map[string]any{"owner_id": p.ID, "error": verr.Error()})
			continue
		}

		out = append(out, p.ToOwner())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate owners: %w", err)
	}

	if s.limit > 0 && read >= s.limit {
		s.log.Warn("candidate pool truncated by limit", map[string]any{"limit": s.limit, "kept": len(out)})
	}
	return out, nil
}
