package directory

import (
	"context"
	"fmt"

	"dog-playdate-matcher/internal/domain/matching"
	"dog-playdate-matcher/internal/platform/httpclient"
	"dog-playdate-matcher/internal/platform/logger"
)

const ownersPath = "/owners"

// Source obtiene el pool desde un directorio externo de owners vía HTTP:
// GET <base>/owners => {"users": [...]} (mismo formato que /generate_users).
type Source struct {
	client *httpclient.Client
	log    logger.Logger
}

func NewSource(client *httpclient.Client, log logger.Logger) *Source {
	if log == nil {
		log = logger.NewNop()
	}
	return &Source{client: client, log: log}
}

type ownersResponse struct {
	Users []matching.OwnerPayload `json:"users"`
}

func (s *Source) ListCandidates(ctx context.Context) ([]matching.Owner, error) {
	var resp ownersResponse
	if err := s.client.GetJSON(ctx, ownersPath, &resp); err != nil {
		return nil, fmt.Errorf("directory owners: %w", err)
	}

	out := make([]matching.Owner, 0, len(resp.Users))
	for _, p := range resp.Users {
		if verr := matching.ValidateOwner(p); verr != nil {
			s.log.Warn("skipping invalid owner from directory", map[string]any{"owner_id": p.ID, "error": verr.Error()})
			continue
		}
		out = append(out, p.ToOwner())
	}
	return out, nil
}
