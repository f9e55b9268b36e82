package matching

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"dog-playdate-matcher/internal/metrics"
	"dog-playdate-matcher/internal/validation"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
)

const (
	defaultGenerateUsers = 10
	maxGenerateUsers     = 500
)

// MaxRequestBytes tope del body de /find_matches (hasta 1000 owners con hasta 10 perros cada uno).
// Lo aplica el router con chi middleware.RequestSize.
const MaxRequestBytes = 2 << 20

// RegisterRoutes monta los endpoints de matching. gen puede ser nil (sin /generate_users).
func RegisterRoutes(r chi.Router, svc *Service, gen OwnerGenerator) {
	r.Post("/find_matches", findMatchesHandler(svc))
	if gen != nil {
		r.Post("/generate_users", generateUsersHandler(gen))
	}
}

// findMatchesHandler godoc
// @Summary      Find dog playdate matches
// @Description  Runs location, availability and dog compatibility phases and returns the ranked matches.
// @Tags         matching
// @Accept       json
// @Produce      json
// @Param        request       body   findMatchesRequest  true   "Owner to match and optional candidate pool"
// @Param        max_matches   query  int     false  "Maximum number of matches (default 5)"
// @Param        max_distance  query  number  false  "Maximum distance in km (default 50)"
// @Success      200  {object}  matchResponse
// @Failure      400  {object}  errorResponse
// @Failure      413  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /find_matches [post]
func findMatchesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE",
					"request body exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes", nil)
				return
			}
			writeError(w, http.StatusBadRequest, "INVALID_BODY", "could not read request body", nil)
			return
		}

		var req findMatchesRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid json", nil)
			return
		}

		maxResults, verr := intQuery(r, "max_matches", svc.Defaults().MaxResults, "min=1,max=100")
		if verr != nil {
			writeValidationError(w, verr)
			return
		}
		maxDistance, verr := floatQuery(r, "max_distance", svc.Defaults().MaxDistance, "gt=0")
		if verr != nil {
			writeValidationError(w, verr)
			return
		}

		if verr := req.validate(); verr != nil {
			writeValidationError(w, verr)
			return
		}

		in := FindInput{
			Query:       req.UserToMatch.ToOwner(),
			MaxDistance: &maxDistance,
			MaxResults:  &maxResults,
		}
		if req.UsersData != nil {
			in.Pool = make([]Owner, 0, len(req.UsersData))
			for _, u := range req.UsersData {
				in.Pool = append(in.Pool, u.ToOwner())
			}
		}

		recs, err := svc.FindMatches(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error(), nil)
			case errors.Is(err, ErrSourceUnavailable):
				writeError(w, http.StatusBadGateway, "SOURCE_UNAVAILABLE", "candidate source unavailable", nil)
			default:
				writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, toMatchResponse(recs))
	}
}

// generateUsersHandler godoc
// @Summary      Generate random owner profiles
// @Description  Generates random owners with 1 to 3 dogs each, for demos and manual testing.
// @Tags         demo
// @Produce      json
// @Param        num_users  query  int  false  "Number of users (default 10)"
// @Success      200  {object}  generateUsersResponse
// @Failure      400  {object}  errorResponse
// @Router       /generate_users [post]
func generateUsersHandler(gen OwnerGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, verr := intQuery(r, "num_users", defaultGenerateUsers, "min=1,max="+strconv.Itoa(maxGenerateUsers))
		if verr != nil {
			writeValidationError(w, verr)
			return
		}

		owners := gen.Generate(n)
		metrics.GeneratedOwners.Add(float64(len(owners)))

		out := generateUsersResponse{Users: make([]OwnerPayload, 0, len(owners))}
		for _, o := range owners {
			out.Users = append(out.Users, NewOwnerPayload(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func intQuery(r *http.Request, name string, def int, tag string) (int, *validation.RequestValidationError) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &validation.RequestValidationError{Fields: []validation.FieldError{{
			Field: name, Tag: "number", Message: name + " must be an integer",
		}}}
	}
	if verr := validation.Var(name, n, tag); verr != nil {
		return 0, verr
	}
	return n, nil
}

func floatQuery(r *http.Request, name string, def float64, tag string) (float64, *validation.RequestValidationError) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &validation.RequestValidationError{Fields: []validation.FieldError{{
			Field: name, Tag: "number", Message: name + " must be a number",
		}}}
	}
	if verr := validation.Var(name, f, tag); verr != nil {
		return 0, verr
	}
	return f, nil
}

func writeValidationError(w http.ResponseWriter, verr *validation.RequestValidationError) {
	writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", verr.Error(), verr.Fields)
}

func writeError(w http.ResponseWriter, status int, code, msg string, fields []validation.FieldError) {
	writeJSON(w, status, errorResponse{Code: code, Message: msg, Fields: fields})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
