package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/api/apiutil"
	"github.com/codr1/Matchday/internal/fixtures"
	"github.com/codr1/Matchday/internal/leagues"
	"github.com/codr1/Matchday/internal/standings"
)

// StatusForError maps domain errors to an HTTP status and a client-facing
// message. Unknown errors map to 500 with fallback as the message.
func StatusForError(err error, fallback string) (int, string) {
	var handlerErr apiutil.HandlerError
	switch {
	case errors.As(err, &handlerErr):
		return handlerErr.Status, handlerErr.Message
	case errors.Is(err, fixtures.ErrValidation),
		errors.Is(err, standings.ErrInvalidResult),
		errors.Is(err, leagues.ErrInvalidEvent),
		errors.Is(err, leagues.ErrNotMiniLeague):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, leagues.ErrCompetitionNotFound),
		errors.Is(err, leagues.ErrMatchNotFound),
		errors.Is(err, leagues.ErrTeamNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, leagues.ErrMatchArchived),
		errors.Is(err, leagues.ErrCompetitionArchived),
		errors.Is(err, leagues.ErrMatchCompleted),
		errors.Is(err, leagues.ErrMatchNotScheduled),
		errors.Is(err, leagues.ErrPhaseConflict),
		errors.Is(err, leagues.ErrQualificationIncomplete):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, fallback
	}
}

// WriteError writes err with StatusForError and logs server-side failures.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, message := StatusForError(err, fallback)
	if status >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(err).Msg(fallback)
	}
	http.Error(w, message, status)
}
