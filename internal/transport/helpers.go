package transport

import (
	"errors"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
	"github.com/wb-go/wbf/ginext"
)

func errorCodeDefiner(err error) int {
	switch {
	case errors.Is(err, model.ErrCommon500),
		errors.Is(err, model.ErrVisualizationFailed),
		errors.Is(err, model.ErrImageGeneration):
		return 500
	case errors.Is(err, model.ErrDestinationNotFound):
		return 404
	case errors.Is(err, model.ErrRateLimited):
		return 429
	case errors.Is(err, model.ErrIncorrectQuery),
		errors.Is(err, model.ErrInvalidPhotoURL),
		errors.Is(err, model.ErrEmptyDestinationID),
		errors.Is(err, model.ErrNotAnImage),
		errors.Is(err, model.ErrFileTooLarge),
		errors.Is(err, model.ErrInvalidImage),
		errors.Is(err, model.ErrInvalidPrompt),
		errors.Is(err, model.ErrInvalidStyle),
		errors.Is(err, model.ErrInvalidPreferences),
		errors.Is(err, model.ErrInvalidBookingQuery):
		return 400
	default:
		return 500
	}
}

// ErrorBody is the JSON error answer shared with the middlewares
func ErrorBody(code int, detail string) model.ErrorResponse {
	return model.ErrorResponse{
		Detail:    detail,
		ErrorCode: "HTTP_" + strconv.Itoa(code),
		Timestamp: time.Now().UTC(),
	}
}

func writeError(ctx *ginext.Context, code int, detail string) {
	ctx.JSON(code, ErrorBody(code, detail))
}

// writeServiceError hides the text of unexpected errors
func writeServiceError(ctx *ginext.Context, err error) {
	code := errorCodeDefiner(err)
	detail := err.Error()
	if code == 500 && !errors.Is(err, model.ErrVisualizationFailed) && !errors.Is(err, model.ErrImageGeneration) {
		detail = model.ErrCommon500.Error()
	}
	writeError(ctx, code, detail)
}

func closeFileFlow(res io.ReadCloser) {
	if res == nil {
		return
	}
	if err := res.Close(); err != nil {
		log.Println("Handler failed to close fileflow:", err)
	}
}
