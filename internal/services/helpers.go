package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/unicode/norm"
)

// withTimeout bounds ctx by d when d > 0.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// storeFailure converts err with FromStore, logs it with the request logger
// (client errors at debug, server errors at error) and marks the current
// span failed for server errors.
func storeFailure(ctx context.Context, op string, err error) error {
	out := FromStore(err)
	lg := zerolog.Ctx(ctx)
	if errors.Is(out, ErrBadRequest) {
		lg.Debug().Str("op", op).Err(err).Msg("rejected")
		return out
	}
	lg.Error().Str("op", op).Err(err).Msg("store failure")
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, op)
	return out
}

// normalizeText puts submitted text in Unicode NFC so that canonically
// equivalent strings are stored identically.
func normalizeText(s string) string {
	return norm.NFC.String(s)
}
