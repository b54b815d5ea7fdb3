package service

import (
	"context"
	"fmt"
	"time"

	"salesdesk/config"
	"salesdesk/infras/otel"
	"salesdesk/infras/s3"
	"salesdesk/internal/domains/ledger/model"
	"salesdesk/internal/domains/ledger/model/dto"
	"salesdesk/internal/domains/ledger/repository"
	"salesdesk/shared/constant"
	"salesdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	archiveDirectory     = "ledger-exports"
	archiveUploadTimeout = 30 * time.Second
)

// Ledger manages the booking ledger: bulk import from uploaded files, export
// snapshots, and direct reads.
type Ledger interface {
	Import(ctx context.Context, format string, data []byte) (dto.ImportResponse, error)
	Export(ctx context.Context, format string) (data []byte, contentType string, err error)
	GetAll(ctx context.Context) dto.GetBookingsResponse
	Append(ctx context.Context, booking model.Booking)
	BookingsOn(ctx context.Context, date time.Time, room string) []model.Booking
}

type serviceImpl struct {
	repo    repository.Ledger
	storage s3.S3
	config  *config.Config
	otel    otel.Otel
}

func New(repo repository.Ledger, storage s3.S3, conf *config.Config, ot otel.Otel) Ledger {
	return &serviceImpl{
		repo:    repo,
		storage: storage,
		config:  conf,
		otel:    ot,
	}
}

// Import decodes an uploaded booking file and replaces the whole ledger with
// its contents. A file that fails to decode leaves the ledger untouched.
func (s *serviceImpl) Import(ctx context.Context, format string, data []byte) (res dto.ImportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Import")
	defer scope.End()
	defer scope.TraceIfError(err)

	var bookings []model.Booking

	switch format {
	case constant.FormatCSV:
		bookings, err = decodeCSV(data)
	case constant.FormatJSON:
		bookings, err = decodeJSON(data)
	default:
		return res, failure.UnsupportedFileFormat(format) //nolint:wrapcheck
	}

	if err != nil {
		return res, err
	}

	s.repo.ReplaceAll(ctx, bookings)

	log.Info().Int("count", len(bookings)).Str("format", format).Msg("booking ledger replaced from import")

	res.Imported = len(bookings)

	return res, nil
}

// Export encodes the current ledger. When S3 archiving is enabled a copy of
// the snapshot is uploaded in the background; upload failures are logged and
// do not affect the returned data.
func (s *serviceImpl) Export(ctx context.Context, format string) (data []byte, contentType string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings := s.repo.All(ctx)

	switch format {
	case constant.FormatCSV:
		data, err = encodeCSV(bookings)
		contentType = constant.ContentTypeCSV
	case constant.FormatJSON:
		data, err = encodeJSON(bookings)
		contentType = constant.ContentTypeJSON
	default:
		return nil, constant.Empty, failure.UnsupportedFileFormat(format) //nolint:wrapcheck
	}

	if err != nil {
		return nil, constant.Empty, err
	}

	if s.config.External.S3.Enable {
		s.archiveAsync(format, contentType, data)
	}

	return data, contentType, nil
}

func (s *serviceImpl) archiveAsync(format, contentType string, data []byte) {
	objectName := fmt.Sprintf("ledger-%s.%s", time.Now().UTC().Format("20060102T150405Z"), format)

	go func() {
		uploadCtx, cancel := context.WithTimeout(context.Background(), archiveUploadTimeout)
		defer cancel()

		key, err := s.storage.UploadObject(uploadCtx, constant.Empty, archiveDirectory, objectName, contentType, data)
		if err != nil {
			log.Error().Err(err).Str("object", objectName).Msg("failed to archive ledger export")

			return
		}

		log.Info().Str("key", key).Msg("ledger export archived")
	}()
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	res.FromModels(s.repo.All(ctx))

	return res
}

func (s *serviceImpl) Append(ctx context.Context, booking model.Booking) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Append")
	defer scope.End()

	s.repo.Append(ctx, booking)
}

func (s *serviceImpl) BookingsOn(ctx context.Context, date time.Time, room string) []model.Booking {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingsOn")
	defer scope.End()

	return s.repo.BookingsOn(ctx, date, room)
}
