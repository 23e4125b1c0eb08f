package usecases

//go:generate mockgen -source=upload_service.go -destination=../../../test/unit/doubles/uploads/usecases/upload_service_mock.go -package=usecases -mock_names=UploadService=MockUploadService

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"greenhouse-server/internal/infra/utils"
	"greenhouse-server/internal/uploads/domain"
)

type UploadRequest struct {
	// FieldID ties the upload to a checklist detail field so concurrent
	// uploads stay independently trackable. Optional.
	FieldID     string
	ContentType string
	Data        []byte
}

type UploadResult struct {
	Key string
	URL string
}

type UploadService interface {
	Upload(ctx context.Context, request UploadRequest) (UploadResult, error)
	IsPending(fieldID string) bool
	Fetch(ctx context.Context, key string) ([]byte, string, error)
}

func NewUploadService(store ObjectStore) *SimpleUploadService {
	return &SimpleUploadService{
		store:   store,
		pending: make(map[string]bool),
	}
}

var _ UploadService = (*SimpleUploadService)(nil)

type SimpleUploadService struct {
	store      ObjectStore
	pendingMux sync.Mutex
	pending    map[string]bool
}

func (s *SimpleUploadService) Upload(ctx context.Context, request UploadRequest) (UploadResult, error) {
	if err := domain.ValidateUpload(request.ContentType, int64(len(request.Data))); err != nil {
		slog.Warn("upload rejected",
			slog.String("content_type", request.ContentType),
			slog.Int("size", len(request.Data)),
			slog.String("error", err.Error()))
		return UploadResult{}, err
	}

	if request.FieldID != "" {
		s.markPending(request.FieldID)
		defer s.clearPending(request.FieldID)
	}

	key := utils.GenerateUUID() + domain.Extension(request.ContentType)
	url, err := s.store.Put(ctx, key, request.ContentType, request.Data)
	if err != nil {
		slog.Error("storing upload", slog.String("key", key), slog.String("error", err.Error()))
		return UploadResult{}, fmt.Errorf("storing upload: %w", err)
	}

	return UploadResult{Key: key, URL: url}, nil
}

func (s *SimpleUploadService) IsPending(fieldID string) bool {
	s.pendingMux.Lock()
	defer s.pendingMux.Unlock()
	return s.pending[fieldID]
}

func (s *SimpleUploadService) Fetch(ctx context.Context, key string) ([]byte, string, error) {
	return s.store.Get(ctx, key)
}

func (s *SimpleUploadService) markPending(fieldID string) {
	s.pendingMux.Lock()
	defer s.pendingMux.Unlock()
	s.pending[fieldID] = true
}

func (s *SimpleUploadService) clearPending(fieldID string) {
	s.pendingMux.Lock()
	defer s.pendingMux.Unlock()
	delete(s.pending, fieldID)
}
