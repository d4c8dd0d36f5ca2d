package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"freightaudit/internal/config"
	"freightaudit/internal/domain"
	"freightaudit/internal/extract"
	"freightaudit/internal/port"
)

// ContractUploadInput is the DTO for rate-card upload requests.
type ContractUploadInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// ContractService defines the provider rate-card management contract.
type ContractService interface {
	Upload(ctx context.Context, input ContractUploadInput) (*domain.ProviderContract, error)
	List(ctx context.Context) ([]domain.ProviderContract, error)
	Get(ctx context.Context, providerName string) (*domain.ProviderContract, error)
	Delete(ctx context.Context, providerName string) error
}

type contractService struct {
	repo      port.ContractRepository
	storage   port.ObjectStorage
	extractor port.RateCardExtractor
	cfg       *config.S3Config
}

// NewContractService creates a new ContractService implementation.
func NewContractService(
	repo port.ContractRepository,
	storage port.ObjectStorage,
	extractor port.RateCardExtractor,
	cfg *config.S3Config,
) ContractService {
	return &contractService{
		repo:      repo,
		storage:   storage,
		extractor: extractor,
		cfg:       cfg,
	}
}

func (s *contractService) Upload(ctx context.Context, input ContractUploadInput) (*domain.ProviderContract, error) {
	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	fileBytes, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	// Magic-byte content type detection; the client-claimed type is not trusted.
	sniffLen := len(fileBytes)
	if sniffLen > 512 {
		sniffLen = 512
	}
	contentType := http.DetectContentType(fileBytes[:sniffLen])
	if _, ok := domain.AllowedContentTypes[contentType]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	contractID := uuid.New()
	s3Key := fmt.Sprintf("ratecards/%s/%s", contractID, input.Header.Filename)

	log.Printf("contractService.Upload: uploading rate card %s (%s, %d bytes)",
		input.Header.Filename, contentType, input.Header.Size)

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        bytes.NewReader(fileBytes),
		ContentType: contentType,
		Size:        int64(len(fileBytes)),
	})
	if err != nil {
		log.Printf("contractService.Upload: S3 upload failed: %v", err)
		return nil, domain.ErrUploadFailed
	}

	out, err := s.extractor.ExtractRateCard(ctx, port.ExtractInput{
		FileBytes:   fileBytes,
		ContentType: contentType,
	})
	if err != nil {
		log.Printf("contractService.Upload: extraction failed for %s: %v", s3Key, err)
		// Keep the stored document for a manual retry, but surface the failure.
		var rlErr *extract.RateLimitError
		if errors.As(err, &rlErr) {
			return nil, err
		}
		return nil, domain.ErrExtractionFailed
	}

	now := time.Now()
	contract := &domain.ProviderContract{
		ID:             contractID,
		ProviderName:   out.ProviderName,
		NormalizedName: domain.NormalizeProviderName(out.ProviderName),
		ContractRules:  out.Rules,
		SourceBucket:   s.cfg.Bucket,
		SourceKey:      s3Key,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Upsert(ctx, contract); err != nil {
		log.Printf("contractService.Upload: failed to persist contract for %s: %v", out.ProviderName, err)
		return nil, fmt.Errorf("persisting contract: %w", err)
	}

	log.Printf("contractService.Upload: stored contract for %s (model %s)", out.ProviderName, out.ModelUsed)
	return contract, nil
}

func (s *contractService) List(ctx context.Context) ([]domain.ProviderContract, error) {
	return s.repo.List(ctx)
}

func (s *contractService) Get(ctx context.Context, providerName string) (*domain.ProviderContract, error) {
	return s.repo.GetByNormalizedName(ctx, domain.NormalizeProviderName(providerName))
}

func (s *contractService) Delete(ctx context.Context, providerName string) error {
	normalized := domain.NormalizeProviderName(providerName)

	contract, err := s.repo.GetByNormalizedName(ctx, normalized)
	if err != nil {
		return err
	}

	if contract.SourceBucket != "" && contract.SourceKey != "" {
		if err := s.storage.Delete(ctx, contract.SourceBucket, contract.SourceKey); err != nil {
			log.Printf("contractService.Delete: failed to delete source document %s/%s: %v",
				contract.SourceBucket, contract.SourceKey, err)
		}
	}

	return s.repo.Delete(ctx, normalized)
}
