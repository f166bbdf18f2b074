package document

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"time"

	documenterrors "foome-hcm/internal/document/errors"
	"foome-hcm/internal/events"
	"foome-hcm/internal/messaging/kafka"
	"foome-hcm/internal/shared/contextutil"
	"foome-hcm/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxFileSize caps a single document upload at 10 MiB.
const MaxFileSize = 10 << 20

// ExpiringWindow is how far ahead the expiring listing looks.
const ExpiringWindow = 30 * 24 * time.Hour

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	Upload(ctx context.Context, companyID string, req UploadDocumentRequest, fileName, mimeType string, size int64, file io.Reader) (DocumentResponse, error)
	GetAll(ctx context.Context, companyID string, employeeID string) ([]DocumentResponse, error)
	GetByID(ctx context.Context, companyID, actorID string, actorIsAdmin bool, id string) (DocumentResponse, error)
	SignedURL(ctx context.Context, companyID, actorID string, actorIsAdmin bool, id string) (SignedURLResponse, error)
	OpenByToken(ctx context.Context, token string) (io.ReadCloser, string, error)
	Approve(ctx context.Context, companyID, reviewerID string, id string) (DocumentResponse, error)
	Reject(ctx context.Context, companyID, reviewerID string, id, reason string) (DocumentResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	GetExpiring(ctx context.Context, companyID string, withinDays int) ([]DocumentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	store  storage.Store
	signer *storage.URLSigner
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	store storage.Store,
	signer *storage.URLSigner,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		store:  store,
		signer: signer,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Upload(ctx context.Context, companyID string, req UploadDocumentRequest, fileName, mimeType string, size int64, file io.Reader) (DocumentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("upload document requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("file_name", fileName),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidEmployeeID
	}
	if size > MaxFileSize {
		return DocumentResponse{}, documenterrors.ErrFileTooLarge
	}

	ok, err := s.repo.EmployeeBelongsToCompany(ctx, employeeUUID, companyUUID)
	if err != nil {
		s.logger.Error("upload document employee check failed", zap.Error(err))
		return DocumentResponse{}, err
	}
	if !ok {
		return DocumentResponse{}, documenterrors.ErrEmployeeNotInCompany
	}

	var expiration *time.Time
	if req.ExpirationDate != "" {
		t, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err == nil {
			expiration = &t
		}
	}

	docID := uuid.New()
	blobPath := fmt.Sprintf("%s/%s/%s%s", companyID, req.EmployeeID, docID.String(), filepath.Ext(fileName))

	written, err := s.store.Save(ctx, blobPath, io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		s.logger.Error("upload document blob write failed",
			zap.String("path", blobPath),
			zap.Error(err),
		)
		return DocumentResponse{}, err
	}
	if written > MaxFileSize {
		s.removeBlob(ctx, blobPath)
		return DocumentResponse{}, documenterrors.ErrFileTooLarge
	}

	d := &Document{
		ID:             docID,
		CompanyID:      companyUUID,
		EmployeeID:     employeeUUID,
		Name:           req.Name,
		Type:           req.Type,
		Status:         StatusPending,
		FilePath:       blobPath,
		FileName:       fileName,
		FileSize:       written,
		MimeType:       mimeType,
		ExpirationDate: expiration,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		// The blob is already on disk; take it back out so a failed insert
		// does not leak storage.
		s.removeBlob(ctx, blobPath)
		s.logger.Error("upload document persist failed", zap.Error(err))
		return DocumentResponse{}, err
	}

	s.logger.Info("upload document success",
		zap.String("request_id", rid),
		zap.String("document_id", d.ID.String()),
		zap.Int64("size", written),
	)
	return mapToDocumentResponse(*d), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, employeeID string) ([]DocumentResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, documenterrors.ErrInvalidCompanyID
	}

	var employeeFilter *uuid.UUID
	if employeeID != "" {
		employeeUUID, err := uuid.Parse(employeeID)
		if err != nil {
			return nil, documenterrors.ErrInvalidEmployeeID
		}
		employeeFilter = &employeeUUID
	}

	docs, err := s.repo.FindAllByCompany(ctx, companyUUID, employeeFilter)
	if err != nil {
		s.logger.Error("get all documents failed", zap.Error(err))
		return nil, err
	}
	return mapToDocumentListResponse(docs), nil
}

func (s *service) GetByID(ctx context.Context, companyID, actorID string, actorIsAdmin bool, id string) (DocumentResponse, error) {
	d, err := s.findForActor(ctx, companyID, actorID, actorIsAdmin, id)
	if err != nil {
		return DocumentResponse{}, err
	}
	return mapToDocumentResponse(*d), nil
}

// findForActor loads a document and enforces ownership: members only reach
// their own documents, and a colleague's document is not acknowledged to
// exist.
func (s *service) findForActor(ctx context.Context, companyID, actorID string, actorIsAdmin bool, id string) (*Document, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, documenterrors.ErrInvalidCompanyID
	}
	docUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, documenterrors.ErrDocumentNotFound
	}

	d, err := s.repo.FindByIDAndCompany(ctx, docUUID, companyUUID)
	if err != nil {
		return nil, err
	}
	if !actorIsAdmin && d.EmployeeID.String() != actorID {
		return nil, documenterrors.ErrDocumentNotFound
	}
	return d, nil
}

// SignedURL returns a short-lived link to the blob. The link embeds a signed
// token; nothing about the underlying path is guessable from it.
func (s *service) SignedURL(ctx context.Context, companyID, actorID string, actorIsAdmin bool, id string) (SignedURLResponse, error) {
	d, err := s.findForActor(ctx, companyID, actorID, actorIsAdmin, id)
	if err != nil {
		return SignedURLResponse{}, err
	}

	token, err := s.signer.Sign(d.FilePath, companyID, d.FileName)
	if err != nil {
		s.logger.Error("sign document url failed", zap.String("document_id", id), zap.Error(err))
		return SignedURLResponse{}, err
	}

	return SignedURLResponse{
		URL:       "/api/v1/files?token=" + token,
		ExpiresIn: int(storage.DefaultSignedURLTTL.Seconds()),
	}, nil
}

// OpenByToken resolves a signed token to the blob stream and download name.
func (s *service) OpenByToken(ctx context.Context, token string) (io.ReadCloser, string, error) {
	path, _, fileName, err := s.signer.Verify(token)
	if err != nil {
		return nil, "", documenterrors.ErrInvalidFileToken
	}

	rc, err := s.store.Open(ctx, path)
	if err != nil {
		s.logger.Error("open document blob failed", zap.String("path", path), zap.Error(err))
		return nil, "", documenterrors.ErrDocumentNotFound
	}
	return rc, fileName, nil
}

func (s *service) Approve(ctx context.Context, companyID, reviewerID string, id string) (DocumentResponse, error) {
	return s.review(ctx, companyID, reviewerID, id, StatusApproved, "")
}

func (s *service) Reject(ctx context.Context, companyID, reviewerID string, id, reason string) (DocumentResponse, error) {
	if reason == "" {
		return DocumentResponse{}, documenterrors.ErrRejectionReasonRequired
	}
	return s.review(ctx, companyID, reviewerID, id, StatusRejected, reason)
}

func (s *service) review(ctx context.Context, companyID, reviewerID string, id, status, reason string) (DocumentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidCompanyID
	}
	docUUID, err := uuid.Parse(id)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrDocumentNotFound
	}
	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("review document begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return DocumentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	d, err := qtx.FindByIDAndCompany(ctx, docUUID, companyUUID)
	if err != nil {
		return DocumentResponse{}, err
	}

	// Approved and rejected are terminal. A second review is a conflict, not
	// a silent overwrite.
	if Terminal(d.Status) {
		return DocumentResponse{}, documenterrors.ErrAlreadyReviewed
	}

	now := time.Now().UTC()
	d.Status = status
	d.ReviewedBy = &reviewerUUID
	d.ReviewedAt = &now
	d.RejectionReason = reason

	if err := qtx.UpdateReview(ctx, d); err != nil {
		s.logger.Error("review document persist failed", zap.Error(err))
		return DocumentResponse{}, err
	}

	if s.outbox != nil {
		event := events.DocumentReviewedEvent{
			EventType:    "document_reviewed",
			RequestID:    rid,
			DocumentID:   d.ID.String(),
			CompanyID:    companyID,
			EmployeeID:   d.EmployeeID.String(),
			DocumentName: d.Name,
			Status:       status,
			ReviewedBy:   reviewerID,
			OccurredAt:   now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return DocumentResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "document",
			AggregateID:   d.ID.String(),
			EventType:     event.EventType,
			Topic:         events.DocumentReviewedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("review document outbox persist failed", zap.Error(err))
			return DocumentResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("review document commit failed", zap.String("request_id", rid), zap.Error(err))
		return DocumentResponse{}, err
	}

	s.logger.Info("review document success",
		zap.String("request_id", rid),
		zap.String("document_id", id),
		zap.String("status", status),
	)
	return mapToDocumentResponse(*d), nil
}

// Delete removes the row first and the blob after commit. A dangling blob is
// recoverable garbage; a dangling row pointing at nothing is a bug users see.
func (s *service) Delete(ctx context.Context, companyID, id string) error {
	rid := contextutil.GetRequestID(ctx)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return documenterrors.ErrInvalidCompanyID
	}
	docUUID, err := uuid.Parse(id)
	if err != nil {
		return documenterrors.ErrDocumentNotFound
	}

	d, err := s.repo.FindByIDAndCompany(ctx, docUUID, companyUUID)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete document begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, docUUID, companyUUID); err != nil {
		s.logger.Error("delete document failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete document commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.removeBlob(ctx, d.FilePath)

	s.logger.Info("delete document success",
		zap.String("request_id", rid),
		zap.String("document_id", id),
	)
	return nil
}

func (s *service) GetExpiring(ctx context.Context, companyID string, withinDays int) ([]DocumentResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, documenterrors.ErrInvalidCompanyID
	}

	window := ExpiringWindow
	if withinDays > 0 {
		window = time.Duration(withinDays) * 24 * time.Hour
	}

	docs, err := s.repo.FindExpiring(ctx, companyUUID, window)
	if err != nil {
		s.logger.Error("get expiring documents failed", zap.Error(err))
		return nil, err
	}
	return mapToDocumentListResponse(docs), nil
}

func (s *service) removeBlob(ctx context.Context, path string) {
	if err := s.store.Remove(ctx, path); err != nil {
		s.logger.Warn("remove document blob failed", zap.String("path", path), zap.Error(err))
	}
}

func mapToDocumentResponse(d Document) DocumentResponse {
	resp := DocumentResponse{
		ID:              d.ID.String(),
		CompanyID:       d.CompanyID.String(),
		EmployeeID:      d.EmployeeID.String(),
		Name:            d.Name,
		Type:            d.Type,
		Status:          d.Status,
		FileName:        d.FileName,
		FileSize:        d.FileSize,
		MimeType:        d.MimeType,
		RejectionReason: d.RejectionReason,
		CreatedAt:       d.CreatedAt.Format(time.RFC3339),
	}
	if d.ExpirationDate != nil {
		resp.ExpirationDate = d.ExpirationDate.Format("2006-01-02")
	}
	if d.ReviewedBy != nil {
		resp.ReviewedBy = d.ReviewedBy.String()
	}
	if d.ReviewedAt != nil {
		resp.ReviewedAt = d.ReviewedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToDocumentListResponse(docs []Document) []DocumentResponse {
	res := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		res[i] = mapToDocumentResponse(d)
	}
	return res
}
