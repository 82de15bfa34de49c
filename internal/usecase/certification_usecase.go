package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type certificationUsecase struct {
	certRepo domain.CertificationRepository
}

// NewCertificationUsecase creates a new instance of CertificationUsecase.
func NewCertificationUsecase(certRepo domain.CertificationRepository) domain.CertificationUsecase {
	return &certificationUsecase{certRepo: certRepo}
}

func (u *certificationUsecase) List(ctx context.Context) ([]domain.Certification, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return []domain.Certification{}, nil
	}
	return u.certRepo.FetchByUser(ctx, callerID)
}

func (u *certificationUsecase) Get(ctx context.Context, id string) (*domain.Certification, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return nil, apperror.NotFound("Certification not found")
	}
	cert, err := u.certRepo.GetByOwner(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Certification not found")
		}
		return nil, err
	}
	return cert, nil
}

func (u *certificationUsecase) Create(ctx context.Context, cert *domain.Certification, skillIDs []string) (*domain.Certification, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Authentication required")
	}
	cert.ID = uuid.NewString()
	cert.UserID = callerID
	if err := u.certRepo.Create(ctx, cert, skillIDs); err != nil {
		return nil, err
	}
	return u.Get(ctx, cert.ID)
}

func (u *certificationUsecase) Update(ctx context.Context, id string, cert *domain.Certification, skillIDs []string) (*domain.Certification, error) {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return nil, apperror.NotFound("Certification not found")
	}
	cert.ID = id
	cert.UserID = callerID
	if err := u.certRepo.Update(ctx, cert, skillIDs); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Certification not found")
		}
		return nil, err
	}
	return u.Get(ctx, id)
}

func (u *certificationUsecase) Delete(ctx context.Context, id string) error {
	callerID, ok := domain.CallerID(ctx)
	if !ok {
		return apperror.NotFound("Certification not found")
	}
	if err := u.certRepo.Delete(ctx, id, callerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Certification not found")
		}
		return err
	}
	return nil
}
