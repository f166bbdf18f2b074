package company

import (
	"context"

	"go.uber.org/zap"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	GetMine(ctx context.Context, companyID string) (CompanyResponse, error)
	Update(ctx context.Context, companyID string, req UpdateCompanyRequest) (CompanyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetMine(ctx context.Context, companyID string) (CompanyResponse, error) {
	c, err := s.repo.FindByID(ctx, companyID)
	if err != nil {
		return CompanyResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, companyID string, req UpdateCompanyRequest) (CompanyResponse, error) {
	c, err := s.repo.FindByID(ctx, companyID)
	if err != nil {
		return CompanyResponse{}, err
	}

	c.Name = req.Name
	if req.CNPJ != "" {
		c.CNPJ = req.CNPJ
	}

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("update company failed", zap.String("company_id", companyID), zap.Error(err))
		return CompanyResponse{}, err
	}

	s.logger.Info("update company success", zap.String("company_id", companyID))
	return mapToResponse(*c), nil
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:   c.ID.String(),
		Name: c.Name,
		CNPJ: c.CNPJ,
	}
}
