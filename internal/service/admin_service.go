package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"admissions-chat-be/internal/config"
	"admissions-chat-be/internal/dto"
	"admissions-chat-be/internal/repository/specification"
	"admissions-chat-be/internal/repository/unitofwork"
)

const defaultListLimit = 100

type IAdminService interface {
	Login(ctx context.Context, request *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
	ListLeads(ctx context.Context) (*dto.LeadListResponse, error)
	ListEvents(ctx context.Context, eventFilter string) (*dto.EventLogListResponse, error)
}

type adminService struct {
	cfg        config.AdminConfig
	uowFactory unitofwork.RepositoryFactory
}

func NewAdminService(cfg config.AdminConfig, uowFactory unitofwork.RepositoryFactory) IAdminService {
	return &adminService{
		cfg:        cfg,
		uowFactory: uowFactory,
	}
}

func (s *adminService) Login(_ context.Context, request *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	usernameOk := subtle.ConstantTimeCompare([]byte(request.Username), []byte(s.cfg.Username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(request.Password))

	if !usernameOk || passwordErr != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	expiresAt := time.Now().Add(s.cfg.TokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": request.Username,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	})

	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.AdminLoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *adminService) ListLeads(ctx context.Context) (*dto.LeadListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.LeadRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	leads, err := uow.LeadRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: defaultListLimit},
	)
	if err != nil {
		return nil, err
	}

	response := &dto.LeadListResponse{
		Total: total,
		Leads: make([]dto.LeadResponse, 0, len(leads)),
	}
	for _, lead := range leads {
		response.Leads = append(response.Leads, dto.LeadResponse{
			Id:        lead.Id.String(),
			Name:      lead.Name,
			Phone:     lead.Phone,
			UserType:  lead.UserType,
			SessionId: lead.SessionId,
			CreatedAt: lead.CreatedAt,
		})
	}

	return response, nil
}

func (s *adminService) ListEvents(ctx context.Context, eventFilter string) (*dto.EventLogListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: defaultListLimit},
	}
	countSpecs := []specification.Specification{}
	if eventFilter != "" {
		specs = append(specs, specification.ByEvent{Event: eventFilter})
		countSpecs = append(countSpecs, specification.ByEvent{Event: eventFilter})
	}

	total, err := uow.EventLogRepository().Count(ctx, countSpecs...)
	if err != nil {
		return nil, err
	}

	logs, err := uow.EventLogRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	response := &dto.EventLogListResponse{
		Total:  total,
		Events: make([]dto.EventLogResponse, 0, len(logs)),
	}
	for _, entry := range logs {
		response.Events = append(response.Events, dto.EventLogResponse{
			Id:        entry.Id.String(),
			Event:     entry.Event,
			Details:   entry.Details,
			CreatedAt: entry.CreatedAt,
		})
	}

	return response, nil
}
