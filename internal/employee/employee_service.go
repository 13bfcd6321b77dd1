package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "go-orgsuite/internal/employee/errors"
	"go-orgsuite/internal/shared/contextutil"
	"go-orgsuite/internal/tenant"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKeyPrefix = "employees:options:"

func GetEmployeeOptionsKey(orgID string) string {
	return EmployeeOptionsKeyPrefix + orgID
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, sc tenant.Scope, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, sc tenant.Scope) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, sc tenant.Scope) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, sc tenant.Scope, id string) (EmployeeResponse, error)
	Update(ctx context.Context, sc tenant.Scope, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, sc tenant.Scope, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, sc tenant.Scope, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	orgID, err := sc.RequireOrg()
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("org_id", orgID),
		zap.String("position_id", req.PositionID),
		zap.String("email", req.Email),
	)

	deptID, found, err := s.repo.PositionDepartmentID(ctx, sc, req.PositionID)
	if err != nil {
		s.logger.Error("create employee position lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if !found {
		return EmployeeResponse{}, employeeerrors.ErrPositionNotInOrg
	}

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoinDate
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	empl := &Employee{
		ID:           uuid.New(),
		OrgID:        uuid.MustParse(orgID),
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PositionID:   uuidPtr(req.PositionID),
		DepartmentID: uuidPtr(deptID),
		JoinDate:     joinDate,
		Status:       status,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, orgID)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, sc tenant.Scope) ([]EmployeeResponse, error) {
	if !sc.GlobalView {
		if _, err := sc.RequireOrg(); err != nil {
			return nil, err
		}
	}

	employees, err := s.repo.FindAll(ctx, sc)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(employees), nil
}

func (s *service) GetOptions(ctx context.Context, sc tenant.Scope) ([]EmployeeResponse, error) {
	orgID, err := sc.RequireOrg()
	if err != nil {
		return nil, err
	}
	cacheKey := GetEmployeeOptionsKey(orgID)

	// 1. Cek Redis dulu
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight supaya burst traffic saat form dibuka cuma kena DB sekali
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		employees, err := s.repo.FindOptions(ctx, sc)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(employees)

		// 3. Simpan ke Redis, TTL 1 jam cukup untuk data master
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, sc tenant.Scope, id string) (EmployeeResponse, error) {
	if !sc.GlobalView {
		if _, err := sc.RequireOrg(); err != nil {
			return EmployeeResponse{}, err
		}
	}

	empl, err := s.repo.FindByID(ctx, sc, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, sc tenant.Scope, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	orgID, err := sc.RequireOrg()
	if err != nil {
		return EmployeeResponse{}, err
	}

	deptID, found, err := s.repo.PositionDepartmentID(ctx, sc, req.PositionID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if !found {
		return EmployeeResponse{}, employeeerrors.ErrPositionNotInOrg
	}

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoinDate
	}

	empl, err := s.repo.FindByID(ctx, sc, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FullName = req.FullName
	empl.Email = req.Email
	empl.Phone = req.Phone
	empl.PositionID = uuidPtr(req.PositionID)
	empl.DepartmentID = uuidPtr(deptID)
	empl.JoinDate = joinDate
	if req.Status != "" {
		empl.Status = req.Status
	}

	if err := s.repo.Update(ctx, sc, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, orgID)

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, sc tenant.Scope, id string) error {
	orgID, err := sc.RequireOrg()
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, sc, id); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx, orgID)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context, orgID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetEmployeeOptionsKey(orgID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           empl.ID.String(),
		OrgID:        empl.OrgID.String(),
		FullName:     empl.FullName,
		Email:        empl.Email,
		Phone:        empl.Phone,
		Status:       empl.Status,
		DepartmentID: uuidToString(empl.DepartmentID),
		PositionID:   uuidToString(empl.PositionID),
	}
	if !empl.JoinDate.IsZero() {
		resp.JoinDate = empl.JoinDate.Format("2006-01-02")
	}
	if empl.Department != nil {
		resp.Department = &EmployeeDepartmentResponse{
			ID:   empl.Department.ID.String(),
			Name: empl.Department.Name,
		}
	}
	if empl.Position != nil {
		resp.Position = &EmployeePositionResponse{
			ID:   empl.Position.ID.String(),
			Name: empl.Position.Name,
		}
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
