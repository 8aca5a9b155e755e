package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/SscSPs/acme_marketplace/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (string, time.Time, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockAuthService) ListInventors(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockAuthService) EnsureAdministrator(ctx context.Context, username, password string) error {
	return m.Called(ctx, username, password).Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock SystemConfigurationService ---
type MockSystemConfigurationService struct {
	mock.Mock
}

func (m *MockSystemConfigurationService) GetSystemConfiguration(ctx context.Context) (*domain.SystemConfiguration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemConfiguration), args.Error(1)
}
func (m *MockSystemConfigurationService) UpdateSystemConfiguration(ctx context.Context, principal domain.Principal, req dto.UpdateSystemConfigurationRequest) (*domain.SystemConfiguration, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemConfiguration), args.Error(1)
}

var _ portssvc.SystemConfigurationSvcFacade = (*MockSystemConfigurationService)(nil)

// --- Mock MoneyExchangeService ---
type MockMoneyExchangeService struct {
	mock.Mock
}

func (m *MockMoneyExchangeService) Exchange(ctx context.Context, amount domain.Money, targetCurrency string) (*domain.Conversion, error) {
	args := m.Called(ctx, amount, targetCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}
func (m *MockMoneyExchangeService) ToBaseCurrency(ctx context.Context, amount domain.Money, cfg domain.SystemConfiguration) (*domain.Conversion, error) {
	args := m.Called(ctx, amount, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

var _ portssvc.MoneyExchangeSvc = (*MockMoneyExchangeService)(nil)

// --- Mock ItemService ---
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) ListMyItems(ctx context.Context, principal domain.Principal) ([]domain.Item, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemService) GetMyItem(ctx context.Context, principal domain.Principal, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, principal, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemService) ListPublishedItems(ctx context.Context, itemType domain.ItemType) ([]domain.Item, error) {
	args := m.Called(ctx, itemType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemService) CreateItem(ctx context.Context, principal domain.Principal, req dto.CreateItemRequest) (*domain.Item, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemService) PublishItem(ctx context.Context, principal domain.Principal, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, principal, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemService) DeleteItem(ctx context.Context, principal domain.Principal, itemID string) error {
	return m.Called(ctx, principal, itemID).Error(0)
}

var _ portssvc.ItemSvcFacade = (*MockItemService)(nil)

// --- Mock ChimpumService ---
type MockChimpumService struct {
	mock.Mock
}

func (m *MockChimpumService) CreateChimpum(ctx context.Context, principal domain.Principal, itemID string, req dto.CreateChimpumRequest) (*domain.Chimpum, error) {
	args := m.Called(ctx, principal, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chimpum), args.Error(1)
}
func (m *MockChimpumService) ListMyChimpums(ctx context.Context, principal domain.Principal) ([]domain.Chimpum, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chimpum), args.Error(1)
}
func (m *MockChimpumService) GetMyChimpum(ctx context.Context, principal domain.Principal, chimpumID string) (*domain.Chimpum, error) {
	args := m.Called(ctx, principal, chimpumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chimpum), args.Error(1)
}
func (m *MockChimpumService) DeleteChimpum(ctx context.Context, principal domain.Principal, chimpumID string) error {
	return m.Called(ctx, principal, chimpumID).Error(0)
}

var _ portssvc.ChimpumSvcFacade = (*MockChimpumService)(nil)

// --- Mock PatronageService ---
type MockPatronageService struct {
	mock.Mock
}

func (m *MockPatronageService) CreatePatronage(ctx context.Context, principal domain.Principal, req dto.PatronageRequest) (*domain.Patronage, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Patronage), args.Error(1)
}
func (m *MockPatronageService) UpdatePatronage(ctx context.Context, principal domain.Principal, patronageID string, req dto.PatronageRequest) (*domain.Patronage, error) {
	args := m.Called(ctx, principal, patronageID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Patronage), args.Error(1)
}
func (m *MockPatronageService) PublishPatronage(ctx context.Context, principal domain.Principal, patronageID string) (*domain.Patronage, error) {
	args := m.Called(ctx, principal, patronageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Patronage), args.Error(1)
}
func (m *MockPatronageService) ListMyPatronages(ctx context.Context, principal domain.Principal) ([]domain.Patronage, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Patronage), args.Error(1)
}
func (m *MockPatronageService) ListReceivedPatronages(ctx context.Context, principal domain.Principal) ([]domain.Patronage, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Patronage), args.Error(1)
}
func (m *MockPatronageService) DecidePatronage(ctx context.Context, principal domain.Principal, patronageID string, status domain.PatronageStatus) (*domain.Patronage, error) {
	args := m.Called(ctx, principal, patronageID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Patronage), args.Error(1)
}

var _ portssvc.PatronageSvcFacade = (*MockPatronageService)(nil)
