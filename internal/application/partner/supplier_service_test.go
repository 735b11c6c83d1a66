package partner

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/inventaris/backend/internal/domain/identity"
	"github.com/inventaris/backend/internal/domain/partner"
	"github.com/inventaris/backend/internal/domain/shared"
)

// MockSupplierRepository is a mock implementation of partner.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockSupplierRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func staffActor() identity.Actor {
	return identity.Actor{ID: uuid.New().String(), Username: "gudang01", Role: identity.RoleUser}
}

func TestSupplierService_Create(t *testing.T) {
	repo := new(MockSupplierRepository)
	service := NewSupplierService(repo)

	repo.On("ExistsByName", mock.Anything, "PT Sumber Makmur").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*partner.Supplier")).Return(nil)

	resp, err := service.Create(context.Background(), staffActor(), CreateSupplierRequest{
		Name:    "  PT Sumber Makmur  ",
		Address: "Jl. Raya 1",
		Contact: "081234567890",
	})

	require.NoError(t, err)
	assert.Equal(t, "PT Sumber Makmur", resp.Name)
	repo.AssertExpectations(t)
}

func TestSupplierService_Create_MissingFields(t *testing.T) {
	repo := new(MockSupplierRepository)
	service := NewSupplierService(repo)

	_, err := service.Create(context.Background(), staffActor(), CreateSupplierRequest{
		Name: "PT Sumber Makmur",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSupplierService_Create_Duplicate(t *testing.T) {
	repo := new(MockSupplierRepository)
	service := NewSupplierService(repo)

	repo.On("ExistsByName", mock.Anything, "PT Sumber Makmur").Return(true, nil)

	_, err := service.Create(context.Background(), staffActor(), CreateSupplierRequest{
		Name:    "PT Sumber Makmur",
		Address: "Jl. Raya 1",
		Contact: "081234567890",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}

func TestSupplierService_Create_GuestForbidden(t *testing.T) {
	repo := new(MockSupplierRepository)
	service := NewSupplierService(repo)

	guest := identity.Actor{ID: uuid.New().String(), Role: identity.RoleGuest}
	_, err := service.Create(context.Background(), guest, CreateSupplierRequest{
		Name:    "PT Sumber Makmur",
		Address: "Jl. Raya 1",
		Contact: "081234567890",
	})

	assert.Equal(t, shared.ErrForbidden, err)
}

func TestSupplierService_List(t *testing.T) {
	repo := new(MockSupplierRepository)
	service := NewSupplierService(repo)

	supplier, err := partner.NewSupplier("PT Sumber Makmur", "Jl. Raya 1", "081234567890")
	require.NoError(t, err)

	repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Limit == 9 && f.OrderDir == "desc"
	})).Return([]partner.Supplier{*supplier}, nil)
	repo.On("Count", mock.Anything).Return(int64(4), nil)
	repo.On("CountCreatedSince", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(1), nil)

	resp, err := service.List(context.Background(), ListSuppliersRequest{})

	require.NoError(t, err)
	assert.Len(t, resp.Suppliers, 1)
	assert.Equal(t, int64(4), resp.TotalSuppliers)
	assert.Equal(t, int64(1), resp.LastMonthSuppliers)
}

func TestSupplierService_Update_NotFound(t *testing.T) {
	repo := new(MockSupplierRepository)
	service := NewSupplierService(repo)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, err := service.Update(context.Background(), staffActor(), id.String(), UpdateSupplierRequest{
		Name:    "PT Baru",
		Address: "Jl. Baru 2",
		Contact: "0800",
	})

	assert.Equal(t, shared.ErrNotFound, err)
}

func TestSupplierService_Update(t *testing.T) {
	repo := new(MockSupplierRepository)
	service := NewSupplierService(repo)

	supplier, err := partner.NewSupplier("PT Sumber Makmur", "Jl. Raya 1", "081234567890")
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
	repo.On("ExistsByName", mock.Anything, "PT Baru").Return(false, nil)
	repo.On("Save", mock.Anything, supplier).Return(nil)

	resp, err := service.Update(context.Background(), staffActor(), supplier.ID.String(), UpdateSupplierRequest{
		Name:    "PT Baru",
		Address: "Jl. Baru 2",
		Contact: "0800",
	})

	require.NoError(t, err)
	assert.Equal(t, "PT Baru", resp.Name)
	assert.Equal(t, "Jl. Baru 2", resp.Address)
}

func TestSupplierService_Delete(t *testing.T) {
	repo := new(MockSupplierRepository)
	service := NewSupplierService(repo)

	supplier, err := partner.NewSupplier("PT Sumber Makmur", "Jl. Raya 1", "081234567890")
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
	repo.On("Delete", mock.Anything, supplier.ID).Return(nil)

	require.NoError(t, service.Delete(context.Background(), staffActor(), supplier.ID.String()))
	repo.AssertExpectations(t)
}
