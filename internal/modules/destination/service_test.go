package destination

import (
	"context"
	"errors"
	"testing"

	"travelhub/internal/domain"
	pkgvalidator "travelhub/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockDestinationRepository struct {
	mock.Mock
}

func (m *MockDestinationRepository) ListActive(ctx context.Context) ([]domain.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Destination), args.Error(1)
}

func (m *MockDestinationRepository) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}

func (m *MockDestinationRepository) Popular(ctx context.Context, limit int) ([]domain.Destination, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Destination), args.Error(1)
}

func (m *MockDestinationRepository) Create(ctx context.Context, d *domain.Destination) error {
	args := m.Called(ctx, d)
	if d != nil {
		d.ID = 999
	}
	return args.Error(0)
}

func (m *MockDestinationRepository) Update(ctx context.Context, d *domain.Destination) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDestinationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_List_FiltersSortsAndPaginates(t *testing.T) {
	repo := new(MockDestinationRepository)
	repo.On("ListActive", mock.Anything).Return(testDestinations(), nil)

	svc := NewService(repo, nil)

	items, total, err := svc.List(context.Background(), ListQuery{
		Category: "mountain",
		Sort:     SortRating,
		Page:     1,
		Limit:    1,
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, items, 1)
	assert.Equal(t, "Banff", items[0].Name) // 4.7 beats Chamonix's 4.6
	repo.AssertExpectations(t)
}

func TestService_List_CountryNarrowsBeforeFiltering(t *testing.T) {
	repo := new(MockDestinationRepository)
	repo.On("ListActive", mock.Anything).Return(testDestinations(), nil)

	svc := NewService(repo, nil)

	items, total, err := svc.List(context.Background(), ListQuery{Country: "japan"})

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Kyoto", items[0].Name)
}

func TestService_List_PageBeyondEndIsEmpty(t *testing.T) {
	repo := new(MockDestinationRepository)
	repo.On("ListActive", mock.Anything).Return(testDestinations(), nil)

	svc := NewService(repo, nil)

	items, total, err := svc.List(context.Background(), ListQuery{Page: 10, Limit: 20})

	assert.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Empty(t, items)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := new(MockDestinationRepository)
	repo.On("GetByID", mock.Anything, int64(42)).Return(nil, assert.AnError)

	svc := NewService(repo, nil)

	_, err := svc.Get(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ByCategory_RejectsUnknownCategory(t *testing.T) {
	repo := new(MockDestinationRepository)
	svc := NewService(repo, nil)

	_, _, err := svc.ByCategory(context.Background(), "volcano", ListQuery{})

	assert.ErrorIs(t, err, ErrInvalidCategory)
	repo.AssertNotCalled(t, "ListActive")
}

func TestService_Popular_NilCacheFallsThrough(t *testing.T) {
	repo := new(MockDestinationRepository)
	repo.On("Popular", mock.Anything, 10).Return(testDestinations()[:2], nil)

	svc := NewService(repo, nil)

	items, err := svc.Popular(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	repo.AssertExpectations(t)
}

func TestService_Create_ValidatesCategory(t *testing.T) {
	repo := new(MockDestinationRepository)
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), CreateDestinationRequest{
		Name:     "Atlantis",
		Country:  "Nowhere",
		Category: "underwater",
	})

	assert.ErrorIs(t, err, ErrInvalidCategory)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Create_ValidatesRequiredFields(t *testing.T) {
	repo := new(MockDestinationRepository)
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), CreateDestinationRequest{
		Name:     "Atlantis",
		Category: "city",
	})

	var vErr *pkgvalidator.Error
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, "required", vErr.Fields["Country"])
	repo.AssertNotCalled(t, "Create")
}

func TestService_Update_RejectsClearedName(t *testing.T) {
	existing := testDestinations()[0]

	repo := new(MockDestinationRepository)
	repo.On("GetByID", mock.Anything, existing.ID).Return(&existing, nil)

	svc := NewService(repo, nil)

	empty := ""
	_, err := svc.Update(context.Background(), existing.ID, UpdateDestinationRequest{
		Name: &empty,
	})

	var vErr *pkgvalidator.Error
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, "required", vErr.Fields["Name"])
	repo.AssertNotCalled(t, "Update")
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockDestinationRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Destination")).Return(nil)

	svc := NewService(repo, nil)

	d, err := svc.Create(context.Background(), CreateDestinationRequest{
		Name:     "Lisbon",
		Country:  "Portugal",
		Category: "city",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(999), d.ID)
	assert.True(t, d.IsActive)
	assert.Equal(t, domain.CategoryCity, d.Category)
}

func TestService_Update_PartialFields(t *testing.T) {
	existing := testDestinations()[0]

	repo := new(MockDestinationRepository)
	repo.On("GetByID", mock.Anything, existing.ID).Return(&existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Destination")).Return(nil)

	svc := NewService(repo, nil)

	newName := "Santorini Island"
	d, err := svc.Update(context.Background(), existing.ID, UpdateDestinationRequest{Name: &newName})

	assert.NoError(t, err)
	assert.Equal(t, "Santorini Island", d.Name)
	assert.Equal(t, "Greece", d.Country) // untouched
}
