package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/core/services"
	"github.com/SscSPs/shop_management_app/internal/dto"
	"github.com/SscSPs/shop_management_app/internal/events"
	"github.com/SscSPs/shop_management_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockCustomerRepository
	publisher *recordingPublisher
	service   portssvc.CustomerSvcFacade
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCustomerRepository)
	suite.publisher = &recordingPublisher{}
	suite.service = services.NewCustomerService(suite.mockRepo, services.WithPublisher(suite.publisher))
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name:   "  Ravi Traders ",
		Phone:  "98450 00000",
		Legacy: &dto.LegacyAggregateRequest{Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(50), Paid: decimal.NewFromInt(40)},
	}

	suite.mockRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == "Ravi Traders" && c.IsActive && c.CreatedBy == "user-1" &&
			c.Legacy.Paid.OrZero().Equal(decimal.NewFromInt(40))
	})).Return(&domain.Customer{CustomerID: 11, Name: "Ravi Traders", IsActive: true,
		AuditFields: domain.AuditFields{CreatedAt: time.Now()}}, nil).Once()

	created, err := suite.service.CreateCustomer(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(int64(11), created.CustomerID)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)
	suite.Equal([]events.RecordChanged{{CustomerID: 11, Record: events.RecordCustomer, Op: events.OpCreated, RecordID: 11}}, suite.publisher.Events())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_SaveError() {
	ctx := context.Background()
	suite.mockRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).Return(nil, assert.AnError).Once()

	created, err := suite.service.CreateCustomer(ctx, dto.CreateCustomerRequest{Name: "X"}, "user-1")

	suite.Require().ErrorIs(err, assert.AnError)
	suite.Nil(created)
	suite.Empty(suite.publisher.Events())
}

func (suite *CustomerServiceTestSuite) TestListCustomers_FullPageReturnsNextToken() {
	ctx := context.Background()
	page := []domain.Customer{{CustomerID: 3, Name: "Asha"}, {CustomerID: 9, Name: "Babu"}}
	suite.mockRepo.On("ListCustomers", ctx, 2, (*portsrepo.PageCursor)(nil), false).Return(page, nil).Once()

	customers, next, err := suite.service.ListCustomers(ctx, dto.ListCustomersParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(customers, 2)
	suite.Require().NotNil(next)
	name, id, err := pagination.DecodeKeyToken(*next)
	suite.Require().NoError(err)
	suite.Equal("Babu", name)
	suite.Equal(int64(9), id)
}

func (suite *CustomerServiceTestSuite) TestListCustomers_UsesCursorFromToken() {
	ctx := context.Background()
	token := pagination.EncodeKeyToken("Babu", 9)
	suite.mockRepo.On("ListCustomers", ctx, 20, &portsrepo.PageCursor{Key: "Babu", ID: 9}, true).
		Return([]domain.Customer{{CustomerID: 12, Name: "Chitra"}}, nil).Once()

	customers, next, err := suite.service.ListCustomers(ctx, dto.ListCustomersParams{Limit: 20, NextToken: &token, IncludeInactive: true})

	suite.Require().NoError(err)
	suite.Len(customers, 1)
	suite.Nil(next, "a short page is the last page")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestListCustomers_BadToken() {
	bad := "%%%"
	_, _, err := suite.service.ListCustomers(context.Background(), dto.ListCustomersParams{Limit: 20, NextToken: &bad})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListCustomers", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_PartialUpdatePublishes() {
	ctx := context.Background()
	existing := &domain.Customer{CustomerID: 5, Name: "Old", Phone: "1", IsActive: true}
	newName := "New Name"
	suite.mockRepo.On("FindCustomerByID", ctx, int64(5)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == "New Name" && c.Phone == "1" && c.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCustomer(ctx, 5, dto.UpdateCustomerRequest{Name: &newName}, "user-2")

	suite.Require().NoError(err)
	suite.Equal("New Name", updated.Name)
	suite.Require().Len(suite.publisher.Events(), 1)
	suite.Equal(events.OpUpdated, suite.publisher.Events()[0].Op)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindCustomerByID", ctx, int64(404)).Return(nil, apperrors.NewNotFoundError("customer")).Once()

	_, err := suite.service.UpdateCustomer(ctx, 404, dto.UpdateCustomerRequest{}, "user-2")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Empty(suite.publisher.Events())
}

func (suite *CustomerServiceTestSuite) TestDeactivateCustomer() {
	ctx := context.Background()
	suite.mockRepo.On("DeactivateCustomer", ctx, int64(5), "user-3", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateCustomer(ctx, 5, "user-3")

	suite.Require().NoError(err)
	suite.Equal([]events.RecordChanged{{CustomerID: 5, Record: events.RecordCustomer, Op: events.OpDeleted, RecordID: 5}}, suite.publisher.Events())
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
