package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/core/services"
	"github.com/SscSPs/shop_management_app/internal/dto"
	"github.com/SscSPs/shop_management_app/internal/events"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RecordServicesTestSuite struct {
	suite.Suite
	customers     *MockCustomerRepository
	orders        *MockOrderRepository
	payments      *MockPaymentRepository
	returns       *MockReturnedOrderRepository
	publisher     *recordingPublisher
	orderSvc      portssvc.OrderSvcFacade
	paymentSvc    portssvc.PaymentSvcFacade
	returnedSvc   portssvc.ReturnedOrderSvcFacade
	activeCust    *domain.Customer
	inactiveCust  *domain.Customer
	ctx           context.Context
	defaultUserID string
}

func (suite *RecordServicesTestSuite) SetupTest() {
	suite.customers = new(MockCustomerRepository)
	suite.orders = new(MockOrderRepository)
	suite.payments = new(MockPaymentRepository)
	suite.returns = new(MockReturnedOrderRepository)
	suite.publisher = &recordingPublisher{}

	pub := services.WithPublisher(suite.publisher)
	suite.orderSvc = services.NewOrderService(suite.orders, suite.customers, pub)
	suite.paymentSvc = services.NewPaymentService(suite.payments, suite.customers, pub)
	suite.returnedSvc = services.NewReturnedOrderService(suite.returns, suite.customers, pub)

	suite.activeCust = &domain.Customer{CustomerID: 7, Name: "Asha", IsActive: true}
	suite.inactiveCust = &domain.Customer{CustomerID: 8, Name: "Gone", IsActive: false}
	suite.ctx = context.Background()
	suite.defaultUserID = "user-1"
}

func (suite *RecordServicesTestSuite) TestCreateOrder_Success() {
	req := dto.CreateOrderRequest{
		Date:        "2024-03-01",
		Description: " rice ",
		Quantity:    decimal.NewFromInt(10),
		Unit:        "kg",
		Price:       decimal.NewFromInt(45),
		Paid:        decimal.NewFromInt(100),
	}
	suite.customers.On("FindCustomerByID", suite.ctx, int64(7)).Return(suite.activeCust, nil).Once()
	suite.orders.On("SaveOrder", suite.ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.CustomerID == 7 && o.Description == "rice" && o.Value().Equal(decimal.NewFromInt(450)) &&
			o.CreatedBy == suite.defaultUserID
	})).Return(&domain.Order{ID: 31, CustomerID: 7, Date: "2024-03-01"}, nil).Once()

	order, err := suite.orderSvc.CreateOrder(suite.ctx, 7, req, suite.defaultUserID)

	suite.Require().NoError(err)
	suite.Equal(int64(31), order.ID)
	suite.Equal([]events.RecordChanged{{CustomerID: 7, Record: events.RecordOrder, Op: events.OpCreated, RecordID: 31}}, suite.publisher.Events())
	suite.orders.AssertExpectations(suite.T())
}

func (suite *RecordServicesTestSuite) TestCreateOrder_InactiveCustomer() {
	suite.customers.On("FindCustomerByID", suite.ctx, int64(8)).Return(suite.inactiveCust, nil).Once()

	_, err := suite.orderSvc.CreateOrder(suite.ctx, 8, dto.CreateOrderRequest{Date: "2024-03-01"}, suite.defaultUserID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.orders.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
	suite.Empty(suite.publisher.Events())
}

func (suite *RecordServicesTestSuite) TestCreateOrder_UnknownCustomer() {
	suite.customers.On("FindCustomerByID", suite.ctx, int64(99)).Return(nil, apperrors.NewNotFoundError("customer")).Once()

	_, err := suite.orderSvc.CreateOrder(suite.ctx, 99, dto.CreateOrderRequest{Date: "2024-03-01"}, suite.defaultUserID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.orders.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *RecordServicesTestSuite) TestUpdateOrder_AppliesOnlyProvidedFields() {
	existing := &domain.Order{
		ID: 31, CustomerID: 7, Date: "2024-03-01", Description: "rice",
		Quantity: domain.NumericFromInt(10), Price: domain.NumericFromInt(45), Paid: domain.NumericFromInt(100),
	}
	newPrice := decimal.NewFromInt(50)
	suite.orders.On("FindOrderByID", suite.ctx, int64(31)).Return(existing, nil).Once()
	suite.orders.On("UpdateOrder", suite.ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Price.OrZero().Equal(newPrice) && o.Quantity.OrZero().Equal(decimal.NewFromInt(10)) &&
			o.Description == "rice" && o.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	updated, err := suite.orderSvc.UpdateOrder(suite.ctx, 31, dto.UpdateOrderRequest{Price: &newPrice}, "user-2")

	suite.Require().NoError(err)
	suite.True(updated.Value().Equal(decimal.NewFromInt(500)))
	suite.Equal([]events.RecordChanged{{CustomerID: 7, Record: events.RecordOrder, Op: events.OpUpdated, RecordID: 31}}, suite.publisher.Events())
}

func (suite *RecordServicesTestSuite) TestDeleteOrder() {
	suite.orders.On("FindOrderByID", suite.ctx, int64(31)).Return(&domain.Order{ID: 31, CustomerID: 7}, nil).Once()
	suite.orders.On("DeleteOrder", suite.ctx, int64(31)).Return(nil).Once()

	err := suite.orderSvc.DeleteOrder(suite.ctx, 31, suite.defaultUserID)

	suite.Require().NoError(err)
	suite.Equal([]events.RecordChanged{{CustomerID: 7, Record: events.RecordOrder, Op: events.OpDeleted, RecordID: 31}}, suite.publisher.Events())
}

func (suite *RecordServicesTestSuite) TestDeleteOrder_RepoError() {
	suite.orders.On("FindOrderByID", suite.ctx, int64(31)).Return(&domain.Order{ID: 31, CustomerID: 7}, nil).Once()
	suite.orders.On("DeleteOrder", suite.ctx, int64(31)).Return(assert.AnError).Once()

	err := suite.orderSvc.DeleteOrder(suite.ctx, 31, suite.defaultUserID)

	suite.ErrorIs(err, assert.AnError)
	suite.Empty(suite.publisher.Events())
}

func (suite *RecordServicesTestSuite) TestListOrders_UnknownCustomer() {
	suite.customers.On("FindCustomerByID", suite.ctx, int64(99)).Return(nil, apperrors.NewNotFoundError("customer")).Once()

	_, err := suite.orderSvc.ListOrdersByCustomer(suite.ctx, 99)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.orders.AssertNotCalled(suite.T(), "ListOrdersByCustomer", mock.Anything, mock.Anything)
}

func (suite *RecordServicesTestSuite) TestListOrders_InactiveCustomerStillListed() {
	suite.customers.On("FindCustomerByID", suite.ctx, int64(8)).Return(suite.inactiveCust, nil).Once()
	suite.orders.On("ListOrdersByCustomer", suite.ctx, int64(8)).Return([]domain.Order{{ID: 1, CustomerID: 8}}, nil).Once()

	orders, err := suite.orderSvc.ListOrdersByCustomer(suite.ctx, 8)

	suite.Require().NoError(err)
	suite.Len(orders, 1)
}

func (suite *RecordServicesTestSuite) TestCreatePayment_Success() {
	suite.customers.On("FindCustomerByID", suite.ctx, int64(7)).Return(suite.activeCust, nil).Once()
	suite.payments.On("SavePayment", suite.ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.CustomerID == 7 && p.Amount.OrZero().Equal(decimal.NewFromInt(250))
	})).Return(&domain.Payment{ID: 4, CustomerID: 7}, nil).Once()

	payment, err := suite.paymentSvc.CreatePayment(suite.ctx, 7, dto.CreatePaymentRequest{Date: "2024-03-02", Amount: decimal.NewFromInt(250)}, suite.defaultUserID)

	suite.Require().NoError(err)
	suite.Equal(int64(4), payment.ID)
	suite.Equal([]events.RecordChanged{{CustomerID: 7, Record: events.RecordPayment, Op: events.OpCreated, RecordID: 4}}, suite.publisher.Events())
}

func (suite *RecordServicesTestSuite) TestCreatePayment_InactiveCustomer() {
	suite.customers.On("FindCustomerByID", suite.ctx, int64(8)).Return(suite.inactiveCust, nil).Once()

	_, err := suite.paymentSvc.CreatePayment(suite.ctx, 8, dto.CreatePaymentRequest{Date: "2024-03-02"}, suite.defaultUserID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.payments.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *RecordServicesTestSuite) TestUpdatePayment_NotFound() {
	suite.payments.On("FindPaymentByID", suite.ctx, int64(404)).Return(nil, apperrors.NewNotFoundError("payment")).Once()

	amount := decimal.NewFromInt(1)
	_, err := suite.paymentSvc.UpdatePayment(suite.ctx, 404, dto.UpdatePaymentRequest{Amount: &amount}, suite.defaultUserID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Empty(suite.publisher.Events())
}

func (suite *RecordServicesTestSuite) TestCreateReturnedOrder_Success() {
	suite.customers.On("FindCustomerByID", suite.ctx, int64(7)).Return(suite.activeCust, nil).Once()
	suite.returns.On("SaveReturnedOrder", suite.ctx, mock.MatchedBy(func(r domain.ReturnedOrder) bool {
		return r.CustomerID == 7 && r.ReturnValue().Equal(decimal.NewFromInt(90))
	})).Return(&domain.ReturnedOrder{ID: 2, CustomerID: 7}, nil).Once()

	req := dto.CreateReturnedOrderRequest{Date: "2024-03-03", Quantity: decimal.NewFromInt(2), Unit: "kg", Price: decimal.NewFromInt(45)}
	returned, err := suite.returnedSvc.CreateReturnedOrder(suite.ctx, 7, req, suite.defaultUserID)

	suite.Require().NoError(err)
	suite.Equal(int64(2), returned.ID)
	suite.Equal([]events.RecordChanged{{CustomerID: 7, Record: events.RecordReturnedOrder, Op: events.OpCreated, RecordID: 2}}, suite.publisher.Events())
}

func (suite *RecordServicesTestSuite) TestDeleteReturnedOrder_PublishesOwnerCustomer() {
	suite.returns.On("FindReturnedOrderByID", suite.ctx, int64(2)).Return(&domain.ReturnedOrder{ID: 2, CustomerID: 8}, nil).Once()
	suite.returns.On("DeleteReturnedOrder", suite.ctx, int64(2)).Return(nil).Once()

	err := suite.returnedSvc.DeleteReturnedOrder(suite.ctx, 2, suite.defaultUserID)

	suite.Require().NoError(err)
	suite.Require().Len(suite.publisher.Events(), 1)
	suite.Equal(int64(8), suite.publisher.Events()[0].CustomerID)
}

func TestRecordServicesTestSuite(t *testing.T) {
	suite.Run(t, new(RecordServicesTestSuite))
}
