package biz

import (
	"context"
	"fmt"
	"testing"

	"usecase-sync/internal/biz/model"
	"usecase-sync/internal/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// FetchContactsUseCaseTestSuite 是 FetchContactsUseCase 的测试套件
type FetchContactsUseCaseTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	endpoint *mocks.MockContactsEndpoint
	first    *MockContactsListener
	second   *MockContactsListener
	useCase  *FetchContactsUseCase
	ctx      context.Context
}

func (suite *FetchContactsUseCaseTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.endpoint = mocks.NewMockContactsEndpoint(suite.ctrl)
	suite.first = new(MockContactsListener)
	suite.second = new(MockContactsListener)
	suite.ctx = context.Background()

	useCase, err := NewFetchContactsUseCase(suite.endpoint, zap.NewNop())
	suite.Require().NoError(err)
	suite.useCase = useCase
}

func schemas() []model.ContactSchema {
	return []model.ContactSchema{
		{ID: "c1", FullName: "Ann Smith", FullPhoneNumber: "+100", ImageURL: "ann.png", Age: 30},
		{ID: "c2", FullName: "Bob Stone", FullPhoneNumber: "+200", ImageURL: "bob.png", Age: 41},
	}
}

func (suite *FetchContactsUseCaseTestSuite) TestSuccess_NotifiesAllListeners() {
	want := []model.Contact{
		{ID: "c1", FullName: "Ann Smith", ImageURL: "ann.png"},
		{ID: "c2", FullName: "Bob Stone", ImageURL: "bob.png"},
	}
	suite.endpoint.EXPECT().GetContacts(gomock.Any(), "filter").
		Return(model.EndpointResult[[]model.ContactSchema]{Status: model.EndpointSuccess, Payload: schemas()}, nil)
	suite.first.On("OnFetchContactsSuccess", want).Once()
	suite.second.On("OnFetchContactsSuccess", want).Once()

	suite.useCase.RegisterListener(suite.first)
	suite.useCase.RegisterListener(suite.second)
	result := suite.useCase.FetchContactsAndNotify(suite.ctx, "filter")

	suite.True(result.IsSuccess())
	suite.Equal(want, result.Contacts)
	suite.first.AssertExpectations(suite.T())
	suite.second.AssertExpectations(suite.T())
}

func (suite *FetchContactsUseCaseTestSuite) TestSuccess_EmptyList() {
	suite.endpoint.EXPECT().GetContacts(gomock.Any(), "").
		Return(model.EndpointResult[[]model.ContactSchema]{Status: model.EndpointSuccess}, nil)
	suite.first.On("OnFetchContactsSuccess", []model.Contact{}).Once()

	suite.useCase.RegisterListener(suite.first)
	result := suite.useCase.FetchContactsAndNotify(suite.ctx, "")

	suite.True(result.IsSuccess())
	suite.Empty(result.Contacts)
	suite.first.AssertExpectations(suite.T())
}

func (suite *FetchContactsUseCaseTestSuite) TestGeneralError_NotifiesFailure() {
	for _, status := range []model.EndpointStatus{model.EndpointGeneralError, model.EndpointAuthError, model.EndpointServerError} {
		suite.Run(string(status), func() {
			suite.SetupTest()
			suite.endpoint.EXPECT().GetContacts(gomock.Any(), "filter").
				Return(model.EndpointResult[[]model.ContactSchema]{Status: status}, nil)
			suite.first.On("OnFetchContactsFailure", model.FailReasonGeneralError).Once()

			suite.useCase.RegisterListener(suite.first)
			result := suite.useCase.FetchContactsAndNotify(suite.ctx, "filter")

			suite.Equal(model.FailReasonGeneralError, result.FailReason)
			suite.first.AssertExpectations(suite.T())
			suite.first.AssertNotCalled(suite.T(), "OnFetchContactsSuccess", mock.Anything)
		})
	}
}

func (suite *FetchContactsUseCaseTestSuite) TestNetworkError_NotifiesFailure() {
	suite.endpoint.EXPECT().GetContacts(gomock.Any(), "filter").
		Return(model.EndpointResult[[]model.ContactSchema]{}, fmt.Errorf("%w: refused", model.ErrNetwork))
	suite.first.On("OnFetchContactsFailure", model.FailReasonNetworkError).Once()

	suite.useCase.RegisterListener(suite.first)
	result := suite.useCase.FetchContactsAndNotify(suite.ctx, "filter")

	suite.Equal(model.FailReasonNetworkError, result.FailReason)
	suite.first.AssertExpectations(suite.T())
}

func (suite *FetchContactsUseCaseTestSuite) TestUnregisteredListener_NotNotified() {
	suite.endpoint.EXPECT().GetContacts(gomock.Any(), "filter").
		Return(model.EndpointResult[[]model.ContactSchema]{Status: model.EndpointSuccess, Payload: schemas()}, nil)
	suite.first.On("OnFetchContactsSuccess", mock.Anything).Once()

	suite.useCase.RegisterListener(suite.first)
	suite.useCase.RegisterListener(suite.second)
	suite.useCase.UnregisterListener(suite.second)
	suite.useCase.FetchContactsAndNotify(suite.ctx, "filter")

	suite.first.AssertExpectations(suite.T())
	suite.second.AssertNotCalled(suite.T(), "OnFetchContactsSuccess", mock.Anything)
	suite.second.AssertNotCalled(suite.T(), "OnFetchContactsFailure", mock.Anything)
}

func (suite *FetchContactsUseCaseTestSuite) TestDuplicateRegistration_NotifiedOnce() {
	suite.endpoint.EXPECT().GetContacts(gomock.Any(), "filter").
		Return(model.EndpointResult[[]model.ContactSchema]{Status: model.EndpointServerError}, nil)
	suite.first.On("OnFetchContactsFailure", model.FailReasonGeneralError).Once()

	suite.useCase.RegisterListener(suite.first)
	suite.useCase.RegisterListener(suite.first)
	suite.useCase.FetchContactsAndNotify(suite.ctx, "filter")

	suite.first.AssertNumberOfCalls(suite.T(), "OnFetchContactsFailure", 1)
}

func (suite *FetchContactsUseCaseTestSuite) TestNoListeners_StillReturnsResult() {
	suite.endpoint.EXPECT().GetContacts(gomock.Any(), "filter").
		Return(model.EndpointResult[[]model.ContactSchema]{Status: model.EndpointSuccess, Payload: schemas()}, nil)

	result := suite.useCase.FetchContactsAndNotify(suite.ctx, "filter")

	suite.Len(result.Contacts, 2)
}

func TestFetchContactsUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(FetchContactsUseCaseTestSuite))
}
