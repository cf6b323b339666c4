package biz

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"usecase-sync/internal/biz/model"
	"usecase-sync/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	testUserID = "user_id"
	testName   = "username"
)

// fetchUserEndpointSpy 记录调用次数并返回预设结果
type fetchUserEndpointSpy struct {
	result model.EndpointResult[model.UserPayload]
	err    error
	calls  int
	lastID string
}

func (s *fetchUserEndpointSpy) FetchUserSync(_ context.Context, userID string) (model.EndpointResult[model.UserPayload], error) {
	s.calls++
	s.lastID = userID
	return s.result, s.err
}

// FetchUserUseCaseTestSuite 是 FetchUserUseCase 的测试套件
type FetchUserUseCaseTestSuite struct {
	suite.Suite
	endpoint *fetchUserEndpointSpy
	cache    *MockUsersCache
	poster   *MockEventPoster
	useCase  model.FetchUserUseCase
	ctx      context.Context
}

func (suite *FetchUserUseCaseTestSuite) SetupTest() {
	suite.endpoint = &fetchUserEndpointSpy{}
	suite.cache = new(MockUsersCache)
	suite.poster = new(MockEventPoster)
	suite.ctx = context.Background()

	useCase, err := NewFetchUserUseCase(suite.endpoint, suite.cache, suite.poster, zap.NewNop())
	suite.Require().NoError(err)
	suite.useCase = useCase
}

func (suite *FetchUserUseCaseTestSuite) TestCacheMiss_FetchesAndCaches() {
	suite.cache.On("GetUser", mock.Anything, testUserID).Return(nil, nil)
	suite.cache.On("CacheUser", mock.Anything, model.User{UserID: testUserID, Username: testName}).Return(nil).Once()
	suite.poster.On("PostEvent", mock.Anything, model.UserFetchedEvent{}).Return(nil).Once()
	suite.endpoint.result = model.EndpointResult[model.UserPayload]{
		Status:  model.EndpointSuccess,
		Payload: model.UserPayload{UserID: testUserID, Username: testName},
	}

	result := suite.useCase.FetchUserSync(suite.ctx, testUserID)

	suite.Equal(model.StatusSuccess, result.Status)
	suite.Equal(model.User{UserID: testUserID, Username: testName}, result.Entity)
	suite.Equal(1, suite.endpoint.calls)
	suite.Equal(testUserID, suite.endpoint.lastID)
	suite.cache.AssertExpectations(suite.T())
	suite.poster.AssertExpectations(suite.T())
}

func (suite *FetchUserUseCaseTestSuite) TestCacheHit_SkipsEndpoint() {
	cached := &model.User{UserID: testUserID, Username: testName}
	suite.cache.On("GetUser", mock.Anything, testUserID).Return(cached, nil)

	result := suite.useCase.FetchUserSync(suite.ctx, testUserID)

	suite.Equal(model.StatusSuccess, result.Status)
	suite.Equal(*cached, result.Entity)
	suite.Zero(suite.endpoint.calls)
	suite.cache.AssertNotCalled(suite.T(), "CacheUser", mock.Anything, mock.Anything)
	suite.poster.AssertNotCalled(suite.T(), "PostEvent", mock.Anything, mock.Anything)
}

func (suite *FetchUserUseCaseTestSuite) TestEndpointFailure_NoSideEffects() {
	suite.cache.On("GetUser", mock.Anything, testUserID).Return(nil, nil)
	suite.endpoint.result = model.EndpointResult[model.UserPayload]{Status: model.EndpointGeneralError}

	result := suite.useCase.FetchUserSync(suite.ctx, testUserID)

	suite.Equal(model.StatusFailure, result.Status)
	suite.Equal(model.EndpointGeneralError, result.EndpointStatus)
	suite.cache.AssertNotCalled(suite.T(), "CacheUser", mock.Anything, mock.Anything)
	suite.poster.AssertNotCalled(suite.T(), "PostEvent", mock.Anything, mock.Anything)
}

func (suite *FetchUserUseCaseTestSuite) TestNetworkError_NoSideEffects() {
	suite.cache.On("GetUser", mock.Anything, testUserID).Return(nil, nil)
	suite.endpoint.err = fmt.Errorf("%w: dial tcp", model.ErrNetwork)

	result := suite.useCase.FetchUserSync(suite.ctx, testUserID)

	suite.Equal(model.StatusNetworkError, result.Status)
	suite.cache.AssertNotCalled(suite.T(), "CacheUser", mock.Anything, mock.Anything)
	suite.poster.AssertNotCalled(suite.T(), "PostEvent", mock.Anything, mock.Anything)
}

func (suite *FetchUserUseCaseTestSuite) TestCacheReadError_FallsBackToEndpoint() {
	suite.cache.On("GetUser", mock.Anything, testUserID).Return(nil, errors.New("cache offline"))
	suite.cache.On("CacheUser", mock.Anything, mock.Anything).Return(nil)
	suite.poster.On("PostEvent", mock.Anything, mock.Anything).Return(nil)
	suite.endpoint.result = model.EndpointResult[model.UserPayload]{
		Status:  model.EndpointSuccess,
		Payload: model.UserPayload{UserID: testUserID, Username: testName},
	}

	result := suite.useCase.FetchUserSync(suite.ctx, testUserID)

	suite.True(result.IsSuccess())
	suite.Equal(1, suite.endpoint.calls)
}

func TestFetchUserUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(FetchUserUseCaseTestSuite))
}

func TestUpdateUsername(t *testing.T) {
	networkErr := fmt.Errorf("%w: reset", model.ErrNetwork)

	tests := []struct {
		name       string
		result     model.EndpointResult[model.UserPayload]
		err        error
		wantStatus model.Status
		wantCached bool
	}{
		{
			name: "success",
			result: model.EndpointResult[model.UserPayload]{
				Status:  model.EndpointSuccess,
				Payload: model.UserPayload{UserID: testUserID, Username: "new_name"},
			},
			wantStatus: model.StatusSuccess,
			wantCached: true,
		},
		{name: "general error", result: model.EndpointResult[model.UserPayload]{Status: model.EndpointGeneralError}, wantStatus: model.StatusFailure},
		{name: "auth error", result: model.EndpointResult[model.UserPayload]{Status: model.EndpointAuthError}, wantStatus: model.StatusFailure},
		{name: "server error", result: model.EndpointResult[model.UserPayload]{Status: model.EndpointServerError}, wantStatus: model.StatusFailure},
		{name: "network error", err: networkErr, wantStatus: model.StatusNetworkError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			endpoint := mocks.NewMockUpdateUsernameEndpoint(ctrl)
			cache := mocks.NewMockUsersCache(ctrl)
			poster := mocks.NewMockEventPoster(ctrl)

			endpoint.EXPECT().UpdateUsername(gomock.Any(), testUserID, "new_name").Return(tt.result, tt.err)
			if tt.wantCached {
				cache.EXPECT().CacheUser(gomock.Any(), model.User{UserID: testUserID, Username: "new_name"}).Return(nil)
				poster.EXPECT().PostEvent(gomock.Any(), model.UserDetailsChangedEvent{}).Return(nil)
			}

			uc, err := NewUpdateUsernameUseCase(endpoint, cache, poster, zap.NewNop())
			require.NoError(t, err)

			result := uc.UpdateUsernameSync(context.Background(), testUserID, "new_name")

			assert.Equal(t, tt.wantStatus, result.Status)
			if tt.wantCached {
				assert.Equal(t, "new_name", result.Entity.Username)
			}
		})
	}
}

func TestUpdateUsername_NeverReadsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	endpoint := mocks.NewMockUpdateUsernameEndpoint(ctrl)
	cache := mocks.NewMockUsersCache(ctrl)
	poster := mocks.NewMockEventPoster(ctrl)

	cache.EXPECT().GetUser(gomock.Any(), gomock.Any()).Times(0)
	endpoint.EXPECT().UpdateUsername(gomock.Any(), testUserID, testName).
		Return(model.EndpointResult[model.UserPayload]{Status: model.EndpointSuccess, Payload: model.UserPayload{UserID: testUserID, Username: testName}}, nil)
	cache.EXPECT().CacheUser(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))
	poster.EXPECT().PostEvent(gomock.Any(), model.UserDetailsChangedEvent{}).Return(errors.New("broker down"))

	uc, err := NewUpdateUsernameUseCase(endpoint, cache, poster, zap.NewNop())
	require.NoError(t, err)

	result := uc.UpdateUsernameSync(context.Background(), testUserID, testName)

	assert.True(t, result.IsSuccess())
}
