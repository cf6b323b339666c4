// Package usecasev1connect 提供 usecase.v1.UseCaseService 的 Connect 客户端与处理器。
package usecasev1connect

import (
	"context"
	"net/http"
	"strings"

	v1 "usecase-sync/api/usecase/v1"
	"usecase-sync/internal/pkg/jsoncodec"

	"connectrpc.com/connect"
)

const UseCaseServiceName = "usecase.v1.UseCaseService"

const (
	UseCaseServiceLoginProcedure            = "/usecase.v1.UseCaseService/Login"
	UseCaseServiceFetchUserProcedure        = "/usecase.v1.UseCaseService/FetchUser"
	UseCaseServiceFetchUserProfileProcedure = "/usecase.v1.UseCaseService/FetchUserProfile"
	UseCaseServiceUpdateUsernameProcedure   = "/usecase.v1.UseCaseService/UpdateUsername"
	UseCaseServiceFetchReputationProcedure  = "/usecase.v1.UseCaseService/FetchReputation"
	UseCaseServiceFetchContactsProcedure    = "/usecase.v1.UseCaseService/FetchContacts"
)

// UseCaseServiceHandler 用例服务处理器
type UseCaseServiceHandler interface {
	Login(context.Context, *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginResponse], error)
	FetchUser(context.Context, *connect.Request[v1.FetchUserRequest]) (*connect.Response[v1.FetchUserResponse], error)
	FetchUserProfile(context.Context, *connect.Request[v1.FetchUserProfileRequest]) (*connect.Response[v1.FetchUserProfileResponse], error)
	UpdateUsername(context.Context, *connect.Request[v1.UpdateUsernameRequest]) (*connect.Response[v1.UpdateUsernameResponse], error)
	FetchReputation(context.Context, *connect.Request[v1.FetchReputationRequest]) (*connect.Response[v1.FetchReputationResponse], error)
	FetchContacts(context.Context, *connect.Request[v1.FetchContactsRequest]) (*connect.Response[v1.FetchContactsResponse], error)
}

// NewUseCaseServiceHandler 返回挂载路径与 http.Handler
func NewUseCaseServiceHandler(svc UseCaseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{jsoncodec.WithCodec()}, opts...)
	login := connect.NewUnaryHandler(UseCaseServiceLoginProcedure, svc.Login, opts...)
	fetchUser := connect.NewUnaryHandler(UseCaseServiceFetchUserProcedure, svc.FetchUser, opts...)
	fetchUserProfile := connect.NewUnaryHandler(UseCaseServiceFetchUserProfileProcedure, svc.FetchUserProfile, opts...)
	updateUsername := connect.NewUnaryHandler(UseCaseServiceUpdateUsernameProcedure, svc.UpdateUsername, opts...)
	fetchReputation := connect.NewUnaryHandler(UseCaseServiceFetchReputationProcedure, svc.FetchReputation, opts...)
	fetchContacts := connect.NewUnaryHandler(UseCaseServiceFetchContactsProcedure, svc.FetchContacts, opts...)

	return "/" + UseCaseServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case UseCaseServiceLoginProcedure:
			login.ServeHTTP(w, r)
		case UseCaseServiceFetchUserProcedure:
			fetchUser.ServeHTTP(w, r)
		case UseCaseServiceFetchUserProfileProcedure:
			fetchUserProfile.ServeHTTP(w, r)
		case UseCaseServiceUpdateUsernameProcedure:
			updateUsername.ServeHTTP(w, r)
		case UseCaseServiceFetchReputationProcedure:
			fetchReputation.ServeHTTP(w, r)
		case UseCaseServiceFetchContactsProcedure:
			fetchContacts.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UseCaseServiceClient 用例服务客户端，供集成测试与其他服务调用
type UseCaseServiceClient struct {
	login            *connect.Client[v1.LoginRequest, v1.LoginResponse]
	fetchUser        *connect.Client[v1.FetchUserRequest, v1.FetchUserResponse]
	fetchUserProfile *connect.Client[v1.FetchUserProfileRequest, v1.FetchUserProfileResponse]
	updateUsername   *connect.Client[v1.UpdateUsernameRequest, v1.UpdateUsernameResponse]
	fetchReputation  *connect.Client[v1.FetchReputationRequest, v1.FetchReputationResponse]
	fetchContacts    *connect.Client[v1.FetchContactsRequest, v1.FetchContactsResponse]
}

func NewUseCaseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *UseCaseServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{jsoncodec.WithCodec()}, opts...)
	return &UseCaseServiceClient{
		login:            connect.NewClient[v1.LoginRequest, v1.LoginResponse](httpClient, baseURL+UseCaseServiceLoginProcedure, opts...),
		fetchUser:        connect.NewClient[v1.FetchUserRequest, v1.FetchUserResponse](httpClient, baseURL+UseCaseServiceFetchUserProcedure, opts...),
		fetchUserProfile: connect.NewClient[v1.FetchUserProfileRequest, v1.FetchUserProfileResponse](httpClient, baseURL+UseCaseServiceFetchUserProfileProcedure, opts...),
		updateUsername:   connect.NewClient[v1.UpdateUsernameRequest, v1.UpdateUsernameResponse](httpClient, baseURL+UseCaseServiceUpdateUsernameProcedure, opts...),
		fetchReputation:  connect.NewClient[v1.FetchReputationRequest, v1.FetchReputationResponse](httpClient, baseURL+UseCaseServiceFetchReputationProcedure, opts...),
		fetchContacts:    connect.NewClient[v1.FetchContactsRequest, v1.FetchContactsResponse](httpClient, baseURL+UseCaseServiceFetchContactsProcedure, opts...),
	}
}

func (c *UseCaseServiceClient) Login(ctx context.Context, req *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *UseCaseServiceClient) FetchUser(ctx context.Context, req *connect.Request[v1.FetchUserRequest]) (*connect.Response[v1.FetchUserResponse], error) {
	return c.fetchUser.CallUnary(ctx, req)
}

func (c *UseCaseServiceClient) FetchUserProfile(ctx context.Context, req *connect.Request[v1.FetchUserProfileRequest]) (*connect.Response[v1.FetchUserProfileResponse], error) {
	return c.fetchUserProfile.CallUnary(ctx, req)
}

func (c *UseCaseServiceClient) UpdateUsername(ctx context.Context, req *connect.Request[v1.UpdateUsernameRequest]) (*connect.Response[v1.UpdateUsernameResponse], error) {
	return c.updateUsername.CallUnary(ctx, req)
}

func (c *UseCaseServiceClient) FetchReputation(ctx context.Context, req *connect.Request[v1.FetchReputationRequest]) (*connect.Response[v1.FetchReputationResponse], error) {
	return c.fetchReputation.CallUnary(ctx, req)
}

func (c *UseCaseServiceClient) FetchContacts(ctx context.Context, req *connect.Request[v1.FetchContactsRequest]) (*connect.Response[v1.FetchContactsResponse], error) {
	return c.fetchContacts.CallUnary(ctx, req)
}
