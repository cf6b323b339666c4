// Package accountv1connect 提供 account.v1.AccountService 的 Connect 客户端与处理器。
package accountv1connect

import (
	"context"
	"net/http"
	"strings"

	v1 "usecase-sync/api/account/v1"
	"usecase-sync/internal/pkg/jsoncodec"

	"connectrpc.com/connect"
)

const AccountServiceName = "account.v1.AccountService"

const (
	AccountServiceLoginProcedure          = "/account.v1.AccountService/Login"
	AccountServiceFetchUserProcedure      = "/account.v1.AccountService/FetchUser"
	AccountServiceGetUserProfileProcedure = "/account.v1.AccountService/GetUserProfile"
	AccountServiceUpdateUsernameProcedure = "/account.v1.AccountService/UpdateUsername"
	AccountServiceGetReputationProcedure  = "/account.v1.AccountService/GetReputation"
	AccountServiceGetContactsProcedure    = "/account.v1.AccountService/GetContacts"
)

// AccountServiceClient 账户服务客户端
type AccountServiceClient interface {
	Login(context.Context, *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginResponse], error)
	FetchUser(context.Context, *connect.Request[v1.FetchUserRequest]) (*connect.Response[v1.FetchUserResponse], error)
	GetUserProfile(context.Context, *connect.Request[v1.GetUserProfileRequest]) (*connect.Response[v1.GetUserProfileResponse], error)
	UpdateUsername(context.Context, *connect.Request[v1.UpdateUsernameRequest]) (*connect.Response[v1.UpdateUsernameResponse], error)
	GetReputation(context.Context, *connect.Request[v1.GetReputationRequest]) (*connect.Response[v1.GetReputationResponse], error)
	GetContacts(context.Context, *connect.Request[v1.GetContactsRequest]) (*connect.Response[v1.GetContactsResponse], error)
}

// NewAccountServiceClient 创建客户端，baseURL 形如 http://127.0.0.1:9000
func NewAccountServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AccountServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{jsoncodec.WithCodec()}, opts...)
	return &accountServiceClient{
		login:          connect.NewClient[v1.LoginRequest, v1.LoginResponse](httpClient, baseURL+AccountServiceLoginProcedure, opts...),
		fetchUser:      connect.NewClient[v1.FetchUserRequest, v1.FetchUserResponse](httpClient, baseURL+AccountServiceFetchUserProcedure, opts...),
		getUserProfile: connect.NewClient[v1.GetUserProfileRequest, v1.GetUserProfileResponse](httpClient, baseURL+AccountServiceGetUserProfileProcedure, opts...),
		updateUsername: connect.NewClient[v1.UpdateUsernameRequest, v1.UpdateUsernameResponse](httpClient, baseURL+AccountServiceUpdateUsernameProcedure, opts...),
		getReputation:  connect.NewClient[v1.GetReputationRequest, v1.GetReputationResponse](httpClient, baseURL+AccountServiceGetReputationProcedure, opts...),
		getContacts:    connect.NewClient[v1.GetContactsRequest, v1.GetContactsResponse](httpClient, baseURL+AccountServiceGetContactsProcedure, opts...),
	}
}

type accountServiceClient struct {
	login          *connect.Client[v1.LoginRequest, v1.LoginResponse]
	fetchUser      *connect.Client[v1.FetchUserRequest, v1.FetchUserResponse]
	getUserProfile *connect.Client[v1.GetUserProfileRequest, v1.GetUserProfileResponse]
	updateUsername *connect.Client[v1.UpdateUsernameRequest, v1.UpdateUsernameResponse]
	getReputation  *connect.Client[v1.GetReputationRequest, v1.GetReputationResponse]
	getContacts    *connect.Client[v1.GetContactsRequest, v1.GetContactsResponse]
}

func (c *accountServiceClient) Login(ctx context.Context, req *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *accountServiceClient) FetchUser(ctx context.Context, req *connect.Request[v1.FetchUserRequest]) (*connect.Response[v1.FetchUserResponse], error) {
	return c.fetchUser.CallUnary(ctx, req)
}

func (c *accountServiceClient) GetUserProfile(ctx context.Context, req *connect.Request[v1.GetUserProfileRequest]) (*connect.Response[v1.GetUserProfileResponse], error) {
	return c.getUserProfile.CallUnary(ctx, req)
}

func (c *accountServiceClient) UpdateUsername(ctx context.Context, req *connect.Request[v1.UpdateUsernameRequest]) (*connect.Response[v1.UpdateUsernameResponse], error) {
	return c.updateUsername.CallUnary(ctx, req)
}

func (c *accountServiceClient) GetReputation(ctx context.Context, req *connect.Request[v1.GetReputationRequest]) (*connect.Response[v1.GetReputationResponse], error) {
	return c.getReputation.CallUnary(ctx, req)
}

func (c *accountServiceClient) GetContacts(ctx context.Context, req *connect.Request[v1.GetContactsRequest]) (*connect.Response[v1.GetContactsResponse], error) {
	return c.getContacts.CallUnary(ctx, req)
}

// AccountServiceHandler 账户服务处理器
type AccountServiceHandler interface {
	Login(context.Context, *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginResponse], error)
	FetchUser(context.Context, *connect.Request[v1.FetchUserRequest]) (*connect.Response[v1.FetchUserResponse], error)
	GetUserProfile(context.Context, *connect.Request[v1.GetUserProfileRequest]) (*connect.Response[v1.GetUserProfileResponse], error)
	UpdateUsername(context.Context, *connect.Request[v1.UpdateUsernameRequest]) (*connect.Response[v1.UpdateUsernameResponse], error)
	GetReputation(context.Context, *connect.Request[v1.GetReputationRequest]) (*connect.Response[v1.GetReputationResponse], error)
	GetContacts(context.Context, *connect.Request[v1.GetContactsRequest]) (*connect.Response[v1.GetContactsResponse], error)
}

// NewAccountServiceHandler 返回挂载路径与 http.Handler
func NewAccountServiceHandler(svc AccountServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{jsoncodec.WithCodec()}, opts...)
	login := connect.NewUnaryHandler(AccountServiceLoginProcedure, svc.Login, opts...)
	fetchUser := connect.NewUnaryHandler(AccountServiceFetchUserProcedure, svc.FetchUser, opts...)
	getUserProfile := connect.NewUnaryHandler(AccountServiceGetUserProfileProcedure, svc.GetUserProfile, opts...)
	updateUsername := connect.NewUnaryHandler(AccountServiceUpdateUsernameProcedure, svc.UpdateUsername, opts...)
	getReputation := connect.NewUnaryHandler(AccountServiceGetReputationProcedure, svc.GetReputation, opts...)
	getContacts := connect.NewUnaryHandler(AccountServiceGetContactsProcedure, svc.GetContacts, opts...)

	return "/" + AccountServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AccountServiceLoginProcedure:
			login.ServeHTTP(w, r)
		case AccountServiceFetchUserProcedure:
			fetchUser.ServeHTTP(w, r)
		case AccountServiceGetUserProfileProcedure:
			getUserProfile.ServeHTTP(w, r)
		case AccountServiceUpdateUsernameProcedure:
			updateUsername.ServeHTTP(w, r)
		case AccountServiceGetReputationProcedure:
			getReputation.ServeHTTP(w, r)
		case AccountServiceGetContactsProcedure:
			getContacts.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
