package data

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	v1 "usecase-sync/api/account/v1"
	"usecase-sync/api/account/v1/accountv1connect"
	"usecase-sync/internal/biz/model"
	conf "usecase-sync/internal/conf/v1"

	"connectrpc.com/connect"
	"connectrpc.com/otelconnect"
	"go.uber.org/zap"
)

const defaultBackendTimeout = 5 * time.Second

// NewAccountClient 创建远端账户服务的 Connect 客户端
func NewAccountClient(cfg *conf.Bootstrap, logger *zap.Logger) (accountv1connect.AccountServiceClient, error) {
	if cfg == nil || cfg.Backend == nil || cfg.Backend.BaseUrl == "" {
		return nil, errors.New("backend base_url is required")
	}

	timeout := defaultBackendTimeout
	if cfg.Backend.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	}

	otelInterceptor, err := otelconnect.NewInterceptor()
	if err != nil {
		return nil, fmt.Errorf("create otel client interceptor: %w", err)
	}

	logger.Info("Account backend configured", zap.String("base_url", cfg.Backend.BaseUrl), zap.Duration("timeout", timeout))
	return accountv1connect.NewAccountServiceClient(
		&http.Client{Timeout: timeout},
		cfg.Backend.BaseUrl,
		connect.WithInterceptors(otelInterceptor),
	), nil
}

// AccountEndpoints 把账户服务的各个 RPC 适配为用例所需的远端接口
type AccountEndpoints struct {
	client accountv1connect.AccountServiceClient
}

func NewAccountEndpoints(client accountv1connect.AccountServiceClient) *AccountEndpoints {
	return &AccountEndpoints{client: client}
}

var (
	_ LoginEndpoint          = (*AccountEndpoints)(nil)
	_ FetchUserEndpoint      = (*AccountEndpoints)(nil)
	_ UserProfileEndpoint    = (*AccountEndpoints)(nil)
	_ UpdateUsernameEndpoint = (*AccountEndpoints)(nil)
	_ ReputationEndpoint     = (*AccountEndpoints)(nil)
	_ ContactsEndpoint       = (*AccountEndpoints)(nil)
)

// callError 远端返回 Internal 视为业务侧的 SERVER_ERROR，其余错误均为网络错误
func callError[P any](procedure string, err error) (model.EndpointResult[P], error) {
	if connect.CodeOf(err) == connect.CodeInternal {
		return model.EndpointResult[P]{Status: model.EndpointServerError}, nil
	}
	return model.EndpointResult[P]{}, fmt.Errorf("%w: %s: %w", model.ErrNetwork, procedure, err)
}

func (e *AccountEndpoints) LoginSync(ctx context.Context, username, password string) (model.EndpointResult[model.LoginPayload], error) {
	resp, err := e.client.Login(ctx, connect.NewRequest(&v1.LoginRequest{
		Username: username,
		Password: password,
	}))
	if err != nil {
		return callError[model.LoginPayload](accountv1connect.AccountServiceLoginProcedure, err)
	}
	return model.EndpointResult[model.LoginPayload]{
		Status:  model.ParseEndpointStatus(resp.Msg.Status),
		Payload: model.LoginPayload{AuthToken: resp.Msg.AuthToken},
	}, nil
}

func (e *AccountEndpoints) FetchUserSync(ctx context.Context, userID string) (model.EndpointResult[model.UserPayload], error) {
	resp, err := e.client.FetchUser(ctx, connect.NewRequest(&v1.FetchUserRequest{UserId: userID}))
	if err != nil {
		return callError[model.UserPayload](accountv1connect.AccountServiceFetchUserProcedure, err)
	}
	return model.EndpointResult[model.UserPayload]{
		Status:  model.ParseEndpointStatus(resp.Msg.Status),
		Payload: model.UserPayload{UserID: resp.Msg.UserId, Username: resp.Msg.Username},
	}, nil
}

func (e *AccountEndpoints) GetUserProfile(ctx context.Context, userID string) (model.EndpointResult[model.ProfilePayload], error) {
	resp, err := e.client.GetUserProfile(ctx, connect.NewRequest(&v1.GetUserProfileRequest{UserId: userID}))
	if err != nil {
		return callError[model.ProfilePayload](accountv1connect.AccountServiceGetUserProfileProcedure, err)
	}
	return model.EndpointResult[model.ProfilePayload]{
		Status: model.ParseEndpointStatus(resp.Msg.Status),
		Payload: model.ProfilePayload{
			UserID:   resp.Msg.UserId,
			FullName: resp.Msg.FullName,
			ImageURL: resp.Msg.ImageUrl,
		},
	}, nil
}

func (e *AccountEndpoints) UpdateUsername(ctx context.Context, userID, username string) (model.EndpointResult[model.UserPayload], error) {
	resp, err := e.client.UpdateUsername(ctx, connect.NewRequest(&v1.UpdateUsernameRequest{
		UserId:   userID,
		Username: username,
	}))
	if err != nil {
		return callError[model.UserPayload](accountv1connect.AccountServiceUpdateUsernameProcedure, err)
	}
	return model.EndpointResult[model.UserPayload]{
		Status:  model.ParseEndpointStatus(resp.Msg.Status),
		Payload: model.UserPayload{UserID: resp.Msg.UserId, Username: resp.Msg.Username},
	}, nil
}

func (e *AccountEndpoints) GetReputationSync(ctx context.Context) (model.EndpointResult[model.ReputationPayload], error) {
	resp, err := e.client.GetReputation(ctx, connect.NewRequest(&v1.GetReputationRequest{}))
	if err != nil {
		return callError[model.ReputationPayload](accountv1connect.AccountServiceGetReputationProcedure, err)
	}
	return model.EndpointResult[model.ReputationPayload]{
		Status:  model.ParseEndpointStatus(resp.Msg.Status),
		Payload: model.ReputationPayload{Reputation: int(resp.Msg.Reputation)},
	}, nil
}

func (e *AccountEndpoints) GetContacts(ctx context.Context, filter string) (model.EndpointResult[[]model.ContactSchema], error) {
	resp, err := e.client.GetContacts(ctx, connect.NewRequest(&v1.GetContactsRequest{Filter: filter}))
	if err != nil {
		return callError[[]model.ContactSchema](accountv1connect.AccountServiceGetContactsProcedure, err)
	}

	schemas := make([]model.ContactSchema, 0, len(resp.Msg.Contacts))
	for _, c := range resp.Msg.Contacts {
		if c == nil {
			continue
		}
		schemas = append(schemas, model.ContactSchema{
			ID:              c.Id,
			FullName:        c.FullName,
			FullPhoneNumber: c.FullPhoneNumber,
			ImageURL:        c.ImageUrl,
			Age:             int(c.Age),
		})
	}
	return model.EndpointResult[[]model.ContactSchema]{
		Status:  model.ParseEndpointStatus(resp.Msg.Status),
		Payload: schemas,
	}, nil
}
