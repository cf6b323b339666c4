package service

import (
	"context"
	"fmt"

	v1 "usecase-sync/api/usecase/v1"
	"usecase-sync/api/usecase/v1/usecasev1connect"
	"usecase-sync/internal/biz/model"

	"connectrpc.com/connect"
)

// EndpointStatusHeader 失败响应中携带远端原始状态
const EndpointStatusHeader = "X-Endpoint-Status"

// UseCaseService 通过 Connect 暴露各个同步用例
type UseCaseService struct {
	login      model.LoginUseCase
	fetchUser  model.FetchUserUseCase
	profile    model.FetchUserProfileUseCase
	rename     model.UpdateUsernameUseCase
	reputation model.FetchReputationUseCase
	contacts   model.FetchContactsUseCase
}

// 显式接口检查
var _ usecasev1connect.UseCaseServiceHandler = (*UseCaseService)(nil)

func NewUseCaseService(
	login model.LoginUseCase,
	fetchUser model.FetchUserUseCase,
	profile model.FetchUserProfileUseCase,
	rename model.UpdateUsernameUseCase,
	reputation model.FetchReputationUseCase,
	contacts model.FetchContactsUseCase,
) usecasev1connect.UseCaseServiceHandler {
	return &UseCaseService{
		login:      login,
		fetchUser:  fetchUser,
		profile:    profile,
		rename:     rename,
		reputation: reputation,
		contacts:   contacts,
	}
}

func (s *UseCaseService) Login(ctx context.Context, req *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginResponse], error) {
	result := s.login.LoginSync(ctx, req.Msg.Username, req.Msg.Password)
	if !result.IsSuccess() {
		return nil, resultError(req.Spec().Procedure, result.Status, result.EndpointStatus)
	}
	return connect.NewResponse(&v1.LoginResponse{
		Result:    toResult(result.Status, result.EndpointStatus),
		AuthToken: result.Entity.Token,
	}), nil
}

func (s *UseCaseService) FetchUser(ctx context.Context, req *connect.Request[v1.FetchUserRequest]) (*connect.Response[v1.FetchUserResponse], error) {
	result := s.fetchUser.FetchUserSync(ctx, req.Msg.UserId)
	if !result.IsSuccess() {
		return nil, resultError(req.Spec().Procedure, result.Status, result.EndpointStatus)
	}
	return connect.NewResponse(&v1.FetchUserResponse{
		Result: toResult(result.Status, result.EndpointStatus),
		User:   toUser(result.Entity),
	}), nil
}

func (s *UseCaseService) FetchUserProfile(ctx context.Context, req *connect.Request[v1.FetchUserProfileRequest]) (*connect.Response[v1.FetchUserProfileResponse], error) {
	result := s.profile.FetchUserProfileSync(ctx, req.Msg.UserId)
	if !result.IsSuccess() {
		return nil, resultError(req.Spec().Procedure, result.Status, result.EndpointStatus)
	}
	return connect.NewResponse(&v1.FetchUserProfileResponse{
		Result: toResult(result.Status, result.EndpointStatus),
		Profile: &v1.UserProfile{
			UserId:   result.Entity.UserID,
			FullName: result.Entity.FullName,
			ImageUrl: result.Entity.ImageURL,
		},
	}), nil
}

func (s *UseCaseService) UpdateUsername(ctx context.Context, req *connect.Request[v1.UpdateUsernameRequest]) (*connect.Response[v1.UpdateUsernameResponse], error) {
	result := s.rename.UpdateUsernameSync(ctx, req.Msg.UserId, req.Msg.Username)
	if !result.IsSuccess() {
		return nil, resultError(req.Spec().Procedure, result.Status, result.EndpointStatus)
	}
	return connect.NewResponse(&v1.UpdateUsernameResponse{
		Result: toResult(result.Status, result.EndpointStatus),
		User:   toUser(result.Entity),
	}), nil
}

// FetchReputation 失败时同样返回 200，状态与归零后的声望放在响应体中
func (s *UseCaseService) FetchReputation(ctx context.Context, _ *connect.Request[v1.FetchReputationRequest]) (*connect.Response[v1.FetchReputationResponse], error) {
	result := s.reputation.FetchReputationSync(ctx)
	return connect.NewResponse(&v1.FetchReputationResponse{
		Status:     string(result.Status),
		Reputation: int32(result.Reputation),
	}), nil
}

func (s *UseCaseService) FetchContacts(ctx context.Context, req *connect.Request[v1.FetchContactsRequest]) (*connect.Response[v1.FetchContactsResponse], error) {
	result := s.contacts.FetchContactsAndNotify(ctx, req.Msg.Filter)
	if !result.IsSuccess() {
		return connect.NewResponse(&v1.FetchContactsResponse{FailReason: string(result.FailReason)}), nil
	}

	contacts := make([]*v1.Contact, 0, len(result.Contacts))
	for _, c := range result.Contacts {
		contacts = append(contacts, &v1.Contact{Id: c.ID, FullName: c.FullName, ImageUrl: c.ImageURL})
	}
	return connect.NewResponse(&v1.FetchContactsResponse{Contacts: contacts}), nil
}

func toResult(status model.Status, endpoint model.EndpointStatus) v1.Result {
	return v1.Result{Status: status.String(), EndpointStatus: string(endpoint)}
}

func toUser(u model.User) *v1.User {
	return &v1.User{UserId: u.UserID, Username: u.Username}
}

// resultError 将失败的用例结果转换为 Connect 错误
func resultError(procedure string, status model.Status, endpoint model.EndpointStatus) *connect.Error {
	var code connect.Code
	switch {
	case status == model.StatusNetworkError:
		code = connect.CodeUnavailable
	case endpoint == model.EndpointAuthError:
		code = connect.CodeUnauthenticated
	case endpoint == model.EndpointServerError:
		code = connect.CodeInternal
	default:
		code = connect.CodeFailedPrecondition
	}

	err := connect.NewError(code, fmt.Errorf("%s: %s", procedure, status))
	if endpoint != "" {
		err.Meta().Set(EndpointStatusHeader, string(endpoint))
	}
	return err
}
