package backend

import (
	"context"
	"errors"
	"strings"

	v1 "usecase-sync/api/account/v1"
	"usecase-sync/api/account/v1/accountv1connect"

	"connectrpc.com/connect"
	"go.uber.org/zap"
)

// AccountService 进程内实现的远端账户服务，业务错误通过 status 字段返回
type AccountService struct {
	store  *Store
	issuer *TokenIssuer
	logger *zap.Logger
}

var _ accountv1connect.AccountServiceHandler = (*AccountService)(nil)

func NewAccountService(store *Store, issuer *TokenIssuer, logger *zap.Logger) *AccountService {
	return &AccountService{
		store:  store,
		issuer: issuer,
		logger: logger,
	}
}

func (s *AccountService) Login(_ context.Context, req *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginResponse], error) {
	account, ok := s.store.Authenticate(req.Msg.Username, req.Msg.Password)
	if !ok {
		s.logger.Info("Login rejected", zap.String("username", req.Msg.Username))
		return connect.NewResponse(&v1.LoginResponse{Status: v1.StatusAuthError}), nil
	}

	token, err := s.issuer.Issue(account)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.String("user_id", account.ID), zap.Error(err))
		return connect.NewResponse(&v1.LoginResponse{Status: v1.StatusServerError}), nil
	}
	return connect.NewResponse(&v1.LoginResponse{Status: v1.StatusSuccess, AuthToken: token}), nil
}

func (s *AccountService) FetchUser(_ context.Context, req *connect.Request[v1.FetchUserRequest]) (*connect.Response[v1.FetchUserResponse], error) {
	account, err := s.store.Account(req.Msg.UserId)
	if err != nil {
		return connect.NewResponse(&v1.FetchUserResponse{Status: v1.StatusGeneralError}), nil
	}
	return connect.NewResponse(&v1.FetchUserResponse{
		Status:   v1.StatusSuccess,
		UserId:   account.ID,
		Username: account.Username,
	}), nil
}

func (s *AccountService) GetUserProfile(_ context.Context, req *connect.Request[v1.GetUserProfileRequest]) (*connect.Response[v1.GetUserProfileResponse], error) {
	account, err := s.store.Account(req.Msg.UserId)
	if err != nil {
		return connect.NewResponse(&v1.GetUserProfileResponse{Status: v1.StatusGeneralError}), nil
	}
	return connect.NewResponse(&v1.GetUserProfileResponse{
		Status:   v1.StatusSuccess,
		UserId:   account.ID,
		FullName: account.FullName,
		ImageUrl: account.ImageURL,
	}), nil
}

func (s *AccountService) UpdateUsername(_ context.Context, req *connect.Request[v1.UpdateUsernameRequest]) (*connect.Response[v1.UpdateUsernameResponse], error) {
	account, err := s.store.Rename(req.Msg.UserId, req.Msg.Username)
	switch {
	case errors.Is(err, ErrEmptyUsername):
		return connect.NewResponse(&v1.UpdateUsernameResponse{Status: v1.StatusGeneralError}), nil
	case errors.Is(err, ErrAccountNotFound):
		return connect.NewResponse(&v1.UpdateUsernameResponse{Status: v1.StatusAuthError}), nil
	case err != nil:
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Username updated", zap.String("user_id", account.ID))
	return connect.NewResponse(&v1.UpdateUsernameResponse{
		Status:   v1.StatusSuccess,
		UserId:   account.ID,
		Username: account.Username,
	}), nil
}

// GetReputation 携带有效 Bearer 令牌时返回该用户的声望，否则返回全局声望；令牌无效时返回 AUTH_ERROR
func (s *AccountService) GetReputation(_ context.Context, req *connect.Request[v1.GetReputationRequest]) (*connect.Response[v1.GetReputationResponse], error) {
	var accountID string
	if raw, ok := strings.CutPrefix(req.Header().Get("Authorization"), "Bearer "); ok {
		id, err := s.issuer.Verify(raw)
		if err != nil {
			s.logger.Info("Reputation token rejected", zap.Error(err))
			return connect.NewResponse(&v1.GetReputationResponse{Status: v1.StatusAuthError}), nil
		}
		accountID = id
	}
	return connect.NewResponse(&v1.GetReputationResponse{
		Status:     v1.StatusSuccess,
		Reputation: s.store.Reputation(accountID),
	}), nil
}

func (s *AccountService) GetContacts(_ context.Context, req *connect.Request[v1.GetContactsRequest]) (*connect.Response[v1.GetContactsResponse], error) {
	contacts := s.store.Contacts(req.Msg.Filter)
	out := make([]*v1.ContactSchema, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, &v1.ContactSchema{
			Id:              c.ID,
			FullName:        c.FullName,
			FullPhoneNumber: c.FullPhoneNumber,
			ImageUrl:        c.ImageURL,
			Age:             c.Age,
		})
	}
	return connect.NewResponse(&v1.GetContactsResponse{Status: v1.StatusSuccess, Contacts: out}), nil
}
