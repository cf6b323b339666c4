package biz

import (
	"context"
	"errors"
	"slices"
	"sync"

	"usecase-sync/internal/biz/model"
	"usecase-sync/internal/data"

	"go.uber.org/zap"
)

// FetchContactsUseCase 查询联系人并同步通知所有已注册的监听者
type FetchContactsUseCase struct {
	endpoint data.ContactsEndpoint
	logger   *zap.Logger

	mu        sync.RWMutex
	listeners []model.ContactsListener
}

func NewFetchContactsUseCase(endpoint data.ContactsEndpoint, logger *zap.Logger) (*FetchContactsUseCase, error) {
	if endpoint == nil {
		return nil, errors.New("fetch contacts use case: endpoint is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FetchContactsUseCase{endpoint: endpoint, logger: logger.With(zap.String("usecase", "fetch_contacts"))}, nil
}

// RegisterListener 同一个监听者重复注册只保留一份
func (uc *FetchContactsUseCase) RegisterListener(listener model.ContactsListener) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !slices.Contains(uc.listeners, listener) {
		uc.listeners = append(uc.listeners, listener)
	}
}

func (uc *FetchContactsUseCase) UnregisterListener(listener model.ContactsListener) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.listeners = slices.DeleteFunc(uc.listeners, func(l model.ContactsListener) bool { return l == listener })
}

// FetchContactsAndNotify 查询结果同时返回给调用方
func (uc *FetchContactsUseCase) FetchContactsAndNotify(ctx context.Context, filter string) model.ContactsResult {
	result := uc.fetchContacts(ctx, filter)

	// 通知期间允许监听者注销自身
	uc.mu.RLock()
	listeners := slices.Clone(uc.listeners)
	uc.mu.RUnlock()

	for _, l := range listeners {
		if result.IsSuccess() {
			l.OnFetchContactsSuccess(slices.Clone(result.Contacts))
		} else {
			l.OnFetchContactsFailure(result.FailReason)
		}
	}
	return result
}

func (uc *FetchContactsUseCase) fetchContacts(ctx context.Context, filter string) model.ContactsResult {
	result, err := uc.endpoint.GetContacts(ctx, filter)
	if err != nil {
		uc.logger.Debug("Endpoint call failed", zap.Error(err))
		return model.ContactsResult{FailReason: model.FailReasonNetworkError}
	}
	if result.Status != model.EndpointSuccess {
		return model.ContactsResult{FailReason: model.FailReasonGeneralError}
	}

	contacts := make([]model.Contact, 0, len(result.Payload))
	for _, schema := range result.Payload {
		contacts = append(contacts, model.Contact{ID: schema.ID, FullName: schema.FullName, ImageURL: schema.ImageURL})
	}
	return model.ContactsResult{Contacts: contacts}
}

// LoggingContactsListener 将查询结果写入日志
type LoggingContactsListener struct {
	logger *zap.Logger
}

func NewLoggingContactsListener(logger *zap.Logger) *LoggingContactsListener {
	return &LoggingContactsListener{logger: logger}
}

func (l *LoggingContactsListener) OnFetchContactsSuccess(contacts []model.Contact) {
	l.logger.Info("Contacts fetched", zap.Int("count", len(contacts)))
}

func (l *LoggingContactsListener) OnFetchContactsFailure(reason model.FailReason) {
	l.logger.Warn("Contacts fetch failed", zap.String("reason", string(reason)))
}
