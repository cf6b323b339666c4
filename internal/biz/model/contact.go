package model

import "context"

// Contact 联系人实体
type Contact struct {
	ID       string
	FullName string
	ImageURL string
}

// ContactSchema 远端返回的联系人数据
type ContactSchema struct {
	ID              string
	FullName        string
	FullPhoneNumber string
	ImageURL        string
	Age             int
}

// FailReason 联系人查询失败原因
type FailReason string

const (
	FailReasonGeneralError FailReason = "GENERAL_ERROR"
	FailReasonNetworkError FailReason = "NETWORK_ERROR"
)

// ContactsResult FailReason 为空表示成功
type ContactsResult struct {
	Contacts   []Contact
	FailReason FailReason
}

func (r ContactsResult) IsSuccess() bool { return r.FailReason == "" }

// ContactsListener 联系人查询结果的监听者
type ContactsListener interface {
	OnFetchContactsSuccess(contacts []Contact)
	OnFetchContactsFailure(reason FailReason)
}

// FetchContactsUseCase 查询联系人并同步通知已注册的监听者
type FetchContactsUseCase interface {
	FetchContactsAndNotify(ctx context.Context, filter string) ContactsResult
	RegisterListener(listener ContactsListener)
	UnregisterListener(listener ContactsListener)
}
